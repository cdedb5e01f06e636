package dataset

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// ErrMalformed reports a field that could not be parsed as a finite number.
// Record and Column are 1-based.
type ErrMalformed struct {
	Record int
	Column int
	Value  string
	cause  error
}

func (e *ErrMalformed) Error() string {
	return fmt.Sprintf("dataset: record %d column %d: invalid number %q", e.Record, e.Column, e.Value)
}

func (e *ErrMalformed) Unwrap() error { return e.cause }

type readOptions struct {
	delimiter rune
	tags      bool
}

// ReadOption configures Read and Open.
type ReadOption func(*readOptions)

// WithDelimiter sets the field separator. The default is a tab.
func WithDelimiter(r rune) ReadOption {
	return func(o *readOptions) {
		o.delimiter = r
	}
}

// WithoutTags treats every column as a feature. By default the trailing
// column of each line becomes the record's tag.
func WithoutTags() ReadOption {
	return func(o *readOptions) {
		o.tags = false
	}
}

func applyReadOptions(optFns []ReadOption) readOptions {
	o := readOptions{
		delimiter: '\t',
		tags:      true,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}

// Read parses delimited text into a Dataset. Every line must have the same
// number of fields; blank lines are skipped.
func Read(r io.Reader, optFns ...ReadOption) (*Dataset, error) {
	o := applyReadOptions(optFns)

	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("dataset: read: %w", err)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, ErrEmpty
	}

	df := dataframe.ReadCSV(bytes.NewReader(raw),
		dataframe.WithDelimiter(o.delimiter),
		dataframe.HasHeader(false),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.NaNValues(nil),
	)
	if df.Err != nil {
		return nil, fmt.Errorf("dataset: parse: %w", df.Err)
	}

	var tags []string
	if o.tags {
		last := df.Ncol() - 1
		if last < 1 {
			return nil, ErrNoFeatures
		}
		tags = df.Col(df.Names()[last]).Records()
		df = df.Drop(last)
	}

	// Records()[0] holds the generated column names.
	rows := df.Records()[1:]
	records := make([][]float64, len(rows))
	for i, row := range rows {
		vec := make([]float64, len(row))
		for j, field := range row {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, &ErrMalformed{Record: i + 1, Column: j + 1, Value: field, cause: err}
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, &ErrMalformed{
					Record: i + 1,
					Column: j + 1,
					Value:  field,
					cause:  &ErrNonFinite{Index: i, Column: j, Value: v},
				}
			}
			vec[j] = v
		}
		records[i] = vec
	}

	return NewWithTags(records, tags)
}
