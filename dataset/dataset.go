package dataset

import (
	"errors"
	"fmt"
	"math"
	"slices"
)

var (
	// ErrEmpty is returned when a dataset would contain no records.
	ErrEmpty = errors.New("dataset: no records")

	// ErrNoFeatures is returned when records have zero components.
	ErrNoFeatures = errors.New("dataset: records have no feature columns")
)

// ErrRaggedRecord indicates a record whose length differs from the first one.
type ErrRaggedRecord struct {
	Index    int
	Expected int
	Actual   int
}

func (e *ErrRaggedRecord) Error() string {
	return fmt.Sprintf("dataset: record %d has %d components, expected %d", e.Index, e.Actual, e.Expected)
}

// ErrNonFinite indicates a NaN or infinite record component. Index and
// Column are 0-based.
type ErrNonFinite struct {
	Index  int
	Column int
	Value  float64
}

func (e *ErrNonFinite) Error() string {
	return fmt.Sprintf("dataset: record %d component %d is not finite (%v)", e.Index, e.Column, e.Value)
}

// Dataset is an ordered, immutable set of N records of dimension D.
type Dataset struct {
	rows [][]float64
	dim  int
	tags []string
}

// New copies records into a new Dataset.
func New(records [][]float64) (*Dataset, error) {
	return NewWithTags(records, nil)
}

// NewWithTags copies records and their tags into a new Dataset.
// tags may be nil; otherwise it must have one entry per record. Every
// component must be finite.
func NewWithTags(records [][]float64, tags []string) (*Dataset, error) {
	if len(records) == 0 {
		return nil, ErrEmpty
	}
	dim := len(records[0])
	if dim == 0 {
		return nil, ErrNoFeatures
	}
	if tags != nil && len(tags) != len(records) {
		return nil, fmt.Errorf("dataset: %d tags for %d records", len(tags), len(records))
	}

	// Single backing array; rows are views into it.
	data := make([]float64, len(records)*dim)
	rows := make([][]float64, len(records))
	for i, rec := range records {
		if len(rec) != dim {
			return nil, &ErrRaggedRecord{Index: i, Expected: dim, Actual: len(rec)}
		}
		for j, x := range rec {
			if math.IsNaN(x) || math.IsInf(x, 0) {
				return nil, &ErrNonFinite{Index: i, Column: j, Value: x}
			}
		}
		row := data[i*dim : (i+1)*dim : (i+1)*dim]
		copy(row, rec)
		rows[i] = row
	}

	return &Dataset{
		rows: rows,
		dim:  dim,
		tags: slices.Clone(tags),
	}, nil
}

// Len returns the number of records N.
func (d *Dataset) Len() int { return len(d.rows) }

// Dim returns the record dimension D.
func (d *Dataset) Dim() int { return d.dim }

// Row returns record i. The slice is shared with the dataset and must not be
// modified.
func (d *Dataset) Row(i int) []float64 { return d.rows[i] }

// HasTags reports whether the dataset carries per-record tags.
func (d *Dataset) HasTags() bool { return d.tags != nil }

// Tag returns the tag of record i, or "" when the dataset has no tags.
func (d *Dataset) Tag(i int) string {
	if d.tags == nil {
		return ""
	}
	return d.tags[i]
}

// Tags returns a copy of all tags, or nil.
func (d *Dataset) Tags() []string { return slices.Clone(d.tags) }
