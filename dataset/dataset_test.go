package dataset

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	records := [][]float64{{1, 1}, {1, 2}, {9, 9}}

	ds, err := New(records)
	require.NoError(t, err)
	assert.Equal(t, 3, ds.Len())
	assert.Equal(t, 2, ds.Dim())
	assert.Equal(t, []float64{1, 2}, ds.Row(1))
	assert.False(t, ds.HasTags())
	assert.Equal(t, "", ds.Tag(0))
	assert.Nil(t, ds.Tags())

	// The dataset owns a copy.
	records[0][0] = 42
	assert.Equal(t, 1.0, ds.Row(0)[0])
}

func TestNew_RowsDoNotAlias(t *testing.T) {
	ds, err := New([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	row := ds.Row(0)
	row = append(row, 99)
	_ = row
	assert.Equal(t, []float64{3, 4}, ds.Row(1))
}

func TestNew_Errors(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		_, err := New(nil)
		assert.ErrorIs(t, err, ErrEmpty)
	})

	t.Run("NoFeatures", func(t *testing.T) {
		_, err := New([][]float64{{}})
		assert.ErrorIs(t, err, ErrNoFeatures)
	})

	t.Run("Ragged", func(t *testing.T) {
		_, err := New([][]float64{{1, 2}, {3, 4}, {5}})
		var re *ErrRaggedRecord
		require.ErrorAs(t, err, &re)
		assert.Equal(t, 2, re.Index)
		assert.Equal(t, 2, re.Expected)
		assert.Equal(t, 1, re.Actual)
	})

	t.Run("TagCount", func(t *testing.T) {
		_, err := NewWithTags([][]float64{{1}, {2}}, []string{"a"})
		assert.Error(t, err)
	})
}

func TestNewWithTags(t *testing.T) {
	tags := []string{"a", "b"}
	ds, err := NewWithTags([][]float64{{1}, {2}}, tags)
	require.NoError(t, err)

	assert.True(t, ds.HasTags())
	assert.Equal(t, "b", ds.Tag(1))

	tags[0] = "z"
	assert.Equal(t, []string{"a", "b"}, ds.Tags())
}

func TestNew_NonFinite(t *testing.T) {
	for _, x := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := New([][]float64{{1, 1}, {2, x}})
		var nf *ErrNonFinite
		require.ErrorAs(t, err, &nf)
		assert.Equal(t, 1, nf.Index)
		assert.Equal(t, 1, nf.Column)
	}
}
