package plot

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/kmeans"
	"github.com/hupe1980/kmeans/dataset"
)

func fit(t *testing.T) (*dataset.Dataset, *kmeans.Result) {
	t.Helper()
	ds, err := dataset.NewWithTags(
		[][]float64{{1, 1}, {1, 2}, {9, 9}, {9, 8}},
		[]string{"a", "a", "b", "b"},
	)
	require.NoError(t, err)

	c, err := kmeans.New(2)
	require.NoError(t, err)
	res, err := c.Fit(context.Background(), ds, [][]float64{{1, 1}, {9, 9}})
	require.NoError(t, err)
	return ds, res
}

func TestScatter(t *testing.T) {
	ds, res := fit(t)

	var buf bytes.Buffer
	require.NoError(t, Scatter(&buf, ds, res))

	html := buf.String()
	assert.Contains(t, html, "Cluster 0")
	assert.Contains(t, html, "Cluster 1")
	assert.Contains(t, html, "Centroids")
}

func TestScatter_LabelCount(t *testing.T) {
	ds, res := fit(t)
	res.Labels = res.Labels[:2]

	var buf bytes.Buffer
	assert.ErrorIs(t, Scatter(&buf, ds, res), ErrLabelCount)
}

func TestSizes(t *testing.T) {
	_, res := fit(t)

	var buf bytes.Buffer
	require.NoError(t, Sizes(&buf, res))
	assert.Contains(t, buf.String(), "Cluster Sizes")
}

func TestProject(t *testing.T) {
	tests := []struct {
		name string
		in   []float64
		want []float64
	}{
		{"Exact", []float64{1, 2}, []float64{1, 2}},
		{"Pad", []float64{3}, []float64{3, 0}},
		{"Even", []float64{1, 3, 5, 7}, []float64{2, 6}},
		{"Odd", []float64{1, 2, 3}, []float64{1, 2.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDeltaSlice(t, tt.want, Project(tt.in, 2), 1e-12)
		})
	}
}

func TestPalette(t *testing.T) {
	colors := Palette(5)
	require.Len(t, colors, 5)
	for i, c := range colors {
		assert.NotEmpty(t, c)
		if i > 0 {
			assert.NotEqual(t, colors[i-1], c)
		}
	}
}
