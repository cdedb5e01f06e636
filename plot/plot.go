package plot

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/AvraamMavridis/randomcolor"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/hupe1980/kmeans"
	"github.com/hupe1980/kmeans/dataset"
)

// ErrLabelCount is returned when a result does not label every record.
var ErrLabelCount = errors.New("plot: result labels do not match dataset")

// Scatter renders records and centroids as an HTML scatter chart to w.
func Scatter(w io.Writer, ds *dataset.Dataset, res *kmeans.Result) error {
	if ds.Len() != len(res.Labels) {
		return ErrLabelCount
	}

	es := charts.NewScatter()
	es.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Clustering - Scatter Plot"}),
		charts.WithLegendOpts(opts.Legend{
			Show: true,
			Top:  "5%",
		}),
		charts.WithToolboxOpts(opts.Toolbox{
			Show: true,
			Feature: &opts.ToolBoxFeature{
				SaveAsImage: &opts.ToolBoxFeatureSaveAsImage{
					Show:  true,
					Type:  "png",
					Title: "kmeans_scatter",
				},
			},
		}),
		charts.WithDataZoomOpts(
			opts.DataZoom{Type: "slider", XAxisIndex: 0},
			opts.DataZoom{Type: "slider", YAxisIndex: 0},
			opts.DataZoom{Type: "inside", XAxisIndex: 0},
			opts.DataZoom{Type: "inside", YAxisIndex: 0},
		),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:      true,
			Formatter: "{a}: {b}",
		}),
	)

	series := make([][]opts.ScatterData, res.K())
	for i, l := range res.Labels {
		label := strconv.Itoa(i)
		if ds.HasTags() {
			label += " " + ds.Tag(i)
		}
		series[l] = append(series[l], opts.ScatterData{
			Name:  label,
			Value: Project(ds.Row(i), 2),
		})
	}

	colors := Palette(res.K())
	for c, data := range series {
		es.AddSeries(fmt.Sprintf("Cluster %d", c), data,
			charts.WithItemStyleOpts(opts.ItemStyle{Color: colors[c]}))
	}

	centroids := make([]opts.ScatterData, 0, res.K())
	for c, v := range res.Centroids {
		centroids = append(centroids, opts.ScatterData{
			Name:  strconv.Itoa(c),
			Value: Project(v, 2),
		})
	}
	es.AddSeries("Centroids", centroids, charts.WithItemStyleOpts(opts.ItemStyle{Color: "black"}))

	return es.Render(w)
}

// Sizes renders the number of records per cluster as an HTML bar chart to w.
func Sizes(w io.Writer, res *kmeans.Result) error {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Clustering - Cluster Sizes"}),
		charts.WithToolboxOpts(opts.Toolbox{
			Show:  true,
			Right: "20%",
			Feature: &opts.ToolBoxFeature{
				SaveAsImage: &opts.ToolBoxFeatureSaveAsImage{
					Show:  true,
					Type:  "png",
					Title: "kmeans_sizes",
				},
				DataView: &opts.ToolBoxFeatureDataView{
					Show:  true,
					Title: "Data",
					Lang:  []string{"View", "Close", "Refresh"},
				},
			},
		}),
	)

	sizes := res.Sizes()
	xAxis := make([]string, len(sizes))
	items := make([]opts.BarData, len(sizes))
	for c, n := range sizes {
		xAxis[c] = strconv.Itoa(c)
		items[c] = opts.BarData{Name: xAxis[c], Value: n}
	}

	bar.SetXAxis(xAxis).AddSeries("records", items).SetSeriesOptions(
		charts.WithLabelOpts(opts.Label{
			Show:     true,
			Position: "top",
		}),
	)

	return bar.Render(w)
}

// Palette returns n random hex colors, no two consecutive ones equal.
func Palette(n int) []string {
	colors := make([]string, n)
	prev := ""
	for i := range colors {
		c := randomcolor.GetRandomColorInHex()
		for c == prev {
			c = randomcolor.GetRandomColorInHex()
		}
		colors[i] = c
		prev = c
	}
	return colors
}

// Project reduces v to dim components by averaging consecutive, near-equal
// column groups. Vectors with at most dim components are padded with zeros.
func Project(v []float64, dim int) []float64 {
	res := make([]float64, dim)
	if len(v) <= dim {
		copy(res, v)
		return res
	}

	start := 0
	for i := range res {
		end := ((i + 1) * len(v)) / dim
		for _, x := range v[start:end] {
			res[i] += x
		}
		res[i] /= float64(end - start)
		start = end
	}
	return res
}
