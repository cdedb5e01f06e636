// Package promcollector exports kmeans run metrics to Prometheus.
//
//	reg := prometheus.NewRegistry()
//	col, _ := promcollector.New(reg)
//	c, _ := kmeans.New(3, kmeans.WithMetricsCollector(col))
package promcollector
