// Package metric provides Prometheus metrics registration and exposition
// for FifoKit.
//
// # Overview
//
// MetricsRegistry wraps a private prometheus.Registry, tracks registered
// collectors by component and metric name to give duplicate registrations a
// classified error instead of a panic, and pre-registers the standard Go
// runtime and process collectors.
//
// Server exposes the registry over plain HTTP with promhttp, together with
// a /health endpoint. The demo harness runs it alongside the workload when
// a metrics port is configured; libraries never start it themselves.
//
// # Usage
//
//	registry := metric.NewMetricsRegistry()
//
//	q, err := fifo.New[fifo.Entry](4,
//	    fifo.WithMetrics[fifo.Entry](registry, "demo"),
//	)
//
//	srv := metric.NewServer(9090, "/metrics", registry)
//	go srv.Start()
//	defer srv.Stop()
//
// # Error Handling
//
// Registration failures are classified: duplicate registrations are Invalid
// (caller bug, do not retry), prometheus-level failures are Fatal. See the
// errors package for the classification scheme.
package metric
