package fifo

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/c360/fifokit/metric"
)

// fifoMetrics holds Prometheus metrics for queue operations.
type fifoMetrics struct {
	puts            prometheus.Counter
	gets            prometheus.Counter
	fullRejections  prometheus.Counter
	emptyRejections prometheus.Counter

	size        prometheus.Gauge
	utilization prometheus.Gauge
}

// newFifoMetrics creates and registers queue metrics with the provided registry.
func newFifoMetrics(registry *metric.MetricsRegistry, prefix string) (*fifoMetrics, error) {
	m := &fifoMetrics{
		puts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "fifokit",
			Subsystem:   "fifo",
			Name:        "puts_total",
			ConstLabels: prometheus.Labels{"component": prefix},
			Help:        "Total number of successful put operations",
		}),
		gets: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "fifokit",
			Subsystem:   "fifo",
			Name:        "gets_total",
			ConstLabels: prometheus.Labels{"component": prefix},
			Help:        "Total number of successful get operations",
		}),
		fullRejections: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "fifokit",
			Subsystem:   "fifo",
			Name:        "full_rejections_total",
			ConstLabels: prometheus.Labels{"component": prefix},
			Help:        "Total number of puts rejected because the queue was full",
		}),
		emptyRejections: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "fifokit",
			Subsystem:   "fifo",
			Name:        "empty_rejections_total",
			ConstLabels: prometheus.Labels{"component": prefix},
			Help:        "Total number of gets rejected because the queue was empty",
		}),
		size: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   "fifokit",
			Subsystem:   "fifo",
			Name:        "size",
			ConstLabels: prometheus.Labels{"component": prefix},
			Help:        "Current number of entries in the queue",
		}),
		utilization: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   "fifokit",
			Subsystem:   "fifo",
			Name:        "utilization",
			ConstLabels: prometheus.Labels{"component": prefix},
			Help:        "Queue utilization as a percentage (0.0 to 1.0)",
		}),
	}

	// Register all metrics with the registry
	if err := registry.RegisterCounter(prefix, "fifo_puts", m.puts); err != nil {
		return nil, err
	}
	if err := registry.RegisterCounter(prefix, "fifo_gets", m.gets); err != nil {
		return nil, err
	}
	if err := registry.RegisterCounter(prefix, "fifo_full_rejections", m.fullRejections); err != nil {
		return nil, err
	}
	if err := registry.RegisterCounter(prefix, "fifo_empty_rejections", m.emptyRejections); err != nil {
		return nil, err
	}
	if err := registry.RegisterGauge(prefix, "fifo_size", m.size); err != nil {
		return nil, err
	}
	if err := registry.RegisterGauge(prefix, "fifo_utilization", m.utilization); err != nil {
		return nil, err
	}

	return m, nil
}

// recordPut increments the put counter and updates size/utilization.
func (m *fifoMetrics) recordPut(size, capacity int) {
	m.puts.Inc()
	m.size.Set(float64(size))
	m.utilization.Set(float64(size) / float64(capacity))
}

// recordGet increments the get counter and updates size/utilization.
func (m *fifoMetrics) recordGet(size, capacity int) {
	m.gets.Inc()
	m.size.Set(float64(size))
	m.utilization.Set(float64(size) / float64(capacity))
}

// recordFullRejection increments the full-rejection counter.
func (m *fifoMetrics) recordFullRejection() {
	m.fullRejections.Inc()
}

// recordEmptyRejection increments the empty-rejection counter.
func (m *fifoMetrics) recordEmptyRejection() {
	m.emptyRejections.Inc()
}
