package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	coremetrics "github.com/kilianp07/dutylog/core/metrics"
)

// PromSink exposes export runs as Prometheus metrics.
type PromSink struct {
	exports   *prometheus.CounterVec
	duration  prometheus.Histogram
	pages     prometheus.Counter
	rasterize prometheus.Histogram
}

// NewPromSink registers the export metrics on the default registerer.
func NewPromSink() (*PromSink, error) {
	return NewPromSinkWithRegistry(prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers the export metrics on reg. Metrics that
// are already registered are reused. A nil reg selects the default registerer.
func NewPromSinkWithRegistry(reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	exports := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "dutylog_exports_total",
		Help: "Number of export runs by outcome",
	}, []string{"outcome"})
	duration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "dutylog_export_duration_seconds",
		Help:    "Wall time of an export run",
		Buckets: prometheus.DefBuckets,
	})
	pages := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "dutylog_pages_total",
		Help: "Number of pages rasterized and placed",
	})
	rasterize := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "dutylog_page_rasterize_seconds",
		Help:    "Time to rasterize and place one page",
		Buckets: prometheus.DefBuckets,
	})

	var err error
	if exports, err = register(reg, exports); err != nil {
		return nil, err
	}
	if duration, err = register(reg, duration); err != nil {
		return nil, err
	}
	if pages, err = register(reg, pages); err != nil {
		return nil, err
	}
	if rasterize, err = register(reg, rasterize); err != nil {
		return nil, err
	}
	return &PromSink{exports: exports, duration: duration, pages: pages, rasterize: rasterize}, nil
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		are, ok := err.(prometheus.AlreadyRegisteredError)
		if !ok {
			return c, fmt.Errorf("prometheus: %w", err)
		}
		existing, ok := are.ExistingCollector.(C)
		if !ok {
			return c, fmt.Errorf("prometheus: collector registered with another type: %w", err)
		}
		return existing, nil
	}
	return c, nil
}

// RecordExport counts the run and observes its duration.
func (s *PromSink) RecordExport(ev coremetrics.ExportEvent) error {
	s.exports.WithLabelValues(ev.Outcome()).Inc()
	s.duration.Observe(ev.Duration.Seconds())
	return nil
}

// RecordPage counts the page and observes its latency.
func (s *PromSink) RecordPage(ev coremetrics.PageEvent) error {
	s.pages.Inc()
	s.rasterize.Observe(ev.Latency.Seconds())
	return nil
}

// WriteTextfile dumps the default registry in text format, for the node
// exporter textfile collector.
func WriteTextfile(path string) error {
	if path == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, prometheus.DefaultGatherer); err != nil {
		return fmt.Errorf("prometheus textfile %s: %w", path, err)
	}
	return nil
}
