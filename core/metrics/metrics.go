package metrics

import "time"

// ExportEvent summarises one export run.
type ExportEvent struct {
	RunID      string
	Pages      int
	Duration   time.Duration
	Failed     bool
	FailedPage int
	Err        string
	Time       time.Time
}

// Outcome returns "success" or "failure".
func (e ExportEvent) Outcome() string {
	if e.Failed {
		return "failure"
	}
	return "success"
}

// PageEvent describes one rasterized page.
type PageEvent struct {
	RunID   string
	Index   int
	Width   int
	Height  int
	Latency time.Duration
	Time    time.Time
}

// MetricsSink records export runs.
type MetricsSink interface {
	RecordExport(ev ExportEvent) error
}

// PageRecorder is implemented by sinks able to record per-page events.
type PageRecorder interface {
	RecordPage(ev PageEvent) error
}

// NopSink drops every event.
type NopSink struct{}

func (NopSink) RecordExport(ExportEvent) error { return nil }
func (NopSink) RecordPage(PageEvent) error     { return nil }
