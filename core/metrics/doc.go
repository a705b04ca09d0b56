// Package metrics defines the sinks that observe export runs. A sink must
// implement RecordExport; sinks that also implement PageRecorder receive
// one event per rasterized page. Sinks are built from configuration with
// NewMetricsSink and combined with NewMultiSink.
package metrics
