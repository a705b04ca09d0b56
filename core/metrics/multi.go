package metrics

// MultiSink fans events out to several sinks.
type MultiSink struct {
	Sinks []MetricsSink
}

// NewMultiSink combines sinks.
func NewMultiSink(sinks ...MetricsSink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

// RecordExport forwards to every sink and returns the first error.
func (m *MultiSink) RecordExport(ev ExportEvent) error {
	for _, s := range m.Sinks {
		if err := s.RecordExport(ev); err != nil {
			return err
		}
	}
	return nil
}

// RecordPage forwards to the sinks that record pages.
func (m *MultiSink) RecordPage(ev PageEvent) error {
	for _, s := range m.Sinks {
		if pr, ok := s.(PageRecorder); ok {
			if err := pr.RecordPage(ev); err != nil {
				return err
			}
		}
	}
	return nil
}
