package metrics

import (
	"errors"
	"testing"
)

type recordSink struct {
	exports int
	pages   int
	err     error
}

func (r *recordSink) RecordExport(ExportEvent) error {
	r.exports++
	return r.err
}

func (r *recordSink) RecordPage(PageEvent) error {
	r.pages++
	return r.err
}

type exportOnly struct{ n int }

func (e *exportOnly) RecordExport(ExportEvent) error { e.n++; return nil }

func TestMultiSink(t *testing.T) {
	s1 := &recordSink{}
	s2 := &exportOnly{}
	m := NewMultiSink(s1, s2)
	if err := m.RecordExport(ExportEvent{Pages: 2}); err != nil {
		t.Fatalf("record export: %v", err)
	}
	if err := m.RecordPage(PageEvent{Index: 1}); err != nil {
		t.Fatalf("record page: %v", err)
	}
	if s1.exports != 1 || s1.pages != 1 || s2.n != 1 {
		t.Fatalf("events not forwarded: %+v %+v", s1, s2)
	}
}

func TestMultiSinkStopsOnError(t *testing.T) {
	failing := &recordSink{err: errors.New("boom")}
	after := &recordSink{}
	m := NewMultiSink(failing, after)
	if err := m.RecordExport(ExportEvent{}); err == nil {
		t.Fatal("expected error")
	}
	if after.exports != 0 {
		t.Fatal("sink after failure should not be called")
	}
}

func TestExportOutcome(t *testing.T) {
	if (ExportEvent{}).Outcome() != "success" || (ExportEvent{Failed: true}).Outcome() != "failure" {
		t.Fatal("unexpected outcome labels")
	}
}
