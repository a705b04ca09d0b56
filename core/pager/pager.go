// Package pager navigates the rendered days of a trip. A Pager is a value:
// navigation returns a new Pager and never mutates the receiver, so a view
// can hold a snapshot while the export pipeline reads every day.
package pager

import "github.com/kilianp07/dutylog/core/chart"

// Pager holds every rendered day of a trip and the index of the visible one.
type Pager struct {
	charts []*chart.Chart
	index  int
}

// New returns a pager positioned on the first day.
func New(charts []*chart.Chart) Pager {
	cp := make([]*chart.Chart, len(charts))
	copy(cp, charts)
	return Pager{charts: cp}
}

// At returns a pager positioned on index i, clamped to the available days.
func (p Pager) At(i int) Pager {
	p.index = clamp(i, len(p.charts))
	return p
}

// Next moves to the following day. It is a no-op on the last day.
func (p Pager) Next() Pager {
	if p.HasNext() {
		p.index++
	}
	return p
}

// Prev moves to the previous day. It is a no-op on the first day.
func (p Pager) Prev() Pager {
	if p.HasPrev() {
		p.index--
	}
	return p
}

// HasNext reports whether Next would move.
func (p Pager) HasNext() bool { return p.index < len(p.charts)-1 }

// HasPrev reports whether Prev would move.
func (p Pager) HasPrev() bool { return p.index > 0 }

// Current returns the visible day, or nil when there is none.
func (p Pager) Current() *chart.Chart {
	if len(p.charts) == 0 {
		return nil
	}
	return p.charts[p.index]
}

// Index returns the zero-based position of the visible day.
func (p Pager) Index() int { return p.index }

// Len returns the number of days.
func (p Pager) Len() int { return len(p.charts) }

// All returns every day in order, visible or not.
func (p Pager) All() []*chart.Chart {
	cp := make([]*chart.Chart, len(p.charts))
	copy(cp, p.charts)
	return cp
}

func clamp(i, n int) int {
	if n == 0 || i < 0 {
		return 0
	}
	if i > n-1 {
		return n - 1
	}
	return i
}
