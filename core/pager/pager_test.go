package pager

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/dutylog/core/chart"
	"github.com/kilianp07/dutylog/core/model"
)

func days(dates ...string) []*chart.Chart {
	out := make([]*chart.Chart, 0, len(dates))
	for _, d := range dates {
		out = append(out, chart.Render(model.Day{Date: d}, chart.Options{}))
	}
	return out
}

func TestPagerBoundaries(t *testing.T) {
	p := New(days("d1", "d2", "d3"))
	assert.Equal(t, 0, p.Prev().Index())
	assert.False(t, p.HasPrev())

	last := p.Next().Next()
	assert.Equal(t, 2, last.Index())
	assert.Equal(t, 2, last.Next().Index())
	assert.False(t, last.HasNext())
	assert.Equal(t, "d3", last.Current().Date)
	assert.Equal(t, "d2", last.Prev().Current().Date)
}

func TestPagerIsValue(t *testing.T) {
	p := New(days("d1", "d2"))
	n := p.Next()
	assert.Equal(t, 0, p.Index())
	assert.Equal(t, 1, n.Index())
}

func TestPagerKeepsEveryDay(t *testing.T) {
	src := days("d1", "d2", "d3")
	p := New(src).Next()
	all := p.All()
	require.Len(t, all, 3)
	for i := range src {
		assert.Same(t, src[i], all[i])
	}
	all[0] = nil
	assert.NotNil(t, p.All()[0])
}

func TestPagerAtClamps(t *testing.T) {
	p := New(days("d1", "d2", "d3"))
	assert.Equal(t, 2, p.At(10).Index())
	assert.Equal(t, 0, p.At(-4).Index())
	assert.Equal(t, 1, p.At(1).Index())
}

func TestPagerEmpty(t *testing.T) {
	p := New(nil)
	assert.Nil(t, p.Current())
	assert.Equal(t, 0, p.Next().Index())
	assert.Equal(t, 0, p.Prev().Index())
	assert.Equal(t, 0, p.Len())
}
