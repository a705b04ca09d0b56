package app

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/dutylog/config"
	"github.com/kilianp07/dutylog/core/chart"
	"github.com/kilianp07/dutylog/core/export"
	"github.com/kilianp07/dutylog/core/factory"
	"github.com/kilianp07/dutylog/core/model"
	"github.com/kilianp07/dutylog/internal/eventbus"
)

func threeDayTrip() model.Trip {
	day := func(date string, start float64) model.Day {
		return model.Day{Date: date, Events: []model.Event{
			{Kind: model.KindDrive, Start: start, Duration: 10, Distance: 500},
			{Kind: model.KindSleep, Start: start + 10, Duration: 10, Location: "Reno"},
		}}
	}
	return model.Trip{
		Route:         model.Route{{Lon: -120.2, Lat: 38.5}, {Lon: -120.95, Lat: 40.7}},
		Days:          []model.Day{day("d1", 0), day("d2", 24), day("d3", 48)},
		DistanceMiles: 1500,
		DurationHours: 68,
	}
}

func TestSessionRendersEveryDay(t *testing.T) {
	s, err := New(nil, threeDayTrip())
	require.NoError(t, err)
	defer s.Close()

	assert.Len(t, s.Charts, 3)
	assert.Equal(t, 3, s.Pager.Len())
	assert.Equal(t, "d1", s.Pager.Current().Date)
	assert.Equal(t, "d2", s.Pager.Next().Current().Date)
	require.Len(t, s.Markers, 4)
	assert.Equal(t, "sleep @ Reno", s.Markers[1].Label)
	assert.Equal(t, "Distance: 1500.0 mi, Duration: 68.0 h, Days: 3", s.Summary())
}

func TestSessionExportWritesPDF(t *testing.T) {
	s, err := New(config.Default(), threeDayTrip())
	require.NoError(t, err)

	pages := 0
	base := s.newDoc
	s.newDoc = func() (export.Document, error) {
		d, err := base()
		if err != nil {
			return nil, err
		}
		return &pageCounter{Document: d, pages: &pages}, nil
	}
	bus := eventbus.NewTyped[export.Progress](4)
	sub := bus.Subscribe()

	var out bytes.Buffer
	runID, err := s.Export(context.Background(), &out, bus)
	require.NoError(t, err)
	assert.NotEmpty(t, runID)
	assert.True(t, bytes.HasPrefix(out.Bytes(), []byte("%PDF")))
	assert.Equal(t, 3, pages)

	for i := 0; i < 3; i++ {
		p := <-sub
		assert.Equal(t, i, p.Index)
		assert.Equal(t, runID, p.RunID)
	}
}

type pageCounter struct {
	export.Document
	pages *int
}

func (p *pageCounter) AddPage() {
	p.Document.AddPage()
	*p.pages = p.Document.PageCount()
}

func (p *pageCounter) PlaceImage(name string, pg export.Page, pl export.Placement) error {
	*p.pages = p.Document.PageCount()
	return p.Document.PlaceImage(name, pg, pl)
}

type failingRaster struct{ at, calls int }

func (f *failingRaster) Rasterize(_ context.Context, c *chart.Chart, _ float64) (export.Page, error) {
	defer func() { f.calls++ }()
	if f.calls == f.at {
		return export.Page{}, errors.New("capture failed")
	}
	return export.Page{Image: []byte{1}, Format: "PNG", Width: 10, Height: 5}, nil
}

func TestSessionExportFailureWritesNothing(t *testing.T) {
	s, err := New(nil, threeDayTrip())
	require.NoError(t, err)
	s.newRaster = func() (export.Rasterizer, error) { return &failingRaster{at: 1}, nil }
	s.newDoc = func() (export.Document, error) { return &nopDoc{}, nil }

	var out bytes.Buffer
	_, err = s.Export(context.Background(), &out, nil)
	var pe *export.PageError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 1, pe.Index)
	assert.Zero(t, out.Len())
}

type nopDoc struct{ pages int }

func (d *nopDoc) PageSize() (float64, float64) { return 100, 100 }
func (d *nopDoc) AddPage()                     { d.pages++ }
func (d *nopDoc) PlaceImage(string, export.Page, export.Placement) error {
	return nil
}
func (d *nopDoc) PageCount() int { return d.pages + 1 }
func (d *nopDoc) Write(w io.Writer) error {
	_, err := w.Write([]byte("doc"))
	return err
}

func TestSessionRender(t *testing.T) {
	s, err := New(nil, threeDayTrip())
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, s.Render(context.Background(), &out, 2, "svg"))
	assert.Contains(t, out.String(), "Date: d3")

	assert.Error(t, s.Render(context.Background(), &out, 3, "svg"))
	assert.Error(t, s.Render(context.Background(), &out, 0, "bmp"))
}

func TestSessionEmptyTrip(t *testing.T) {
	s, err := New(nil, model.Trip{})
	require.NoError(t, err)
	assert.Nil(t, s.Pager.Current())
	assert.Nil(t, s.Markers)
	_, err = s.Export(context.Background(), &bytes.Buffer{}, nil)
	assert.ErrorIs(t, err, export.ErrNoPages)
}

func TestNewRejectsUnknownSink(t *testing.T) {
	cfg := config.Default()
	cfg.Metrics.Sinks = append(cfg.Metrics.Sinks, factory.ModuleConfig{Type: "carrier-pigeon"})
	_, err := New(cfg, threeDayTrip())
	assert.Error(t, err)
}
