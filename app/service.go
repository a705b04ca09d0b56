package app

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/kilianp07/dutylog/app/plugins"
	"github.com/kilianp07/dutylog/config"
	"github.com/kilianp07/dutylog/core/chart"
	"github.com/kilianp07/dutylog/core/export"
	coremetrics "github.com/kilianp07/dutylog/core/metrics"
	"github.com/kilianp07/dutylog/core/model"
	"github.com/kilianp07/dutylog/core/pager"
	"github.com/kilianp07/dutylog/core/routemap"
	"github.com/kilianp07/dutylog/infra/logger"
	"github.com/kilianp07/dutylog/infra/metrics"
	"github.com/kilianp07/dutylog/infra/pdf"
	"github.com/kilianp07/dutylog/infra/raster"
	"github.com/kilianp07/dutylog/internal/eventbus"
)

// Session holds one planned trip: its rendered days, the pager over them
// and the map markers. A new plan means a new Session.
type Session struct {
	Trip    model.Trip
	Charts  []*chart.Chart
	Pager   pager.Pager
	Markers []routemap.Marker

	cfg  *config.Config
	sink coremetrics.MetricsSink
	log  logger.Logger

	// test hooks
	newRaster func() (export.Rasterizer, error)
	newDoc    export.DocumentFactory
}

// New renders every day of trip once.
func New(cfg *config.Config, trip model.Trip) (*Session, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	sink, err := coremetrics.NewMetricsSink(cfg.Metrics.Sinks)
	if err != nil {
		return nil, fmt.Errorf("metrics sink: %w", err)
	}
	opts := chart.Options{Placeholder: cfg.Render.Placeholder}
	charts := make([]*chart.Chart, len(trip.Days))
	for i, d := range trip.Days {
		charts[i] = chart.Render(d, opts)
	}
	s := &Session{
		Trip:    trip,
		Charts:  charts,
		Pager:   pager.New(charts),
		Markers: routemap.Markers(trip),
		cfg:     cfg,
		sink:    sink,
		log:     logger.New("session"),
	}
	s.newRaster = func() (export.Rasterizer, error) { return raster.New(logger.New("raster")) }
	s.newDoc = pdf.Factory(pdf.Settings{
		Orientation: cfg.Export.Orientation,
		Unit:        cfg.Export.Unit,
		Size:        cfg.Export.PageSize,
		Title:       cfg.Export.Title,
		Creator:     "dutylog",
	})
	s.log.Infof("session: %d days, %d route points, %d markers", len(charts), len(trip.Route), len(s.Markers))
	return s, nil
}

// Summary is the one line trip summary.
func (s *Session) Summary() string {
	return fmt.Sprintf("Distance: %.1f mi, Duration: %.1f h, Days: %d",
		s.Trip.DistanceMiles, s.Trip.DurationHours, len(s.Trip.Days))
}

// Export writes every day as one page of a PDF to w and returns the run id.
// Nothing is written to w unless the whole document succeeded. progress
// may be nil.
func (s *Session) Export(ctx context.Context, w io.Writer, progress *eventbus.TypedBus[export.Progress]) (string, error) {
	runID := uuid.NewString()
	r, err := s.newRaster()
	if err != nil {
		return runID, err
	}
	opts := []export.Option{
		export.WithScale(s.cfg.Export.Upscale),
		export.WithRunID(runID),
		export.WithLogger(logger.New("export")),
		export.WithMetrics(s.sink),
	}
	if progress != nil {
		opts = append(opts, export.WithProgress(progress))
	}
	composer, err := export.NewComposer(r, s.newDoc, opts...)
	if err != nil {
		return runID, err
	}
	doc, err := composer.Export(ctx, s.Charts)
	if err != nil {
		return runID, err
	}
	if _, err := w.Write(doc); err != nil {
		return runID, fmt.Errorf("write document: %w", err)
	}
	if err := metrics.WriteTextfile(s.cfg.Metrics.Textfile); err != nil {
		s.log.Warnf("metrics textfile: %v", err)
	}
	return runID, nil
}

// Render writes day i in format (svg or png).
func (s *Session) Render(ctx context.Context, w io.Writer, i int, format string) error {
	if i < 0 || i >= len(s.Charts) {
		return fmt.Errorf("day %d out of range (trip has %d days)", i+1, len(s.Charts))
	}
	return plugins.Encode(ctx, format, w, s.Charts[i], s.cfg.Export.Upscale)
}

// Close releases the metrics sinks.
func (s *Session) Close() error {
	closeSink(s.sink)
	return nil
}

func closeSink(s coremetrics.MetricsSink) {
	switch v := s.(type) {
	case *coremetrics.MultiSink:
		for _, inner := range v.Sinks {
			closeSink(inner)
		}
	case interface{ Close() }:
		v.Close()
	}
}
