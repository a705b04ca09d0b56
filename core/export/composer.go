package export

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kilianp07/dutylog/core/chart"
	"github.com/kilianp07/dutylog/core/logger"
	"github.com/kilianp07/dutylog/core/metrics"
	"github.com/kilianp07/dutylog/internal/eventbus"
)

// DefaultScale is the upscaling applied when rasterizing a chart so that the
// text stays legible once printed.
const DefaultScale = 2.0

var errNilChart = errors.New("chart is nil")

// Composer runs one export: rasterize every chart in order and append it to
// a new document.
type Composer struct {
	raster   Rasterizer
	newDoc   DocumentFactory
	scale    float64
	runID    string
	log      logger.Logger
	metrics  metrics.MetricsSink
	progress *eventbus.TypedBus[Progress]
	now      func() time.Time
}

// Option configures a Composer.
type Option func(*Composer)

// WithScale sets the rasterization factor. Non-positive values are ignored.
func WithScale(s float64) Option {
	return func(c *Composer) {
		if s > 0 {
			c.scale = s
		}
	}
}

// WithRunID tags logs, metrics and progress events with id.
func WithRunID(id string) Option { return func(c *Composer) { c.runID = id } }

// WithLogger sets the logger.
func WithLogger(l logger.Logger) Option { return func(c *Composer) { c.log = l } }

// WithMetrics sets the metrics sink.
func WithMetrics(s metrics.MetricsSink) Option { return func(c *Composer) { c.metrics = s } }

// WithProgress publishes a Progress value on bus after each page.
func WithProgress(bus *eventbus.TypedBus[Progress]) Option {
	return func(c *Composer) { c.progress = bus }
}

// NewComposer creates a composer. The rasterizer and document factory are
// required.
func NewComposer(r Rasterizer, f DocumentFactory, opts ...Option) (*Composer, error) {
	if r == nil || f == nil {
		return nil, fmt.Errorf("export: nil rasterizer or document factory provided to NewComposer")
	}
	c := &Composer{
		raster:  r,
		newDoc:  f,
		scale:   DefaultScale,
		log:     logger.Nop{},
		metrics: metrics.NopSink{},
		now:     time.Now,
	}
	for _, o := range opts {
		o(c)
	}
	if c.runID == "" {
		c.runID = uuid.NewString()
	}
	if c.log == nil {
		c.log = logger.Nop{}
	}
	if c.metrics == nil {
		c.metrics = metrics.NopSink{}
	}
	return c, nil
}

// RunID identifies the export run.
func (c *Composer) RunID() string { return c.runID }

// Export writes one page per chart, in order, and returns the finished
// document. Cancelling ctx stops the run before the next page. On any
// failure no document is returned; page failures are *PageError values.
func (c *Composer) Export(ctx context.Context, charts []*chart.Chart) ([]byte, error) {
	start := c.now()
	if len(charts) == 0 {
		return nil, ErrNoPages
	}
	doc, err := c.newDoc()
	if err != nil {
		return nil, c.fail(start, -1, fmt.Errorf("export: open document: %w", err))
	}
	pageW, pageH := doc.PageSize()
	c.log.Infof("export %s: %d pages", c.runID, len(charts))

	for i, ch := range charts {
		if err := ctx.Err(); err != nil {
			return nil, c.fail(start, i, &PageError{Index: i, Err: err})
		}
		if err := c.place(ctx, doc, i, len(charts), ch, pageW, pageH); err != nil {
			return nil, c.fail(start, i, &PageError{Index: i, Err: err})
		}
	}

	var buf bytes.Buffer
	if err := doc.Write(&buf); err != nil {
		return nil, c.fail(start, -1, fmt.Errorf("export: write document: %w", err))
	}
	ev := metrics.ExportEvent{RunID: c.runID, Pages: doc.PageCount(), Duration: c.now().Sub(start), Time: c.now()}
	if err := c.metrics.RecordExport(ev); err != nil {
		c.log.Warnf("export metrics error: %v", err)
	}
	c.log.Infof("export %s: done, %d pages, %d bytes", c.runID, doc.PageCount(), buf.Len())
	return buf.Bytes(), nil
}

// place rasterizes chart i and appends it to doc. The first chart goes on
// the document's initial page.
func (c *Composer) place(ctx context.Context, doc Document, i, total int, ch *chart.Chart, pageW, pageH float64) error {
	if ch == nil {
		return errNilChart
	}
	t0 := c.now()
	page, err := c.raster.Rasterize(ctx, ch, c.scale)
	if err != nil {
		return fmt.Errorf("rasterize: %w", err)
	}
	if page.Width <= 0 || page.Height <= 0 || len(page.Image) == 0 {
		return fmt.Errorf("rasterize: empty image")
	}
	pl := Fit(page.Width, page.Height, pageW, pageH)
	if i > 0 {
		doc.AddPage()
	}
	if err := doc.PlaceImage(fmt.Sprintf("%s-page-%d", c.runID, i), page, pl); err != nil {
		return fmt.Errorf("place image: %w", err)
	}
	latency := c.now().Sub(t0)

	c.log.Debugw("page placed", map[string]any{
		"run_id": c.runID, "index": i, "date": ch.Date,
		"width": page.Width, "height": page.Height, "latency_ms": latency.Milliseconds(),
	})
	if pr, ok := c.metrics.(metrics.PageRecorder); ok {
		ev := metrics.PageEvent{RunID: c.runID, Index: i, Width: page.Width, Height: page.Height, Latency: latency, Time: c.now()}
		if err := pr.RecordPage(ev); err != nil {
			c.log.Warnf("page metrics error: %v", err)
		}
	}
	if c.progress != nil {
		c.progress.Publish(Progress{RunID: c.runID, Index: i, Total: total, Width: page.Width, Height: page.Height})
	}
	return nil
}

func (c *Composer) fail(start time.Time, page int, err error) error {
	c.log.Errorf("export %s failed: %v", c.runID, err)
	ev := metrics.ExportEvent{
		RunID: c.runID, Duration: c.now().Sub(start), Failed: true,
		FailedPage: page, Err: err.Error(), Time: c.now(),
	}
	if merr := c.metrics.RecordExport(ev); merr != nil {
		c.log.Warnf("export metrics error: %v", merr)
	}
	return err
}
