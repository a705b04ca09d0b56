package export

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/kilianp07/dutylog/core/chart"
)

// Page is a rasterized chart. It only lives until it is placed.
type Page struct {
	Image  []byte
	Format string
	Width  int
	Height int
}

// Rasterizer turns a chart into an image. Calls may block and must not
// overlap; implementations usually reuse one drawing surface.
type Rasterizer interface {
	Rasterize(ctx context.Context, c *chart.Chart, scale float64) (Page, error)
}

// Placement is where an image lands on a page, in document units.
type Placement struct {
	X, Y, W, H float64
}

// Document is the paginated output. A new document already holds its
// first page.
type Document interface {
	PageSize() (w, h float64)
	AddPage()
	PlaceImage(name string, p Page, pl Placement) error
	PageCount() int
	Write(w io.Writer) error
}

// DocumentFactory opens a fresh document for one export run.
type DocumentFactory func() (Document, error)

// PageError reports the page on which an export stopped.
type PageError struct {
	Index int
	Err   error
}

func (e *PageError) Error() string {
	return fmt.Sprintf("export: page %d: %v", e.Index, e.Err)
}

func (e *PageError) Unwrap() error { return e.Err }

// ErrNoPages is returned when there is nothing to export.
var ErrNoPages = errors.New("export: no pages to export")

// Progress is published after each placed page.
type Progress struct {
	RunID  string
	Index  int
	Total  int
	Width  int
	Height int
}

// Fit scales a srcW x srcH image to the full page width, keeping its aspect
// ratio. Shorter images are centred vertically, taller ones start at the top.
func Fit(srcW, srcH int, pageW, pageH float64) Placement {
	if srcW <= 0 || srcH <= 0 {
		return Placement{W: pageW}
	}
	h := float64(srcH) * pageW / float64(srcW)
	y := 0.0
	if h < pageH {
		y = (pageH - h) / 2
	}
	return Placement{X: 0, Y: y, W: pageW, H: h}
}
