// Package raster paints charts into PNG images.
package raster

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/kilianp07/dutylog/core/chart"
	"github.com/kilianp07/dutylog/core/export"
	"github.com/kilianp07/dutylog/infra/logger"
)

// FormatPNG is the format tag of the pages produced here.
const FormatPNG = "PNG"

type faceKey struct {
	size float64
	bold bool
}

// Rasterizer paints onto a single reusable canvas. It is not safe for
// concurrent use.
type Rasterizer struct {
	canvas  *image.RGBA
	path    *vector.Rasterizer
	regular *opentype.Font
	bold    *opentype.Font
	faces   map[faceKey]font.Face
	log     logger.Logger
}

var _ export.Rasterizer = (*Rasterizer)(nil)

// New parses the embedded Go fonts.
func New(log logger.Logger) (*Rasterizer, error) {
	if log == nil {
		log = logger.NopLogger{}
	}
	reg, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("raster: regular font: %w", err)
	}
	bold, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("raster: bold font: %w", err)
	}
	return &Rasterizer{regular: reg, bold: bold, faces: make(map[faceKey]font.Face), log: log}, nil
}

// Rasterize paints c at scale device pixels per logical unit and encodes
// the result as PNG.
func (r *Rasterizer) Rasterize(ctx context.Context, c *chart.Chart, scale float64) (export.Page, error) {
	if c == nil {
		return export.Page{}, errors.New("raster: nil chart")
	}
	if scale <= 0 || math.IsNaN(scale) || math.IsInf(scale, 0) {
		return export.Page{}, fmt.Errorf("raster: invalid scale %v", scale)
	}
	if err := ctx.Err(); err != nil {
		return export.Page{}, err
	}
	w := int(math.Ceil(c.Width * scale))
	h := int(math.Ceil(c.Height * scale))
	if w <= 0 || h <= 0 {
		return export.Page{}, fmt.Errorf("raster: empty chart %vx%v", c.Width, c.Height)
	}
	dst := r.surface(w, h)
	draw.Draw(dst, dst.Bounds(), image.White, image.Point{}, draw.Src)

	for _, rc := range c.Rects {
		if err := r.rect(dst, rc, scale); err != nil {
			return export.Page{}, err
		}
	}
	if err := ctx.Err(); err != nil {
		return export.Page{}, err
	}
	for _, ln := range c.Lines {
		col, ok, err := parseColor(ln.Stroke)
		if err != nil {
			return export.Page{}, err
		}
		if ok {
			r.line(dst, ln.X1*scale, ln.Y1*scale, ln.X2*scale, ln.Y2*scale, ln.Width*scale, col)
		}
	}
	if err := ctx.Err(); err != nil {
		return export.Page{}, err
	}
	for _, t := range c.Texts {
		if err := r.text(dst, t, scale); err != nil {
			return export.Page{}, err
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return export.Page{}, fmt.Errorf("raster: encode: %w", err)
	}
	r.log.Debugw("chart rasterized", map[string]any{"date": c.Date, "width": w, "height": h})
	return export.Page{Image: buf.Bytes(), Format: FormatPNG, Width: w, Height: h}, nil
}

func (r *Rasterizer) surface(w, h int) *image.RGBA {
	if r.canvas == nil || r.canvas.Bounds().Dx() != w || r.canvas.Bounds().Dy() != h {
		r.canvas = image.NewRGBA(image.Rect(0, 0, w, h))
	}
	return r.canvas
}

func (r *Rasterizer) rect(dst *image.RGBA, rc chart.Rect, scale float64) error {
	fill, ok, err := parseColor(rc.Fill)
	if err != nil {
		return err
	}
	x0, y0 := rc.X*scale, rc.Y*scale
	x1, y1 := (rc.X+rc.W)*scale, (rc.Y+rc.H)*scale
	if ok {
		area := image.Rect(int(math.Round(x0)), int(math.Round(y0)), int(math.Round(x1)), int(math.Round(y1)))
		draw.Draw(dst, area, image.NewUniform(fill), image.Point{}, draw.Over)
	}
	stroke, ok, err := parseColor(rc.Stroke)
	if err != nil || !ok {
		return err
	}
	width := chart.GridStroke * scale
	r.line(dst, x0, y0, x1, y0, width, stroke)
	r.line(dst, x1, y0, x1, y1, width, stroke)
	r.line(dst, x1, y1, x0, y1, width, stroke)
	r.line(dst, x0, y1, x0, y0, width, stroke)
	return nil
}

// line fills the quad around the segment, so the stroke is centred on it.
// Only the stroke's bounding box is rasterized.
func (r *Rasterizer) line(dst *image.RGBA, x1, y1, x2, y2, width float64, col color.Color) {
	if width <= 0 {
		width = 1
	}
	dx, dy := x2-x1, y2-y1
	length := math.Hypot(dx, dy)
	half := width / 2
	var nx, ny, ex, ey float64
	if length == 0 {
		ex, ny = half, half
	} else {
		nx, ny = -dy/length*half, dx/length*half
		// extend along the segment so corners of rectangles close
		ex, ey = dx/length*half, dy/length*half
	}
	xs := [4]float64{x1 - ex + nx, x2 + ex + nx, x2 + ex - nx, x1 - ex - nx}
	ys := [4]float64{y1 - ey + ny, y2 + ey + ny, y2 + ey - ny, y1 - ey - ny}

	minX, maxX, minY, maxY := xs[0], xs[0], ys[0], ys[0]
	for i := 1; i < 4; i++ {
		minX, maxX = math.Min(minX, xs[i]), math.Max(maxX, xs[i])
		minY, maxY = math.Min(minY, ys[i]), math.Max(maxY, ys[i])
	}
	box := image.Rect(int(math.Floor(minX)), int(math.Floor(minY)), int(math.Ceil(maxX)), int(math.Ceil(maxY)))
	box = box.Intersect(dst.Bounds())
	if box.Empty() {
		return
	}

	ox, oy := float64(box.Min.X), float64(box.Min.Y)
	if r.path == nil {
		r.path = vector.NewRasterizer(box.Dx(), box.Dy())
	} else {
		r.path.Reset(box.Dx(), box.Dy())
	}
	r.path.DrawOp = draw.Over
	r.path.MoveTo(f32(xs[0]-ox), f32(ys[0]-oy))
	for i := 1; i < 4; i++ {
		r.path.LineTo(f32(xs[i]-ox), f32(ys[i]-oy))
	}
	r.path.ClosePath()
	r.path.Draw(dst, box, image.NewUniform(col), image.Point{})
}

func (r *Rasterizer) text(dst *image.RGBA, t chart.Text, scale float64) error {
	if t.Value == "" {
		return nil
	}
	col, ok, err := parseColor(t.Fill)
	if err != nil || !ok {
		return err
	}
	face := r.face(t.Size*scale, t.Bold)
	x := t.X * scale
	switch t.Anchor {
	case chart.AnchorMiddle:
		x -= float64(font.MeasureString(face, t.Value)) / 64 / 2
	case chart.AnchorEnd:
		x -= float64(font.MeasureString(face, t.Value)) / 64
	}
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.Int26_6(x * 64), Y: fixed.Int26_6(t.Y * scale * 64)},
	}
	d.DrawString(t.Value)
	return nil
}

func (r *Rasterizer) face(size float64, bold bool) font.Face {
	key := faceKey{size: size, bold: bold}
	if f, ok := r.faces[key]; ok {
		return f
	}
	src := r.regular
	if bold {
		src = r.bold
	}
	f, err := opentype.NewFace(src, &opentype.FaceOptions{Size: size, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		r.log.Warnf("raster: face %.1f: %v, using basic font", size, err)
		return basicfont.Face7x13
	}
	r.faces[key] = f
	return f
}

func f32(v float64) float32 { return float32(v) }

// parseColor reads "#rgb" or "#rrggbb". ok is false for chart.NoColor.
func parseColor(c chart.Color) (color.RGBA, bool, error) {
	s := strings.TrimPrefix(strings.TrimSpace(string(c)), "#")
	if s == "" {
		return color.RGBA{}, false, nil
	}
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return color.RGBA{}, false, fmt.Errorf("raster: bad colour %q", string(c))
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, false, fmt.Errorf("raster: bad colour %q", string(c))
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, true, nil
}
