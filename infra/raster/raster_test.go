package raster

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/dutylog/core/chart"
	"github.com/kilianp07/dutylog/core/model"
)

func drivingChart() *chart.Chart {
	day := model.Day{
		Date: "2024-05-01",
		Events: []model.Event{
			{Kind: model.KindSleep, Start: 0, Duration: 8},
			{Kind: model.KindDrive, Start: 8, Duration: 4},
		},
	}
	return chart.Render(day, chart.Options{})
}

func decode(t *testing.T, b []byte) image.Image {
	t.Helper()
	img, err := png.Decode(bytes.NewReader(b))
	require.NoError(t, err)
	return img
}

func rgba(c color.Color) color.RGBA {
	r, g, b, a := c.RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}

func TestRasterizeSizeFollowsScale(t *testing.T) {
	r, err := New(nil)
	require.NoError(t, err)
	c := drivingChart()

	for _, scale := range []float64{1, 2} {
		page, err := r.Rasterize(context.Background(), c, scale)
		require.NoError(t, err)
		assert.Equal(t, FormatPNG, page.Format)
		assert.Equal(t, int(math.Ceil(chart.Width*scale)), page.Width)
		assert.Equal(t, int(math.Ceil(chart.Height*scale)), page.Height)

		img := decode(t, page.Image)
		assert.Equal(t, page.Width, img.Bounds().Dx())
		assert.Equal(t, page.Height, img.Bounds().Dy())
	}
}

func TestRasterizePaintsDutyLine(t *testing.T) {
	r, err := New(nil)
	require.NoError(t, err)
	const scale = 2.0
	page, err := r.Rasterize(context.Background(), drivingChart(), scale)
	require.NoError(t, err)
	img := decode(t, page.Image)

	x := int(chart.HourX(9.5) * scale)
	y := int(chart.RowY(model.RowDriving) * scale)
	assert.Equal(t, color.RGBA{R: 0xe1, G: 0x1d, B: 0x1d, A: 0xff}, rgba(img.At(x, y)))

	// the sleeper row is empty after 08:00
	y = int(chart.RowY(model.RowSleeperBerth) * scale)
	assert.Equal(t, color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, rgba(img.At(x, y)))
	assert.Equal(t, color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, rgba(img.At(1, 1)))
}

func TestRasterizeReusesCanvas(t *testing.T) {
	r, err := New(nil)
	require.NoError(t, err)
	_, err = r.Rasterize(context.Background(), drivingChart(), 2)
	require.NoError(t, err)
	first := r.canvas
	_, err = r.Rasterize(context.Background(), drivingChart(), 2)
	require.NoError(t, err)
	assert.Same(t, first, r.canvas)
}

func TestRasterizeRejectsBadInput(t *testing.T) {
	r, err := New(nil)
	require.NoError(t, err)

	_, err = r.Rasterize(context.Background(), nil, 2)
	assert.Error(t, err)
	_, err = r.Rasterize(context.Background(), drivingChart(), 0)
	assert.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = r.Rasterize(ctx, drivingChart(), 2)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestParseColor(t *testing.T) {
	c, ok, err := parseColor("#e11d1d")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, color.RGBA{R: 0xe1, G: 0x1d, B: 0x1d, A: 0xff}, c)

	c, ok, err = parseColor("#fff")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, c)

	_, ok, err = parseColor(chart.NoColor)
	require.NoError(t, err)
	assert.False(t, ok)

	_, _, err = parseColor("#zzzzzz")
	assert.Error(t, err)
	_, _, err = parseColor("#1234")
	assert.Error(t, err)
}

func TestRasterizeBlankPageIsFast(t *testing.T) {
	r, err := New(nil)
	require.NoError(t, err)
	c := chart.Render(model.Day{}, chart.Options{})
	require.Len(t, c.Rects, 128)

	start := time.Now()
	_, err = r.Rasterize(context.Background(), c, 2)
	require.NoError(t, err)
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestLineStaysInsideItsBox(t *testing.T) {
	r, err := New(nil)
	require.NoError(t, err)
	dst := image.NewRGBA(image.Rect(0, 0, 100, 100))
	red := color.RGBA{R: 0xff, A: 0xff}
	r.line(dst, 10, 50, 90, 50, 4, red)

	assert.Equal(t, red, dst.RGBAAt(50, 50))
	assert.Equal(t, red, dst.RGBAAt(10, 49))
	assert.Equal(t, color.RGBA{}, dst.RGBAAt(50, 40))
	assert.Equal(t, color.RGBA{}, dst.RGBAAt(95, 50))

	r.line(dst, 200, 200, 300, 200, 2, red)
	assert.Equal(t, color.RGBA{}, dst.RGBAAt(99, 99))
}
