package pdf

import (
	"bytes"
	"image"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/dutylog/core/export"
)

func pngPage(t *testing.T, w, h int) export.Page {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))))
	return export.Page{Image: buf.Bytes(), Format: "PNG", Width: w, Height: h}
}

func TestNewHasOneLandscapePage(t *testing.T) {
	d, err := New(Settings{Orientation: "landscape", Unit: "pt", Size: "A4"})
	require.NoError(t, err)
	assert.Equal(t, 1, d.PageCount())
	w, h := d.PageSize()
	assert.InDelta(t, 841.89, w, 0.01)
	assert.InDelta(t, 595.28, h, 0.01)
}

func TestPortraitDefaults(t *testing.T) {
	d, err := New(Settings{Orientation: "portrait"})
	require.NoError(t, err)
	w, h := d.PageSize()
	assert.Less(t, w, h)
}

func TestPlaceAndWrite(t *testing.T) {
	d, err := Factory(Settings{Title: "Driver logs", Creator: "dutylog"})()
	require.NoError(t, err)
	pw, ph := d.PageSize()

	for i := 0; i < 3; i++ {
		if i > 0 {
			d.AddPage()
		}
		page := pngPage(t, 40, 26)
		require.NoError(t, d.PlaceImage("page-"+string(rune('a'+i)), page, export.Fit(page.Width, page.Height, pw, ph)))
	}
	assert.Equal(t, 3, d.PageCount())

	var buf bytes.Buffer
	require.NoError(t, d.Write(&buf))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}

func TestPlaceImageRejectsGarbage(t *testing.T) {
	d, err := New(Settings{})
	require.NoError(t, err)
	err = d.PlaceImage("bad", export.Page{Image: []byte("nope"), Format: "PNG", Width: 1, Height: 1}, export.Placement{W: 10, H: 10})
	assert.Error(t, err)
}
