package plugins

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/kilianp07/dutylog/core/chart"
)

// Encoder writes a single chart in one output format. scale only matters
// to raster formats.
type Encoder func(ctx context.Context, w io.Writer, c *chart.Chart, scale float64) error

var Encoders = map[string]Encoder{}

func RegisterEncoder(name string, e Encoder) { Encoders[strings.ToLower(name)] = e }

// Formats lists the registered encoder names.
func Formats() []string {
	names := make([]string, 0, len(Encoders))
	for n := range Encoders {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Encode writes c with the encoder registered as format.
func Encode(ctx context.Context, format string, w io.Writer, c *chart.Chart, scale float64) error {
	e, ok := Encoders[strings.ToLower(format)]
	if !ok {
		return fmt.Errorf("unknown format %q (have %s)", format, strings.Join(Formats(), ", "))
	}
	return e(ctx, w, c, scale)
}
