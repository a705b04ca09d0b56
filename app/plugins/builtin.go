package plugins

import (
	"context"
	"fmt"
	"io"

	"github.com/kilianp07/dutylog/core/chart"
	"github.com/kilianp07/dutylog/infra/logger"
	"github.com/kilianp07/dutylog/infra/raster"
	"github.com/kilianp07/dutylog/infra/svg"
)

func init() {
	RegisterEncoder("svg", func(_ context.Context, w io.Writer, c *chart.Chart, _ float64) error {
		return svg.Write(w, c)
	})
	RegisterEncoder("png", func(ctx context.Context, w io.Writer, c *chart.Chart, scale float64) error {
		r, err := raster.New(logger.New("raster"))
		if err != nil {
			return err
		}
		page, err := r.Rasterize(ctx, c, scale)
		if err != nil {
			return err
		}
		if _, err := w.Write(page.Image); err != nil {
			return fmt.Errorf("write png: %w", err)
		}
		return nil
	})
}
