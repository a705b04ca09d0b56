package config

import (
	"fmt"
	"strings"
)

// ExportConfig sets up the PDF export. PageSize is a paper name understood
// by the PDF backend; Upscale is the rasterization factor applied to each
// chart.
type ExportConfig struct {
	PageSize    string  `json:"page_size"`
	Orientation string  `json:"orientation"`
	Unit        string  `json:"unit"`
	Upscale     float64 `json:"upscale"`
	Output      string  `json:"output"`
	Title       string  `json:"title"`
}

// SetDefaults applies the landscape A4 layout.
func (c *ExportConfig) SetDefaults() {
	if c.PageSize == "" {
		c.PageSize = "A4"
	}
	if c.Orientation == "" {
		c.Orientation = "landscape"
	}
	if c.Unit == "" {
		c.Unit = "pt"
	}
	if c.Upscale == 0 {
		c.Upscale = 2
	}
	if c.Output == "" {
		c.Output = "driver_logs.pdf"
	}
	if c.Title == "" {
		c.Title = "Driver's Daily Logs"
	}
}

// Validate checks the configuration ranges.
func (c ExportConfig) Validate() error {
	switch strings.ToLower(c.Orientation) {
	case "landscape", "portrait":
	default:
		return fmt.Errorf("unknown orientation %s", c.Orientation)
	}
	switch strings.ToLower(c.Unit) {
	case "pt", "mm", "cm", "in":
	default:
		return fmt.Errorf("unknown unit %s", c.Unit)
	}
	if c.Upscale <= 0 {
		return fmt.Errorf("upscale must be positive")
	}
	return nil
}
