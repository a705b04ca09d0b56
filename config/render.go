package config

import "fmt"

// RenderConfig tunes the chart text.
type RenderConfig struct {
	Placeholder string `json:"placeholder"`
}

func (c *RenderConfig) SetDefaults() {
	if c.Placeholder == "" {
		c.Placeholder = "----"
	}
}

func (c RenderConfig) Validate() error {
	if len(c.Placeholder) > 16 {
		return fmt.Errorf("placeholder too long: %q", c.Placeholder)
	}
	return nil
}
