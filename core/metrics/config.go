package metrics

import "github.com/kilianp07/dutylog/core/factory"

// Config lists the sinks to build. Textfile, when set, receives the
// Prometheus registry in text exposition format after each export.
type Config struct {
	Sinks    []factory.ModuleConfig `json:"sinks" yaml:"sinks"`
	Textfile string                 `json:"textfile" yaml:"textfile"`
}
