package metrics_test

import (
	"encoding/json"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/kilianp07/dutylog/core/factory"
	metrics "github.com/kilianp07/dutylog/core/metrics"
)

// endpointConf has the shape of the influx sink settings.
type endpointConf struct {
	URL    string `json:"url"`
	Bucket string `json:"bucket"`
	Port   int    `json:"port"`
}

type captureSink struct {
	metrics.NopSink
	conf endpointConf
}

func init() {
	_ = metrics.RegisterMetricsSink("capture", func(conf map[string]any) (metrics.MetricsSink, error) {
		var c endpointConf
		if err := factory.Decode(conf, &c); err != nil {
			return nil, err
		}
		return &captureSink{conf: c}, nil
	})
}

// Sink settings from YAML reach the factory with their json names, and
// quoted numbers are weakly decoded.
func TestMetricsConfigDecodeYAMLSinkConf(t *testing.T) {
	data := `sinks:
  - type: nop
  - type: capture
    conf:
      url: http://localhost:8086/api/v2/write
      bucket: dutylog
      port: "8086"
textfile: /tmp/dutylog.prom
`
	var cfg metrics.Config
	if err := yaml.Unmarshal([]byte(data), &cfg); err != nil {
		t.Fatalf("yaml unmarshal: %v", err)
	}
	if cfg.Textfile != "/tmp/dutylog.prom" {
		t.Fatalf("textfile not decoded: %q", cfg.Textfile)
	}
	s, err := metrics.NewMetricsSink(cfg.Sinks)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	multi, ok := s.(*metrics.MultiSink)
	if !ok || len(multi.Sinks) != 2 {
		t.Fatalf("expected MultiSink of two, got %T", s)
	}
	capture, ok := multi.Sinks[1].(*captureSink)
	if !ok {
		t.Fatalf("expected captureSink, got %T", multi.Sinks[1])
	}
	want := endpointConf{URL: "http://localhost:8086/api/v2/write", Bucket: "dutylog", Port: 8086}
	if capture.conf != want {
		t.Fatalf("conf mismatch: %+v", capture.conf)
	}
	if err := s.RecordExport(metrics.ExportEvent{RunID: "r1", Pages: 2}); err != nil {
		t.Fatalf("record: %v", err)
	}
}

func TestMetricsConfigDecodeJSONSingleSink(t *testing.T) {
	data := `{"sinks":[{"type":"capture","conf":{"url":"http://influx:8086","bucket":"logs"}}]}`
	var cfg metrics.Config
	if err := json.Unmarshal([]byte(data), &cfg); err != nil {
		t.Fatalf("json unmarshal: %v", err)
	}
	s, err := metrics.NewMetricsSink(cfg.Sinks)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	capture, ok := s.(*captureSink)
	if !ok {
		t.Fatalf("a single sink is returned as is, got %T", s)
	}
	if capture.conf.URL != "http://influx:8086" || capture.conf.Bucket != "logs" || capture.conf.Port != 0 {
		t.Fatalf("conf mismatch: %+v", capture.conf)
	}
}

func TestMetricsConfigDecodeRejects(t *testing.T) {
	cases := map[string]string{
		"unknown type": `{"sinks":[{"type":"missing"}]}`,
		"bad conf":     `{"sinks":[{"type":"capture","conf":{"port":"eighty"}}]}`,
	}
	for name, data := range cases {
		var cfg metrics.Config
		if err := json.Unmarshal([]byte(data), &cfg); err != nil {
			t.Fatalf("%s: json unmarshal: %v", name, err)
		}
		if _, err := metrics.NewMetricsSink(cfg.Sinks); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}
