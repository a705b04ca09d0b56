// Package factory instantiates pluggable modules from configuration. A
// module is described by a type name and a map of raw settings; the
// registered factory decodes the settings with Decode and returns the
// implementation. Metrics sinks are built this way:
//
//	sinks:
//	  - type: prometheus
//	  - type: influx
//	    conf:
//	      url: http://localhost:8086
//	      bucket: dutylog
package factory
