// Package infra contains technical adapters: the raster painter, the PDF
// document, SVG output, plan decoding, logging and metrics exporters.
// These packages depend only on the interfaces defined in the core
// packages.
package infra
