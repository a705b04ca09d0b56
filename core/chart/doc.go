// Package chart turns one day of duty events into a driver's daily log
// drawing. Geometry is expressed in a logical coordinate space whose width
// is an A4 page at 3.78 units per millimetre; rasterizers and vector
// writers scale it at output time. Every chart uses the same Layout so
// exported pages line up.
package chart
