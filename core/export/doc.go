// Package export composes rendered day charts into a single paginated
// document. Pages are rasterized one at a time in day order: the
// rasterizer draws on a single shared surface and the output order must
// match the day order, so the composer never fans out. A failure on any
// page aborts the run and nothing is emitted.
package export
