// Package pdf implements the export document on top of go-pdf/fpdf.
package pdf

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/kilianp07/dutylog/core/export"
)

// Settings select the page geometry and metadata of a document.
type Settings struct {
	Orientation string // "landscape" or "portrait"
	Unit        string // "pt", "mm", "cm" or "in"
	Size        string // "A4", "Letter", ...
	Title       string
	Creator     string
}

// Document is an fpdf backed export.Document.
type Document struct {
	pdf *fpdf.Fpdf
}

var _ export.Document = (*Document)(nil)

// New opens a document holding one blank page.
func New(s Settings) (*Document, error) {
	orientation := "L"
	if strings.HasPrefix(strings.ToLower(s.Orientation), "p") {
		orientation = "P"
	}
	unit := strings.ToLower(s.Unit)
	if unit == "" {
		unit = "pt"
	}
	size := s.Size
	if size == "" {
		size = "A4"
	}
	p := fpdf.New(orientation, unit, size, "")
	p.SetMargins(0, 0, 0)
	p.SetAutoPageBreak(false, 0)
	if s.Title != "" {
		p.SetTitle(s.Title, true)
	}
	if s.Creator != "" {
		p.SetCreator(s.Creator, true)
	}
	p.AddPage()
	if err := p.Error(); err != nil {
		return nil, fmt.Errorf("pdf: %w", err)
	}
	return &Document{pdf: p}, nil
}

// Factory returns an export.DocumentFactory opening documents with s.
func Factory(s Settings) export.DocumentFactory {
	return func() (export.Document, error) {
		return New(s)
	}
}

// PageSize returns the current page size in document units.
func (d *Document) PageSize() (float64, float64) {
	return d.pdf.GetPageSize()
}

// AddPage appends a blank page and makes it current.
func (d *Document) AddPage() { d.pdf.AddPage() }

// PlaceImage draws the page image on the current page.
func (d *Document) PlaceImage(name string, p export.Page, pl export.Placement) error {
	opts := fpdf.ImageOptions{ImageType: p.Format, ReadDpi: false}
	d.pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(p.Image))
	d.pdf.ImageOptions(name, pl.X, pl.Y, pl.W, pl.H, false, opts, 0, "")
	if err := d.pdf.Error(); err != nil {
		return fmt.Errorf("pdf: image %s: %w", name, err)
	}
	return nil
}

// PageCount returns the number of pages.
func (d *Document) PageCount() int { return d.pdf.PageCount() }

// Write serialises the document to w. The document is closed afterwards.
func (d *Document) Write(w io.Writer) error {
	if err := d.pdf.Output(w); err != nil {
		return fmt.Errorf("pdf: output: %w", err)
	}
	return nil
}
