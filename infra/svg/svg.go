// Package svg serialises charts as standalone SVG documents.
package svg

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/kilianp07/dutylog/core/chart"
)

// FontFamily is used for every text element.
const FontFamily = "Helvetica, Arial, sans-serif"

// Encode returns c as an SVG document in logical units.
func Encode(c *chart.Chart) string {
	var svg strings.Builder
	svg.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	svg.WriteString(fmt.Sprintf(`<svg width="%s" height="%s" viewBox="0 0 %s %s" xmlns="http://www.w3.org/2000/svg">`+"\n",
		num(c.Width), num(c.Height), num(c.Width), num(c.Height)))
	svg.WriteString(fmt.Sprintf(`<rect width="100%%" height="100%%" fill="%s"/>`+"\n", chart.White))

	for _, r := range c.Rects {
		svg.WriteString(fmt.Sprintf(`<rect x="%s" y="%s" width="%s" height="%s" fill="%s" stroke="%s" stroke-width="%s"/>`+"\n",
			num(r.X), num(r.Y), num(r.W), num(r.H), paint(r.Fill), paint(r.Stroke), num(chart.GridStroke)))
	}
	for _, l := range c.Lines {
		svg.WriteString(fmt.Sprintf(`<line x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-width="%s"/>`+"\n",
			num(l.X1), num(l.Y1), num(l.X2), num(l.Y2), paint(l.Stroke), num(l.Width)))
	}
	for _, t := range c.Texts {
		weight := ""
		if t.Bold {
			weight = ` font-weight="bold"`
		}
		svg.WriteString(fmt.Sprintf(`<text x="%s" y="%s" font-family="%s" font-size="%s" text-anchor="%s" fill="%s"%s>%s</text>`+"\n",
			num(t.X), num(t.Y), FontFamily, num(t.Size), anchor(t.Anchor), paint(t.Fill), weight, escapeXML(t.Value)))
	}
	svg.WriteString("</svg>\n")
	return svg.String()
}

// Write encodes c to w.
func Write(w io.Writer, c *chart.Chart) error {
	_, err := io.WriteString(w, Encode(c))
	return err
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func paint(c chart.Color) string {
	if c == chart.NoColor {
		return "none"
	}
	return escapeXML(string(c))
}

func anchor(a chart.Anchor) string {
	switch a {
	case chart.AnchorMiddle:
		return "middle"
	case chart.AnchorEnd:
		return "end"
	default:
		return "start"
	}
}

// escapeXML replaces the XML special characters with entity references.
func escapeXML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, "\"", "&quot;")
	s = strings.ReplaceAll(s, "'", "&apos;")
	return s
}
