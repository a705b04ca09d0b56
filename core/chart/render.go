package chart

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kilianp07/dutylog/core/model"
)

// DefaultPlaceholder replaces absent header values.
const DefaultPlaceholder = "----"

// Options tune the text content of a chart. Geometry is not configurable.
type Options struct {
	Placeholder string
}

func (o Options) placeholder() string {
	if strings.TrimSpace(o.Placeholder) == "" {
		return DefaultPlaceholder
	}
	return o.Placeholder
}

// Chart is the drawable log sheet of one day.
type Chart struct {
	Date   string
	Width  float64
	Height float64

	Segments    []model.DutySegment
	Connectors  []Line
	Annotations []Text
	Totals      [model.RowCount]float64

	// Primitives in paint order: rects, then lines, then texts.
	Rects []Rect
	Lines []Line
	Texts []Text
}

// Render draws a day. It never fails: absent fields become placeholders and
// malformed events are clamped into the 24 hour window.
func Render(day model.Day, opts Options) *Chart {
	c := &Chart{Date: day.Date, Width: Width, Height: Height}
	ph := opts.placeholder()

	c.header(day, ph)
	c.grid()
	c.duty(day)
	c.boxes(day, ph)
	c.signatures(day, ph)
	return c
}

func (c *Chart) text(x, y float64, v string, size float64, a Anchor) {
	c.Texts = append(c.Texts, Text{X: x, Y: y, Value: v, Size: size, Anchor: a, Fill: Black})
}

func (c *Chart) header(day model.Day, ph string) {
	c.Texts = append(c.Texts, Text{
		X: MarginX, Y: MarginTop + TitleSize, Value: "DRIVER'S DAILY LOG",
		Size: TitleSize, Anchor: AnchorStart, Bold: true, Fill: Black,
	})
	c.text(Width-MarginX, MarginTop+TitleSize, "Date: "+orPlaceholder(day.Date, ph), TextSize, AnchorEnd)

	miles := ph
	if day.Miles != nil {
		miles = formatNumber(*day.Miles)
	} else if m, ok := day.DrivingMiles(); ok {
		miles = formatNumber(m)
	}
	mileage := ph
	if day.TotalMileage != nil {
		mileage = formatNumber(*day.TotalMileage)
	}
	fields := []string{
		"From: " + orPlaceholder(day.From, ph),
		"To: " + orPlaceholder(day.To, ph),
		"Total Miles Driving Today: " + miles,
		"Total Mileage Today: " + mileage,
		"Carrier: " + orPlaceholder(day.Carrier, ph),
		"Main Office: " + orPlaceholder(day.Office, ph),
		"Truck/Trailer: " + orPlaceholder(day.Truck, ph) + "/" + orPlaceholder(day.Trailer, ph),
		"Home Terminal: " + orPlaceholder(day.Terminal, ph),
	}
	colX := [2]float64{MarginX, Width / 2}
	for i, f := range fields {
		y := HeaderTop + float64(i/2+1)*LineHeight
		c.text(colX[i%2], y, f, TextSize, AnchorStart)
	}
}

func (c *Chart) grid() {
	c.Rects = append(c.Rects, Rect{X: MarginX, Y: GridTop, W: LabelWidth, H: HourBand, Stroke: Black, Fill: White})
	for h := 0; h < HoursPerDay; h++ {
		x := HourX(float64(h))
		c.Rects = append(c.Rects, Rect{X: x, Y: GridTop, W: CellWidth, H: HourBand, Stroke: Black, Fill: White})
		c.text(x+CellWidth/2, GridTop+20, strconv.Itoa(h), TextSize, AnchorMiddle)
	}
	for _, r := range model.Rows() {
		top := RowTop(r)
		c.Rects = append(c.Rects, Rect{X: MarginX, Y: top, W: LabelWidth, H: RowHeight, Stroke: Black, Fill: White})
		c.text(MarginX+LabelWidth/2, RowY(r)+TextSize/3, r.String(), TextSize, AnchorMiddle)
		for h := 0; h < HoursPerDay; h++ {
			c.Rects = append(c.Rects, Rect{X: HourX(float64(h)), Y: top, W: CellWidth, H: RowHeight, Stroke: Black, Fill: White})
		}
	}
}

func (c *Chart) duty(day model.Day) {
	c.Segments = Segments(day)
	c.Totals = Totals(c.Segments)
	for i, s := range c.Segments {
		y := RowY(s.Row)
		c.Lines = append(c.Lines, Line{X1: HourX(s.Start), Y1: y, X2: HourX(s.End), Y2: y, Stroke: Duty, Width: SegmentWidth})
		if i > 0 {
			prev := c.Segments[i-1]
			if prev.Row != s.Row {
				x := HourX(s.Start)
				conn := Line{X1: x, Y1: RowY(prev.Row), X2: x, Y2: y, Stroke: Duty, Width: ConnectorWidth}
				c.Connectors = append(c.Connectors, conn)
			}
		}
		ev := day.Events[i]
		if ev.HasLocation() {
			a := Text{
				X: HourX(s.Start) + 2, Y: y - 6,
				Value: fmt.Sprintf("%s @ %s", ev.Kind, strings.TrimSpace(ev.Location)),
				Size:  AnnotationSize, Anchor: AnchorStart, Fill: Subtle,
			}
			c.Annotations = append(c.Annotations, a)
		}
	}
	c.Lines = append(c.Lines, c.Connectors...)
	c.Texts = append(c.Texts, c.Annotations...)
}

func (c *Chart) boxes(day model.Day, ph string) {
	inner := Width - 2*MarginX
	c.Rects = append(c.Rects,
		Rect{X: MarginX, Y: RemarksTop, W: inner, H: RemarksHeight, Stroke: Black, Fill: NoColor},
		Rect{X: MarginX, Y: ShippingTop, W: inner, H: BoxHeight, Stroke: Black, Fill: NoColor},
		Rect{X: MarginX, Y: RecapTop, W: inner, H: BoxHeight, Stroke: Black, Fill: NoColor},
	)
	c.text(MarginX+6, RemarksTop+LineHeight, "Remarks: "+orPlaceholder(day.Remarks, ph), TextSize, AnchorStart)

	c.text(MarginX+6, ShippingTop+LineHeight, "DV/Manifest No: "+orPlaceholder(day.Manifest, ph), TextSize, AnchorStart)
	c.text(Width/2, ShippingTop+LineHeight, "Shipper & Commodity: "+orPlaceholder(day.Commodity, ph), TextSize, AnchorStart)

	r := day.Recap
	c.text(MarginX+6, RecapTop+LineHeight,
		"70 hr / 8 Day Recap - On Duty Hrs Today: "+formatNumber(r.OnDutyToday), TextSize, AnchorStart)
	c.text(MarginX+6, RecapTop+2*LineHeight,
		fmt.Sprintf("Total Last 8 Days: %s, Available Tomorrow: %s",
			formatNumber(r.TotalLast8Days), formatNumber(r.AvailableTomorrow)), TextSize, AnchorStart)
}

func (c *Chart) signatures(day model.Day, ph string) {
	third := (Width - 2*MarginX) / 3
	c.text(MarginX, SignatureY, "Driver's Signature: ________________", TextSize, AnchorStart)
	c.text(MarginX+third, SignatureY, "Co-Driver: ________________", TextSize, AnchorStart)
	c.text(MarginX+2*third, SignatureY, "Shipping Doc/Bill No: "+orPlaceholder(day.ShippingDoc, ph), TextSize, AnchorStart)
}

func orPlaceholder(v, ph string) string {
	if !model.Present(v) {
		return ph
	}
	return strings.TrimSpace(v)
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
