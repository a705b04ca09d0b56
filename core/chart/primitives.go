package chart

// Color is a hex RGB colour such as "#ff0000". NoColor disables a fill or stroke.
type Color string

// Anchor is the horizontal alignment of a text relative to its x.
type Anchor int

const (
	AnchorStart Anchor = iota
	AnchorMiddle
	AnchorEnd
)

// Rect is an axis-aligned rectangle.
type Rect struct {
	X, Y, W, H float64
	Stroke     Color
	Fill       Color
}

// Line is a stroked segment.
type Line struct {
	X1, Y1, X2, Y2 float64
	Stroke         Color
	Width          float64
}

// Text is a single line of text; Y is the baseline.
type Text struct {
	X, Y   float64
	Value  string
	Size   float64
	Anchor Anchor
	Bold   bool
	Fill   Color
}
