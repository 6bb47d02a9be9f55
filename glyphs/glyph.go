package glyphs

import "github.com/gogpu/gg"

// defaultColor is the default glyph fill/stroke color.
var defaultColor = gg.Hex("#1f77b4")

// Glyph is a declarative description of a per-row mark. Field names refer
// to columns in the owning renderer's data source.
type Glyph interface {
	// GlyphName returns the glyph kind ("circle", "line", ...).
	GlyphName() string
}

// Circle draws a filled circle per row.
type Circle struct {
	// X and Y name the coordinate columns.
	X, Y string

	// Size is the circle diameter in pixels.
	Size float64

	// Color is the fill color.
	Color gg.RGBA

	// Alpha scales the fill opacity in [0, 1].
	Alpha float64
}

// NewCircle creates a circle glyph with default size and color.
func NewCircle(x, y string) *Circle {
	return &Circle{X: x, Y: y, Size: 8, Color: defaultColor, Alpha: 1}
}

// GlyphName returns "circle".
func (*Circle) GlyphName() string { return "circle" }

// Square draws a filled axis-aligned square per row.
type Square struct {
	// X and Y name the coordinate columns.
	X, Y string

	// Size is the square edge length in pixels.
	Size float64

	// Color is the fill color.
	Color gg.RGBA

	// Alpha scales the fill opacity in [0, 1].
	Alpha float64
}

// NewSquare creates a square glyph with default size and color.
func NewSquare(x, y string) *Square {
	return &Square{X: x, Y: y, Size: 8, Color: defaultColor, Alpha: 1}
}

// GlyphName returns "square".
func (*Square) GlyphName() string { return "square" }

// Line draws a single polyline through all rows in order.
type Line struct {
	// X and Y name the coordinate columns.
	X, Y string

	// Color is the stroke color.
	Color gg.RGBA

	// Width is the stroke width in pixels.
	Width float64

	// Alpha scales the stroke opacity in [0, 1].
	Alpha float64
}

// NewLine creates a line glyph with default width and color.
func NewLine(x, y string) *Line {
	return &Line{X: x, Y: y, Color: defaultColor, Width: 1, Alpha: 1}
}

// GlyphName returns "line".
func (*Line) GlyphName() string { return "line" }

// Segment draws an independent line segment per row.
type Segment struct {
	// X0, Y0, X1, Y1 name the endpoint columns.
	X0, Y0, X1, Y1 string

	// Color is the stroke color.
	Color gg.RGBA

	// Width is the stroke width in pixels.
	Width float64

	// Alpha scales the stroke opacity in [0, 1].
	Alpha float64
}

// NewSegment creates a segment glyph with default width and color.
func NewSegment(x0, y0, x1, y1 string) *Segment {
	return &Segment{X0: x0, Y0: y0, X1: x1, Y1: y1, Color: defaultColor, Width: 1, Alpha: 1}
}

// GlyphName returns "segment".
func (*Segment) GlyphName() string { return "segment" }
