package plot

// Range1d is an explicit numeric range over one dimension.
// Start may exceed End for a reversed axis.
type Range1d struct {
	Start float64
	End   float64
}

// NewRange1d creates a range from start to end.
func NewRange1d(start, end float64) Range1d {
	return Range1d{Start: start, End: end}
}

// Span returns End - Start. Negative for reversed ranges.
func (r Range1d) Span() float64 {
	return r.End - r.Start
}

// IsZero reports whether the range is the zero value, which the figure
// treats as "auto-range from data".
func (r Range1d) IsZero() bool {
	return r.Start == 0 && r.End == 0
}

// Normalize maps v into [0, 1] relative to the range.
// A zero-span range maps everything to 0.
func (r Range1d) Normalize(v float64) float64 {
	span := r.Span()
	if span == 0 {
		return 0
	}
	return (v - r.Start) / span
}

// Frame is the pixel-space plot area of a figure paired with the data
// ranges projected onto it. X0/Y0 is the top-left corner.
type Frame struct {
	X0, Y0 float64
	X1, Y1 float64

	XRange Range1d
	YRange Range1d
}

// Width returns the frame width in pixels.
func (fr Frame) Width() float64 { return fr.X1 - fr.X0 }

// Height returns the frame height in pixels.
func (fr Frame) Height() float64 { return fr.Y1 - fr.Y0 }

// ProjectX maps a data-space x value to a pixel x coordinate.
func (fr Frame) ProjectX(v float64) float64 {
	return fr.X0 + fr.XRange.Normalize(v)*fr.Width()
}

// ProjectY maps a data-space y value to a pixel y coordinate.
// Pixel y grows downward while data y grows upward, so the projection
// is inverted.
func (fr Frame) ProjectY(v float64) float64 {
	return fr.Y1 - fr.YRange.Normalize(v)*fr.Height()
}
