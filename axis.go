package plot

import (
	"github.com/gogpu/gg"
)

// Side identifies a figure side an element can be attached to.
type Side uint8

const (
	// SideBelow is the bottom side (x-family).
	SideBelow Side = iota

	// SideAbove is the top side (x-family).
	SideAbove

	// SideLeft is the left side (y-family).
	SideLeft

	// SideRight is the right side (y-family).
	SideRight

	// SideCenter is the plot area itself. It holds annotations, never axes.
	SideCenter
)

// String returns a human-readable name for the side.
func (s Side) String() string {
	switch s {
	case SideBelow:
		return "below"
	case SideAbove:
		return "above"
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	case SideCenter:
		return "center"
	default:
		return "unknown"
	}
}

// Family returns the axis family the side belongs to.
// The second result is false for sides that hold no axes (SideCenter).
func (s Side) Family() (Family, bool) {
	switch s {
	case SideBelow, SideAbove:
		return XFamily, true
	case SideLeft, SideRight:
		return YFamily, true
	default:
		return 0, false
	}
}

// Family identifies one logical axis family of a figure.
type Family uint8

const (
	// XFamily covers axes attached below or above the plot area.
	XFamily Family = iota

	// YFamily covers axes attached left or right of the plot area.
	YFamily
)

// String returns a human-readable name for the family.
func (f Family) String() string {
	switch f {
	case XFamily:
		return "x"
	case YFamily:
		return "y"
	default:
		return "unknown"
	}
}

// AxisGroup is an ordered sequence of axes belonging to one family.
// Order is insertion order of attachment. Membership changes only through
// Figure.AddAxis; proxies and accessors never mutate it.
type AxisGroup []*Axis

// Axis is a single axis attached to one side of a figure.
// Axes are mutable: configuration applied through an AxisProxy or directly
// on the axis is visible to every holder of the pointer.
type Axis struct {
	side      Side
	label     string
	visible   bool
	lineColor gg.RGBA
	lineWidth float64
	tickCount int
}

// NewAxis creates an axis with default styling: visible, black 1px line,
// six ticks, empty label. The side is assigned when the axis is attached
// to a figure.
func NewAxis() *Axis {
	return &Axis{
		side:      SideBelow,
		visible:   true,
		lineColor: gg.Black,
		lineWidth: 1,
		tickCount: 6,
	}
}

// Side returns the side the axis was attached to.
func (a *Axis) Side() Side { return a.side }

// Label returns the axis label text.
func (a *Axis) Label() string { return a.label }

// SetLabel sets the axis label text.
func (a *Axis) SetLabel(label string) { a.label = label }

// Visible reports whether the axis is painted.
func (a *Axis) Visible() bool { return a.visible }

// SetVisible controls whether the axis is painted.
func (a *Axis) SetVisible(v bool) { a.visible = v }

// LineColor returns the axis line color.
func (a *Axis) LineColor() gg.RGBA { return a.lineColor }

// SetLineColor sets the axis line color.
func (a *Axis) SetLineColor(c gg.RGBA) { a.lineColor = c }

// LineWidth returns the axis line width in pixels.
func (a *Axis) LineWidth() float64 { return a.lineWidth }

// SetLineWidth sets the axis line width in pixels.
func (a *Axis) SetLineWidth(w float64) { a.lineWidth = w }

// TickCount returns the number of major ticks drawn along the axis.
func (a *Axis) TickCount() int { return a.tickCount }

// SetTickCount sets the number of major ticks drawn along the axis.
// Values below 2 are clamped to 2.
func (a *Axis) SetTickCount(n int) {
	if n < 2 {
		n = 2
	}
	a.tickCount = n
}
