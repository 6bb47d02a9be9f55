package annotations

// Units selects how an annotation coordinate is interpreted.
type Units uint8

const (
	// UnitsData interprets the coordinate in data space, projected
	// through the figure's ranges (default).
	UnitsData Units = iota

	// UnitsScreen interprets the coordinate in pixels relative to the
	// plot area's top-left corner.
	UnitsScreen
)

// String returns a human-readable name for the units.
func (u Units) String() string {
	switch u {
	case UnitsData:
		return "data"
	case UnitsScreen:
		return "screen"
	default:
		return "unknown"
	}
}

// TextAlign is the horizontal anchoring of annotation text.
type TextAlign uint8

const (
	// AlignLeft anchors text at its left edge (default).
	AlignLeft TextAlign = iota

	// AlignCenter anchors text at its horizontal center.
	AlignCenter

	// AlignRight anchors text at its right edge.
	AlignRight
)

// String returns a human-readable name for the alignment.
func (a TextAlign) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "unknown"
	}
}

// Anchor returns the alignment as a horizontal anchor fraction in [0, 1],
// matching the anchor convention of gg.Context.DrawStringAnchored.
func (a TextAlign) Anchor() float64 {
	switch a {
	case AlignCenter:
		return 0.5
	case AlignRight:
		return 1
	default:
		return 0
	}
}

// TextBaseline is the vertical anchoring of annotation text.
type TextBaseline uint8

const (
	// BaselineBottom anchors text at its bottom edge (default).
	BaselineBottom TextBaseline = iota

	// BaselineMiddle anchors text at its vertical center.
	BaselineMiddle

	// BaselineTop anchors text at its top edge.
	BaselineTop
)

// String returns a human-readable name for the baseline.
func (b TextBaseline) String() string {
	switch b {
	case BaselineBottom:
		return "bottom"
	case BaselineMiddle:
		return "middle"
	case BaselineTop:
		return "top"
	default:
		return "unknown"
	}
}

// Anchor returns the baseline as a vertical anchor fraction in [0, 1],
// matching the anchor convention of gg.Context.DrawStringAnchored.
func (b TextBaseline) Anchor() float64 {
	switch b {
	case BaselineMiddle:
		return 0.5
	case BaselineTop:
		return 1
	default:
		return 0
	}
}

// FontStyle is the requested style of annotation text.
type FontStyle uint8

const (
	// StyleNormal is upright text (default).
	StyleNormal FontStyle = iota

	// StyleItalic is slanted text.
	StyleItalic

	// StyleBold is heavy text.
	StyleBold
)

// String returns a human-readable name for the style.
func (s FontStyle) String() string {
	switch s {
	case StyleNormal:
		return "normal"
	case StyleItalic:
		return "italic"
	case StyleBold:
		return "bold"
	default:
		return "unknown"
	}
}
