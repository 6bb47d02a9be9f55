package annotations

import "github.com/gogpu/gg"

// Annotation is the marker interface for annotation models.
// The set of implementations is closed within this package.
type Annotation interface {
	annotation()
}

// DataSource provides the columns a LabelSet draws from. It is satisfied
// by plot.ColumnDataSource.
type DataSource interface {
	// Column returns the numeric column with the given name, or nil.
	Column(name string) []float64

	// StringColumn returns the string column with the given name, or nil.
	StringColumn(name string) []string

	// Length returns the number of rows.
	Length() int
}

// Label renders a single text label at (X, Y).
//
// The coordinates can be in data space or in pixels relative to the plot
// area, per XUnits/YUnits. XOffset and YOffset are always pixels and are
// applied after projection; YOffset grows downward.
type Label struct {
	// X and Y locate the text anchor.
	X, Y float64

	// XUnits and YUnits select the coordinate interpretation.
	XUnits, YUnits Units

	// Text is the label content.
	Text string

	// XOffset and YOffset displace the anchor in pixels after projection.
	XOffset, YOffset float64

	// Angle rotates the text around the anchor, in radians,
	// counter-clockwise.
	Angle float64

	// Align and Baseline anchor the text relative to the point.
	Align    TextAlign
	Baseline TextBaseline

	// TextColor and TextAlpha style the text.
	TextColor gg.RGBA
	TextAlpha float64

	// FillColor and FillAlpha style the background box. A zero FillAlpha
	// draws no box.
	FillColor gg.RGBA
	FillAlpha float64

	// Visible controls whether the label is painted.
	Visible bool
}

// NewLabel creates a visible black label at (x, y) in data units.
func NewLabel(x, y float64, text string) *Label {
	return &Label{
		X:         x,
		Y:         y,
		Text:      text,
		TextColor: gg.Black,
		TextAlpha: 1,
		Visible:   true,
	}
}

func (*Label) annotation() {}

// LabelSet renders one text label per row of a data source.
//
// X, Y, and Text name columns of the source: X and Y numeric, Text a
// string column. Styling and offsets are shared across all labels.
type LabelSet struct {
	// Source provides the columns.
	Source DataSource

	// X, Y, and Text name the coordinate and text columns.
	X, Y, Text string

	// XUnits and YUnits select the coordinate interpretation.
	XUnits, YUnits Units

	// XOffset and YOffset displace every anchor in pixels.
	XOffset, YOffset float64

	// Align and Baseline anchor each label relative to its point.
	Align    TextAlign
	Baseline TextBaseline

	// TextColor and TextAlpha style the text.
	TextColor gg.RGBA
	TextAlpha float64

	// Visible controls whether the labels are painted.
	Visible bool
}

// NewLabelSet creates a visible black label set over the given source
// columns, in data units.
func NewLabelSet(source DataSource, x, y, text string) *LabelSet {
	return &LabelSet{
		Source:    source,
		X:         x,
		Y:         y,
		Text:      text,
		TextColor: gg.Black,
		TextAlpha: 1,
		Visible:   true,
	}
}

func (*LabelSet) annotation() {}

// Len returns the number of labels the set produces: the source length,
// or 0 when no source is attached.
func (ls *LabelSet) Len() int {
	if ls.Source == nil {
		return 0
	}
	return ls.Source.Length()
}
