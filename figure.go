package plot

import (
	"slices"

	"github.com/gogpu/gg"
	"github.com/gogpu/plot/annotations"
)

// Figure owns the renderer collection, the per-side axis collections, and
// the attached annotations of one plot. It is the composition root the
// rest of the package resolves against: selection resolution and axis
// proxies are recomputed from the figure's current state on every access,
// never cached.
//
// Figure is not safe for concurrent use. All operations are synchronous
// and run to completion; the single-threaded model is what makes
// recompute-on-access free of torn reads.
type Figure struct {
	width      int
	height     int
	background gg.RGBA

	xRange     Range1d
	yRange     Range1d
	autoXRange bool
	autoYRange bool

	title     *annotations.Title
	renderers []Renderer
	xAxes     AxisGroup
	yAxes     AxisGroup
	layouts   []layoutItem

	toolbar Toolbar
	legend  Legend

	glyphSeq int
}

// layoutItem is an annotation placed on one side of the figure.
type layoutItem struct {
	annotation annotations.Annotation
	side       Side
}

// NewFigure creates a figure configured by the given options.
//
// Unless disabled via WithoutXAxis/WithoutYAxis, the figure starts with one
// x-axis (below by default) and one y-axis (left by default); their sides
// follow WithXAxisLocation and WithYAxisLocation.
func NewFigure(opts ...FigureOption) *Figure {
	o := defaultFigureOptions()
	for _, opt := range opts {
		opt(&o)
	}

	f := &Figure{
		width:      o.width,
		height:     o.height,
		background: o.background,
		xRange:     o.xRange,
		yRange:     o.yRange,
		autoXRange: !o.hasXRange,
		autoYRange: !o.hasYRange,
		toolbar:    Toolbar{Location: o.toolbarLocation},
	}

	if o.title != "" {
		f.title = annotations.NewTitle(o.title)
	}

	if !o.xAxisHidden {
		side := o.xAxisLocation
		if fam, ok := side.Family(); !ok || fam != XFamily {
			Logger().Warn("plot: invalid x-axis location, using below", "side", side.String())
			side = SideBelow
		}
		_ = f.AddAxis(NewAxis(), side)
	}
	if !o.yAxisHidden {
		side := o.yAxisLocation
		if fam, ok := side.Family(); !ok || fam != YFamily {
			Logger().Warn("plot: invalid y-axis location, using left", "side", side.String())
			side = SideLeft
		}
		_ = f.AddAxis(NewAxis(), side)
	}

	return f
}

// Width returns the figure width in pixels.
func (f *Figure) Width() int { return f.width }

// Height returns the figure height in pixels.
func (f *Figure) Height() int { return f.height }

// Background returns the figure background color.
func (f *Figure) Background() gg.RGBA { return f.background }

// Title returns the figure title annotation, or nil when unset.
func (f *Figure) Title() *annotations.Title { return f.title }

// SetTitle sets the figure title text, creating the title annotation if
// needed. An empty string removes the title.
func (f *Figure) SetTitle(text string) {
	if text == "" {
		f.title = nil
		return
	}
	if f.title == nil {
		f.title = annotations.NewTitle(text)
		return
	}
	f.title.Text = text
}

// XRange returns the explicit x range. When no range was configured the
// figure auto-ranges from its data at render time and XRange stays zero.
func (f *Figure) XRange() Range1d { return f.xRange }

// YRange returns the explicit y range.
func (f *Figure) YRange() Range1d { return f.yRange }

// SetXRange sets an explicit x range, disabling auto-ranging.
func (f *Figure) SetXRange(start, end float64) {
	f.xRange = NewRange1d(start, end)
	f.autoXRange = false
}

// SetYRange sets an explicit y range, disabling auto-ranging.
func (f *Figure) SetYRange(start, end float64) {
	f.yRange = NewRange1d(start, end)
	f.autoYRange = false
}

// Renderers returns the figure's renderer collection as an ordered
// snapshot, in attachment order. This is the source collection for auto
// selections.
func (f *Figure) Renderers() []Renderer {
	return slices.Clone(f.renderers)
}

// AddRenderer appends a renderer to the figure's collection.
func (f *Figure) AddRenderer(r Renderer) {
	if r == nil {
		return
	}
	f.renderers = append(f.renderers, r)
	Logger().Debug("plot: renderer added", "name", r.Name(), "count", len(f.renderers))
}

// AddAxis attaches an axis to one side of the figure. Group order within
// the side's family is attachment order. Sides outside the two axis
// families (SideCenter) are rejected.
func (f *Figure) AddAxis(a *Axis, side Side) error {
	if a == nil {
		return nil
	}
	family, ok := side.Family()
	if !ok {
		return &InvalidSideError{Side: side}
	}
	a.side = side
	switch family {
	case XFamily:
		f.xAxes = append(f.xAxes, a)
	case YFamily:
		f.yAxes = append(f.yAxes, a)
	}
	Logger().Debug("plot: axis attached", "side", side.String(), "family", family.String())
	return nil
}

// AxisGroup returns the current ordered axis collection for one family,
// as a snapshot: later attachments do not appear in a previously returned
// group.
func (f *Figure) AxisGroup(family Family) AxisGroup {
	switch family {
	case XFamily:
		return slices.Clone(f.xAxes)
	case YFamily:
		return slices.Clone(f.yAxes)
	default:
		return nil
	}
}

// XAxis returns a fresh proxy over the current members of the x-family
// (below and above). The proxy is bound to the family's state at the time
// of the call; axes attached afterwards are visible on the next call.
func (f *Figure) XAxis() AxisProxy {
	return NewAxisProxy(XFamily, f.xAxes)
}

// YAxis returns a fresh proxy over the current members of the y-family
// (left and right).
func (f *Figure) YAxis() AxisProxy {
	return NewAxisProxy(YFamily, f.yAxes)
}

// AddLayout attaches an annotation to a side of the figure.
// SideCenter places it inside the plot area, which is where data-space
// annotations such as labels normally live.
func (f *Figure) AddLayout(a annotations.Annotation, side Side) {
	if a == nil {
		return
	}
	f.layouts = append(f.layouts, layoutItem{annotation: a, side: side})
	Logger().Debug("plot: annotation attached", "side", side.String())
}

// Annotations returns the annotations attached to the given side, in
// attachment order.
func (f *Figure) Annotations(side Side) []annotations.Annotation {
	var out []annotations.Annotation
	for _, item := range f.layouts {
		if item.side == side {
			out = append(out, item.annotation)
		}
	}
	return out
}

// Toolbar returns the figure's toolbar for tool registration.
func (f *Figure) Toolbar() *Toolbar { return &f.toolbar }

// Legend returns the figure's legend for item registration.
func (f *Figure) Legend() *Legend { return &f.legend }
