package plot

import (
	"math"
	"strconv"

	"github.com/gogpu/gg"
	"github.com/gogpu/plot/annotations"
	"github.com/gogpu/plot/glyphs"
)

// Frame margins in pixels. The plot area is the context inset by these.
const (
	marginLeft   = 60.0
	marginRight  = 25.0
	marginTop    = 45.0
	marginBottom = 50.0
)

// tickLength is the major tick mark length in pixels.
const tickLength = 5.0

// RenderTo paints the figure onto a gg drawing context: background, axes,
// glyph renderers in attachment order, annotations, title, and legend.
//
// Rendering consumes the figure's current state; it does not mutate the
// figure. Text is only painted when the context has a font face set
// (gg.Context.SetFont); without one, text elements are skipped by the
// renderer itself.
func (f *Figure) RenderTo(dc *gg.Context) error {
	if dc == nil {
		return ErrNilContext
	}

	dc.ClearWithColor(f.background)

	fr := f.frame(float64(dc.Width()), float64(dc.Height()))

	f.drawAxes(dc, fr)

	for _, r := range f.renderers {
		gr, ok := r.(*GlyphRenderer)
		if !ok {
			Logger().Debug("plot: skipping unknown renderer kind", "name", r.Name())
			continue
		}
		if !gr.Visible {
			continue
		}
		f.drawGlyphRenderer(dc, fr, gr)
	}

	for _, item := range f.layouts {
		f.drawAnnotation(dc, fr, item.annotation)
	}

	f.drawTitle(dc, fr)
	f.drawLegend(dc, fr)

	return nil
}

// frame computes the pixel plot area and the resolved data ranges.
func (f *Figure) frame(width, height float64) Frame {
	xr := f.xRange
	if f.autoXRange {
		xr = f.dataRange(xAccessor)
	}
	yr := f.yRange
	if f.autoYRange {
		yr = f.dataRange(yAccessor)
	}
	return Frame{
		X0:     marginLeft,
		Y0:     marginTop,
		X1:     width - marginRight,
		Y1:     height - marginBottom,
		XRange: xr,
		YRange: yr,
	}
}

// columnAccessor names the coordinate columns of a glyph for one dimension.
type columnAccessor func(g glyphs.Glyph) []string

func xAccessor(g glyphs.Glyph) []string {
	switch g := g.(type) {
	case *glyphs.Circle:
		return []string{g.X}
	case *glyphs.Square:
		return []string{g.X}
	case *glyphs.Line:
		return []string{g.X}
	case *glyphs.Segment:
		return []string{g.X0, g.X1}
	default:
		return nil
	}
}

func yAccessor(g glyphs.Glyph) []string {
	switch g := g.(type) {
	case *glyphs.Circle:
		return []string{g.Y}
	case *glyphs.Square:
		return []string{g.Y}
	case *glyphs.Line:
		return []string{g.Y}
	case *glyphs.Segment:
		return []string{g.Y0, g.Y1}
	default:
		return nil
	}
}

// dataRange scans the glyph renderers' coordinate columns for one
// dimension and returns the padded extent. Figures with no data get the
// unit range.
func (f *Figure) dataRange(columns columnAccessor) Range1d {
	lo := math.Inf(1)
	hi := math.Inf(-1)
	for _, r := range f.renderers {
		gr, ok := r.(*GlyphRenderer)
		if !ok || gr.Source == nil {
			continue
		}
		for _, name := range columns(gr.Glyph) {
			for _, v := range gr.Source.Column(name) {
				lo = math.Min(lo, v)
				hi = math.Max(hi, v)
			}
		}
	}
	if lo > hi {
		return NewRange1d(0, 1)
	}
	if lo == hi {
		// Degenerate extent: center a unit span on the value.
		return NewRange1d(lo-0.5, hi+0.5)
	}
	pad := (hi - lo) * 0.05
	return NewRange1d(lo-pad, hi+pad)
}

// drawAxes paints every visible axis of both families.
func (f *Figure) drawAxes(dc *gg.Context, fr Frame) {
	for _, a := range f.xAxes {
		f.drawAxis(dc, fr, a)
	}
	for _, a := range f.yAxes {
		f.drawAxis(dc, fr, a)
	}
}

// drawAxis paints one axis: its line, major ticks, tick labels, and the
// axis label.
func (f *Figure) drawAxis(dc *gg.Context, fr Frame, a *Axis) {
	if !a.Visible() {
		return
	}

	col := a.LineColor()
	dc.SetRGBA(col.R, col.G, col.B, col.A)
	dc.SetLineWidth(a.LineWidth())

	switch a.Side() {
	case SideBelow:
		dc.DrawLine(fr.X0, fr.Y1, fr.X1, fr.Y1)
	case SideAbove:
		dc.DrawLine(fr.X0, fr.Y0, fr.X1, fr.Y0)
	case SideLeft:
		dc.DrawLine(fr.X0, fr.Y0, fr.X0, fr.Y1)
	case SideRight:
		dc.DrawLine(fr.X1, fr.Y0, fr.X1, fr.Y1)
	}
	dc.Stroke()

	f.drawAxisTicks(dc, fr, a)
	f.drawAxisLabel(dc, fr, a)
}

// drawAxisTicks paints evenly spaced major ticks with numeric labels.
func (f *Figure) drawAxisTicks(dc *gg.Context, fr Frame, a *Axis) {
	n := a.TickCount()
	family, _ := a.Side().Family()

	for i := range n {
		t := float64(i) / float64(n-1)

		var value float64
		if family == XFamily {
			value = fr.XRange.Start + t*fr.XRange.Span()
		} else {
			value = fr.YRange.Start + t*fr.YRange.Span()
		}
		text := strconv.FormatFloat(value, 'g', 4, 64)

		switch a.Side() {
		case SideBelow:
			x := fr.X0 + t*fr.Width()
			dc.DrawLine(x, fr.Y1, x, fr.Y1+tickLength)
			dc.Stroke()
			dc.DrawStringAnchored(text, x, fr.Y1+tickLength+12, 0.5, 0)
		case SideAbove:
			x := fr.X0 + t*fr.Width()
			dc.DrawLine(x, fr.Y0, x, fr.Y0-tickLength)
			dc.Stroke()
			dc.DrawStringAnchored(text, x, fr.Y0-tickLength-4, 0.5, 0)
		case SideLeft:
			y := fr.Y1 - t*fr.Height()
			dc.DrawLine(fr.X0, y, fr.X0-tickLength, y)
			dc.Stroke()
			dc.DrawStringAnchored(text, fr.X0-tickLength-2, y+4, 1, 0)
		case SideRight:
			y := fr.Y1 - t*fr.Height()
			dc.DrawLine(fr.X1, y, fr.X1+tickLength, y)
			dc.Stroke()
			dc.DrawStringAnchored(text, fr.X1+tickLength+2, y+4, 0, 0)
		}
	}
}

// drawAxisLabel paints the axis label centered along the axis.
func (f *Figure) drawAxisLabel(dc *gg.Context, fr Frame, a *Axis) {
	label := a.Label()
	if label == "" {
		return
	}
	midX := fr.X0 + fr.Width()/2
	midY := fr.Y0 + fr.Height()/2

	switch a.Side() {
	case SideBelow:
		dc.DrawStringAnchored(label, midX, fr.Y1+marginBottom-10, 0.5, 0)
	case SideAbove:
		dc.DrawStringAnchored(label, midX, fr.Y0-marginTop+14, 0.5, 0)
	case SideLeft:
		dc.DrawStringAnchored(label, fr.X0-marginLeft+12, midY, 0, 0.5)
	case SideRight:
		dc.DrawStringAnchored(label, fr.X1+marginRight-12, midY, 1, 0.5)
	}
}

// drawGlyphRenderer paints one glyph renderer's rows.
func (f *Figure) drawGlyphRenderer(dc *gg.Context, fr Frame, gr *GlyphRenderer) {
	src := gr.Source
	if src == nil {
		return
	}

	switch g := gr.Glyph.(type) {
	case *glyphs.Circle:
		xs, ys := src.Column(g.X), src.Column(g.Y)
		dc.SetRGBA(g.Color.R, g.Color.G, g.Color.B, g.Color.A*g.Alpha)
		for i := range min(len(xs), len(ys)) {
			dc.DrawCircle(fr.ProjectX(xs[i]), fr.ProjectY(ys[i]), g.Size/2)
			dc.Fill()
		}

	case *glyphs.Square:
		xs, ys := src.Column(g.X), src.Column(g.Y)
		dc.SetRGBA(g.Color.R, g.Color.G, g.Color.B, g.Color.A*g.Alpha)
		for i := range min(len(xs), len(ys)) {
			px, py := fr.ProjectX(xs[i]), fr.ProjectY(ys[i])
			dc.DrawRectangle(px-g.Size/2, py-g.Size/2, g.Size, g.Size)
			dc.Fill()
		}

	case *glyphs.Line:
		xs, ys := src.Column(g.X), src.Column(g.Y)
		n := min(len(xs), len(ys))
		if n < 2 {
			return
		}
		dc.SetRGBA(g.Color.R, g.Color.G, g.Color.B, g.Color.A*g.Alpha)
		dc.SetLineWidth(g.Width)
		dc.MoveTo(fr.ProjectX(xs[0]), fr.ProjectY(ys[0]))
		for i := 1; i < n; i++ {
			dc.LineTo(fr.ProjectX(xs[i]), fr.ProjectY(ys[i]))
		}
		dc.Stroke()

	case *glyphs.Segment:
		x0s, y0s := src.Column(g.X0), src.Column(g.Y0)
		x1s, y1s := src.Column(g.X1), src.Column(g.Y1)
		n := min(len(x0s), len(y0s), len(x1s), len(y1s))
		dc.SetRGBA(g.Color.R, g.Color.G, g.Color.B, g.Color.A*g.Alpha)
		dc.SetLineWidth(g.Width)
		for i := range n {
			dc.DrawLine(fr.ProjectX(x0s[i]), fr.ProjectY(y0s[i]),
				fr.ProjectX(x1s[i]), fr.ProjectY(y1s[i]))
			dc.Stroke()
		}

	default:
		Logger().Debug("plot: skipping unknown glyph kind", "glyph", gr.Glyph.GlyphName())
	}
}

// projectAnnotationPoint resolves an annotation coordinate pair honoring
// per-coordinate units.
func projectAnnotationPoint(fr Frame, x, y float64, xu, yu annotations.Units) (float64, float64) {
	var px, py float64
	if xu == annotations.UnitsScreen {
		px = fr.X0 + x
	} else {
		px = fr.ProjectX(x)
	}
	if yu == annotations.UnitsScreen {
		py = fr.Y0 + y
	} else {
		py = fr.ProjectY(y)
	}
	return px, py
}

// drawAnnotation paints one annotation model.
func (f *Figure) drawAnnotation(dc *gg.Context, fr Frame, a annotations.Annotation) {
	switch a := a.(type) {
	case *annotations.Label:
		if !a.Visible {
			return
		}
		px, py := projectAnnotationPoint(fr, a.X, a.Y, a.XUnits, a.YUnits)
		px += a.XOffset
		py += a.YOffset
		if a.FillAlpha > 0 {
			w, h := dc.MeasureString(a.Text)
			if w > 0 {
				dc.SetRGBA(a.FillColor.R, a.FillColor.G, a.FillColor.B, a.FillColor.A*a.FillAlpha)
				dc.DrawRectangle(px-w*a.Align.Anchor(), py-h*(1-a.Baseline.Anchor()), w, h)
				dc.Fill()
			}
		}
		dc.SetRGBA(a.TextColor.R, a.TextColor.G, a.TextColor.B, a.TextColor.A*a.TextAlpha)
		if a.Angle != 0 {
			dc.Push()
			dc.RotateAbout(-a.Angle, px, py)
			dc.DrawStringAnchored(a.Text, px, py, a.Align.Anchor(), a.Baseline.Anchor())
			dc.Pop()
		} else {
			dc.DrawStringAnchored(a.Text, px, py, a.Align.Anchor(), a.Baseline.Anchor())
		}

	case *annotations.LabelSet:
		if !a.Visible || a.Source == nil {
			return
		}
		xs := a.Source.Column(a.X)
		ys := a.Source.Column(a.Y)
		texts := a.Source.StringColumn(a.Text)
		n := min(len(xs), len(ys), len(texts))
		dc.SetRGBA(a.TextColor.R, a.TextColor.G, a.TextColor.B, a.TextColor.A*a.TextAlpha)
		for i := range n {
			px, py := projectAnnotationPoint(fr, xs[i], ys[i], a.XUnits, a.YUnits)
			dc.DrawStringAnchored(texts[i], px+a.XOffset, py+a.YOffset, a.Align.Anchor(), a.Baseline.Anchor())
		}

	case *annotations.Title:
		if !a.Visible {
			return
		}
		dc.SetRGBA(a.TextColor.R, a.TextColor.G, a.TextColor.B, a.TextColor.A*a.TextAlpha)
		x := fr.X0 + fr.Width()*a.Align.Anchor()
		dc.DrawStringAnchored(a.Text, x, fr.Y0-8, a.Align.Anchor(), 0)
	}
}

// drawTitle paints the figure title above the plot area.
func (f *Figure) drawTitle(dc *gg.Context, fr Frame) {
	if f.title == nil {
		return
	}
	f.drawAnnotation(dc, fr, f.title)
}

// drawLegend paints a simple legend block in the top-right corner of the
// plot area: one color swatch and label per entry.
func (f *Figure) drawLegend(dc *gg.Context, fr Frame) {
	if !f.legend.Visible || f.legend.Len() == 0 {
		return
	}

	const (
		swatch  = 10.0
		rowH    = 16.0
		padding = 6.0
	)

	x := fr.X1 - 110
	y := fr.Y0 + padding

	for _, item := range f.legend.Items() {
		col, ok := legendSwatchColor(item, f.renderers)
		if ok {
			dc.SetRGBA(col.R, col.G, col.B, col.A)
			dc.DrawRectangle(x, y, swatch, swatch)
			dc.Fill()
		}
		dc.SetRGBA(0, 0, 0, 1)
		dc.DrawStringAnchored(item.Label, x+swatch+padding, y+swatch, 0, 0)
		y += rowH
	}
}

// legendSwatchColor picks the swatch color from the entry's first resolved
// glyph renderer.
func legendSwatchColor(item LegendItem, all []Renderer) (gg.RGBA, bool) {
	for _, r := range item.Resolve(all) {
		gr, ok := r.(*GlyphRenderer)
		if !ok {
			continue
		}
		switch g := gr.Glyph.(type) {
		case *glyphs.Circle:
			return g.Color, true
		case *glyphs.Square:
			return g.Color, true
		case *glyphs.Line:
			return g.Color, true
		case *glyphs.Segment:
			return g.Color, true
		}
	}
	return gg.RGBA{}, false
}
