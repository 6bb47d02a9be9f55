package plot

import (
	"fmt"

	"github.com/gogpu/gg"
	"github.com/gogpu/plot/glyphs"
)

// GlyphOption configures a glyph created through a Figure glyph method.
type GlyphOption func(*glyphOptions)

// glyphOptions holds optional glyph configuration.
type glyphOptions struct {
	size        float64
	width       float64
	color       gg.RGBA
	hasColor    bool
	alpha       float64
	hasAlpha    bool
	legendLabel string
	name        string
}

// GlyphSize sets the glyph size in pixels (circle diameter, square edge).
func GlyphSize(size float64) GlyphOption {
	return func(o *glyphOptions) {
		o.size = size
	}
}

// GlyphColor sets the glyph fill or stroke color.
func GlyphColor(c gg.RGBA) GlyphOption {
	return func(o *glyphOptions) {
		o.color = c
		o.hasColor = true
	}
}

// GlyphAlpha scales the glyph opacity in [0, 1].
func GlyphAlpha(alpha float64) GlyphOption {
	return func(o *glyphOptions) {
		o.alpha = alpha
		o.hasAlpha = true
	}
}

// GlyphLineWidth sets the stroke width for line and segment glyphs.
func GlyphLineWidth(width float64) GlyphOption {
	return func(o *glyphOptions) {
		o.width = width
	}
}

// LegendLabel adds the created renderer to the figure's legend under the
// given label. Renderers created with the same label merge into one entry.
func LegendLabel(label string) GlyphOption {
	return func(o *glyphOptions) {
		o.legendLabel = label
	}
}

// RendererName overrides the generated renderer name.
func RendererName(name string) GlyphOption {
	return func(o *glyphOptions) {
		o.name = name
	}
}

// Circle adds a circle glyph renderer over the named coordinate columns
// and returns it. Renderers are appended in call order.
func (f *Figure) Circle(x, y string, source *ColumnDataSource, opts ...GlyphOption) *GlyphRenderer {
	o := applyGlyphOptions(opts)
	g := glyphs.NewCircle(x, y)
	if o.size > 0 {
		g.Size = o.size
	}
	if o.hasColor {
		g.Color = o.color
	}
	if o.hasAlpha {
		g.Alpha = o.alpha
	}
	return f.addGlyph(g, source, o)
}

// Square adds a square glyph renderer over the named coordinate columns
// and returns it.
func (f *Figure) Square(x, y string, source *ColumnDataSource, opts ...GlyphOption) *GlyphRenderer {
	o := applyGlyphOptions(opts)
	g := glyphs.NewSquare(x, y)
	if o.size > 0 {
		g.Size = o.size
	}
	if o.hasColor {
		g.Color = o.color
	}
	if o.hasAlpha {
		g.Alpha = o.alpha
	}
	return f.addGlyph(g, source, o)
}

// Line adds a polyline glyph renderer over the named coordinate columns
// and returns it.
func (f *Figure) Line(x, y string, source *ColumnDataSource, opts ...GlyphOption) *GlyphRenderer {
	o := applyGlyphOptions(opts)
	g := glyphs.NewLine(x, y)
	if o.width > 0 {
		g.Width = o.width
	}
	if o.hasColor {
		g.Color = o.color
	}
	if o.hasAlpha {
		g.Alpha = o.alpha
	}
	return f.addGlyph(g, source, o)
}

// Segment adds a per-row segment glyph renderer over the named endpoint
// columns and returns it.
func (f *Figure) Segment(x0, y0, x1, y1 string, source *ColumnDataSource, opts ...GlyphOption) *GlyphRenderer {
	o := applyGlyphOptions(opts)
	g := glyphs.NewSegment(x0, y0, x1, y1)
	if o.width > 0 {
		g.Width = o.width
	}
	if o.hasColor {
		g.Color = o.color
	}
	if o.hasAlpha {
		g.Alpha = o.alpha
	}
	return f.addGlyph(g, source, o)
}

// applyGlyphOptions folds the options into a glyphOptions value.
func applyGlyphOptions(opts []GlyphOption) glyphOptions {
	var o glyphOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// addGlyph wraps a glyph in a renderer, attaches it, and wires the legend.
func (f *Figure) addGlyph(g glyphs.Glyph, source *ColumnDataSource, o glyphOptions) *GlyphRenderer {
	name := o.name
	if name == "" {
		f.glyphSeq++
		name = fmt.Sprintf("%s-%04d", g.GlyphName(), f.glyphSeq)
	}
	r := &GlyphRenderer{
		Glyph:   g,
		Source:  source,
		Visible: true,
		name:    name,
	}
	f.AddRenderer(r)
	if o.legendLabel != "" {
		f.legend.AddItem(o.legendLabel, ExplicitRenderers(r))
	}
	return r
}
