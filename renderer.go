package plot

import (
	"github.com/gogpu/plot/glyphs"
)

// Renderer is a figure-attached drawable entity, such as a glyph renderer.
// Selection resolution treats renderers as opaque: only identity and order
// matter, never the concrete type.
type Renderer interface {
	// Name returns the renderer's identifying name, unique within a figure
	// unless the caller overrides it.
	Name() string
}

// GlyphRenderer draws one glyph per row of a column data source.
// It is created by the Figure glyph methods (Circle, Square, Line, Segment)
// and appended to the figure's renderer collection in call order.
type GlyphRenderer struct {
	// Glyph describes what to draw for each row.
	Glyph glyphs.Glyph

	// Source provides the data columns the glyph's field names refer to.
	Source *ColumnDataSource

	// Visible controls whether the renderer is painted. Invisible
	// renderers still participate in selection resolution.
	Visible bool

	name string
}

// Name returns the renderer's identifying name.
func (r *GlyphRenderer) Name() string { return r.name }
