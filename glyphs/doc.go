// Package glyphs defines declarative glyph descriptors for the plot
// figure layer.
//
// A glyph names the data columns it draws from and carries its visual
// styling; it does not draw itself. The figure's renderer walks glyph
// renderers, resolves the named columns against the renderer's data
// source, and paints with the gg drawing context. Keeping glyphs
// declarative keeps them cheap to construct, compare, and test, and keeps
// all painting in one place.
package glyphs
