// Package plot provides the figure composition layer for the gogpu
// plotting stack.
//
// # Overview
//
// A Figure owns an ordered collection of renderers (glyph renderers and
// other drawables) and four ordered axis collections, one per side. This
// package resolves which renderers participate in shared behaviors such
// as tool targeting and legend assembly, and exposes side-aware axis
// proxies so callers can configure "the" x-axis or "the" y-axis without
// enumerating individual axis instances.
//
// # Quick Start
//
//	import "github.com/gogpu/plot"
//
//	source := plot.NewColumnDataSource()
//	source.SetColumn("x", []float64{1, 2, 3})
//	source.SetColumn("y", []float64{4, 1, 6})
//
//	fig := plot.NewFigure(
//	    plot.WithXRange(0, 4),
//	    plot.WithYRange(0, 10),
//	)
//	fig.Circle("x", "y", source, plot.GlyphColor(gg.Red))
//	fig.XAxis().SetLabel("time")
//
//	dc := gg.NewContext(600, 600)
//	if err := fig.RenderTo(dc); err != nil {
//	    log.Fatal(err)
//	}
//	dc.SavePNG("figure.png")
//
// # Renderer selection
//
// Tools and legend items carry a Selection: none, auto ("every renderer
// currently on the figure"), or an explicit list. ComputeRenderers resolves
// a Selection against the figure's current renderer collection; it is a
// pure function with no failure path.
//
// # Axis proxies
//
// XAxis and YAxis return a fresh AxisProxy over the current members of the
// x-family (below+above) or y-family (left+right). Writes broadcast to every
// member. Direct property reads are only valid when the family has exactly
// one member; otherwise they fail with a SingularAccessError. Proxies are
// never retained by the figure: every accessor call re-derives the proxy
// from the live collections, so axes attached between two accesses are
// visible on the next access without any invalidation step.
//
// # Rendering
//
// Figure.RenderTo paints onto a gg.Context from github.com/gogpu/gg. This
// package composes figures; rasterization, text shaping, and GPU submission
// belong to the renderer.
package plot

// Version information
const (
	// Version is the current version of the library
	Version = "0.2.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 2

	// VersionPatch is the patch version
	VersionPatch = 0
)
