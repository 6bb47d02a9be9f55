package plot

import "github.com/gogpu/gg"

// FigureOption configures a Figure during creation.
//
// Example:
//
//	fig := plot.NewFigure(
//	    plot.WithSize(800, 400),
//	    plot.WithXRange(0, 4),
//	    plot.WithXAxisLocation(plot.SideAbove),
//	    plot.WithToolbarLocation(plot.ToolbarHidden),
//	)
type FigureOption func(*figureOptions)

// figureOptions holds optional configuration for Figure creation.
type figureOptions struct {
	width  int
	height int
	title  string

	background gg.RGBA

	xRange    Range1d
	yRange    Range1d
	hasXRange bool
	hasYRange bool

	xAxisLocation Side
	yAxisLocation Side
	xAxisHidden   bool
	yAxisHidden   bool

	toolbarLocation ToolbarLocation
}

// defaultFigureOptions returns the default figure options: 600x600 pixels,
// white background, auto-ranged axes, x-axis below, y-axis left, toolbar
// above.
func defaultFigureOptions() figureOptions {
	return figureOptions{
		width:           600,
		height:          600,
		background:      gg.White,
		xAxisLocation:   SideBelow,
		yAxisLocation:   SideLeft,
		toolbarLocation: ToolbarAbove,
	}
}

// WithSize sets the figure dimensions in pixels.
// Non-positive values leave the defaults in place.
func WithSize(width, height int) FigureOption {
	return func(o *figureOptions) {
		if width > 0 {
			o.width = width
		}
		if height > 0 {
			o.height = height
		}
	}
}

// WithTitle sets the figure title text.
func WithTitle(title string) FigureOption {
	return func(o *figureOptions) {
		o.title = title
	}
}

// WithBackground sets the figure background color.
func WithBackground(c gg.RGBA) FigureOption {
	return func(o *figureOptions) {
		o.background = c
	}
}

// WithXRange sets an explicit x range, disabling x auto-ranging.
func WithXRange(start, end float64) FigureOption {
	return func(o *figureOptions) {
		o.xRange = NewRange1d(start, end)
		o.hasXRange = true
	}
}

// WithYRange sets an explicit y range, disabling y auto-ranging.
func WithYRange(start, end float64) FigureOption {
	return func(o *figureOptions) {
		o.yRange = NewRange1d(start, end)
		o.hasYRange = true
	}
}

// WithXAxisLocation places the default x-axis on the given side.
// Only SideBelow and SideAbove are meaningful; other sides are rejected
// during NewFigure and fall back to SideBelow with a warning.
func WithXAxisLocation(side Side) FigureOption {
	return func(o *figureOptions) {
		o.xAxisLocation = side
	}
}

// WithYAxisLocation places the default y-axis on the given side.
// Only SideLeft and SideRight are meaningful.
func WithYAxisLocation(side Side) FigureOption {
	return func(o *figureOptions) {
		o.yAxisLocation = side
	}
}

// WithoutXAxis creates the figure with an empty x-family.
// Axes can still be attached later with AddAxis.
func WithoutXAxis() FigureOption {
	return func(o *figureOptions) {
		o.xAxisHidden = true
	}
}

// WithoutYAxis creates the figure with an empty y-family.
func WithoutYAxis() FigureOption {
	return func(o *figureOptions) {
		o.yAxisHidden = true
	}
}

// WithToolbarLocation places the toolbar, or hides it with ToolbarHidden.
func WithToolbarLocation(loc ToolbarLocation) FigureOption {
	return func(o *figureOptions) {
		o.toolbarLocation = loc
	}
}
