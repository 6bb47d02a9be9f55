package plot

import "slices"

// ToolbarLocation places the figure toolbar, or hides it.
type ToolbarLocation uint8

const (
	// ToolbarAbove places the toolbar above the plot area (default).
	ToolbarAbove ToolbarLocation = iota

	// ToolbarBelow places the toolbar below the plot area.
	ToolbarBelow

	// ToolbarLeft places the toolbar left of the plot area.
	ToolbarLeft

	// ToolbarRight places the toolbar right of the plot area.
	ToolbarRight

	// ToolbarHidden removes the toolbar from the figure surface.
	// Tools remain registered and still resolve their targets.
	ToolbarHidden
)

// String returns a human-readable name for the location.
func (l ToolbarLocation) String() string {
	switch l {
	case ToolbarAbove:
		return "above"
	case ToolbarBelow:
		return "below"
	case ToolbarLeft:
		return "left"
	case ToolbarRight:
		return "right"
	case ToolbarHidden:
		return "hidden"
	default:
		return "unknown"
	}
}

// Tool is an interactive behavior attached to a figure's toolbar.
// Each tool carries a renderer Selection and resolves its concrete targets
// against the figure's current renderer collection at resolution time.
type Tool interface {
	// Name returns the tool's identifying name.
	Name() string

	// Targets resolves the tool's renderer selection against the figure's
	// current renderer collection.
	Targets(all []Renderer) []Renderer
}

// HoverTool reports values under the cursor for its target renderers.
type HoverTool struct {
	// Renderers selects which renderers the tool inspects. Defaults to
	// auto: every renderer on the figure at resolution time.
	Renderers Selection

	// Tooltips maps display labels to column references, in display order.
	Tooltips [][2]string
}

// NewHoverTool creates a hover tool targeting every renderer on the figure.
func NewHoverTool() *HoverTool {
	return &HoverTool{Renderers: AutoRenderers()}
}

// Name returns "hover".
func (t *HoverTool) Name() string { return "hover" }

// Targets resolves the tool's selection against the current collection.
func (t *HoverTool) Targets(all []Renderer) []Renderer {
	return ComputeRenderers(t.Renderers, all)
}

// TapTool selects glyphs on click for its target renderers.
type TapTool struct {
	// Renderers selects which renderers the tool hits. Defaults to auto.
	Renderers Selection
}

// NewTapTool creates a tap tool targeting every renderer on the figure.
func NewTapTool() *TapTool {
	return &TapTool{Renderers: AutoRenderers()}
}

// Name returns "tap".
func (t *TapTool) Name() string { return "tap" }

// Targets resolves the tool's selection against the current collection.
func (t *TapTool) Targets(all []Renderer) []Renderer {
	return ComputeRenderers(t.Renderers, all)
}

// Toolbar holds a figure's tools and placement.
type Toolbar struct {
	// Location places the toolbar on the figure surface.
	Location ToolbarLocation

	tools []Tool
}

// AddTool registers a tool with the toolbar.
func (tb *Toolbar) AddTool(t Tool) {
	if t == nil {
		return
	}
	tb.tools = append(tb.tools, t)
	Logger().Debug("plot: tool added", "tool", t.Name(), "count", len(tb.tools))
}

// Tools returns the registered tools as an ordered snapshot.
func (tb *Toolbar) Tools() []Tool {
	return slices.Clone(tb.tools)
}
