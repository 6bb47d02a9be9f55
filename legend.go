package plot

import "slices"

// LegendItem is one legend entry: a label paired with the renderer
// selection the entry represents.
type LegendItem struct {
	Label     string
	Renderers Selection
}

// Resolve returns the renderers the entry covers, resolved against the
// figure's current renderer collection.
func (it LegendItem) Resolve(all []Renderer) []Renderer {
	return ComputeRenderers(it.Renderers, all)
}

// Legend assembles legend entries for a figure. Entries are created
// explicitly through AddItem or implicitly by glyph methods given a
// LegendLabel option.
type Legend struct {
	// Visible controls whether the legend is painted.
	Visible bool

	items []LegendItem
}

// AddItem adds a legend entry. When an entry with the same label already
// exists and both selections are explicit, the renderers are merged into
// the existing entry instead, preserving first-seen label order.
func (l *Legend) AddItem(label string, sel Selection) {
	l.Visible = true
	if sel.kind == selectExplicit {
		for i := range l.items {
			if l.items[i].Label == label && l.items[i].Renderers.kind == selectExplicit {
				l.items[i].Renderers.renderers = append(l.items[i].Renderers.renderers, sel.renderers...)
				return
			}
		}
	}
	l.items = append(l.items, LegendItem{Label: label, Renderers: sel})
}

// Items returns the legend entries as an ordered snapshot.
func (l *Legend) Items() []LegendItem {
	return slices.Clone(l.items)
}

// Len returns the number of legend entries.
func (l *Legend) Len() int { return len(l.items) }
