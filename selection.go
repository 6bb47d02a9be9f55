package plot

import "slices"

// selectionKind discriminates the three shapes a Selection can take.
type selectionKind uint8

const (
	selectNone selectionKind = iota
	selectAuto
	selectExplicit
)

// Selection describes which renderers participate in a shared behavior,
// such as tool targeting or legend assembly. It has exactly three shapes:
//
//   - none: no renderers, regardless of what is attached to the figure
//   - auto: every renderer currently attached to the figure
//   - explicit: a caller-chosen ordered list
//
// The distinction between none and auto matters because the figure's
// renderer collection is dynamic: none means "deliberately nothing", auto
// means "whatever is attached at resolution time". An explicit empty list
// behaves like none.
//
// The zero value is the none selection.
type Selection struct {
	kind      selectionKind
	renderers []Renderer
}

// NoRenderers returns the selection that resolves to no renderers.
func NoRenderers() Selection {
	return Selection{kind: selectNone}
}

// AutoRenderers returns the selection that resolves to every renderer
// currently attached to the figure.
func AutoRenderers() Selection {
	return Selection{kind: selectAuto}
}

// ExplicitRenderers returns a selection resolving to exactly the given
// renderers, in the given order. The list is not filtered against the
// figure's renderer collection: membership is the caller's responsibility.
// An empty list behaves like NoRenderers.
func ExplicitRenderers(renderers ...Renderer) Selection {
	return Selection{kind: selectExplicit, renderers: slices.Clone(renderers)}
}

// IsAuto reports whether the selection resolves to the figure's current
// renderer collection.
func (s Selection) IsAuto() bool { return s.kind == selectAuto }

// IsEmpty reports whether the selection always resolves to no renderers
// (none, or an explicit empty list).
func (s Selection) IsEmpty() bool {
	return s.kind != selectAuto && len(s.renderers) == 0
}

// String returns a human-readable name for the selection shape.
func (s Selection) String() string {
	switch s.kind {
	case selectAuto:
		return "auto"
	case selectExplicit:
		return "explicit"
	default:
		return "none"
	}
}

// ComputeRenderers resolves a selection against the figure's current
// renderer collection:
//
//   - none or explicit-empty: an empty result, regardless of all
//   - auto: all, same elements and order (including zero elements)
//   - explicit non-empty: the caller's list, same elements and order,
//     not filtered against all
//
// ComputeRenderers is pure: it mutates neither argument, and identical
// inputs yield equal results. Every input shape is valid; absence of
// renderers is an empty result, never a failure.
func ComputeRenderers(sel Selection, all []Renderer) []Renderer {
	switch {
	case sel.kind == selectAuto:
		return slices.Clone(all)
	case len(sel.renderers) == 0:
		return nil
	default:
		return slices.Clone(sel.renderers)
	}
}
