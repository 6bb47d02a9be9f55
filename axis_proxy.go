package plot

import (
	"slices"

	"github.com/gogpu/gg"
)

// AxisProxy is a transient, side-aware view over one axis family.
//
// A proxy is valid for the lifetime of one group snapshot: membership is
// fixed when the proxy is constructed, while the member axes themselves
// remain live, shared objects. Figures never retain proxies; XAxis and
// YAxis build a fresh one from the live group on every call, so axes
// attached between two accesses appear on the next access without any
// invalidation step.
//
// Writes broadcast to every member in attachment order and are legal for
// any group size, including zero (a no-op). Direct property reads are only
// valid when the family has exactly one member; for zero or many members
// the read fails with a *SingularAccessError rather than silently picking
// a member or a default. Enumeration (Each, Axes, Labels) is never
// restricted by the singular guard.
type AxisProxy struct {
	family Family
	axes   []*Axis
}

// NewAxisProxy constructs a proxy over a snapshot of the given group.
// Later changes to the group's membership do not affect the proxy.
func NewAxisProxy(family Family, group AxisGroup) AxisProxy {
	return AxisProxy{family: family, axes: slices.Clone(group)}
}

// Family returns the axis family the proxy is bound to.
func (p AxisProxy) Family() Family { return p.family }

// Len returns the number of member axes in the snapshot.
func (p AxisProxy) Len() int { return len(p.axes) }

// Each invokes fn once per member axis, in attachment order.
// It is a no-op for an empty family.
func (p AxisProxy) Each(fn func(*Axis)) {
	for _, a := range p.axes {
		fn(a)
	}
}

// Axes returns the member axes as an ordered snapshot. The returned slice
// is the caller's to keep: axes attached to the figure afterwards never
// appear in it retroactively.
func (p AxisProxy) Axes() []*Axis {
	return slices.Clone(p.axes)
}

// Labels returns the labels of all member axes in attachment order.
// Unlike Label, it is valid for any group size.
func (p AxisProxy) Labels() []string {
	labels := make([]string, len(p.axes))
	for i, a := range p.axes {
		labels[i] = a.Label()
	}
	return labels
}

// single returns the sole member, or a *SingularAccessError when the
// family has zero or more than one member. Every guarded read goes
// through here.
func (p AxisProxy) single(property string) (*Axis, error) {
	if len(p.axes) != 1 {
		return nil, &SingularAccessError{
			Family:   p.family,
			Property: property,
			Count:    len(p.axes),
		}
	}
	return p.axes[0], nil
}

// Label returns the label of the family's sole axis.
// It fails when the family does not have exactly one member.
func (p AxisProxy) Label() (string, error) {
	a, err := p.single("label")
	if err != nil {
		return "", err
	}
	return a.Label(), nil
}

// SetLabel sets the label on every member axis.
func (p AxisProxy) SetLabel(label string) {
	for _, a := range p.axes {
		a.SetLabel(label)
	}
}

// Visible reports whether the family's sole axis is painted.
// It fails when the family does not have exactly one member.
func (p AxisProxy) Visible() (bool, error) {
	a, err := p.single("visible")
	if err != nil {
		return false, err
	}
	return a.Visible(), nil
}

// SetVisible sets visibility on every member axis.
func (p AxisProxy) SetVisible(v bool) {
	for _, a := range p.axes {
		a.SetVisible(v)
	}
}

// LineColor returns the line color of the family's sole axis.
// It fails when the family does not have exactly one member.
func (p AxisProxy) LineColor() (gg.RGBA, error) {
	a, err := p.single("line color")
	if err != nil {
		return gg.RGBA{}, err
	}
	return a.LineColor(), nil
}

// SetLineColor sets the line color on every member axis.
func (p AxisProxy) SetLineColor(c gg.RGBA) {
	for _, a := range p.axes {
		a.SetLineColor(c)
	}
}

// LineWidth returns the line width of the family's sole axis.
// It fails when the family does not have exactly one member.
func (p AxisProxy) LineWidth() (float64, error) {
	a, err := p.single("line width")
	if err != nil {
		return 0, err
	}
	return a.LineWidth(), nil
}

// SetLineWidth sets the line width on every member axis.
func (p AxisProxy) SetLineWidth(w float64) {
	for _, a := range p.axes {
		a.SetLineWidth(w)
	}
}
