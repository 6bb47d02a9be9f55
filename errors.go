package plot

import (
	"errors"
	"fmt"
)

// Sentinel errors for the plot package.
var (
	// ErrSingularAccess is matched (via errors.Is) by every
	// SingularAccessError. It is returned when a property is read through
	// an axis proxy whose family does not have exactly one member.
	ErrSingularAccess = errors.New("plot: singular axis access on non-singleton family")

	// ErrNilContext is returned when rendering is attempted on a nil
	// drawing context.
	ErrNilContext = errors.New("plot: nil drawing context")
)

// SingularAccessError indicates an ambiguous or absent singular axis access:
// a property read through an AxisProxy whose bound family has zero or more
// than one member. The request "the axis label" is underspecified in that
// case; silently returning the first member's value would hide
// configuration bugs, so the read always fails instead.
type SingularAccessError struct {
	// Family is the axis family the proxy is bound to.
	Family Family

	// Property is the property whose read was attempted (e.g. "label").
	Property string

	// Count is the family's member count at the time of the read.
	Count int
}

func (e *SingularAccessError) Error() string {
	return fmt.Sprintf("plot: cannot read %s of the %s axis: family has %d members, want exactly 1",
		e.Property, e.Family, e.Count)
}

// Is reports whether target is ErrSingularAccess, so callers can branch
// with errors.Is without unpacking the struct.
func (e *SingularAccessError) Is(target error) bool {
	return target == ErrSingularAccess
}

// InvalidSideError indicates an axis was attached to a side that does not
// belong to an axis family (e.g. SideCenter).
type InvalidSideError struct {
	Side Side
}

func (e *InvalidSideError) Error() string {
	return "plot: side " + e.Side.String() + " cannot hold an axis"
}

// ColumnLengthError indicates a column whose length does not match the
// columns already present in a ColumnDataSource.
type ColumnLengthError struct {
	Column string
	Got    int
	Want   int
}

func (e *ColumnLengthError) Error() string {
	return fmt.Sprintf("plot: column %q has %d values, want %d", e.Column, e.Got, e.Want)
}

// UnknownColorError indicates a color name that is neither a recognized
// CSS/SVG name nor a hex literal.
type UnknownColorError struct {
	Name string
}

func (e *UnknownColorError) Error() string {
	return "plot: unknown color name: " + e.Name
}
