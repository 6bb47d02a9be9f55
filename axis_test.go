package plot

import (
	"testing"

	"github.com/gogpu/gg"
)

func TestNewAxisDefaults(t *testing.T) {
	a := NewAxis()
	if !a.Visible() {
		t.Error("new axis should be visible")
	}
	if a.Label() != "" {
		t.Errorf("Label() = %q, want empty", a.Label())
	}
	if a.LineColor() != gg.Black {
		t.Errorf("LineColor() = %v, want black", a.LineColor())
	}
	if a.LineWidth() != 1 {
		t.Errorf("LineWidth() = %v, want 1", a.LineWidth())
	}
	if a.TickCount() != 6 {
		t.Errorf("TickCount() = %d, want 6", a.TickCount())
	}
}

func TestAxisSetTickCountClamps(t *testing.T) {
	a := NewAxis()
	a.SetTickCount(0)
	if a.TickCount() != 2 {
		t.Errorf("TickCount() after SetTickCount(0) = %d, want 2", a.TickCount())
	}
	a.SetTickCount(11)
	if a.TickCount() != 11 {
		t.Errorf("TickCount() = %d, want 11", a.TickCount())
	}
}

func TestSideString(t *testing.T) {
	tests := []struct {
		side Side
		want string
	}{
		{SideBelow, "below"},
		{SideAbove, "above"},
		{SideLeft, "left"},
		{SideRight, "right"},
		{SideCenter, "center"},
		{Side(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.side.String(); got != tt.want {
			t.Errorf("Side(%d).String() = %q, want %q", tt.side, got, tt.want)
		}
	}
}

func TestSideFamily(t *testing.T) {
	tests := []struct {
		side   Side
		family Family
		ok     bool
	}{
		{SideBelow, XFamily, true},
		{SideAbove, XFamily, true},
		{SideLeft, YFamily, true},
		{SideRight, YFamily, true},
		{SideCenter, 0, false},
	}
	for _, tt := range tests {
		family, ok := tt.side.Family()
		if ok != tt.ok {
			t.Errorf("%s.Family() ok = %v, want %v", tt.side, ok, tt.ok)
			continue
		}
		if ok && family != tt.family {
			t.Errorf("%s.Family() = %v, want %v", tt.side, family, tt.family)
		}
	}
}

func TestFamilyString(t *testing.T) {
	if XFamily.String() != "x" || YFamily.String() != "y" {
		t.Error("Family.String() mismatch")
	}
}
