package annotations

import "testing"

// sliceSource is a minimal DataSource for tests.
type sliceSource struct {
	nums map[string][]float64
	strs map[string][]string
	n    int
}

func (s *sliceSource) Column(name string) []float64      { return s.nums[name] }
func (s *sliceSource) StringColumn(name string) []string { return s.strs[name] }
func (s *sliceSource) Length() int                       { return s.n }

func TestNewLabelDefaults(t *testing.T) {
	l := NewLabel(1, 2, "hello")
	if l.X != 1 || l.Y != 2 {
		t.Errorf("position = (%v, %v), want (1, 2)", l.X, l.Y)
	}
	if l.Text != "hello" {
		t.Errorf("Text = %q, want %q", l.Text, "hello")
	}
	if l.XUnits != UnitsData || l.YUnits != UnitsData {
		t.Error("default units should be data")
	}
	if !l.Visible {
		t.Error("new label should be visible")
	}
	if l.TextAlpha != 1 {
		t.Errorf("TextAlpha = %v, want 1", l.TextAlpha)
	}
	if l.FillAlpha != 0 {
		t.Errorf("FillAlpha = %v, want 0 (no background box)", l.FillAlpha)
	}
}

func TestNewLabelSet(t *testing.T) {
	src := &sliceSource{
		nums: map[string][]float64{"x": {1, 2, 3}, "y": {0, 0, 0}},
		strs: map[string][]string{"t": {"a", "b", "c"}},
		n:    3,
	}
	ls := NewLabelSet(src, "x", "y", "t")

	if ls.Len() != 3 {
		t.Errorf("Len() = %d, want 3", ls.Len())
	}
	if ls.X != "x" || ls.Y != "y" || ls.Text != "t" {
		t.Errorf("column names = (%q, %q, %q), want (x, y, t)", ls.X, ls.Y, ls.Text)
	}
	if !ls.Visible {
		t.Error("new label set should be visible")
	}
}

func TestLabelSetLenNilSource(t *testing.T) {
	ls := NewLabelSet(nil, "x", "y", "t")
	if ls.Len() != 0 {
		t.Errorf("Len() with nil source = %d, want 0", ls.Len())
	}
}

func TestNewTitleDefaults(t *testing.T) {
	ti := NewTitle("My Plot")
	if ti.Text != "My Plot" {
		t.Errorf("Text = %q, want %q", ti.Text, "My Plot")
	}
	if ti.Style != StyleBold {
		t.Errorf("Style = %v, want bold", ti.Style)
	}
	if ti.Align != AlignLeft {
		t.Errorf("Align = %v, want left", ti.Align)
	}
	if !ti.Visible {
		t.Error("new title should be visible")
	}
}

func TestTextAlignAnchor(t *testing.T) {
	tests := []struct {
		align TextAlign
		want  float64
	}{
		{AlignLeft, 0},
		{AlignCenter, 0.5},
		{AlignRight, 1},
	}
	for _, tt := range tests {
		if got := tt.align.Anchor(); got != tt.want {
			t.Errorf("%s.Anchor() = %v, want %v", tt.align, got, tt.want)
		}
	}
}

func TestTextBaselineAnchor(t *testing.T) {
	tests := []struct {
		baseline TextBaseline
		want     float64
	}{
		{BaselineBottom, 0},
		{BaselineMiddle, 0.5},
		{BaselineTop, 1},
	}
	for _, tt := range tests {
		if got := tt.baseline.Anchor(); got != tt.want {
			t.Errorf("%s.Anchor() = %v, want %v", tt.baseline, got, tt.want)
		}
	}
}

func TestEnumStrings(t *testing.T) {
	if UnitsData.String() != "data" || UnitsScreen.String() != "screen" {
		t.Error("Units.String() mismatch")
	}
	if StyleNormal.String() != "normal" || StyleItalic.String() != "italic" || StyleBold.String() != "bold" {
		t.Error("FontStyle.String() mismatch")
	}
	if AlignCenter.String() != "center" {
		t.Error("TextAlign.String() mismatch")
	}
	if BaselineMiddle.String() != "middle" {
		t.Error("TextBaseline.String() mismatch")
	}
}
