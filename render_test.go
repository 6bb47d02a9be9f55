package plot

import (
	"errors"
	"testing"

	"github.com/gogpu/gg"
	"github.com/gogpu/plot/annotations"
)

func TestRenderToNilContext(t *testing.T) {
	fig := NewFigure()
	if err := fig.RenderTo(nil); !errors.Is(err, ErrNilContext) {
		t.Errorf("RenderTo(nil) = %v, want ErrNilContext", err)
	}
}

func TestRenderToEmptyFigure(t *testing.T) {
	fig := NewFigure(WithSize(120, 120))
	dc := gg.NewContext(120, 120)
	if err := fig.RenderTo(dc); err != nil {
		t.Fatalf("RenderTo(empty figure) = %v", err)
	}
}

func TestRenderToFullFigure(t *testing.T) {
	source := NewColumnDataSource()
	if err := source.SetColumn("x", []float64{1, 2, 3}); err != nil {
		t.Fatal(err)
	}
	if err := source.SetColumn("y", []float64{1, 4, 9}); err != nil {
		t.Fatal(err)
	}
	if err := source.SetStringColumn("t", []string{"a", "b", "c"}); err != nil {
		t.Fatal(err)
	}

	fig := NewFigure(
		WithSize(200, 200),
		WithTitle("render test"),
		WithXRange(0, 4),
		WithYRange(0, 10),
		WithXAxisLocation(SideAbove),
	)
	fig.Circle("x", "y", source, GlyphSize(5), GlyphAlpha(0.5), LegendLabel("points"))
	fig.Line("x", "y", source, GlyphLineWidth(2))
	fig.Square("x", "y", source)

	labels := annotations.NewLabelSet(source, "x", "y", "t")
	labels.YOffset = -4
	fig.AddLayout(labels, SideCenter)
	fig.AddLayout(annotations.NewLabel(2, 5, "marker"), SideCenter)

	dc := gg.NewContext(200, 200)
	if err := fig.RenderTo(dc); err != nil {
		t.Fatalf("RenderTo(full figure) = %v", err)
	}
}

func TestRenderToSkipsInvisibleAndUnknown(t *testing.T) {
	source := NewColumnDataSource()
	if err := source.SetColumn("x", []float64{1}); err != nil {
		t.Fatal(err)
	}
	if err := source.SetColumn("y", []float64{1}); err != nil {
		t.Fatal(err)
	}

	fig := NewFigure(WithSize(100, 100))
	r := fig.Circle("x", "y", source)
	r.Visible = false
	fig.AddRenderer(&stubRenderer{name: "opaque"}) // unknown kind, skipped

	dc := gg.NewContext(100, 100)
	if err := fig.RenderTo(dc); err != nil {
		t.Fatalf("RenderTo = %v", err)
	}
}

func TestRenderToSegmentGlyph(t *testing.T) {
	source := NewColumnDataSource()
	for name, col := range map[string][]float64{
		"x0": {0, 1}, "y0": {0, 1}, "x1": {2, 3}, "y1": {2, 3},
	} {
		if err := source.SetColumn(name, col); err != nil {
			t.Fatal(err)
		}
	}

	fig := NewFigure(WithSize(100, 100))
	fig.Segment("x0", "y0", "x1", "y1", source, GlyphLineWidth(3))

	dc := gg.NewContext(100, 100)
	if err := fig.RenderTo(dc); err != nil {
		t.Fatalf("RenderTo(segment) = %v", err)
	}
}

func TestRenderToAllSidesAndGlyphKinds(t *testing.T) {
	// One render pass through every paint path: axes on all four sides,
	// all four glyph kinds, a boxed label, and a legend.
	source := NewColumnDataSource()
	for name, col := range map[string][]float64{
		"x": {1, 2, 3}, "y": {1, 4, 9},
		"x1": {2, 3, 4}, "y1": {2, 5, 10},
	} {
		if err := source.SetColumn(name, col); err != nil {
			t.Fatal(err)
		}
	}

	fig := NewFigure(WithSize(240, 240), WithTitle("all paths"))
	if err := fig.AddAxis(NewAxis(), SideAbove); err != nil {
		t.Fatalf("AddAxis(above) = %v", err)
	}
	if err := fig.AddAxis(NewAxis(), SideRight); err != nil {
		t.Fatalf("AddAxis(right) = %v", err)
	}

	fig.Circle("x", "y", source, LegendLabel("points"))
	fig.Square("x", "y", source)
	fig.Line("x", "y", source)
	fig.Segment("x", "y", "x1", "y1", source)

	boxed := annotations.NewLabel(2, 4, "boxed")
	boxed.FillColor = gg.White
	boxed.FillAlpha = 0.8
	boxed.Angle = 0.3
	fig.AddLayout(boxed, SideCenter)

	dc := gg.NewContext(240, 240)
	if err := fig.RenderTo(dc); err != nil {
		t.Fatalf("RenderTo(all paths) = %v", err)
	}
}

func TestRenderDoesNotMutateFigure(t *testing.T) {
	source := NewColumnDataSource()
	if err := source.SetColumn("x", []float64{1, 2}); err != nil {
		t.Fatal(err)
	}
	if err := source.SetColumn("y", []float64{3, 4}); err != nil {
		t.Fatal(err)
	}

	fig := NewFigure(WithSize(100, 100))
	fig.Circle("x", "y", source)

	before := len(fig.Renderers())
	dc := gg.NewContext(100, 100)
	if err := fig.RenderTo(dc); err != nil {
		t.Fatal(err)
	}
	if got := len(fig.Renderers()); got != before {
		t.Errorf("renderer count changed during render: %d -> %d", before, got)
	}
	if fig.XRange() != (Range1d{}) {
		t.Errorf("auto-ranged figure gained an explicit range: %v", fig.XRange())
	}
}

func TestProjectAnnotationPoint(t *testing.T) {
	fr := Frame{
		X0: 10, Y0: 20, X1: 110, Y1: 120,
		XRange: NewRange1d(0, 1),
		YRange: NewRange1d(0, 1),
	}

	// Data units project through the ranges.
	px, py := projectAnnotationPoint(fr, 0.5, 0.5, annotations.UnitsData, annotations.UnitsData)
	if px != 60 || py != 70 {
		t.Errorf("data projection = (%v, %v), want (60, 70)", px, py)
	}

	// Screen units are pixels relative to the frame origin.
	px, py = projectAnnotationPoint(fr, 5, 7, annotations.UnitsScreen, annotations.UnitsScreen)
	if px != 15 || py != 27 {
		t.Errorf("screen projection = (%v, %v), want (15, 27)", px, py)
	}
}
