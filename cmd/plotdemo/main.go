// Command plotdemo demonstrates the plot figure layer.
//
// It composes a scatter figure with three point columns, a label set
// naming each column, an x-axis placed above the plot area, and no
// toolbar, then renders it to a PNG via gg.
package main

import (
	"flag"
	"log"
	"math/rand"

	"github.com/gogpu/gg"
	"github.com/gogpu/plot"
	"github.com/gogpu/plot/annotations"
)

func main() {
	var (
		width  = flag.Int("width", 600, "image width")
		height = flag.Int("height", 600, "image height")
		output = flag.String("output", "demo.png", "output file")
		points = flag.Int("points", 1000, "points per column")
		seed   = flag.Int64("seed", 1, "random seed")
	)
	flag.Parse()

	rng := rand.New(rand.NewSource(*seed))

	n := *points
	xs := make([]float64, n)
	xn := make([]float64, n)
	xu := make([]float64, n)
	ys := make([]float64, n)
	for i := range n {
		xs[i] = 1
		xn[i] = 2 + rng.NormFloat64()*0.1
		xu[i] = 3 + (rng.Float64()-0.5)*0.2
		ys[i] = rng.Float64() * 10
	}

	source := plot.NewColumnDataSource()
	for name, col := range map[string][]float64{"x": xs, "xn": xn, "xu": xu, "y": ys} {
		if err := source.SetColumn(name, col); err != nil {
			log.Fatalf("set column %s: %v", name, err)
		}
	}

	fig := plot.NewFigure(
		plot.WithSize(*width, *height),
		plot.WithXRange(0, 4),
		plot.WithYRange(0, 10),
		plot.WithXAxisLocation(plot.SideAbove),
		plot.WithToolbarLocation(plot.ToolbarHidden),
	)

	fig.Circle("x", "y", source,
		plot.GlyphColor(plot.MustColor("firebrick")), plot.GlyphSize(5), plot.GlyphAlpha(0.5),
		plot.LegendLabel("original"))
	fig.Circle("xn", "y", source,
		plot.GlyphColor(plot.MustColor("olive")), plot.GlyphSize(5), plot.GlyphAlpha(0.5),
		plot.LegendLabel("normal"))
	fig.Circle("xu", "y", source,
		plot.GlyphColor(plot.MustColor("navy")), plot.GlyphSize(5), plot.GlyphAlpha(0.5),
		plot.LegendLabel("uniform"))

	labelData := plot.NewColumnDataSource()
	if err := labelData.SetColumn("x", []float64{1, 2, 3}); err != nil {
		log.Fatal(err)
	}
	if err := labelData.SetColumn("y", []float64{0, 0, 0}); err != nil {
		log.Fatal(err)
	}
	if err := labelData.SetStringColumn("t", []string{"Original", "Normal", "Uniform"}); err != nil {
		log.Fatal(err)
	}

	labels := annotations.NewLabelSet(labelData, "x", "y", "t")
	labels.YOffset = -4
	labels.Align = annotations.AlignCenter
	labels.Baseline = annotations.BaselineTop
	fig.AddLayout(labels, plot.SideCenter)

	fig.XAxis().SetLabel("jitter distribution")
	fig.YAxis().SetLabel("value")

	dc := gg.NewContext(*width, *height)
	if err := fig.RenderTo(dc); err != nil {
		log.Fatalf("render: %v", err)
	}
	if err := dc.SavePNG(*output); err != nil {
		log.Fatalf("save: %v", err)
	}

	log.Printf("Demo saved to %s (%dx%d, %d renderers)\n",
		*output, *width, *height, len(fig.Renderers()))
}
