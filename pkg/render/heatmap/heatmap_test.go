package heatmap

import (
	"bytes"
	"image/png"
	"strings"
	"testing"

	"github.com/ispi-lubango/tuscaviz/pkg/report"
)

func TestColormapEndpoints(t *testing.T) {
	cmap := RdYlGn(0, 100)

	if got := cmap.At(0).Hex(); got != "#a50026" {
		t.Errorf("At(0) = %s, want #a50026", got)
	}
	if got := cmap.At(100).Hex(); got != "#006837" {
		t.Errorf("At(100) = %s, want #006837", got)
	}
	if got := cmap.At(50).Hex(); got != "#ffffbf" {
		t.Errorf("At(50) = %s, want #ffffbf", got)
	}
	if cmap.At(-10) != cmap.At(0) || cmap.At(150) != cmap.At(100) {
		t.Error("out-of-range values should clamp to the end colors")
	}
}

func TestColormapGreensHigh(t *testing.T) {
	cmap := RdYlGn(0, 100)
	hi := cmap.At(95)
	lo := cmap.At(2)
	if hi.G <= hi.R {
		t.Errorf("At(95) = %s should be green-dominant", hi.Hex())
	}
	if lo.R <= lo.G {
		t.Errorf("At(2) = %s should be red-dominant", lo.Hex())
	}
}

func TestTextColor(t *testing.T) {
	tests := []struct {
		v    float64
		want string
	}{
		{95, "#ffffff"},
		{51, "#ffffff"},
		{50, "#000000"},
		{2, "#000000"},
	}
	for _, tt := range tests {
		if got := TextColor(tt.v); got != tt.want {
			t.Errorf("TextColor(%v) = %s, want %s", tt.v, got, tt.want)
		}
	}
}

func TestCellText(t *testing.T) {
	if got := CellText(95); got != "95%" {
		t.Errorf("CellText(95) = %q", got)
	}
	if got := CellText(2.5); got != "2.5%" {
		t.Errorf("CellText(2.5) = %q", got)
	}
}

func TestGeometryFitsFrame(t *testing.T) {
	m := report.TUSCA().Matrix
	for _, opts := range []Options{Standalone(), Panel()} {
		frame := Frame{X: 10, Y: 20, W: 1000, H: 800}
		g, err := newGeometry(frame, m, opts)
		if err != nil {
			t.Fatal(err)
		}
		if g.plot.X < frame.X || g.plot.Y < frame.Y {
			t.Errorf("plot %+v starts outside frame %+v", g.plot, frame)
		}
		if g.plot.X+g.plot.W > frame.X+frame.W || g.plot.Y+g.plot.H > frame.Y+frame.H {
			t.Errorf("plot %+v ends outside frame %+v", g.plot, frame)
		}
		if opts.Colorbar && g.bar.X+g.bar.W > frame.X+frame.W {
			t.Errorf("colorbar %+v outside frame", g.bar)
		}
		if g.cellW <= 0 || g.cellH <= 0 {
			t.Errorf("cell size = %vx%v", g.cellW, g.cellH)
		}
	}
}

func TestRenderPNG(t *testing.T) {
	data, err := RenderPNG(report.TUSCA().Matrix, Standalone(), 500, 400)
	if err != nil {
		t.Fatalf("RenderPNG() error: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("png.Decode() error: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 500 || b.Dy() != 400 {
		t.Errorf("bounds = %v, want 500x400", b)
	}
}

func TestImageCellColors(t *testing.T) {
	m := report.TUSCA().Matrix
	opts := Panel()
	opts.Title = ""
	img, err := Image(m, opts, 600, 600)
	if err != nil {
		t.Fatal(err)
	}
	g, err := newGeometry(Frame{W: 600, H: 600}, m, opts)
	if err != nil {
		t.Fatal(err)
	}

	// Sample a corner of cell [0][1] (2%) away from its annotation.
	x := int(g.plot.X + g.cellW + 3)
	y := int(g.plot.Y + 3)
	r, gr, _, _ := img.At(x, y).RGBA()
	if r <= gr {
		t.Errorf("cell [0][1] at (%d,%d) should be red-dominant, got r=%d g=%d", x, y, r, gr)
	}
}

func TestRenderSVG(t *testing.T) {
	opts := Standalone()
	opts.Title = "TUSCA - Confusion Matrix"
	data, err := RenderSVG(report.TUSCA().Matrix, opts, 1000, 800)
	if err != nil {
		t.Fatalf("RenderSVG() error: %v", err)
	}
	svg := string(data)

	if !strings.HasPrefix(svg, "<svg") || !strings.HasSuffix(svg, "</svg>\n") {
		t.Error("output should be a complete svg element")
	}
	for _, want := range []string{"95%", "88%", "96%", "90%", "PREDICTED", "ACTUAL", "linearGradient", "TUSCA - Confusion Matrix"} {
		if !strings.Contains(svg, want) {
			t.Errorf("svg missing %q", want)
		}
	}
	if got := strings.Count(svg, "<rect"); got < 16 {
		t.Errorf("svg has %d rects, want at least 16 cells", got)
	}
}

func TestWriteSVGEscapes(t *testing.T) {
	m := report.ConfusionMatrix{Labels: []string{"A<B"}, Values: [][]float64{{100}}}
	var buf bytes.Buffer
	if err := WriteSVG(&buf, Frame{W: 300, H: 300}, m, Panel()); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(buf.String(), "A<B") {
		t.Error("labels should be XML-escaped")
	}
}
