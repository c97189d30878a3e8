package dashboard

import (
	"bytes"
	"image/png"
	"strings"
	"testing"

	"github.com/ispi-lubango/tuscaviz/pkg/render/roccurve"
	"github.com/ispi-lubango/tuscaviz/pkg/report"
	"github.com/ispi-lubango/tuscaviz/pkg/roc"
)

func tuscaData(t *testing.T) Data {
	t.Helper()
	r := report.TUSCA()
	d := Data{Matrix: r.Matrix}
	for _, spec := range r.Classes {
		c, err := roc.Synthesize(spec.AUC, roc.DefaultPoints)
		if err != nil {
			t.Fatal(err)
		}
		d.Series = append(d.Series, roccurve.Series{Spec: spec, Curve: c})
	}
	return d
}

func TestLayoutSplitsWidth(t *testing.T) {
	p := layout(normalize(Defaults("Dashboard")), 1600, 700)
	if p.left.W+p.right.W != 1600 {
		t.Errorf("panel widths %v + %v != 1600", p.left.W, p.right.W)
	}
	if p.left.Y != p.titleH || p.right.Y != p.titleH {
		t.Error("panels should start below the suptitle")
	}
	if p.titleH <= 0 {
		t.Error("suptitle should reserve space")
	}

	p = layout(normalize(Defaults("")), 1600, 700)
	if p.titleH != 0 {
		t.Errorf("titleH = %v without a title, want 0", p.titleH)
	}
}

func TestNormalizePropagatesScale(t *testing.T) {
	opts := Defaults("x")
	opts.Scale = 2
	opts = normalize(opts)
	if opts.Heatmap.Scale != 2 || opts.ROC.Scale != 2 {
		t.Errorf("panel scales = %v/%v, want 2", opts.Heatmap.Scale, opts.ROC.Scale)
	}
}

func TestRenderPNG(t *testing.T) {
	data, err := RenderPNG(tuscaData(t), Defaults("TUSCA v2.2.2 - Performance Dashboard"), 800, 350)
	if err != nil {
		t.Fatalf("RenderPNG() error: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 800 || b.Dy() != 350 {
		t.Errorf("bounds = %v, want 800x350", b)
	}
}

func TestRenderSVG(t *testing.T) {
	data, err := RenderSVG(tuscaData(t), Defaults("A & B"), 1600, 700)
	if err != nil {
		t.Fatalf("RenderSVG() error: %v", err)
	}
	svg := string(data)
	for _, want := range []string{`class="heatmap"`, `class="roc"`, "A &amp; B", "Confusion Matrix", "ROC Curves"} {
		if !strings.Contains(svg, want) {
			t.Errorf("svg missing %q", want)
		}
	}
	if strings.Count(svg, "<svg") != 2 {
		t.Errorf("want outer svg plus nested chart svg, got %d", strings.Count(svg, "<svg"))
	}
}
