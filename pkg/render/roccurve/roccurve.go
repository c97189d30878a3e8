// Package roccurve draws synthesized ROC curves with go-chart.
//
// Each class becomes one line series in its configured color, labelled
// "Name (AUC: 0.98)". A dashed diagonal marks the random classifier. The
// legend sits in the lower-right corner where ROC curves leave empty space.
package roccurve

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"strings"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/ispi-lubango/tuscaviz/pkg/fonts"
	"github.com/ispi-lubango/tuscaviz/pkg/report"
	"github.com/ispi-lubango/tuscaviz/pkg/roc"
)

const (
	// RandomLabel names the diagonal reference series.
	RandomLabel = "Random Classifier"

	// baseDPI maps one point to 100/72 px, matching the heatmap.
	baseDPI = 100.0

	pointsToPixels = baseDPI / 72.0

	// yMax leaves headroom above TPR 1.0 so curves do not run along the border.
	yMax = 1.05
)

// Series pairs a class with its synthesized curve.
type Series struct {
	Spec  report.ClassSpec
	Curve roc.Curve
}

// Options controls text sizes (in points) and line widths.
type Options struct {
	Title      string
	TitleSize  float64
	LabelSize  float64
	TickSize   float64
	LegendSize float64
	LineWidth  float64
	Scale      float64
}

// Standalone is the full-size preset for the ROC figure.
func Standalone() Options {
	return Options{
		TitleSize:  14,
		LabelSize:  12,
		TickSize:   10,
		LegendSize: 10,
		LineWidth:  2.5,
		Scale:      1,
	}
}

// Panel is the reduced preset used inside the dashboard.
func Panel() Options {
	return Options{
		Title:      "ROC Curves",
		TitleSize:  12,
		LabelSize:  10,
		TickSize:   8,
		LegendSize: 8,
		LineWidth:  2.5,
		Scale:      1,
	}
}

// Chart builds the go-chart definition for the given curves.
func Chart(series []Series, opts Options, width, height int) (chart.Chart, error) {
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	regular, err := fonts.Regular()
	if err != nil {
		return chart.Chart{}, fmt.Errorf("load font: %w", err)
	}
	bold, err := fonts.Bold()
	if err != nil {
		return chart.Chart{}, fmt.Errorf("load font: %w", err)
	}
	px := func(pt float64) float64 { return pt * pointsToPixels * opts.Scale }
	pad := int(px(12))

	grid := chart.Style{
		StrokeColor: drawing.ColorFromHex("b0b0b0").WithAlpha(77),
		StrokeWidth: px(0.8),
	}
	xTicks := unitTicks()
	// go-chart takes the axis range from explicit ticks, so the headroom
	// needs an unlabelled tick of its own.
	yTicks := append(unitTicks(), chart.Tick{Value: yMax})
	yRange := &chart.ContinuousRange{Min: 0, Max: yMax}

	// Curves are mapped to the secondary axis, which go-chart draws on the
	// left. The hidden primary axis still needs the ticks: go-chart sizes the
	// secondary range from them.
	c := chart.Chart{
		Title:      opts.Title,
		TitleStyle: chart.Style{Hidden: opts.Title == "", FontSize: opts.TitleSize, Font: bold},
		Width:      width,
		Height:     height,
		DPI:        baseDPI * opts.Scale,
		Font:       regular,
		Background: chart.Style{
			Padding: chart.Box{Top: pad * 2, Left: pad * 2, Right: pad * 2, Bottom: pad},
		},
		XAxis: chart.XAxis{
			Name:           "False Positive Rate",
			NameStyle:      chart.Style{FontSize: opts.LabelSize, Font: bold},
			Style:          chart.Style{FontSize: opts.TickSize},
			Range:          &chart.ContinuousRange{Min: 0, Max: 1},
			Ticks:          xTicks,
			GridMajorStyle: grid,
			GridMinorStyle: grid,
		},
		YAxis: chart.YAxis{
			Style: chart.Hidden(),
			Range: yRange,
			Ticks: yTicks,
		},
		YAxisSecondary: chart.YAxis{
			Name:           "True Positive Rate",
			NameStyle:      chart.Style{FontSize: opts.LabelSize, Font: bold},
			Style:          chart.Style{FontSize: opts.TickSize},
			Range:          yRange,
			Ticks:          yTicks,
			GridMajorStyle: grid,
			GridMinorStyle: grid,
		},
	}

	for _, s := range series {
		c.Series = append(c.Series, chart.ContinuousSeries{
			Name:    s.Spec.LegendLabel(),
			YAxis:   chart.YAxisSecondary,
			XValues: s.Curve.FPR,
			YValues: s.Curve.TPR,
			Style: chart.Style{
				StrokeColor: ParseColor(s.Spec.Color),
				StrokeWidth: px(opts.LineWidth),
			},
		})
	}
	c.Series = append(c.Series, chart.ContinuousSeries{
		Name:    RandomLabel,
		YAxis:   chart.YAxisSecondary,
		XValues: []float64{0, 1},
		YValues: []float64{0, 1},
		Style: chart.Style{
			StrokeColor:     drawing.ColorBlack.WithAlpha(128),
			StrokeWidth:     px(2),
			StrokeDashArray: []float64{px(5), px(3)},
		},
	})

	c.Elements = []chart.Renderable{lowerRightLegend(&c, chart.Style{
		FontSize:    opts.LegendSize,
		Font:        regular,
		FontColor:   drawing.ColorFromHex("262626"),
		FillColor:   drawing.ColorWhite.WithAlpha(230),
		StrokeColor: drawing.ColorFromHex("cccccc"),
		StrokeWidth: px(0.8),
	}, opts.Scale)}
	return c, nil
}

// RenderPNG renders the curves as a PNG image of the given size.
func RenderPNG(series []Series, opts Options, width, height int) ([]byte, error) {
	return render(series, opts, width, height, chart.PNG)
}

// RenderSVG renders the curves as an SVG document of the given size.
func RenderSVG(series []Series, opts Options, width, height int) ([]byte, error) {
	return render(series, opts, width, height, chart.SVG)
}

// Image renders the curves and decodes the result for composition.
func Image(series []Series, opts Options, width, height int) (image.Image, error) {
	data, err := RenderPNG(series, opts, width, height)
	if err != nil {
		return nil, err
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode png: %w", err)
	}
	return img, nil
}

func render(series []Series, opts Options, width, height int, provider chart.RendererProvider) ([]byte, error) {
	c, err := Chart(series, opts, width, height)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := c.Render(provider, &buf); err != nil {
		return nil, fmt.Errorf("render chart: %w", err)
	}
	return buf.Bytes(), nil
}

// ParseColor converts "#RRGGBB" (or "RRGGBB") to a chart color.
func ParseColor(hex string) drawing.Color {
	return drawing.ColorFromHex(strings.TrimPrefix(hex, "#"))
}

func unitTicks() []chart.Tick {
	ticks := make([]chart.Tick, 0, 6)
	for i := 0; i <= 5; i++ {
		v := float64(i) / 5
		ticks = append(ticks, chart.Tick{Value: v, Label: fmt.Sprintf("%.1f", v)})
	}
	return ticks
}
