// Package dashboard composes the confusion matrix and ROC curves side by side.
//
// The left half holds the heatmap (reduced sizes, no colorbar), the right
// half the ROC chart, both below a suptitle. The panels receive the very
// values the standalone figures are drawn from; nothing is recomputed here.
package dashboard

import (
	"bytes"
	"fmt"

	"github.com/fogleman/gg"

	"github.com/ispi-lubango/tuscaviz/pkg/fonts"
	"github.com/ispi-lubango/tuscaviz/pkg/render/heatmap"
	"github.com/ispi-lubango/tuscaviz/pkg/render/roccurve"
	"github.com/ispi-lubango/tuscaviz/pkg/report"
)

const pointsToPixels = 100.0 / 72.0

// Options configures the dashboard figure.
type Options struct {
	Title     string
	TitleSize float64
	Scale     float64
	Heatmap   heatmap.Options
	ROC       roccurve.Options
}

// Defaults returns the dashboard preset with the given suptitle.
func Defaults(title string) Options {
	return Options{
		Title:     title,
		TitleSize: 16,
		Scale:     1,
		Heatmap:   heatmap.Panel(),
		ROC:       roccurve.Panel(),
	}
}

// Data is what both panels draw.
type Data struct {
	Matrix report.ConfusionMatrix
	Series []roccurve.Series
}

type panels struct {
	titleH      float64
	left, right heatmap.Frame
}

func layout(opts Options, width, height int) panels {
	titleH := 0.0
	if opts.Title != "" {
		titleH = opts.TitleSize * pointsToPixels * opts.Scale * 2
	}
	half := float64(width) / 2
	h := float64(height) - titleH
	return panels{
		titleH: titleH,
		left:   heatmap.Frame{X: 0, Y: titleH, W: half, H: h},
		right:  heatmap.Frame{X: half, Y: titleH, W: float64(width) - half, H: h},
	}
}

func normalize(opts Options) Options {
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	opts.Heatmap.Scale = opts.Scale
	opts.ROC.Scale = opts.Scale
	return opts
}

// RenderPNG renders the dashboard as a PNG image of the given size.
func RenderPNG(d Data, opts Options, width, height int) ([]byte, error) {
	opts = normalize(opts)
	p := layout(opts, width, height)

	dc := gg.NewContext(width, height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	if opts.Title != "" {
		bold, err := fonts.Bold()
		if err != nil {
			return nil, fmt.Errorf("load font: %w", err)
		}
		dc.SetFontFace(fonts.Face(bold, opts.TitleSize*pointsToPixels*opts.Scale))
		dc.SetRGB(0, 0, 0)
		dc.DrawStringAnchored(opts.Title, float64(width)/2, p.titleH/2, 0.5, 0.5)
	}

	if err := heatmap.Draw(dc, p.left, d.Matrix, opts.Heatmap); err != nil {
		return nil, fmt.Errorf("confusion matrix panel: %w", err)
	}

	img, err := roccurve.Image(d.Series, opts.ROC, int(p.right.W), int(p.right.H))
	if err != nil {
		return nil, fmt.Errorf("roc panel: %w", err)
	}
	dc.DrawImage(img, int(p.right.X), int(p.right.Y))

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderSVG renders the dashboard as an SVG document of the given size.
// The ROC panel is go-chart's own SVG nested inside a translated group.
func RenderSVG(d Data, opts Options, width, height int) ([]byte, error) {
	opts = normalize(opts)
	p := layout(opts, width, height)

	rocSVG, err := roccurve.RenderSVG(d.Series, opts.ROC, int(p.right.W), int(p.right.H))
	if err != nil {
		return nil, fmt.Errorf("roc panel: %w", err)
	}
	if i := bytes.Index(rocSVG, []byte("<svg")); i > 0 {
		rocSVG = rocSVG[i:]
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d">`+"\n",
		width, height, width, height)
	fmt.Fprintf(&buf, `<rect width="%d" height="%d" fill="#ffffff"/>`+"\n", width, height)
	if opts.Title != "" {
		fmt.Fprintf(&buf, `<text x="%.2f" y="%.2f" font-family="%s" font-weight="bold" font-size="%.2f" text-anchor="middle" dominant-baseline="central">%s</text>`+"\n",
			float64(width)/2, p.titleH/2, fonts.FontFamily, opts.TitleSize*pointsToPixels*opts.Scale, heatmap.Escape(opts.Title))
	}

	if err := heatmap.WriteSVG(&buf, p.left, d.Matrix, opts.Heatmap); err != nil {
		return nil, fmt.Errorf("confusion matrix panel: %w", err)
	}

	fmt.Fprintf(&buf, `<g class="roc" transform="translate(%.2f %.2f)">`+"\n", p.right.X, p.right.Y)
	buf.Write(rocSVG)
	buf.WriteString("\n</g>\n</svg>\n")
	return buf.Bytes(), nil
}
