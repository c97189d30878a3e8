// Package heatmap draws confusion matrices as annotated heatmaps.
//
// A heatmap has a title, one colored cell per (actual, predicted) pair with
// its percentage printed in the middle, tick labels on both axes (x labels
// rotated 45°), the axis titles PREDICTED and ACTUAL, and an optional
// vertical colorbar. Cell colors come from the RdYlGn colormap over 0–100.
//
// The same geometry backs the raster output ([Draw], [RenderPNG]) and the
// vector output ([WriteSVG], [RenderSVG]), so both formats place every
// element identically.
package heatmap

import (
	"bytes"
	"fmt"
	"image"
	"math"
	"strings"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"

	"github.com/ispi-lubango/tuscaviz/pkg/fonts"
	"github.com/ispi-lubango/tuscaviz/pkg/report"
)

const (
	// ContrastThreshold is the cell value above which annotations are white.
	ContrastThreshold = 50.0

	// pointsToPixels converts font points to pixels at 100 px per inch.
	pointsToPixels = 100.0 / 72.0

	tickStep = 20.0
)

// Frame is a rectangle in pixel coordinates, origin top-left.
type Frame struct {
	X, Y, W, H float64
}

// Options controls text sizes (in points) and decorations.
type Options struct {
	Title         string
	TitleSize     float64
	TickSize      float64
	CellSize      float64
	AxisSize      float64
	Colorbar      bool
	ColorbarLabel string
	Scale         float64 // multiplies every size; 1 = 100 px per inch
}

// Standalone is the full-size preset used for the confusion matrix figure.
func Standalone() Options {
	return Options{
		TitleSize:     14,
		TickSize:      11,
		CellSize:      14,
		AxisSize:      12,
		Colorbar:      true,
		ColorbarLabel: "Classification rate (%)",
		Scale:         1,
	}
}

// Panel is the reduced preset used inside the dashboard.
func Panel() Options {
	return Options{
		Title:     "Confusion Matrix",
		TitleSize: 12,
		TickSize:  9,
		CellSize:  11,
		AxisSize:  10,
		Scale:     1,
	}
}

// TextColor returns the annotation color for a cell value.
func TextColor(v float64) string {
	if v > ContrastThreshold {
		return "#ffffff"
	}
	return "#000000"
}

// CellText formats a cell annotation, e.g. "95%".
func CellText(v float64) string {
	return fmt.Sprintf("%g%%", v)
}

// geometry holds the resolved positions of every heatmap element.
type geometry struct {
	frame  Frame
	opts   Options
	labels [][]string // display label lines per class

	title, tick, cell, axis font.Face
	titleLineH, tickLineH   float64

	plot         Frame
	cellW, cellH float64
	bar          Frame
	pad          float64
}

func (g *geometry) px(pt float64) float64 { return pt * pointsToPixels * g.opts.Scale }

func newGeometry(frame Frame, m report.ConfusionMatrix, opts Options) (*geometry, error) {
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	bold, err := fonts.Bold()
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}

	g := &geometry{frame: frame, opts: opts}
	g.pad = g.px(6)
	g.title = fonts.Face(bold, g.px(opts.TitleSize))
	g.tick = fonts.Face(bold, g.px(opts.TickSize))
	g.cell = fonts.Face(bold, g.px(opts.CellSize))
	g.axis = fonts.Face(bold, g.px(opts.AxisSize))
	g.titleLineH = lineHeight(g.title)
	g.tickLineH = lineHeight(g.tick)

	var maxTickW float64
	maxLines := 1
	for _, l := range m.Labels {
		lines := strings.Split(report.DisplayLabel(l), "\n")
		g.labels = append(g.labels, lines)
		maxLines = max(maxLines, len(lines))
		for _, s := range lines {
			maxTickW = math.Max(maxTickW, measure(g.tick, s))
		}
	}

	titleH := 0.0
	if opts.Title != "" {
		titleH = float64(len(strings.Split(opts.Title, "\n")))*g.titleLineH + g.px(14)
	}
	axisH := lineHeight(g.axis)

	// Rotated x labels drop below the grid by their diagonal extent.
	rotated := (maxTickW + float64(maxLines)*g.tickLineH) * math.Sqrt2 / 2

	left := frame.X + g.pad + axisH + g.pad + maxTickW + g.pad
	right := frame.X + frame.W - g.pad
	if opts.Colorbar {
		right -= g.px(18) + g.pad + measure(g.tick, "100") + g.pad + axisH + g.px(16)
	}
	top := frame.Y + g.pad + titleH
	bottom := frame.Y + frame.H - (g.pad + rotated + g.pad + axisH + g.pad)

	g.plot = Frame{X: left, Y: top, W: math.Max(1, right-left), H: math.Max(1, bottom-top)}
	n := float64(max(1, m.Size()))
	g.cellW = g.plot.W / n
	g.cellH = g.plot.H / n
	if opts.Colorbar {
		g.bar = Frame{X: g.plot.X + g.plot.W + g.px(16), Y: top, W: g.px(18), H: g.plot.H}
	}
	return g, nil
}

// Draw paints the heatmap for m into frame on dc.
func Draw(dc *gg.Context, frame Frame, m report.ConfusionMatrix, opts Options) error {
	g, err := newGeometry(frame, m, opts)
	if err != nil {
		return err
	}
	cmap := RdYlGn(0, 100)

	if opts.Title != "" {
		dc.SetRGB(0, 0, 0)
		dc.SetFontFace(g.title)
		drawLines(dc, strings.Split(opts.Title, "\n"), frame.X+frame.W/2, frame.Y+g.pad, 0.5, 0, g.titleLineH)
	}

	dc.SetFontFace(g.cell)
	for i, row := range m.Values {
		for j, v := range row {
			x, y := g.plot.X+float64(j)*g.cellW, g.plot.Y+float64(i)*g.cellH
			dc.SetColor(cmap.At(v))
			dc.DrawRectangle(x, y, g.cellW, g.cellH)
			dc.Fill()
			dc.SetHexColor(TextColor(v))
			dc.DrawStringAnchored(CellText(v), x+g.cellW/2, y+g.cellH/2, 0.5, 0.5)
		}
	}
	dc.SetRGB(0.2, 0.2, 0.2)
	dc.SetLineWidth(math.Max(1, g.opts.Scale))
	dc.DrawRectangle(g.plot.X, g.plot.Y, g.plot.W, g.plot.H)
	dc.Stroke()

	dc.SetRGB(0, 0, 0)
	dc.SetFontFace(g.tick)
	for i, lines := range g.labels {
		cy := g.plot.Y + (float64(i)+0.5)*g.cellH
		drawLines(dc, lines, g.plot.X-g.pad, cy, 1, 0.5, g.tickLineH)

		cx := g.plot.X + (float64(i)+0.5)*g.cellW
		ty := g.plot.Y + g.plot.H + g.pad
		dc.Push()
		dc.RotateAbout(gg.Radians(-45), cx, ty)
		drawLines(dc, lines, cx, ty, 1, 0.5, g.tickLineH)
		dc.Pop()
	}

	dc.SetFontFace(g.axis)
	dc.DrawStringAnchored("PREDICTED", g.plot.X+g.plot.W/2, frame.Y+frame.H-g.pad, 0.5, 0)
	ax, ay := frame.X+g.pad, g.plot.Y+g.plot.H/2
	dc.Push()
	dc.RotateAbout(gg.Radians(-90), ax, ay)
	dc.DrawStringAnchored("ACTUAL", ax, ay, 0.5, 1)
	dc.Pop()

	if opts.Colorbar {
		drawColorbar(dc, g, cmap)
	}
	return nil
}

func drawColorbar(dc *gg.Context, g *geometry, cmap Colormap) {
	b := g.bar
	for y := 0.0; y < b.H; y++ {
		dc.SetColor(cmap.At(100 * (b.H - y - 0.5) / b.H))
		dc.DrawRectangle(b.X, b.Y+y, b.W, 1)
		dc.Fill()
	}
	dc.SetRGB(0.2, 0.2, 0.2)
	dc.SetLineWidth(math.Max(1, g.opts.Scale))
	dc.DrawRectangle(b.X, b.Y, b.W, b.H)
	dc.Stroke()

	dc.SetFontFace(g.tick)
	var labelW float64
	for v := 0.0; v <= 100; v += tickStep {
		y := b.Y + b.H*(1-v/100)
		dc.DrawLine(b.X+b.W, y, b.X+b.W+g.px(3), y)
		dc.Stroke()
		s := fmt.Sprintf("%g", v)
		labelW = math.Max(labelW, measure(g.tick, s))
		dc.DrawStringAnchored(s, b.X+b.W+g.px(5), y, 0, 0.5)
	}

	if g.opts.ColorbarLabel != "" {
		dc.SetFontFace(g.axis)
		lx, ly := b.X+b.W+g.px(5)+labelW+g.pad, b.Y+b.H/2
		dc.Push()
		dc.RotateAbout(gg.Radians(90), lx, ly)
		dc.DrawStringAnchored(g.opts.ColorbarLabel, lx, ly, 0.5, 0)
		dc.Pop()
	}
}

// Image renders m on a white canvas of the given size.
func Image(m report.ConfusionMatrix, opts Options, width, height int) (image.Image, error) {
	dc, err := canvas(m, opts, width, height)
	if err != nil {
		return nil, err
	}
	return dc.Image(), nil
}

// RenderPNG renders m as a PNG image of the given size.
func RenderPNG(m report.ConfusionMatrix, opts Options, width, height int) ([]byte, error) {
	dc, err := canvas(m, opts, width, height)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

func canvas(m report.ConfusionMatrix, opts Options, width, height int) (*gg.Context, error) {
	dc := gg.NewContext(width, height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	if err := Draw(dc, Frame{W: float64(width), H: float64(height)}, m, opts); err != nil {
		return nil, err
	}
	return dc, nil
}

// drawLines draws a block of lines anchored as a whole at (x, y).
func drawLines(dc *gg.Context, lines []string, x, y, ax, ay, lineH float64) {
	top := y - ay*float64(len(lines))*lineH
	for k, s := range lines {
		dc.DrawStringAnchored(s, x, top+(float64(k)+0.5)*lineH, ax, 0.5)
	}
}

func measure(face font.Face, s string) float64 {
	return float64(font.MeasureString(face, s)) / 64
}

func lineHeight(face font.Face) float64 {
	return float64(face.Metrics().Height) / 64
}
