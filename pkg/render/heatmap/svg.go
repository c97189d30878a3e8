package heatmap

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/ispi-lubango/tuscaviz/pkg/fonts"
	"github.com/ispi-lubango/tuscaviz/pkg/report"
)

// RenderSVG renders m as a standalone SVG document of the given size.
func RenderSVG(m report.ConfusionMatrix, opts Options, width, height int) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d">`+"\n",
		width, height, width, height)
	fmt.Fprintf(&buf, `<rect width="%d" height="%d" fill="#ffffff"/>`+"\n", width, height)
	if err := WriteSVG(&buf, Frame{W: float64(width), H: float64(height)}, m, opts); err != nil {
		return nil, err
	}
	buf.WriteString("</svg>\n")
	return buf.Bytes(), nil
}

// WriteSVG writes the heatmap for m into frame as an SVG <g> element.
func WriteSVG(buf *bytes.Buffer, frame Frame, m report.ConfusionMatrix, opts Options) error {
	g, err := newGeometry(frame, m, opts)
	if err != nil {
		return err
	}
	cmap := RdYlGn(0, 100)

	fmt.Fprintf(buf, `<g class="heatmap" font-family="%s" font-weight="bold">`+"\n", fonts.FontFamily)

	if opts.Title != "" {
		writeLines(buf, strings.Split(opts.Title, "\n"), frame.X+frame.W/2, frame.Y+g.pad, "middle", 0, g.titleLineH, g.px(opts.TitleSize), "")
	}

	for i, row := range m.Values {
		for j, v := range row {
			x, y := g.plot.X+float64(j)*g.cellW, g.plot.Y+float64(i)*g.cellH
			fmt.Fprintf(buf, `  <rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="%s"/>`+"\n",
				x, y, g.cellW, g.cellH, cmap.At(v).Hex())
			fmt.Fprintf(buf, `  <text x="%.2f" y="%.2f" font-size="%.2f" fill="%s" text-anchor="middle" dominant-baseline="central">%s</text>`+"\n",
				x+g.cellW/2, y+g.cellH/2, g.px(opts.CellSize), TextColor(v), Escape(CellText(v)))
		}
	}
	fmt.Fprintf(buf, `  <rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="none" stroke="#333333"/>`+"\n",
		g.plot.X, g.plot.Y, g.plot.W, g.plot.H)

	tickSize := g.px(opts.TickSize)
	for i, lines := range g.labels {
		cy := g.plot.Y + (float64(i)+0.5)*g.cellH
		writeLines(buf, lines, g.plot.X-g.pad, cy, "end", 0.5, g.tickLineH, tickSize, "")

		cx := g.plot.X + (float64(i)+0.5)*g.cellW
		ty := g.plot.Y + g.plot.H + g.pad
		writeLines(buf, lines, cx, ty, "end", 0.5, g.tickLineH, tickSize, fmt.Sprintf("rotate(-45 %.2f %.2f)", cx, ty))
	}

	axisSize := g.px(opts.AxisSize)
	fmt.Fprintf(buf, `  <text x="%.2f" y="%.2f" font-size="%.2f" text-anchor="middle">PREDICTED</text>`+"\n",
		g.plot.X+g.plot.W/2, frame.Y+frame.H-g.pad, axisSize)
	ax, ay := frame.X+g.pad, g.plot.Y+g.plot.H/2
	fmt.Fprintf(buf, `  <text x="%.2f" y="%.2f" font-size="%.2f" text-anchor="middle" dominant-baseline="hanging" transform="rotate(-90 %.2f %.2f)">ACTUAL</text>`+"\n",
		ax, ay, axisSize, ax, ay)

	if opts.Colorbar {
		writeColorbar(buf, g, cmap)
	}

	buf.WriteString("</g>\n")
	return nil
}

func writeColorbar(buf *bytes.Buffer, g *geometry, cmap Colormap) {
	b := g.bar
	id := fmt.Sprintf("rdylgn-%.0f-%.0f", b.X, b.Y)
	fmt.Fprintf(buf, `  <defs><linearGradient id="%s" x1="0" y1="1" x2="0" y2="0">`, id)
	for i := 0; i <= 10; i++ {
		fmt.Fprintf(buf, `<stop offset="%.1f" stop-color="%s"/>`, float64(i)/10, cmap.At(float64(i)*10).Hex())
	}
	buf.WriteString("</linearGradient></defs>\n")
	fmt.Fprintf(buf, `  <rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="url(#%s)" stroke="#333333"/>`+"\n",
		b.X, b.Y, b.W, b.H, id)

	tickSize := g.px(g.opts.TickSize)
	var labelW float64
	for v := 0.0; v <= 100; v += tickStep {
		y := b.Y + b.H*(1-v/100)
		s := fmt.Sprintf("%g", v)
		labelW = max(labelW, measure(g.tick, s))
		fmt.Fprintf(buf, `  <line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="#333333"/>`+"\n",
			b.X+b.W, y, b.X+b.W+g.px(3), y)
		fmt.Fprintf(buf, `  <text x="%.2f" y="%.2f" font-size="%.2f" dominant-baseline="central">%s</text>`+"\n",
			b.X+b.W+g.px(5), y, tickSize, s)
	}

	if g.opts.ColorbarLabel != "" {
		lx, ly := b.X+b.W+g.px(5)+labelW+g.pad, b.Y+b.H/2
		fmt.Fprintf(buf, `  <text x="%.2f" y="%.2f" font-size="%.2f" text-anchor="middle" transform="rotate(90 %.2f %.2f)">%s</text>`+"\n",
			lx, ly, g.px(g.opts.AxisSize), lx, ly, Escape(g.opts.ColorbarLabel))
	}
}

// writeLines mirrors drawLines: the block of lines is anchored at (x, y)
// with vertical anchor ay.
func writeLines(buf *bytes.Buffer, lines []string, x, y float64, anchor string, ay, lineH, size float64, transform string) {
	attr := ""
	if transform != "" {
		attr = fmt.Sprintf(` transform="%s"`, transform)
	}
	top := y - ay*float64(len(lines))*lineH
	for k, s := range lines {
		fmt.Fprintf(buf, `  <text x="%.2f" y="%.2f" font-size="%.2f" text-anchor="%s" dominant-baseline="central"%s>%s</text>`+"\n",
			x, top+(float64(k)+0.5)*lineH, size, anchor, attr, Escape(s))
	}
}

// Escape returns s with XML special characters escaped for SVG text.
func Escape(s string) string {
	var b bytes.Buffer
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}
