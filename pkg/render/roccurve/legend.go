package roccurve

import (
	chart "github.com/wcharczuk/go-chart/v2"
)

// lowerRightLegend is chart.Legend anchored to the bottom-right corner of the
// canvas, with the line sample to the left of each label.
func lowerRightLegend(c *chart.Chart, style chart.Style, scale float64) chart.Renderable {
	unit := func(v float64) int { return int(v * scale) }

	return func(r chart.Renderer, cb chart.Box, defaults chart.Style) {
		ls := style.InheritFrom(defaults)

		var names []string
		var lines []chart.Style
		for _, s := range c.Series {
			st := s.GetStyle()
			if st.Hidden || s.GetName() == "" {
				continue
			}
			names = append(names, s.GetName())
			lines = append(lines, st)
		}
		if len(names) == 0 {
			return
		}

		pad, sample, gap, margin := unit(8), unit(36), unit(8), unit(14)

		ls.GetTextOptions().WriteToRenderer(r)
		var textW, textH int
		for _, n := range names {
			tb := r.MeasureText(n)
			textW = max(textW, tb.Width())
			textH = max(textH, tb.Height())
		}
		rowH := textH + unit(6)

		box := chart.Box{Right: cb.Right - margin, Bottom: cb.Bottom - margin}
		box.Left = box.Right - (pad + sample + gap + textW + pad)
		box.Top = box.Bottom - (pad + len(names)*rowH - unit(6) + pad)

		r.SetStrokeDashArray(nil)
		chart.Draw.Box(r, box, ls)

		for i, n := range names {
			ty := box.Top + pad + i*rowH + textH
			ly := ty - textH/2

			r.SetStrokeColor(lines[i].GetStrokeColor())
			r.SetStrokeWidth(lines[i].GetStrokeWidth())
			r.SetStrokeDashArray(lines[i].GetStrokeDashArray())
			r.MoveTo(box.Left+pad, ly)
			r.LineTo(box.Left+pad+sample, ly)
			r.Stroke()
			r.SetStrokeDashArray(nil)

			ls.GetTextOptions().WriteToRenderer(r)
			r.Text(n, box.Left+pad+sample+gap, ty)
		}
	}
}
