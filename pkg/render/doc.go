// Package render holds the figure renderers for classifier performance reports.
//
// # Overview
//
// Three figures are drawn from one report:
//
//   - [heatmap]: the confusion matrix on an RdYlGn scale with cell annotations
//   - [roccurve]: one ROC curve per class plus the random-classifier diagonal
//   - [dashboard]: both of the above side by side under a suptitle
//
// Every renderer produces PNG and SVG natively. PDF is derived from the SVG
// with the external rsvg-convert tool:
//
//	svg, _ := heatmap.RenderSVG(report.Matrix, heatmap.Standalone(), 1000, 800)
//	pdf, err := render.ToPDF(ctx, svg)
//
// # Sizing
//
// Text sizes are given in points and converted at 100/72 pixels per point,
// then multiplied by the scale factor. A 10x8 inch figure at scale 2 is
// therefore 2000x1600 pixels.
//
// [heatmap]: github.com/ispi-lubango/tuscaviz/pkg/render/heatmap
// [roccurve]: github.com/ispi-lubango/tuscaviz/pkg/render/roccurve
// [dashboard]: github.com/ispi-lubango/tuscaviz/pkg/render/dashboard
package render
