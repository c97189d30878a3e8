package pipeline

import (
	"context"
	"fmt"

	"github.com/ispi-lubango/tuscaviz/pkg/errors"
	"github.com/ispi-lubango/tuscaviz/pkg/render"
	"github.com/ispi-lubango/tuscaviz/pkg/render/dashboard"
	"github.com/ispi-lubango/tuscaviz/pkg/render/heatmap"
	"github.com/ispi-lubango/tuscaviz/pkg/render/roccurve"
	"github.com/ispi-lubango/tuscaviz/pkg/report"
	"github.com/ispi-lubango/tuscaviz/pkg/roc"
)

// Data is everything the renderers draw: the report and its synthesized
// curves. It is built once per run.
type Data struct {
	Report  report.Report
	Series  []roccurve.Series
	Summary Summary
}

// Prepare validates the report and synthesizes one curve per class.
func Prepare(r report.Report, points int) (*Data, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	d := &Data{
		Report: r,
		Summary: Summary{
			GlobalAccuracy: r.GlobalAccuracy(),
			MeanAUC:        r.MeanAUC(),
			Achieved:       make(map[string]float64, len(r.Classes)),
		},
	}
	for _, spec := range r.Classes {
		c, err := roc.Synthesize(spec.AUC, points)
		if err != nil {
			// The report is valid at this point, so only the sample count
			// can make a target unreachable.
			return nil, errors.Wrap(errors.ErrCodeInvalidOption, err, "%d points cannot reach the AUC of %s", points, spec.Name)
		}
		d.Series = append(d.Series, roccurve.Series{Spec: spec, Curve: c})
		d.Summary.Achieved[spec.Name] = c.Achieved
	}
	return d, nil
}

// ConfusionMatrixTitle is the title of the standalone heatmap.
func ConfusionMatrixTitle(r report.Report) string {
	return fmt.Sprintf("%s - Confusion Matrix (%d Classes)\nPredicted vs. Actual Classifications", r.Title, r.Matrix.Size())
}

// ROCTitle is the title of the standalone ROC figure.
func ROCTitle(r report.Report) string {
	return fmt.Sprintf("%s - ROC Curves (%d Classes)", r.Title, len(r.Classes))
}

// DashboardTitle is the suptitle of the dashboard.
func DashboardTitle(r report.Report) string {
	return fmt.Sprintf("%s %s - Performance Dashboard", r.Title, r.Version)
}

// RenderFigure draws one figure in one format.
func RenderFigure(ctx context.Context, d *Data, figure, format string, scale float64) ([]byte, error) {
	if format == FormatJSON {
		return exportJSON(d, figure)
	}
	if format == FormatPDF {
		svg, err := RenderFigure(ctx, d, figure, FormatSVG, scale)
		if err != nil {
			return nil, err
		}
		return render.ToPDF(ctx, svg)
	}

	w, h := FigureSize(figure, scale)
	svg := format == FormatSVG

	switch figure {
	case FigureConfusionMatrix:
		opts := heatmap.Standalone()
		opts.Title = ConfusionMatrixTitle(d.Report)
		opts.Scale = scale
		if svg {
			return heatmap.RenderSVG(d.Report.Matrix, opts, w, h)
		}
		return heatmap.RenderPNG(d.Report.Matrix, opts, w, h)

	case FigureROCCurves:
		opts := roccurve.Standalone()
		opts.Title = ROCTitle(d.Report)
		opts.Scale = scale
		if svg {
			return roccurve.RenderSVG(d.Series, opts, w, h)
		}
		return roccurve.RenderPNG(d.Series, opts, w, h)

	case FigureDashboard:
		opts := dashboard.Defaults(DashboardTitle(d.Report))
		opts.Scale = scale
		data := dashboard.Data{Matrix: d.Report.Matrix, Series: d.Series}
		if svg {
			return dashboard.RenderSVG(data, opts, w, h)
		}
		return dashboard.RenderPNG(data, opts, w, h)
	}
	return nil, errors.New(errors.ErrCodeUnsupported, "unsupported figure: %s", figure)
}
