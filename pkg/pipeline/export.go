package pipeline

import (
	"encoding/json"

	"github.com/ispi-lubango/tuscaviz/pkg/report"
	"github.com/ispi-lubango/tuscaviz/pkg/roc"
)

// FigureExport is the JSON rendition of a figure: the data it draws.
type FigureExport struct {
	Figure  string                  `json:"figure"`
	Title   string                  `json:"title"`
	Report  string                  `json:"report"`
	Version string                  `json:"version"`
	Matrix  *report.ConfusionMatrix `json:"confusion_matrix,omitempty"`
	Curves  []CurveExport           `json:"roc_curves,omitempty"`
	Summary Summary                 `json:"summary"`
}

// CurveExport is one class's ROC curve.
type CurveExport struct {
	Class string `json:"class"`
	Color string `json:"color"`
	roc.Curve
}

func exportJSON(d *Data, figure string) ([]byte, error) {
	out := FigureExport{
		Figure:  figure,
		Report:  d.Report.Title,
		Version: d.Report.Version,
		Summary: d.Summary,
	}

	withMatrix := func() {
		m := d.Report.Matrix
		out.Matrix = &m
	}
	withCurves := func() {
		for _, s := range d.Series {
			out.Curves = append(out.Curves, CurveExport{Class: s.Spec.Name, Color: s.Spec.Color, Curve: s.Curve})
		}
	}

	switch figure {
	case FigureConfusionMatrix:
		out.Title = ConfusionMatrixTitle(d.Report)
		withMatrix()
	case FigureROCCurves:
		out.Title = ROCTitle(d.Report)
		withCurves()
	case FigureDashboard:
		out.Title = DashboardTitle(d.Report)
		withMatrix()
		withCurves()
	}

	return json.MarshalIndent(out, "", "  ")
}
