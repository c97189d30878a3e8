// Package report holds the fixed TUSCA classification report that every
// figure is drawn from.
//
// The report is compiled in: the confusion matrix percentages, the per-class
// target AUCs and the class colors are literals, not inputs. [TUSCA] returns a
// fresh copy on each call so callers may not mutate a shared value.
package report

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/ispi-lubango/tuscaviz/pkg/errors"
)

// Class names in matrix order.
const (
	ClassNormal     = "Normal"
	ClassBronchitis = "Bronchitis-Level-1"
	ClassAsthma     = "Asthma"
	ClassAcute      = "Acute-Bronchitis/Pneumonia"
)

// ConfusionMatrix is a square grid of classification percentages.
// Rows are the actual class, columns the predicted class.
type ConfusionMatrix struct {
	Labels []string    `json:"labels"`
	Values [][]float64 `json:"values"`
}

// ClassSpec configures one synthetic ROC curve.
type ClassSpec struct {
	Name  string  `json:"name"`
	AUC   float64 `json:"auc"`
	Color string  `json:"color"` // hex, e.g. "#4CAF50"
}

// Report is the full set of literals behind the three figures.
type Report struct {
	Title   string          `json:"title"`
	Version string          `json:"version"`
	Matrix  ConfusionMatrix `json:"confusion_matrix"`
	Classes []ClassSpec     `json:"classes"`
}

// TUSCA returns the TUSCA v2.2.2 cough classifier report.
func TUSCA() Report {
	return Report{
		Title:   "TUSCA",
		Version: "v2.2.2",
		Matrix: ConfusionMatrix{
			Labels: []string{ClassNormal, ClassBronchitis, ClassAsthma, ClassAcute},
			Values: [][]float64{
				{95, 2, 1, 2},
				{5, 88, 3, 4},
				{1, 2, 96, 1},
				{3, 4, 3, 90},
			},
		},
		Classes: []ClassSpec{
			{Name: ClassNormal, AUC: 0.98, Color: "#4CAF50"},
			{Name: ClassAsthma, AUC: 0.97, Color: "#FF9800"},
			{Name: ClassAcute, AUC: 0.95, Color: "#F44336"},
			{Name: ClassBronchitis, AUC: 0.94, Color: "#2196F3"},
		},
	}
}

// Size returns the number of classes in the matrix.
func (m ConfusionMatrix) Size() int { return len(m.Labels) }

// Diagonal returns the correctly classified percentage for each class.
func (m ConfusionMatrix) Diagonal() []float64 {
	d := make([]float64, len(m.Values))
	for i := range m.Values {
		d[i] = m.Values[i][i]
	}
	return d
}

// GlobalAccuracy is the arithmetic mean of the diagonal.
func (r Report) GlobalAccuracy() float64 {
	return mean(r.Matrix.Diagonal())
}

// MeanAUC is the arithmetic mean of the configured class AUCs.
func (r Report) MeanAUC() float64 {
	aucs := make([]float64, len(r.Classes))
	for i, c := range r.Classes {
		aucs[i] = c.AUC
	}
	return mean(aucs)
}

// Validate checks the structural invariants every renderer relies on.
func (r Report) Validate() error {
	m := r.Matrix
	if m.Size() == 0 {
		return errors.New(errors.ErrCodeInvalidReport, "confusion matrix has no classes")
	}
	if len(m.Values) != m.Size() {
		return errors.New(errors.ErrCodeInvalidReport, "confusion matrix has %d rows for %d labels", len(m.Values), m.Size())
	}
	for i, row := range m.Values {
		if len(row) != m.Size() {
			return errors.New(errors.ErrCodeInvalidReport, "row %d (%s) has %d columns, want %d", i, m.Labels[i], len(row), m.Size())
		}
		for j, v := range row {
			if v < 0 || v > 100 {
				return errors.New(errors.ErrCodeInvalidReport, "cell [%d][%d] = %g outside [0,100]", i, j, v)
			}
		}
	}
	if len(r.Classes) == 0 {
		return errors.New(errors.ErrCodeInvalidReport, "no ROC classes")
	}
	for _, c := range r.Classes {
		if c.AUC <= 0 || c.AUC > 1 {
			return errors.New(errors.ErrCodeInvalidReport, "class %s: AUC %g outside (0,1]", c.Name, c.AUC)
		}
		if _, err := colorful.Hex(c.Color); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidReport, err, "class %s: color %q", c.Name, c.Color)
		}
	}
	return nil
}

// DisplayLabel breaks a class name over two lines for tick labels.
// Hyphenated names split at their first hyphen and the remaining hyphens
// become spaces ("Bronchitis\nLevel 1"). Slash-joined names split after
// the slash.
func DisplayLabel(name string) string {
	if i := strings.Index(name, "/"); i >= 0 {
		return name[:i+1] + "\n" + name[i+1:]
	}
	if i := strings.Index(name, "-"); i >= 0 {
		return name[:i] + "\n" + strings.ReplaceAll(name[i+1:], "-", " ")
	}
	return name
}

// LegendLabel formats a class for the ROC legend, e.g. "Normal (AUC: 0.98)".
func (c ClassSpec) LegendLabel() string {
	return fmt.Sprintf("%s (AUC: %.2f)", c.Name, c.AUC)
}

func mean(vs []float64) float64 {
	if len(vs) == 0 {
		return 0
	}
	var sum float64
	for _, v := range vs {
		sum += v
	}
	return sum / float64(len(vs))
}
