package report

import (
	"math"
	"testing"

	"github.com/ispi-lubango/tuscaviz/pkg/errors"
)

func TestTUSCAGlobalAccuracy(t *testing.T) {
	r := TUSCA()
	if got := r.GlobalAccuracy(); got != 92.25 {
		t.Errorf("GlobalAccuracy() = %v, want 92.25", got)
	}
}

func TestTUSCAMeanAUC(t *testing.T) {
	r := TUSCA()
	if got := r.MeanAUC(); math.Abs(got-0.96) > 1e-9 {
		t.Errorf("MeanAUC() = %v, want 0.96", got)
	}
}

func TestTUSCAValuesInRange(t *testing.T) {
	r := TUSCA()
	for i, row := range r.Matrix.Values {
		for j, v := range row {
			if v < 0 || v > 100 {
				t.Errorf("cell [%d][%d] = %v outside [0,100]", i, j, v)
			}
		}
	}
	if err := r.Validate(); err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
}

func TestTUSCADiagonalDominates(t *testing.T) {
	m := TUSCA().Matrix
	for i, row := range m.Values {
		for j, v := range row {
			if i != j && v >= row[i] {
				t.Errorf("row %s: off-diagonal %v >= diagonal %v", m.Labels[i], v, row[i])
			}
		}
	}
}

func TestTUSCAReturnsCopy(t *testing.T) {
	a := TUSCA()
	a.Matrix.Values[0][0] = 0
	a.Classes[0].AUC = 0.1

	b := TUSCA()
	if b.Matrix.Values[0][0] != 95 || b.Classes[0].AUC != 0.98 {
		t.Error("TUSCA() should return independent copies")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Report)
	}{
		{"missing row", func(r *Report) { r.Matrix.Values = r.Matrix.Values[:3] }},
		{"short row", func(r *Report) { r.Matrix.Values[2] = []float64{1, 2} }},
		{"negative cell", func(r *Report) { r.Matrix.Values[1][1] = -1 }},
		{"cell over 100", func(r *Report) { r.Matrix.Values[3][0] = 101 }},
		{"no labels", func(r *Report) { r.Matrix.Labels = nil }},
		{"no classes", func(r *Report) { r.Classes = nil }},
		{"zero auc", func(r *Report) { r.Classes[0].AUC = 0 }},
		{"auc over one", func(r *Report) { r.Classes[1].AUC = 1.2 }},
		{"bad color", func(r *Report) { r.Classes[2].Color = "red" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := TUSCA()
			tt.mutate(&r)
			err := r.Validate()
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			if !errors.Is(err, errors.ErrCodeInvalidReport) {
				t.Errorf("Validate() code = %q, want %q", errors.GetCode(err), errors.ErrCodeInvalidReport)
			}
		})
	}
}

func TestDisplayLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{ClassNormal, "Normal"},
		{ClassBronchitis, "Bronchitis\nLevel 1"},
		{ClassAsthma, "Asthma"},
		{ClassAcute, "Acute-Bronchitis/\nPneumonia"},
	}
	for _, tt := range tests {
		if got := DisplayLabel(tt.in); got != tt.want {
			t.Errorf("DisplayLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLegendLabel(t *testing.T) {
	c := ClassSpec{Name: ClassNormal, AUC: 0.98}
	if got := c.LegendLabel(); got != "Normal (AUC: 0.98)" {
		t.Errorf("LegendLabel() = %q", got)
	}
}
