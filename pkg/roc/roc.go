// Package roc synthesizes smooth pseudo-ROC curves that hit a target AUC.
//
// The curves are a presentation device, not a measurement: no predictions or
// labels are involved. For a target AUC a, the candidate true-positive rate is
//
//	tpr(f) = clip(sqrt(f)·(a−0.5)·2 + f, 0, 1)
//
// over evenly spaced false-positive rates f in [0,1]. The candidate is then
// scaled so its trapezoidal area matches a. A single rescale followed by
// clipping undershoots badly near the top (≈0.87 for a target of 0.98), so
// the scale is found by bisection: area(clip(s·tpr)) is monotone in s.
package roc

import (
	"errors"
	"fmt"
	"math"
)

const (
	// DefaultPoints is the number of FPR samples per curve.
	DefaultPoints = 100

	// Tolerance is the maximum |achieved − target| accepted by Synthesize.
	Tolerance = 1e-4

	maxIterations = 200
)

// ErrUnreachableAUC is returned when no scale can reach the target area.
// TPR is pinned to 0 at FPR 0, so the best curve loses half of the first
// trapezoid; see MaxAUC.
var ErrUnreachableAUC = errors.New("target AUC unreachable")

// Curve is one synthesized ROC curve.
type Curve struct {
	FPR      []float64 `json:"fpr"`
	TPR      []float64 `json:"tpr"`
	Target   float64   `json:"target_auc"`
	Achieved float64   `json:"achieved_auc"`
}

// Synthesize builds a curve with points samples whose area is within
// Tolerance of targetAUC.
func Synthesize(targetAUC float64, points int) (Curve, error) {
	if points < 2 {
		return Curve{}, fmt.Errorf("need at least 2 points, got %d", points)
	}
	if math.IsNaN(targetAUC) || targetAUC <= 0 || targetAUC > MaxAUC(points) {
		return Curve{}, fmt.Errorf("%w: %.4f (max %.4f for %d points)", ErrUnreachableAUC, targetAUC, MaxAUC(points), points)
	}

	fpr := Linspace(0, 1, points)
	base := make([]float64, points)
	for i, f := range fpr {
		base[i] = Clip(math.Sqrt(f)*(targetAUC-0.5)*2+f, 0, 1)
	}

	// Every entry of base is positive except at f=0, so area(scaled(s))
	// rises from 0 towards MaxAUC as s grows.
	lo, hi := 0.0, targetAUC/Trapezoid(fpr, base)
	for Trapezoid(fpr, scaled(base, hi)) < targetAUC-Tolerance {
		lo, hi = hi, hi*2
		if math.IsInf(hi, 0) {
			return Curve{}, fmt.Errorf("%w: %.4f", ErrUnreachableAUC, targetAUC)
		}
	}

	tpr := scaled(base, hi)
	area := Trapezoid(fpr, tpr)
	for i := 0; i < maxIterations && math.Abs(area-targetAUC) > Tolerance; i++ {
		mid := (lo + hi) / 2
		tpr = scaled(base, mid)
		area = Trapezoid(fpr, tpr)
		if area < targetAUC {
			lo = mid
		} else {
			hi = mid
		}
	}

	return Curve{FPR: fpr, TPR: tpr, Target: targetAUC, Achieved: area}, nil
}

// MaxAUC is the largest area a curve with the given sample count can reach.
func MaxAUC(points int) float64 {
	if points < 2 {
		return 0
	}
	return 1 - 0.5/float64(points-1)
}

// Trapezoid integrates y over x with the trapezoidal rule.
// x and y must have the same length.
func Trapezoid(x, y []float64) float64 {
	var area float64
	for i := 1; i < len(x) && i < len(y); i++ {
		area += (x[i] - x[i-1]) * (y[i] + y[i-1]) / 2
	}
	return area
}

// Linspace returns n evenly spaced values over [start, stop].
func Linspace(start, stop float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	if n == 1 {
		out[0] = start
		return out
	}
	step := (stop - start) / float64(n-1)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	out[n-1] = stop
	return out
}

// Clip bounds v to [lo, hi].
func Clip(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func scaled(base []float64, s float64) []float64 {
	out := make([]float64, len(base))
	for i, v := range base {
		out[i] = Clip(v*s, 0, 1)
	}
	return out
}
