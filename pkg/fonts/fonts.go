// Package fonts provides the TrueType fonts used by every figure.
//
// The Go fonts ship inside golang.org/x/image, so rendering needs no system
// font lookup. Both gg (heatmaps, dashboard) and go-chart (ROC curves) take a
// *truetype.Font, so the same parsed fonts serve both.
package fonts

import (
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// FontFamily is the CSS font-family used in SVG output.
const FontFamily = `'Go', 'DejaVu Sans', 'Helvetica', 'Arial', sans-serif`

// Parsed fonts (computed once on first access).
var (
	regular, bold         *truetype.Font
	regularErr, boldErr   error
	regularOnce, boldOnce sync.Once
)

// Regular returns the Go Regular font.
func Regular() (*truetype.Font, error) {
	regularOnce.Do(func() {
		regular, regularErr = truetype.Parse(goregular.TTF)
	})
	return regular, regularErr
}

// Bold returns the Go Bold font.
func Bold() (*truetype.Font, error) {
	boldOnce.Do(func() {
		bold, boldErr = truetype.Parse(gobold.TTF)
	})
	return bold, boldErr
}

// Face returns a face of f at size points. DPI is fixed at 72 so one point
// maps to one pixel before any figure scale is applied.
func Face(f *truetype.Font, size float64) font.Face {
	return truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}
