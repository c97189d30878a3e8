package heatmap

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// rdYlGn is the ColorBrewer red-yellow-green diverging scheme, low to high.
var rdYlGn = []string{
	"#a50026", "#d73027", "#f46d43", "#fdae61", "#fee08b", "#ffffbf",
	"#d9ef8b", "#a6d96a", "#66bd63", "#1a9850", "#006837",
}

// Colormap maps scalar values in [Min, Max] onto a sequence of color stops.
// Values outside the range clamp to the end colors.
type Colormap struct {
	Min, Max float64
	stops    []colorful.Color
}

// RdYlGn returns the red-yellow-green colormap over [min, max].
func RdYlGn(min, max float64) Colormap {
	stops := make([]colorful.Color, len(rdYlGn))
	for i, h := range rdYlGn {
		c, err := colorful.Hex(h)
		if err != nil {
			panic(fmt.Sprintf("heatmap: bad colormap stop %q: %v", h, err))
		}
		stops[i] = c
	}
	return Colormap{Min: min, Max: max, stops: stops}
}

// At returns the color for v, interpolated linearly in RGB between stops.
func (c Colormap) At(v float64) colorful.Color {
	t := 0.0
	if c.Max > c.Min {
		t = (v - c.Min) / (c.Max - c.Min)
	}
	t = math.Max(0, math.Min(1, t))

	pos := t * float64(len(c.stops)-1)
	i := int(math.Floor(pos))
	if i >= len(c.stops)-1 {
		return c.stops[len(c.stops)-1]
	}
	return c.stops[i].BlendRgb(c.stops[i+1], pos-float64(i)).Clamped()
}
