package viz

import (
	"math"

	"github.com/san-kum/softviz/internal/transform"
)

// Bar is one histogram column in sub-pixel coordinates, [X0,X1) x [Y0,Y1).
type Bar struct {
	Index          int
	Value          float64
	X0, Y0, X1, Y1 int
}

// HistogramScale returns the bar height that maps to the full canvas: the
// largest finite magnitude across all vectors, never below 1 so inputs in
// [0, 1] keep their natural proportions.
func HistogramScale(vs ...transform.Vector) float64 {
	scale := 1.0
	for _, v := range vs {
		for _, x := range v {
			if a := math.Abs(x); a > scale && !math.IsInf(a, 0) {
				scale = a
			}
		}
	}
	return scale
}

// HasNegative reports whether any vector holds a value below zero.
func HasNegative(vs ...transform.Vector) bool {
	for _, v := range vs {
		for _, x := range v {
			if x < 0 {
				return true
			}
		}
	}
	return false
}

// LayoutBars places one bar per value on a pw x ph sub-pixel area. Signed
// layouts put the baseline in the middle, otherwise bars grow from the bottom.
func LayoutBars(values transform.Vector, scale float64, pw, ph int, signed bool) []Bar {
	n := len(values)
	if n == 0 || pw <= 0 || ph <= 0 {
		return nil
	}
	if scale <= 0 {
		scale = 1
	}

	baseline, span := ph, ph
	if signed {
		baseline, span = ph/2, ph/2
	}

	slot := float64(pw) / float64(n)
	gap := 0
	if slot >= 3 {
		gap = 1
	}

	bars := make([]Bar, n)
	for i, v := range values {
		x0 := int(float64(i) * slot)
		x1 := int(float64(i+1)*slot) - gap
		if x1 <= x0 {
			x1 = x0 + 1
		}

		// NaN draws nothing, infinities fill the span
		h := span
		if ratio := math.Abs(v) / scale; math.IsNaN(ratio) {
			h = 0
		} else if ratio < 1 {
			h = int(math.Round(ratio * float64(span)))
		}

		b := Bar{Index: i, Value: v, X0: x0, X1: x1}
		if v < 0 && signed {
			b.Y0, b.Y1 = baseline, baseline+h
		} else {
			b.Y0, b.Y1 = baseline-h, baseline
		}
		bars[i] = b
	}
	return bars
}

// DrawHistogram clears c and draws values as vertical bars.
func DrawHistogram(c *Canvas, values transform.Vector, scale float64, signed bool) []Bar {
	c.Clear()
	pw, ph := c.PixelWidth(), c.PixelHeight()
	bars := LayoutBars(values, scale, pw, ph, signed)
	for _, b := range bars {
		c.FillRect(b.X0, b.Y0, b.X1, b.Y1)
	}
	if signed && len(bars) > 0 {
		c.DrawLine(0, ph/2, pw-1, ph/2)
	}
	return bars
}
