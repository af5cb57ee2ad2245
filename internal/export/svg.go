package export

import (
	"fmt"
	"math"
	"strings"

	"github.com/san-kum/softviz/internal/transform"
	"github.com/san-kum/softviz/internal/viz"
)

const (
	OriginalColor    = "#0000ff"
	TransformedColor = "#800080"
	backgroundColor  = "#0a0a0a"
)

// CanvasToSVG converts a Braille canvas to SVG, one circle per lit sub-pixel.
func CanvasToSVG(canvas *viz.Canvas, scale float64, fill string) string {
	if canvas == nil {
		return ""
	}
	if fill == "" {
		fill = TransformedColor
	}

	width := float64(canvas.PixelWidth()) * scale
	height := float64(canvas.PixelHeight()) * scale

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
<g fill="%s">
`, width, height, width, height, backgroundColor, fill))

	dotRadius := scale * 0.4
	for y := 0; y < canvas.PixelHeight(); y++ {
		for x := 0; x < canvas.PixelWidth(); x++ {
			if !canvas.IsSet(x, y) {
				continue
			}
			cx := float64(x)*scale + scale/2
			cy := float64(y)*scale + scale/2
			sb.WriteString(fmt.Sprintf("<circle cx=\"%.1f\" cy=\"%.1f\" r=\"%.1f\"/>\n", cx, cy, dotRadius))
		}
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

// HistogramSVG draws the original values and the transformed output as paired
// bars, with the probability and exponent of each column printed below.
func HistogramSVG(values transform.Vector, res *transform.Result, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	var output transform.Vector
	if res != nil {
		output = res.Output
	}
	n := len(values)
	labelBand := 36.0
	plotH := float64(height) - labelBand
	if plotH < 1 {
		plotH = 1
	}
	scale := viz.HistogramScale(values, output)
	signed := viz.HasNegative(values, output)
	baseline, span := plotH, plotH
	if signed {
		baseline, span = plotH/2, plotH/2
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d" font-family="monospace" font-size="10">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, backgroundColor))

	if n > 0 {
		slot := float64(width) / float64(n)
		barW := slot * 0.4
		for i, v := range values {
			x := float64(i) * slot
			writeBar(&sb, x+slot*0.1, barW, v, scale, baseline, span, OriginalColor)
			if i < len(output) {
				writeBar(&sb, x+slot*0.5, barW, output[i], scale, baseline, span, TransformedColor)
			}
			if res != nil && i < len(res.Probabilities) {
				cx := x + slot/2
				sb.WriteString(fmt.Sprintf("<text x=\"%.1f\" y=\"%.1f\" fill=\"#dddddd\" text-anchor=\"middle\">p=%s</text>\n",
					cx, plotH+14, label(res.Probabilities[i])))
				sb.WriteString(fmt.Sprintf("<text x=\"%.1f\" y=\"%.1f\" fill=\"#888888\" text-anchor=\"middle\">e=%s</text>\n",
					cx, plotH+28, label(res.Exponents[i])))
			}
		}
	}
	if signed {
		sb.WriteString(fmt.Sprintf("<line x1=\"0\" y1=\"%.1f\" x2=\"%d\" y2=\"%.1f\" stroke=\"#666666\"/>\n", baseline, width, baseline))
	}

	sb.WriteString("</svg>")
	return sb.String()
}

// writeBar follows viz.LayoutBars: NaN draws no bar and infinities fill the span.
func writeBar(sb *strings.Builder, x, w, v, scale, baseline, span float64, fill string) {
	if math.IsNaN(v) {
		return
	}
	h := span
	if ratio := math.Abs(v) / scale; ratio < 1 {
		h = ratio * span
	}
	y := baseline - h
	if v < 0 {
		y = baseline
	}
	sb.WriteString(fmt.Sprintf("<rect x=\"%.1f\" y=\"%.1f\" width=\"%.1f\" height=\"%.1f\" fill=\"%s\"/>\n", x, y, w, h, fill))
}

func label(x float64) string {
	switch {
	case math.IsNaN(x):
		return "undefined"
	case math.IsInf(x, 1):
		return "∞"
	case math.IsInf(x, -1):
		return "-∞"
	}
	return fmt.Sprintf("%.2f", x)
}
