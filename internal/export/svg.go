package export

import (
	"fmt"
	"strings"
)

// ProfileSVG renders a cross-section as an SVG polyline: x along the
// horizontal axis, elevation vertical, autoscaled to the given pixel
// dimensions.
func ProfileSVG(x, elev []float64, width, height int, strokeColor string) string {
	if len(x) < 2 || len(elev) != len(x) {
		return ""
	}
	if strokeColor == "" {
		strokeColor = "#00ff00"
	}

	minX, maxX := x[0], x[0]
	minE, maxE := elev[0], elev[0]
	for i := range x {
		if x[i] < minX {
			minX = x[i]
		}
		if x[i] > maxX {
			maxX = x[i]
		}
		if elev[i] < minE {
			minE = elev[i]
		}
		if elev[i] > maxE {
			maxE = elev[i]
		}
	}

	rangeX := maxX - minX
	rangeE := maxE - minE
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeE == 0 {
		rangeE = 1
	}

	margin := 10.0
	w := float64(width) - 2*margin
	h := float64(height) - 2*margin

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<polyline fill="none" stroke="%s" stroke-width="1.5" points="`,
		width, height, width, height, strokeColor))

	for i := range x {
		px := margin + (x[i]-minX)/rangeX*w
		// SVG y grows downward; keep high elevation at the top
		py := margin + (maxE-elev[i])/rangeE*h
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(fmt.Sprintf("%.1f,%.1f", px, py))
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}
