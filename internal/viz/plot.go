package viz

import "github.com/guptarohit/asciigraph"

// PlotProfile renders an elevation cross-section as an ASCII graph.
// For multi-row grids, pass a single row's worth of values.
func PlotProfile(elev []float64, width, height int, caption string) string {
	if len(elev) == 0 {
		return ""
	}
	return asciigraph.Plot(elev,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
	)
}

// PlotSeries renders a time series (offset sawtooth, edge staircase).
func PlotSeries(values []float64, width, height int, caption string) string {
	if len(values) == 0 {
		return ""
	}
	return asciigraph.Plot(values,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
	)
}
