package analysis

import (
	"math"

	"github.com/san-kum/riftsim/internal/rift"
)

// PredictedElevation returns the closed-form surface elevation at
// distance dist from the fault trace after totalExtension of horizontal
// motion, for initially flat topography. Material now at distance d
// entered the hangingwall at d' = max(d - totalExtension, 0) and slid
// down the fault plane between the two:
//
//	z(d) = -h * (exp(-d'*G0/h) - exp(-d*G0/h))
func PredictedElevation(faultGrad, detachmentDepth, totalExtension, dist float64) float64 {
	if dist < 0 {
		dist = 0
	}
	dp := dist - totalExtension
	if dp < 0 {
		dp = 0
	}
	g := faultGrad / detachmentDepth
	return -detachmentDepth * (math.Exp(-dp*g) - math.Exp(-dist*g))
}

// PredictedProfile evaluates PredictedElevation at every x coordinate,
// measuring distance from faultLocation. Footwall nodes stay at zero.
func PredictedProfile(x []float64, faultLocation, faultGrad, detachmentDepth, totalExtension float64) []float64 {
	out := make([]float64, len(x))
	for i, xi := range x {
		d := xi - faultLocation
		if d <= 0 {
			continue
		}
		out[i] = PredictedElevation(faultGrad, detachmentDepth, totalExtension, d)
	}
	return out
}

// FaultPlaneProfile evaluates the analytic fault-plane elevation at
// every x coordinate. It is the floor hangingwall topography relaxes
// toward as extension grows.
func FaultPlaneProfile(x []float64, faultLocation, faultGrad, detachmentDepth float64) []float64 {
	out := make([]float64, len(x))
	for i, xi := range x {
		out[i] = rift.FaultPlaneElevation(faultGrad, detachmentDepth, xi-faultLocation)
	}
	return out
}

// Misfit summarizes the difference between two profiles over the nodes
// a keep function selects.
type Misfit struct {
	RMS    float64
	MaxAbs float64
	N      int
}

// Compare computes the misfit between a simulated and a reference
// profile. keep may be nil to compare every node.
func Compare(sim, ref []float64, keep func(i int) bool) Misfit {
	var m Misfit
	sum := 0.0
	for i := range sim {
		if i >= len(ref) {
			break
		}
		if keep != nil && !keep(i) {
			continue
		}
		diff := sim[i] - ref[i]
		sum += diff * diff
		if a := math.Abs(diff); a > m.MaxAbs {
			m.MaxAbs = a
		}
		m.N++
	}
	if m.N > 0 {
		m.RMS = math.Sqrt(sum / float64(m.N))
	}
	return m
}
