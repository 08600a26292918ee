package rift

import "math"

// SubsidenceRate returns the instantaneous downward surface velocity of
// hangingwall material at distance dist from the fault trace, for a
// listric fault with surface gradient faultGrad = tan(dip) that flattens
// exponentially toward detachmentDepth:
//
//	rate(d) = u * G0 * exp(-d*G0/h)
//
// The value is a positive subsidence rate; it is the caller's job to
// mask out footwall and exposed fault-plane nodes.
func SubsidenceRate(extensionRate, faultGrad, detachmentDepth, dist float64) float64 {
	if dist < 0 {
		dist = 0
	}
	return extensionRate * faultGrad * math.Exp(-dist*faultGrad/detachmentDepth)
}

// FaultPlaneElevation returns the depth of the listric fault plane at
// distance dist from the trace. The plane dips at faultGrad at the
// surface and decays toward -detachmentDepth:
//
//	z(d) = -h * (1 - exp(-d*G0/h))
func FaultPlaneElevation(faultGrad, detachmentDepth, dist float64) float64 {
	if dist < 0 {
		dist = 0
	}
	return -detachmentDepth * (1 - math.Exp(-dist*faultGrad/detachmentDepth))
}
