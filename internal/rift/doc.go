// Package rift implements kinematic extension along a listric normal
// fault on a structured grid.
//
// The model splits hangingwall motion into two parts:
//
//   - a continuous vertical component: material above the fault plane
//     subsides at a rate that decays exponentially with distance from
//     the fault trace, rate(d) = u*G0*exp(-d*G0/h), where G0 = tan(dip)
//     and h is the detachment depth;
//   - a discrete horizontal component: once the accumulated extension
//     reaches one cell width, every hangingwall field is translated one
//     cell toward +x, preserving topography exactly instead of smearing
//     it through an interpolated advection step.
//
// [Extender] owns the run state: the offset accumulated since the last
// shift (a sawtooth) and the hangingwall-edge position (a staircase).
// [Extender.RunOneStep] advances both; [Extender.UpdateSubsidenceRate]
// recomputes the rate field without side effects for callers that apply
// it themselves.
//
// When crustal-thickness tracking is enabled the extender also
// maintains an upper_crust_thickness field across shifts and exposes
// the subsidence accumulated since the last shift, which downstream
// isostasy components consume.
//
// # Thread Safety
//
// Extender instances are NOT thread-safe. Each step assumes exclusive
// access to the grid fields it mutates.
package rift
