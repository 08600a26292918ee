// Package isostasy provides the caller-side isostatic response that
// consumes the crustal-thickness bookkeeping of the rift extender.
package isostasy

import (
	"fmt"

	"github.com/san-kum/riftsim/internal/grid"
)

// Default densities in kg/m^3.
const (
	DefaultCrustDensity  = 2700.0
	DefaultMantleDensity = 3300.0
)

// Airy applies local (Airy) isostatic compensation: where the upper
// crust has thinned since the previous application, the surface drops
// by the compensated fraction of the thickness change, and rises where
// it has thickened. There is no lateral flexural coupling; each node
// compensates independently.
type Airy struct {
	g             *grid.Grid
	crustDensity  float64
	mantleDensity float64
	prev          []float64
}

// NewAiry snapshots the current thickness field as the reference state.
// The grid must carry the upper_crust_thickness field.
func NewAiry(g *grid.Grid, crustDensity, mantleDensity float64) (*Airy, error) {
	if crustDensity <= 0 || mantleDensity <= 0 {
		return nil, fmt.Errorf("isostasy: densities must be positive, got crust=%g mantle=%g", crustDensity, mantleDensity)
	}
	if crustDensity >= mantleDensity {
		return nil, fmt.Errorf("isostasy: crust density %g must be below mantle density %g", crustDensity, mantleDensity)
	}
	thick, ok := g.Field(grid.FieldCrustThickness)
	if !ok {
		return nil, fmt.Errorf("isostasy: grid has no %s field", grid.FieldCrustThickness)
	}
	prev := make([]float64, len(thick))
	copy(prev, thick)
	return &Airy{g: g, crustDensity: crustDensity, mantleDensity: mantleDensity, prev: prev}, nil
}

// Apply adjusts the elevation field for thickness changes since the
// last Apply (or since construction) and takes a fresh snapshot.
func (a *Airy) Apply() error {
	thick, ok := a.g.Field(grid.FieldCrustThickness)
	if !ok {
		return fmt.Errorf("isostasy: grid has no %s field", grid.FieldCrustThickness)
	}
	elev, ok := a.g.Field(grid.FieldElevation)
	if !ok {
		return fmt.Errorf("isostasy: grid has no %s field", grid.FieldElevation)
	}
	if len(thick) != len(a.prev) || len(elev) != len(a.prev) {
		return fmt.Errorf("isostasy: field length changed since construction")
	}

	// compensated surface response per unit thickness change
	factor := (a.mantleDensity - a.crustDensity) / a.mantleDensity
	for i := range thick {
		elev[i] += factor * (thick[i] - a.prev[i])
		a.prev[i] = thick[i]
	}
	return nil
}

// Factor returns the compensated surface response per unit of crustal
// thickness change, (rho_m - rho_c) / rho_m.
func (a *Airy) Factor() float64 {
	return (a.mantleDensity - a.crustDensity) / a.mantleDensity
}
