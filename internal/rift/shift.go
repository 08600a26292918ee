package rift

import "github.com/san-kum/riftsim/internal/grid"

// fireShift translates the hangingwall block one cell toward +x and
// advances the edge. Callers loop on the shift condition, so one call
// moves exactly one cell.
//
// The translation is a gather: each hangingwall node takes the value of
// its same-row left neighbor. Walking node indices in descending order
// makes the in-place copy safe because left-neighbor indices are always
// lower (see grid.LeftNeighbor). Nodes left of the hangingwall edge are
// never written.
func (e *Extender) fireShift() {
	x := e.g.XCoords()
	n := e.g.Len()
	lo := e.edge - edgeTol*e.cellWidth

	for _, name := range e.shiftFields {
		f, _ := e.g.Field(name)
		for i := n - 1; i >= 0; i-- {
			if x[i] < lo {
				continue
			}
			if l := e.g.LeftNeighbor(i); l >= 0 {
				f[i] = f[l]
			}
		}
	}

	if e.p.TrackCrustalThickness {
		// The shifted thickness still carries its pre-subsidence values;
		// settle the vertical loss accumulated since the previous shift,
		// then start a fresh accumulation window.
		thick, _ := e.g.Field(grid.FieldCrustThickness)
		cum, _ := e.g.Field(grid.FieldCumSubsidence)
		for i := 0; i < n; i++ {
			if x[i] >= lo {
				thick[i] -= cum[i]
			}
		}
		for i := range cum {
			cum[i] = 0
		}
	}

	e.offset -= e.cellWidth
	e.shifts++
	// recompute from the shift count rather than accumulating, so the
	// edge stays exactly on the fault-location lattice
	e.edge = e.p.FaultLocation + float64(e.shifts)*e.cellWidth
}
