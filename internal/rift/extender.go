package rift

import (
	"fmt"
	"math"

	"github.com/san-kum/riftsim/internal/grid"
)

// Relative tolerance on hangingwall-edge comparisons, scaled by the
// cell width so off-grid fault locations behave the same as on-grid ones.
const edgeTol = 1e-9

// Params configures an Extender. All values are fixed for the run.
type Params struct {
	// ExtensionRate is the horizontal extension rate u (length/time, > 0).
	ExtensionRate float64
	// FaultDip is the surface dip of the fault in degrees, open interval (0, 90).
	FaultDip float64
	// FaultLocation is the x-coordinate of the fault trace at the start of
	// the run. It must lie within the grid x-extent.
	FaultLocation float64
	// DetachmentDepth is the asymptotic depth h at which the listric fault
	// plane flattens out (> 0).
	DetachmentDepth float64
	// FieldsToShift names additional grid fields carried along with the
	// hangingwall block on each discrete shift. Elevation is always
	// shifted and need not be listed.
	FieldsToShift []string
	// TrackCrustalThickness enables crustal-thickness bookkeeping. It
	// requires a pre-existing upper_crust_thickness field on the grid.
	TrackCrustalThickness bool
}

// Extender simulates kinematic extension along a listric normal fault.
//
// The hangingwall subsides continuously at a rate that decays
// exponentially with distance from the fault trace, and translates
// discretely by whole cells as horizontal offset accumulates. Between
// the two, hangingwall topography rides passively on the fault plane
// without numerical diffusion.
//
// The subsidence_rate field holds the downward rate (positive values
// mean the surface is dropping), so the continuous update is
// elevation -= rate*dt.
type Extender struct {
	g *grid.Grid
	p Params

	faultGrad float64 // tan(dip)
	cellWidth float64

	// fields translated on each shift: elevation, caller extras, and the
	// thickness field when tracking is enabled
	shiftFields []string

	offset float64 // horizontal offset accumulated since the last shift
	edge   float64 // current x position of the hangingwall edge
	shifts int     // total shifts fired over the run
}

// New validates p against g and builds an Extender. The grid must
// already carry an elevation field (and an upper_crust_thickness field
// when tracking is requested); the subsidence_rate output field and,
// when tracking, the cumulative_subsidence_depth field are created here.
func New(g *grid.Grid, p Params) (*Extender, error) {
	if g == nil {
		return nil, fmt.Errorf("rift: nil grid")
	}
	if p.FaultDip <= 0 || p.FaultDip >= 90 || math.IsNaN(p.FaultDip) {
		return nil, &ConfigError{Param: "fault_dip", Detail: fmt.Sprintf("%g", p.FaultDip), Wrapped: ErrDipRange}
	}
	if p.ExtensionRate <= 0 || math.IsNaN(p.ExtensionRate) || math.IsInf(p.ExtensionRate, 0) {
		return nil, &ConfigError{Param: "extension_rate", Detail: fmt.Sprintf("%g", p.ExtensionRate), Wrapped: ErrExtensionRate}
	}
	if p.DetachmentDepth <= 0 || math.IsNaN(p.DetachmentDepth) || math.IsInf(p.DetachmentDepth, 0) {
		return nil, &ConfigError{Param: "detachment_depth", Detail: fmt.Sprintf("%g", p.DetachmentDepth), Wrapped: ErrDetachmentDepth}
	}
	xmin, xmax := g.Extent()
	if p.FaultLocation < xmin || p.FaultLocation > xmax || math.IsNaN(p.FaultLocation) {
		return nil, &ConfigError{Param: "fault_location", Detail: fmt.Sprintf("%g not in [%g, %g]", p.FaultLocation, xmin, xmax), Wrapped: ErrFaultLocation}
	}

	e := &Extender{
		g:         g,
		p:         p,
		faultGrad: math.Tan(p.FaultDip * math.Pi / 180),
		cellWidth: g.Spacing(),
		edge:      p.FaultLocation,
	}

	e.shiftFields = append(e.shiftFields, grid.FieldElevation)
	for _, name := range p.FieldsToShift {
		if name != grid.FieldElevation && name != grid.FieldCrustThickness {
			e.shiftFields = append(e.shiftFields, name)
		}
	}
	if p.TrackCrustalThickness {
		e.shiftFields = append(e.shiftFields, grid.FieldCrustThickness)
	}

	for _, name := range e.shiftFields {
		if _, err := e.fieldChecked(name); err != nil {
			return nil, err
		}
	}

	g.AddField(grid.FieldSubsidenceRate)
	if p.TrackCrustalThickness {
		g.AddField(grid.FieldCumSubsidence)
	}
	return e, nil
}

// RunOneStep advances the simulation by dt: recompute the subsidence
// rate, apply the continuous vertical update, accumulate horizontal
// offset, and fire as many discrete shifts as the accumulated offset
// allows. All precondition checks happen before any field is touched.
func (e *Extender) RunOneStep(dt float64) error {
	// an infinite dt would make the shift loop spin forever
	if dt <= 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
		return fmt.Errorf("%w: got %g", ErrTimestep, dt)
	}

	elev, err := e.fieldChecked(grid.FieldElevation)
	if err != nil {
		return err
	}
	for _, name := range e.shiftFields {
		if _, err := e.fieldChecked(name); err != nil {
			return err
		}
	}
	var cum []float64
	if e.p.TrackCrustalThickness {
		if cum, err = e.fieldChecked(grid.FieldCumSubsidence); err != nil {
			return err
		}
	}

	e.UpdateSubsidenceRate()
	rate, _ := e.g.Field(grid.FieldSubsidenceRate)

	for i := range elev {
		elev[i] -= rate[i] * dt
	}
	if cum != nil {
		for i := range cum {
			cum[i] += rate[i] * dt
		}
	}

	e.offset += e.p.ExtensionRate * dt
	for e.offset >= e.cellWidth {
		e.fireShift()
	}
	return nil
}

// UpdateSubsidenceRate recomputes the subsidence_rate field from the
// current hangingwall edge without touching elevation, thickness, or
// offset state. Calling it repeatedly without stepping is a no-op
// beyond the recompute itself.
func (e *Extender) UpdateSubsidenceRate() {
	rate := e.g.AddField(grid.FieldSubsidenceRate)
	x := e.g.XCoords()
	lo := e.edge - edgeTol*e.cellWidth
	for i := range rate {
		if x[i] < lo {
			// footwall and exposed fault-plane nodes do not subside
			rate[i] = 0
			continue
		}
		d := x[i] - e.p.FaultLocation
		if d < 0 {
			d = 0
		}
		rate[i] = SubsidenceRate(e.p.ExtensionRate, e.faultGrad, e.p.DetachmentDepth, d)
	}
}

func (e *Extender) fieldChecked(name string) ([]float64, error) {
	f, ok := e.g.Field(name)
	if !ok {
		return nil, &ConfigError{Param: name, Wrapped: ErrMissingField}
	}
	if len(f) != e.g.Len() {
		return nil, &ConfigError{Param: name, Detail: fmt.Sprintf("len %d, want %d", len(f), e.g.Len()), Wrapped: ErrFieldLength}
	}
	return f, nil
}

// Grid returns the grid the extender operates on.
func (e *Extender) Grid() *grid.Grid { return e.g }

// Params returns the run configuration.
func (e *Extender) Params() Params { return e.p }

// CellWidth returns the discrete shift quantum (the grid spacing).
func (e *Extender) CellWidth() float64 { return e.cellWidth }

// FaultGradient returns tan(fault_dip).
func (e *Extender) FaultGradient() float64 { return e.faultGrad }

// CumulativeOffset returns the horizontal offset accumulated since the
// last shift. It is always in [0, cell width) between calls.
func (e *Extender) CumulativeOffset() float64 { return e.offset }

// HangingwallEdge returns the current x position of the hangingwall
// edge. It starts at the fault location and advances one cell per shift.
func (e *Extender) HangingwallEdge() float64 { return e.edge }

// ShiftCount returns the total number of shifts fired so far.
func (e *Extender) ShiftCount() int { return e.shifts }
