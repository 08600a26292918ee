package metrics

import (
	"math"

	"github.com/san-kum/riftsim/internal/grid"
	"github.com/san-kum/riftsim/internal/rift"
)

// Metric observes extender state once per step and reduces it to a
// scalar diagnostic.
type Metric interface {
	Name() string
	Observe(e *rift.Extender, t float64)
	Value() float64
	Reset()
}

// ShiftTally reports the total number of discrete hangingwall shifts.
type ShiftTally struct {
	count int
}

func NewShiftTally() *ShiftTally { return &ShiftTally{} }

func (s *ShiftTally) Name() string { return "shift_count" }

func (s *ShiftTally) Observe(e *rift.Extender, t float64) {
	s.count = e.ShiftCount()
}

func (s *ShiftTally) Value() float64 { return float64(s.count) }

func (s *ShiftTally) Reset() { s.count = 0 }

// SubsidedVolume integrates the elevation drop relative to the profile
// seen on the first observation. Positive values mean net subsidence.
type SubsidedVolume struct {
	baseline []float64
	volume   float64
}

func NewSubsidedVolume() *SubsidedVolume { return &SubsidedVolume{} }

func (v *SubsidedVolume) Name() string { return "subsided_volume" }

func (v *SubsidedVolume) Observe(e *rift.Extender, t float64) {
	elev, ok := e.Grid().Field(grid.FieldElevation)
	if !ok {
		return
	}
	if v.baseline == nil {
		v.baseline = make([]float64, len(elev))
		copy(v.baseline, elev)
	}
	cell := e.CellWidth()
	if e.Grid().Dims() == 2 {
		cell *= e.CellWidth()
	}
	sum := 0.0
	for i := range elev {
		sum += v.baseline[i] - elev[i]
	}
	v.volume = sum * cell
}

func (v *SubsidedVolume) Value() float64 { return v.volume }

func (v *SubsidedVolume) Reset() {
	v.baseline = nil
	v.volume = 0
}

// ExtensionBudget tracks the worst deviation of the hangingwall edge
// from its discrete target x0 + cellWidth*floor(u*t/cellWidth). A large
// value means shifts were dropped or double-fired.
type ExtensionBudget struct {
	maxDev float64
}

func NewExtensionBudget() *ExtensionBudget { return &ExtensionBudget{} }

func (b *ExtensionBudget) Name() string { return "extension_budget_err" }

func (b *ExtensionBudget) Observe(e *rift.Extender, t float64) {
	p := e.Params()
	cw := e.CellWidth()
	expected := p.FaultLocation + cw*math.Floor(p.ExtensionRate*t/cw)
	if dev := math.Abs(e.HangingwallEdge() - expected); dev > b.maxDev {
		b.maxDev = dev
	}
}

func (b *ExtensionBudget) Value() float64 { return b.maxDev }

func (b *ExtensionBudget) Reset() { b.maxDev = 0 }
