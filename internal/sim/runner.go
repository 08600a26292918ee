package sim

import (
	"context"
	"fmt"

	"github.com/san-kum/riftsim/internal/grid"
	"github.com/san-kum/riftsim/internal/isostasy"
	"github.com/san-kum/riftsim/internal/metrics"
	"github.com/san-kum/riftsim/internal/rift"
)

// Observer receives a callback after every completed step.
type Observer interface {
	OnStep(e *rift.Extender, t float64)
}

// Config controls a run.
type Config struct {
	Dt       float64
	Duration float64
}

// Result captures the trajectory of the run state machine plus the
// final surface profile.
type Result struct {
	Times      []float64
	Offsets    []float64
	Edges      []float64
	Elevation  []float64
	Metrics    map[string]float64
	StepsTaken int
}

// Runner drives an extender through a run: it steps the fault model,
// applies the optional isostatic response after each step (the coupling
// runs caller-side, outside the extender), and feeds metrics and
// observers.
type Runner struct {
	ext       *rift.Extender
	iso       *isostasy.Airy
	metrics   []metrics.Metric
	observers []Observer
}

func New(ext *rift.Extender) *Runner {
	return &Runner{
		ext:       ext,
		metrics:   make([]metrics.Metric, 0),
		observers: make([]Observer, 0),
	}
}

// SetIsostasy enables the isostatic response after every step.
func (r *Runner) SetIsostasy(a *isostasy.Airy) { r.iso = a }

func (r *Runner) AddMetric(m metrics.Metric) { r.metrics = append(r.metrics, m) }
func (r *Runner) AddObserver(o Observer)     { r.observers = append(r.observers, o) }

// Extender returns the driven extender.
func (r *Runner) Extender() *rift.Extender { return r.ext }

func (r *Runner) Run(ctx context.Context, cfg Config) (*Result, error) {
	if err := r.validateConfig(cfg); err != nil {
		return nil, err
	}

	steps := int(cfg.Duration / cfg.Dt)
	result := &Result{
		Times:   make([]float64, 0, steps+1),
		Offsets: make([]float64, 0, steps+1),
		Edges:   make([]float64, 0, steps+1),
		Metrics: make(map[string]float64),
	}

	for _, m := range r.metrics {
		m.Reset()
	}

	t := 0.0
	result.record(r.ext, t)

	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		if err := r.ext.RunOneStep(cfg.Dt); err != nil {
			return result, err
		}
		if r.iso != nil {
			if err := r.iso.Apply(); err != nil {
				return result, err
			}
		}
		t += cfg.Dt
		result.StepsTaken++

		for _, m := range r.metrics {
			m.Observe(r.ext, t)
		}
		for _, obs := range r.observers {
			obs.OnStep(r.ext, t)
		}

		result.record(r.ext, t)
	}

	if elev, ok := r.ext.Grid().Field(grid.FieldElevation); ok {
		result.Elevation = make([]float64, len(elev))
		copy(result.Elevation, elev)
	}
	for _, m := range r.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	return result, nil
}

func (r *Runner) validateConfig(cfg Config) error {
	if cfg.Dt <= 0 {
		return fmt.Errorf("sim: dt must be positive, got %f", cfg.Dt)
	}
	if cfg.Duration <= 0 {
		return fmt.Errorf("sim: duration must be positive, got %f", cfg.Duration)
	}
	if cfg.Duration < cfg.Dt {
		return fmt.Errorf("sim: duration %f shorter than dt %f", cfg.Duration, cfg.Dt)
	}
	return nil
}

func (res *Result) record(e *rift.Extender, t float64) {
	res.Times = append(res.Times, t)
	res.Offsets = append(res.Offsets, e.CumulativeOffset())
	res.Edges = append(res.Edges, e.HangingwallEdge())
}
