package analysis

import (
	"math"
	"testing"
)

func TestPredictedElevationLimits(t *testing.T) {
	g0 := math.Tan(60 * math.Pi / 180)
	h := 10000.0

	// no extension, no subsidence
	if got := PredictedElevation(g0, h, 0, 5000); got != 0 {
		t.Errorf("zero extension should give zero elevation, got %g", got)
	}

	// fully emerged material (d' = 0) sits on the fault plane
	ext := 8000.0
	got := PredictedElevation(g0, h, ext, ext)
	want := -h * (1 - math.Exp(-ext*g0/h))
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("material at d=extension should sit on the fault plane: got %g, want %g", got, want)
	}

	// elevation is never positive
	for d := 0.0; d <= 40000; d += 500 {
		if PredictedElevation(g0, h, 10000, d) > 0 {
			t.Fatalf("positive elevation at d=%g", d)
		}
	}
}

func TestPredictedProfileFootwall(t *testing.T) {
	x := []float64{0, 1000, 2000, 11000, 12000}
	prof := PredictedProfile(x, 10000, 1.0, 10000, 5000)

	for i := 0; i < 3; i++ {
		if prof[i] != 0 {
			t.Errorf("footwall node %d should stay at zero, got %g", i, prof[i])
		}
	}
	for i := 3; i < 5; i++ {
		if prof[i] >= 0 {
			t.Errorf("hangingwall node %d should subside, got %g", i, prof[i])
		}
	}
}

func TestFaultPlaneProfileBounds(t *testing.T) {
	x := []float64{0, 5000, 10000, 15000, 40000}
	plane := FaultPlaneProfile(x, 10000, 1.0, 10000)

	// the plane outcrops at the trace and everywhere footwall-side
	for i := 0; i < 3; i++ {
		if plane[i] != 0 {
			t.Errorf("node %d should sit at the outcrop, got %g", i, plane[i])
		}
	}

	// the simulated surface can never undercut the fault plane, so the
	// closed-form surface must stay above it too
	for i := range x {
		surf := PredictedElevation(1.0, 10000, 20000, x[i]-10000)
		if surf < plane[i]-1e-9 {
			t.Errorf("surface %g below fault plane %g at node %d", surf, plane[i], i)
		}
	}
}

func TestCompare(t *testing.T) {
	sim := []float64{0, 1, 2, 3}
	ref := []float64{0, 1, 2, 6}

	m := Compare(sim, ref, nil)
	if m.N != 4 {
		t.Errorf("expected 4 compared nodes, got %d", m.N)
	}
	if m.MaxAbs != 3 {
		t.Errorf("expected max misfit 3, got %g", m.MaxAbs)
	}
	wantRMS := math.Sqrt(9.0 / 4.0)
	if math.Abs(m.RMS-wantRMS) > 1e-12 {
		t.Errorf("expected rms %g, got %g", wantRMS, m.RMS)
	}

	// masked compare skips the mismatch
	masked := Compare(sim, ref, func(i int) bool { return i < 3 })
	if masked.N != 3 || masked.MaxAbs != 0 {
		t.Errorf("mask did not apply: %+v", masked)
	}
}

func TestCompareEmpty(t *testing.T) {
	m := Compare(nil, nil, nil)
	if m.N != 0 || m.RMS != 0 || m.MaxAbs != 0 {
		t.Errorf("empty compare should be zero-valued: %+v", m)
	}
}
