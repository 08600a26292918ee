package rift_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/riftsim/internal/grid"
	"github.com/san-kum/riftsim/internal/rift"
)

// newLine builds an n-node line grid with spacing dx and a zeroed
// elevation field.
func newLine(n int, dx float64) *grid.Grid {
	g, err := grid.NewLine(n, dx)
	Expect(err).NotTo(HaveOccurred())
	g.AddField(grid.FieldElevation)
	return g
}

var _ = Describe("Extender", func() {
	Describe("UpdateSubsidenceRate", func() {
		It("is idempotent without an intervening step", func() {
			g := newLine(41, 1.0)
			ext, err := rift.New(g, rift.Params{
				ExtensionRate: 0.25, FaultDip: 60, FaultLocation: 10, DetachmentDepth: 10,
			})
			Expect(err).NotTo(HaveOccurred())

			ext.UpdateSubsidenceRate()
			rate, _ := g.Field(grid.FieldSubsidenceRate)
			first := make([]float64, len(rate))
			copy(first, rate)

			ext.UpdateSubsidenceRate()
			Expect(rate).To(Equal(first))
		})

		It("does not mutate elevation or offset state", func() {
			g := newLine(41, 1.0)
			elev, _ := g.Field(grid.FieldElevation)
			for i := range elev {
				elev[i] = float64(i)
			}
			ext, err := rift.New(g, rift.Params{
				ExtensionRate: 0.25, FaultDip: 60, FaultLocation: 10, DetachmentDepth: 10,
			})
			Expect(err).NotTo(HaveOccurred())

			ext.UpdateSubsidenceRate()
			for i := range elev {
				Expect(elev[i]).To(Equal(float64(i)))
			}
			Expect(ext.CumulativeOffset()).To(BeZero())
			Expect(ext.HangingwallEdge()).To(Equal(10.0))
		})

		It("produces zero rate on the footwall, always", func() {
			g := newLine(41, 1.0)
			ext, err := rift.New(g, rift.Params{
				ExtensionRate: 0.25, FaultDip: 45, FaultLocation: 10, DetachmentDepth: 8,
			})
			Expect(err).NotTo(HaveOccurred())

			for step := 0; step < 30; step++ {
				Expect(ext.RunOneStep(0.5)).To(Succeed())
				rate, _ := g.Field(grid.FieldSubsidenceRate)
				for i := 0; i < g.Len(); i++ {
					if g.X(i) < 10 {
						Expect(rate[i]).To(BeZero(), "footwall node %d subsided at step %d", i, step)
					}
				}
			}
		})

		It("zeroes the rate on exposed fault-plane nodes behind the edge", func() {
			g := newLine(41, 1.0)
			ext, err := rift.New(g, rift.Params{
				ExtensionRate: 1.0, FaultDip: 60, FaultLocation: 10, DetachmentDepth: 10,
			})
			Expect(err).NotTo(HaveOccurred())

			// 3.5 cells of offset: three shifts, edge at 13
			Expect(ext.RunOneStep(3.5)).To(Succeed())
			Expect(ext.HangingwallEdge()).To(Equal(13.0))

			ext.UpdateSubsidenceRate()
			rate, _ := g.Field(grid.FieldSubsidenceRate)
			for i := 0; i < g.Len(); i++ {
				if g.X(i) < 13 {
					Expect(rate[i]).To(BeZero(), "node %d at x=%g should be inactive", i, g.X(i))
				} else {
					Expect(rate[i]).To(BeNumerically(">", 0))
				}
			}
		})
	})

	Describe("hangingwall edge", func() {
		It("advances as a staircase matching floor(total extension / cell width)", func() {
			g := newLine(41, 1.0)
			ext, err := rift.New(g, rift.Params{
				ExtensionRate: 0.25, FaultDip: 60, FaultLocation: 10, DetachmentDepth: 10,
			})
			Expect(err).NotTo(HaveOccurred())

			// 0.125 of offset per step, all exactly representable
			for step := 1; step <= 37; step++ {
				Expect(ext.RunOneStep(0.5)).To(Succeed())

				total := 0.125 * float64(step)
				want := 10.0 + math.Floor(total)
				Expect(ext.HangingwallEdge()).To(Equal(want), "after step %d", step)
				Expect(ext.CumulativeOffset()).To(BeNumerically(">=", 0))
				Expect(ext.CumulativeOffset()).To(BeNumerically("<", 1.0))
			}

			Expect(ext.ShiftCount()).To(Equal(4))
			Expect(ext.CumulativeOffset()).To(Equal(0.625))
		})

		It("fires multiple shifts when one step spans several cells", func() {
			g := newLine(41, 1.0)
			ext, err := rift.New(g, rift.Params{
				ExtensionRate: 1.0, FaultDip: 60, FaultLocation: 10, DetachmentDepth: 10,
			})
			Expect(err).NotTo(HaveOccurred())

			Expect(ext.RunOneStep(3.5)).To(Succeed())
			Expect(ext.ShiftCount()).To(Equal(3))
			Expect(ext.HangingwallEdge()).To(Equal(13.0))
			Expect(ext.CumulativeOffset()).To(Equal(0.5))
		})
	})

	Describe("shift", func() {
		It("translates hangingwall fields without inventing values", func() {
			g := newLine(31, 1.0)
			marker := g.AddField("marker")
			for i := range marker {
				marker[i] = float64(i * i)
			}
			pre := make([]float64, len(marker))
			copy(pre, marker)

			ext, err := rift.New(g, rift.Params{
				ExtensionRate: 1.0, FaultDip: 60, FaultLocation: 10, DetachmentDepth: 10,
				FieldsToShift: []string{"marker"},
			})
			Expect(err).NotTo(HaveOccurred())

			// exactly one shift
			Expect(ext.RunOneStep(1.0)).To(Succeed())
			Expect(ext.ShiftCount()).To(Equal(1))

			for i := 0; i < g.Len(); i++ {
				switch {
				case g.X(i) < 10:
					Expect(marker[i]).To(Equal(pre[i]), "footwall node %d was touched", i)
				default:
					Expect(marker[i]).To(Equal(pre[i-1]), "hangingwall node %d is not a pure translation", i)
				}
			}
		})

		It("translates by one cell per shift across multiple shifts", func() {
			g := newLine(31, 1.0)
			marker := g.AddField("marker")
			for i := range marker {
				marker[i] = float64(i)
			}
			pre := make([]float64, len(marker))
			copy(pre, marker)

			ext, err := rift.New(g, rift.Params{
				ExtensionRate: 1.0, FaultDip: 60, FaultLocation: 10, DetachmentDepth: 10,
				FieldsToShift: []string{"marker"},
			})
			Expect(err).NotTo(HaveOccurred())

			Expect(ext.RunOneStep(3.5)).To(Succeed())
			Expect(ext.ShiftCount()).To(Equal(3))

			// nodes at or beyond the final edge have seen all three shifts
			for i := 0; i < g.Len(); i++ {
				if g.X(i) >= 12 {
					Expect(marker[i]).To(Equal(pre[i-3]))
				}
			}
		})

		It("keeps rows independent on a 2-D grid", func() {
			g, err := grid.NewPlane(21, 3, 1.0)
			Expect(err).NotTo(HaveOccurred())
			g.AddField(grid.FieldElevation)
			marker := g.AddField("marker")
			for i := range marker {
				// distinct value per (row, column)
				marker[i] = float64(i/21)*1000 + float64(i%21)
			}
			pre := make([]float64, len(marker))
			copy(pre, marker)

			ext, err := rift.New(g, rift.Params{
				ExtensionRate: 1.0, FaultDip: 60, FaultLocation: 10, DetachmentDepth: 10,
				FieldsToShift: []string{"marker"},
			})
			Expect(err).NotTo(HaveOccurred())

			Expect(ext.RunOneStep(1.0)).To(Succeed())
			Expect(ext.ShiftCount()).To(Equal(1))

			for i := 0; i < g.Len(); i++ {
				if g.X(i) >= 10 {
					Expect(marker[i]).To(Equal(pre[i-1]))
					// value stayed within its own row
					Expect(int(marker[i]) / 1000).To(Equal(i / 21))
				} else {
					Expect(marker[i]).To(Equal(pre[i]))
				}
			}
		})
	})

	Describe("analytic profile", func() {
		It("matches the closed-form solution in the translated region", func() {
			g := newLine(41, 1000.0)
			ext, err := rift.New(g, rift.Params{
				ExtensionRate: 0.01, FaultDip: 60, FaultLocation: 10000, DetachmentDepth: 10000,
			})
			Expect(err).NotTo(HaveOccurred())

			// T = 1e6, total extension 10 km = 10 cells
			for step := 0; step < 400; step++ {
				Expect(ext.RunOneStep(2500)).To(Succeed())
			}
			Expect(ext.ShiftCount()).To(Equal(10))

			g0 := math.Tan(60 * math.Pi / 180)
			h := 10000.0
			elev, _ := g.Field(grid.FieldElevation)
			for i := 0; i < g.Len(); i++ {
				d := g.X(i) - 10000
				if d <= 10000 {
					// stretched zone near the trace follows the fault plane,
					// not the translated closed form
					continue
				}
				dp := d - 10000
				want := -h * (math.Exp(-dp*g0/h) - math.Exp(-d*g0/h))
				// tolerance reflects the one-cell shift discretization
				Expect(elev[i]).To(BeNumerically("~", want, 0.12*math.Abs(want)),
					"node %d at d=%g", i, d)
			}
		})
	})

	Describe("crustal thickness tracking", func() {
		It("closes the bookkeeping across a shift", func() {
			g := newLine(31, 1.0)
			thick := g.AddField(grid.FieldCrustThickness)
			for i := range thick {
				thick[i] = 35.0
			}

			ext, err := rift.New(g, rift.Params{
				ExtensionRate: 0.125, FaultDip: 45, FaultLocation: 10, DetachmentDepth: 10,
				TrackCrustalThickness: true,
			})
			Expect(err).NotTo(HaveOccurred())

			// half a cell of offset, no shift yet
			Expect(ext.RunOneStep(4)).To(Succeed())
			Expect(ext.ShiftCount()).To(BeZero())

			cum, _ := g.Field(grid.FieldCumSubsidence)
			thickPre := make([]float64, len(thick))
			copy(thickPre, thick)
			cumPre := make([]float64, len(cum))
			copy(cumPre, cum)
			ext.UpdateSubsidenceRate()
			rate, _ := g.Field(grid.FieldSubsidenceRate)
			ratePre := make([]float64, len(rate))
			copy(ratePre, rate)

			// second half-cell lands the shift
			Expect(ext.RunOneStep(4)).To(Succeed())
			Expect(ext.ShiftCount()).To(Equal(1))

			for i := 0; i < g.Len(); i++ {
				if g.X(i) < 10 {
					Expect(thick[i]).To(Equal(35.0))
					continue
				}
				wantCum := cumPre[i] + ratePre[i]*4
				Expect(thick[i]).To(BeNumerically("~", thickPre[i-1]-wantCum, 1e-12),
					"thickness closure at node %d", i)
				Expect(cum[i]).To(BeZero(), "cumulative subsidence not reset at node %d", i)
			}
		})

		It("keeps accumulating between shifts", func() {
			g := newLine(31, 1.0)
			thick := g.AddField(grid.FieldCrustThickness)
			for i := range thick {
				thick[i] = 35.0
			}

			ext, err := rift.New(g, rift.Params{
				ExtensionRate: 0.01, FaultDip: 45, FaultLocation: 10, DetachmentDepth: 10,
				TrackCrustalThickness: true,
			})
			Expect(err).NotTo(HaveOccurred())

			Expect(ext.RunOneStep(1)).To(Succeed())
			Expect(ext.RunOneStep(1)).To(Succeed())
			Expect(ext.ShiftCount()).To(BeZero())

			cum, _ := g.Field(grid.FieldCumSubsidence)
			rate, _ := g.Field(grid.FieldSubsidenceRate)
			for i := 0; i < g.Len(); i++ {
				if g.X(i) >= 10 {
					Expect(cum[i]).To(BeNumerically("~", 2*rate[i], 1e-12))
					// thickness untouched until the shift settles it
					Expect(thick[i]).To(Equal(35.0))
				}
			}
		})
	})
})
