package grid

import (
	"fmt"
	"math"
)

// Canonical field names used across the simulation.
const (
	FieldElevation      = "elevation"
	FieldSubsidenceRate = "subsidence_rate"
	FieldCrustThickness = "upper_crust_thickness"
	FieldCumSubsidence  = "cumulative_subsidence_depth"
)

// Grid is a uniform structured grid of nodes, laid out row-major: node
// index i sits at column i%nx, row i/nx. Spacing is uniform along x,
// which is the extension direction for the fault components. A line
// grid is a plane with a single row.
//
// Scalar fields live on the grid by name; every field has exactly one
// value per node and node indices are stable for the life of the grid.
type Grid struct {
	nx, ny int
	dx     float64
	x, y   []float64
	fields map[string][]float64
}

// NewLine creates a 1-D grid of n nodes spaced dx apart.
func NewLine(n int, dx float64) (*Grid, error) {
	return NewPlane(n, 1, dx)
}

// NewPlane creates a 2-D grid of nx columns by ny rows with uniform
// spacing dx in both directions.
func NewPlane(nx, ny int, dx float64) (*Grid, error) {
	if nx < 2 {
		return nil, fmt.Errorf("grid: need at least 2 columns, got %d", nx)
	}
	if ny < 1 {
		return nil, fmt.Errorf("grid: need at least 1 row, got %d", ny)
	}
	if dx <= 0 || math.IsNaN(dx) || math.IsInf(dx, 0) {
		return nil, fmt.Errorf("grid: spacing must be positive and finite, got %g", dx)
	}

	n := nx * ny
	g := &Grid{
		nx:     nx,
		ny:     ny,
		dx:     dx,
		x:      make([]float64, n),
		y:      make([]float64, n),
		fields: make(map[string][]float64),
	}
	for r := 0; r < ny; r++ {
		for c := 0; c < nx; c++ {
			i := r*nx + c
			g.x[i] = float64(c) * dx
			g.y[i] = float64(r) * dx
		}
	}
	return g, nil
}

// Len is the total number of nodes.
func (g *Grid) Len() int { return g.nx * g.ny }

// Dims returns the number of spatial dimensions (1 for a single row).
func (g *Grid) Dims() int {
	if g.ny == 1 {
		return 1
	}
	return 2
}

// Cols returns the number of columns along the extension direction.
func (g *Grid) Cols() int { return g.nx }

// Rows returns the number of rows (tracks) across the extension direction.
func (g *Grid) Rows() int { return g.ny }

// Spacing returns the uniform node spacing along x (the cell width).
func (g *Grid) Spacing() float64 { return g.dx }

// X returns the x-coordinate of node i.
func (g *Grid) X(i int) float64 { return g.x[i] }

// Y returns the y-coordinate of node i.
func (g *Grid) Y(i int) float64 { return g.y[i] }

// XCoords returns the x-coordinate slice, indexed by node. Callers must
// treat it as read-only.
func (g *Grid) XCoords() []float64 { return g.x }

// Extent returns the minimum and maximum x-coordinate of the grid.
func (g *Grid) Extent() (xmin, xmax float64) {
	return 0, float64(g.nx-1) * g.dx
}

// LeftNeighbor returns the index of the node one cell toward lower x in
// the same row, or -1 at the left edge. The returned index is always
// strictly less than i, so an in-place gather that walks node indices
// in descending order reads only unmodified values.
func (g *Grid) LeftNeighbor(i int) int {
	if i%g.nx == 0 {
		return -1
	}
	return i - 1
}
