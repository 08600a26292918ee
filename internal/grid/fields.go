package grid

import "fmt"

// AddField registers a zero-initialized scalar field under name and
// returns its backing slice. If the field already exists the existing
// slice is returned unchanged.
func (g *Grid) AddField(name string) []float64 {
	if f, ok := g.fields[name]; ok {
		return f
	}
	f := make([]float64, g.Len())
	g.fields[name] = f
	return f
}

// SetField installs vals as the field named name. The slice is adopted,
// not copied, so later mutations through the grid are visible to the
// caller and vice versa.
func (g *Grid) SetField(name string, vals []float64) error {
	if len(vals) != g.Len() {
		return fmt.Errorf("grid: field %q has length %d, want %d", name, len(vals), g.Len())
	}
	g.fields[name] = vals
	return nil
}

// Field returns the backing slice of the named field.
func (g *Grid) Field(name string) ([]float64, bool) {
	f, ok := g.fields[name]
	return f, ok
}

// HasField reports whether a field with the given name exists.
func (g *Grid) HasField(name string) bool {
	_, ok := g.fields[name]
	return ok
}

// FieldNames returns the names of all registered fields.
func (g *Grid) FieldNames() []string {
	names := make([]string, 0, len(g.fields))
	for name := range g.fields {
		names = append(names, name)
	}
	return names
}
