package declaration

import "fmt"

// edgeSuffixes follows CSS convention: top, right, bottom, left.
var edgeSuffixes = [4]string{"top", "right", "bottom", "left"}

// Directional is a four-edge property family behind a shorthand such as
// margin or padding. The shorthand has no storage of its own; it is a
// view that reads and writes the four edge properties as a unit.
type Directional struct {
	Name  string
	edges [4]Property
}

// NewDirectional builds the family for the given base name. The edges
// are named "{base}_top", "{base}_right", "{base}_bottom", and
// "{base}_left", each an ordinary property sharing the same domain and
// default.
func NewDirectional(name string, choices Choices, initial Value) Directional {
	d := Directional{Name: name}
	for i, suffix := range edgeSuffixes {
		d.edges[i] = Property{Name: name + "_" + suffix, Choices: choices, Initial: initial}
	}
	return d
}

// EdgeProperties returns the four edge descriptors in top, right,
// bottom, left order.
func (d Directional) EdgeProperties() [4]Property {
	return d.edges
}

// Get reads the four edges through their own descriptors, each applying
// its own default fallback.
func (d Directional) Get(s *Store) Edges {
	return Edges{
		Top:    d.edges[0].Get(s),
		Right:  d.edges[1].Get(s),
		Bottom: d.edges[2].Get(s),
		Left:   d.edges[3].Get(s),
	}
}

// Set expands 1 to 4 values onto the four edges using the CSS fill
// rule and assigns each through the edge's own descriptor, so equal
// reassignments stay silent and any effective change signals once per
// changed edge. Any other number of values is invalid.
func (d Directional) Set(s *Store, values ...Value) error {
	var quad [4]Value
	switch len(values) {
	case 1:
		quad = [4]Value{values[0], values[0], values[0], values[0]}
	case 2:
		quad = [4]Value{values[0], values[1], values[0], values[1]}
	case 3:
		quad = [4]Value{values[0], values[1], values[2], values[1]}
	case 4:
		copy(quad[:], values)
	default:
		return &InvalidValueError{
			Property: d.Name,
			Reason:   fmt.Sprintf("value must be 1 to 4 components, got %d", len(values)),
		}
	}
	for i := range quad {
		if err := d.edges[i].Set(s, quad[i]); err != nil {
			return err
		}
	}
	return nil
}

// Delete clears all four edges, each independently no-op-safe.
func (d Directional) Delete(s *Store) {
	for _, edge := range d.edges {
		edge.Delete(s)
	}
}
