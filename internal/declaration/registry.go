package declaration

import "slices"

// Registry maps property names to their descriptors. It replaces
// per-attribute dispatch: stores consult it on every access. Build the
// full vocabulary up front and treat it as immutable once the first
// store is created; descriptors are shared read-only across stores.
type Registry struct {
	order      []string
	scalars    map[string]Property
	shorthands map[string]Directional
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		scalars:    make(map[string]Property),
		shorthands: make(map[string]Directional),
	}
}

// Add declares a plain scalar property. It panics on a duplicate name;
// registries are built once at startup.
func (r *Registry) Add(name string, choices Choices, initial Value) {
	r.addScalar(Property{Name: name, Choices: choices, Initial: initial})
}

// AddDirectional declares the four edge properties for base plus the
// shorthand that reads and writes them as a unit.
func (r *Registry) AddDirectional(base string, choices Choices, initial Value) {
	d := NewDirectional(base, choices, initial)
	if _, exists := r.shorthands[base]; exists {
		panic("declaration: duplicate property " + base)
	}
	if _, exists := r.scalars[base]; exists {
		panic("declaration: duplicate property " + base)
	}
	r.shorthands[base] = d
	r.order = append(r.order, base)
	for _, edge := range d.EdgeProperties() {
		r.addScalar(edge)
	}
}

func (r *Registry) addScalar(p Property) {
	if _, exists := r.scalars[p.Name]; exists {
		panic("declaration: duplicate property " + p.Name)
	}
	if _, exists := r.shorthands[p.Name]; exists {
		panic("declaration: duplicate property " + p.Name)
	}
	r.scalars[p.Name] = p
	r.order = append(r.order, p.Name)
}

// Has reports whether name is a registered property: plain, edge, or
// shorthand.
func (r *Registry) Has(name string) bool {
	_, scalar := r.scalars[name]
	_, shorthand := r.shorthands[name]
	return scalar || shorthand
}

// Names returns every registered property name in declaration order.
func (r *Registry) Names() []string {
	return slices.Clone(r.order)
}
