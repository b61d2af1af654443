package declaration

import (
	"fmt"
	"sort"
	"strings"
)

// Store holds the explicitly set values for one node's declaration.
// Absent names mean "default". A store is exclusively owned by its node
// and is not safe for concurrent mutation; the registry and its
// descriptors are read-only and freely shared.
type Store struct {
	registry *Registry
	values   map[string]Value
	onChange func()
}

// NewStore returns an empty store over registry. onChange is invoked
// once per effective change: a set that alters a stored value, or a
// delete of a present one. Wire it to the owning layout's dirty flag;
// pass nil to ignore change signals.
func NewStore(registry *Registry, onChange func()) *Store {
	return &Store{
		registry: registry,
		values:   make(map[string]Value),
		onChange: onChange,
	}
}

func (s *Store) changed() {
	if s.onChange != nil {
		s.onChange()
	}
}

// Get returns the effective value of a scalar property (a plain
// property or a single edge), falling back to its default when unset.
// Shorthand names are rejected; use GetEdges for those.
func (s *Store) Get(name string) (Value, error) {
	p, ok := s.registry.scalars[name]
	if !ok {
		if _, shorthand := s.registry.shorthands[name]; shorthand {
			return Value{}, &PropertyKindError{Name: name, Directional: true}
		}
		return Value{}, &UnknownPropertyError{Name: name}
	}
	return p.Get(s), nil
}

// GetEdges returns the effective values of a directional shorthand as
// one Edges, each side applying its own default fallback.
func (s *Store) GetEdges(name string) (Edges, error) {
	d, ok := s.registry.shorthands[name]
	if !ok {
		if _, scalar := s.registry.scalars[name]; scalar {
			return Edges{}, &PropertyKindError{Name: name, Directional: false}
		}
		return Edges{}, &UnknownPropertyError{Name: name}
	}
	return d.Get(s), nil
}

// Set assigns a property. Scalar properties take exactly one value;
// directional shorthands take 1 to 4, expanded with the CSS fill rule.
// Validation runs before any mutation, so a failed Set leaves the
// store untouched.
func (s *Store) Set(name string, values ...Value) error {
	if p, ok := s.registry.scalars[name]; ok {
		if len(values) != 1 {
			return &InvalidValueError{
				Property: name,
				Reason:   fmt.Sprintf("value must be a single component, got %d", len(values)),
			}
		}
		return p.Set(s, values[0])
	}
	if d, ok := s.registry.shorthands[name]; ok {
		return d.Set(s, values...)
	}
	return &UnknownPropertyError{Name: name}
}

// Delete clears a property back to its default. Deleting an unset
// property is a no-op. Directional shorthands clear all four edges.
func (s *Store) Delete(name string) error {
	if p, ok := s.registry.scalars[name]; ok {
		p.Delete(s)
		return nil
	}
	if d, ok := s.registry.shorthands[name]; ok {
		d.Delete(s)
		return nil
	}
	return &UnknownPropertyError{Name: name}
}

// Assignment pairs a property name with the values to assign to it in
// a bulk Apply.
type Assignment struct {
	Name   string
	Values []Value
}

// Assign builds an Assignment for Apply.
func Assign(name string, values ...Value) Assignment {
	return Assignment{Name: name, Values: values}
}

// Apply performs a bulk assignment. Every name is checked against the
// registry before anything is written: one unknown name fails the
// whole call and leaves the store and its change signal untouched.
// Known names are then applied in argument order, so when two
// assignments overlap (a shorthand and one of its edges) the later one
// wins. Assigning the single no-value sentinel deletes the property.
func (s *Store) Apply(assignments ...Assignment) error {
	for _, a := range assignments {
		if !s.registry.Has(a.Name) {
			return &UnknownPropertyError{Name: a.Name}
		}
	}
	for _, a := range assignments {
		if len(a.Values) == 1 && a.Values[0].IsNone() {
			if err := s.Delete(a.Name); err != nil {
				return err
			}
			continue
		}
		if err := s.Set(a.Name, a.Values...); err != nil {
			return err
		}
	}
	return nil
}

// String renders the declaration in canonical form: every explicitly
// set property as "{dash-cased-name}: {value}", sorted by dash-cased
// name and joined by "; ". Directional families appear as their
// individual edges, never as the shorthand.
func (s *Store) String() string {
	names := make([]string, 0, len(s.values))
	byName := make(map[string]Value, len(s.values))
	for name, v := range s.values {
		dashed := dashCase(name)
		names = append(names, dashed)
		byName[dashed] = v
	}
	sort.Strings(names)

	entries := make([]string, len(names))
	for i, name := range names {
		entries[i] = name + ": " + byName[name].String()
	}
	return strings.Join(entries, "; ")
}

func dashCase(name string) string {
	return strings.ReplaceAll(name, "_", "-")
}
