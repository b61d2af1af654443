package declaration

// Property binds a name to its accepted value domain and default. A
// Property carries no per-node state; one descriptor is shared
// read-only by every store whose registry declares it.
type Property struct {
	Name    string
	Choices Choices
	Initial Value
}

// Get returns the value stored for p in s, falling back to the default
// when unset.
func (p Property) Get(s *Store) Value {
	if v, ok := s.values[p.Name]; ok {
		return v
	}
	return p.Initial
}

// Set validates v against the domain and stores it. Reassigning the
// currently stored value is a no-op and does not signal a change.
func (p Property) Set(s *Store, v Value) error {
	if !p.Choices.Accepts(v) {
		return invalidValue(p.Name, v, p.Choices)
	}
	if cur, ok := s.values[p.Name]; ok && cur == v {
		return nil
	}
	s.values[p.Name] = v
	s.changed()
	return nil
}

// Delete removes any stored value, returning the property to its
// default. Deleting an unset property is a no-op: no change is
// signalled.
func (p Property) Delete(s *Store) {
	if _, ok := s.values[p.Name]; !ok {
		return
	}
	delete(s.values, p.Name)
	s.changed()
}
