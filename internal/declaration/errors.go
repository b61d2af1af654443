package declaration

import "fmt"

// InvalidValueError reports a value rejected by a property's domain, or
// a shorthand assignment with the wrong number of components. The
// message is fully deterministic so tests can assert it verbatim.
type InvalidValueError struct {
	Property string
	Value    string // Textual form of the rejected value; empty for count violations
	Reason   string
}

func (e *InvalidValueError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("Invalid value for CSS property '%s'; %s", e.Property, e.Reason)
	}
	return fmt.Sprintf("Invalid value %s for CSS property '%s'; %s", e.Value, e.Property, e.Reason)
}

func invalidValue(property string, v Value, c Choices) *InvalidValueError {
	return &InvalidValueError{
		Property: property,
		Value:    v.repr(),
		Reason:   "Valid values are: " + c.String(),
	}
}

// PropertyKindError reports accessing a property through the wrong
// accessor kind: a directional shorthand through Get, or a scalar
// through GetEdges.
type PropertyKindError struct {
	Name        string
	Directional bool // Whether the property is a directional shorthand
}

func (e *PropertyKindError) Error() string {
	if e.Directional {
		return fmt.Sprintf("CSS property '%s' is directional; use GetEdges", e.Name)
	}
	return fmt.Sprintf("CSS property '%s' is not directional; use Get", e.Name)
}

// UnknownPropertyError reports an access naming a property the registry
// does not declare.
type UnknownPropertyError struct {
	Name string
}

func (e *UnknownPropertyError) Error() string {
	return fmt.Sprintf("Unknown CSS property '%s'", e.Name)
}
