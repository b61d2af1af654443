// declaration.go re-exports engine types from internal/declaration.
// Any changes to internal/declaration types must be mirrored here.
package colosseum

import "github.com/cosmoshane/colosseum/internal/declaration"

// Value is a single style value: a keyword, a bare integer, a tagged
// length or percentage, or the explicit no-value sentinel.
type Value = declaration.Value

// Kind discriminates the closed set of value kinds.
type Kind = declaration.Kind

const (
	KindNone    = declaration.KindNone
	KindInteger = declaration.KindInteger
	KindLength  = declaration.KindLength
	KindPercent = declaration.KindPercent
	KindKeyword = declaration.KindKeyword
)

// Choices describes the domain of values a property accepts.
type Choices = declaration.Choices

// Property binds a name to its value domain and default.
type Property = declaration.Property

// Directional is a four-edge property family behind a shorthand.
type Directional = declaration.Directional

// Registry maps property names to their descriptors.
type Registry = declaration.Registry

// Store holds the explicitly set values for one node's declaration.
type Store = declaration.Store

// Edges holds one value per side in CSS order: top, right, bottom, left.
type Edges = declaration.Edges

// Assignment pairs a property name with values for a bulk Apply.
type Assignment = declaration.Assignment

// InvalidValueError reports a value rejected by a property's domain.
type InvalidValueError = declaration.InvalidValueError

// PropertyKindError reports accessing a property through the wrong
// accessor kind (a shorthand through Get, or a scalar through GetEdges).
type PropertyKindError = declaration.PropertyKindError

// UnknownPropertyError reports an access naming an undeclared property.
type UnknownPropertyError = declaration.UnknownPropertyError

// None returns the explicit no-value sentinel.
func None() Value {
	return declaration.None()
}

// Integer returns a bare numeric value with no unit tag.
func Integer(n int) Value {
	return declaration.Integer(n)
}

// Length returns a quantity tagged with the given unit suffix.
func Length(amount float64, unit string) Value {
	return declaration.Length(amount, unit)
}

// Px returns a length in pixels.
func Px(amount float64) Value {
	return declaration.Px(amount)
}

// Em returns a length in em units.
func Em(amount float64) Value {
	return declaration.Em(amount)
}

// Pt returns a length in points.
func Pt(amount float64) Value {
	return declaration.Pt(amount)
}

// Percent returns a percentage value on a 0-100 scale (50 = 50%).
func Percent(amount float64) Value {
	return declaration.Percent(amount)
}

// Keyword returns a named constant value.
func Keyword(name string) Value {
	return declaration.Keyword(name)
}

// Assign builds an Assignment for Store.Apply.
func Assign(name string, values ...Value) Assignment {
	return declaration.Assign(name, values...)
}

// NewRegistry returns an empty property registry for declaring a
// custom vocabulary.
func NewRegistry() *Registry {
	return declaration.NewRegistry()
}

// NewStore returns an empty store over registry. onChange is invoked
// once per effective change; wire it to the owning layout's dirty flag.
func NewStore(registry *Registry, onChange func()) *Store {
	return declaration.NewStore(registry, onChange)
}
