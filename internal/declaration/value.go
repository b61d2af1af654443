package declaration

import "strconv"

// Kind discriminates the closed set of value kinds a property can hold.
type Kind uint8

const (
	KindNone    Kind = iota // Explicit "no value" sentinel
	KindInteger             // Bare number with no unit tag
	KindLength              // Quantity tagged with a unit suffix
	KindPercent             // Percentage of an external reference
	KindKeyword             // Named constant such as "auto" or "block"
)

// Value is a single style value: a keyword, a bare integer, a tagged
// length or percentage, or the explicit no-value sentinel.
//
// Values are comparable. A bare integer is never equal to a length of
// the same magnitude; the kind tag is part of the identity.
type Value struct {
	Kind   Kind
	Amount float64
	Unit   string // Length unit suffix ("px", "em", "pt"); empty otherwise
	Name   string // Keyword text; empty otherwise
}

// None returns the explicit no-value sentinel.
func None() Value {
	return Value{Kind: KindNone}
}

// Integer returns a bare numeric value with no unit tag.
func Integer(n int) Value {
	return Value{Kind: KindInteger, Amount: float64(n)}
}

// Length returns a quantity tagged with the given unit suffix.
func Length(amount float64, unit string) Value {
	return Value{Kind: KindLength, Amount: amount, Unit: unit}
}

// Px returns a length in pixels.
func Px(amount float64) Value {
	return Length(amount, "px")
}

// Em returns a length in em units.
func Em(amount float64) Value {
	return Length(amount, "em")
}

// Pt returns a length in points.
func Pt(amount float64) Value {
	return Length(amount, "pt")
}

// Percent returns a percentage value on a 0-100 scale (50 = 50%).
func Percent(amount float64) Value {
	return Value{Kind: KindPercent, Amount: amount}
}

// Keyword returns a named constant value. Keyword text is expected to
// be lower case; it is compared and rendered verbatim.
func Keyword(name string) Value {
	return Value{Kind: KindKeyword, Name: name}
}

// IsNone reports whether v is the no-value sentinel.
func (v Value) IsNone() bool {
	return v.Kind == KindNone
}

// String renders the canonical CSS text for v. Bare integers render in
// pixels, lengths with their own unit suffix, percentages with "%",
// keywords as their text, and the no-value sentinel as "none".
func (v Value) String() string {
	switch v.Kind {
	case KindInteger:
		return formatAmount(v.Amount) + "px"
	case KindLength:
		return formatAmount(v.Amount) + v.Unit
	case KindPercent:
		return formatAmount(v.Amount) + "%"
	case KindKeyword:
		return v.Name
	case KindNone:
		return "none"
	default:
		return "none"
	}
}

// repr renders v for error messages: keywords single-quoted, bare
// integers without a unit, the sentinel as "None".
func (v Value) repr() string {
	switch v.Kind {
	case KindInteger:
		return formatAmount(v.Amount)
	case KindKeyword:
		return "'" + v.Name + "'"
	case KindNone:
		return "None"
	default:
		return v.String()
	}
}

func formatAmount(a float64) string {
	return strconv.FormatFloat(a, 'f', -1, 64)
}

// Edges holds one value per side in CSS order: top, right, bottom, left.
type Edges struct {
	Top    Value
	Right  Value
	Bottom Value
	Left   Value
}
