package declaration

import (
	"slices"
	"strings"
)

// Choices describes the domain of values a property accepts: an
// enumerated set of keyword literals plus flags for whole kinds.
// Treat a Choices as immutable once a property is declared with it.
//
// The zero value accepts nothing; every assignment fails.
type Choices struct {
	Keywords []string // Accepted keyword literals
	None     bool     // Accept the explicit no-value sentinel
	Integer  bool     // Accept bare integers
	Length   bool     // Accept unit-tagged lengths
	Percent  bool     // Accept percentages
}

// Accepts reports whether v is inside the domain. A bare integer is
// only accepted under the Integer flag; it is never treated as a
// length, and vice versa.
func (c Choices) Accepts(v Value) bool {
	switch v.Kind {
	case KindKeyword:
		return slices.Contains(c.Keywords, v.Name)
	case KindNone:
		return c.None
	case KindInteger:
		return c.Integer
	case KindLength:
		return c.Length
	case KindPercent:
		return c.Percent
	default:
		return false
	}
}

// String lists the accepted kinds for error messages: the enabled kind
// placeholders in fixed order, then the literals in ascending order
// with the no-value sentinel rendered as "none", joined by ", ".
// An empty domain yields an empty string.
func (c Choices) String() string {
	var parts []string
	if c.Integer {
		parts = append(parts, "<integer>")
	}
	if c.Length {
		parts = append(parts, "<length>")
	}
	if c.Percent {
		parts = append(parts, "<percentage>")
	}
	literals := slices.Clone(c.Keywords)
	if c.None {
		literals = append(literals, "none")
	}
	slices.Sort(literals)
	return strings.Join(append(parts, literals...), ", ")
}
