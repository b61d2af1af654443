package colosseum

import "github.com/cosmoshane/colosseum/internal/declaration"

// Keyword constants for the standard property set.
var (
	// Auto sizes or positions from the surrounding layout.
	Auto = Keyword("auto")
	// Inline lays the node out in line with its siblings.
	Inline = Keyword("inline")
	// Block lays the node out as a block-level box.
	Block = Keyword("block")
	// Table lays the node out as a table box.
	Table = Keyword("table")
	// DisplayNone removes the node from layout entirely.
	DisplayNone = Keyword("none")
	// Static positions the node in normal flow.
	Static = Keyword("static")
	// Relative positions the node relative to its normal-flow slot.
	Relative = Keyword("relative")
	// Absolute positions the node against its containing block.
	Absolute = Keyword("absolute")
	// Fixed positions the node against the viewport.
	Fixed = Keyword("fixed")
)

// Domains shared by the standard properties.
var (
	sizeChoices     = Choices{Keywords: []string{"auto"}, Integer: true, Length: true, Percent: true}
	minSizeChoices  = Choices{Integer: true, Length: true, Percent: true}
	maxSizeChoices  = Choices{None: true, Integer: true, Length: true, Percent: true}
	displayChoices  = Choices{Keywords: []string{"none", "inline", "block", "table"}}
	positionChoices = Choices{Keywords: []string{"static", "relative", "absolute", "fixed"}}
	spacingChoices  = Choices{Integer: true, Length: true, Percent: true}
	borderChoices   = Choices{Integer: true, Length: true}
)

// standardRegistry declares the standard CSS property vocabulary. It is
// built once and shared read-only by every Style.
var standardRegistry = newStandardRegistry()

func newStandardRegistry() *Registry {
	r := NewRegistry()

	// Sizing
	r.Add("width", sizeChoices, Auto)
	r.Add("height", sizeChoices, Auto)
	r.Add("min_width", minSizeChoices, Integer(0))
	r.Add("min_height", minSizeChoices, Integer(0))
	r.Add("max_width", maxSizeChoices, None())
	r.Add("max_height", maxSizeChoices, None())

	// Flow
	r.Add("display", displayChoices, Inline)
	r.Add("position", positionChoices, Static)
	r.Add("top", sizeChoices, Auto)
	r.Add("right", sizeChoices, Auto)
	r.Add("bottom", sizeChoices, Auto)
	r.Add("left", sizeChoices, Auto)

	// Spacing
	r.AddDirectional("margin", spacingChoices, Integer(0))
	r.AddDirectional("padding", spacingChoices, Integer(0))
	r.AddDirectional("border_width", borderChoices, Integer(0))

	return r
}

// Style is the validated style declaration for a single layout node,
// covering the standard CSS property set. It embeds the generic Store,
// so name-based access, bulk Apply, and canonical serialization are
// available alongside the typed accessors.
type Style struct {
	*declaration.Store
}

// NewStyle returns an empty declaration over the standard property
// set. onChange is invoked once per effective change; wire it to the
// dirty flag of the layout that owns the node. Pass nil to ignore
// change signals.
func NewStyle(onChange func()) *Style {
	return &Style{Store: declaration.NewStore(standardRegistry, onChange)}
}
