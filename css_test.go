package colosseum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testNode pairs a style with the layout dirty flag it signals, the way
// a host widget wires its declaration to its layout object. The flag is
// tri-state: nil means the style has not signalled since the last reset.
type testNode struct {
	style *Style
	dirty *bool
}

func newTestNode() *testNode {
	n := &testNode{}
	n.style = NewStyle(func() {
		v := true
		n.dirty = &v
	})
	return n
}

func (n *testNode) clean() {
	v := false
	n.dirty = &v
}

func TestStyle_StandardDefaults(t *testing.T) {
	type tc struct {
		get      func(*Style) Value
		expected Value
	}

	tests := map[string]tc{
		"width":      {get: (*Style).Width, expected: Auto},
		"height":     {get: (*Style).Height, expected: Auto},
		"min_width":  {get: (*Style).MinWidth, expected: Integer(0)},
		"min_height": {get: (*Style).MinHeight, expected: Integer(0)},
		"max_width":  {get: (*Style).MaxWidth, expected: None()},
		"max_height": {get: (*Style).MaxHeight, expected: None()},
		"display":    {get: (*Style).Display, expected: Inline},
		"position":   {get: (*Style).Position, expected: Static},
		"top":        {get: (*Style).Top, expected: Auto},
		"right":      {get: (*Style).Right, expected: Auto},
		"bottom":     {get: (*Style).Bottom, expected: Auto},
		"left":       {get: (*Style).Left, expected: Auto},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			n := newTestNode()
			assert.Equal(t, tt.expected, tt.get(n.style))
			assert.Nil(t, n.dirty, "reading a default must not signal")
		})
	}
}

func TestStyle_DirectionalDefaults(t *testing.T) {
	n := newTestNode()
	zero := Edges{Top: Integer(0), Right: Integer(0), Bottom: Integer(0), Left: Integer(0)}

	assert.Equal(t, zero, n.style.Margin())
	assert.Equal(t, zero, n.style.Padding())
	assert.Equal(t, zero, n.style.BorderWidth())
	assert.Nil(t, n.dirty)
}

func TestStyle_WidthLifecycle(t *testing.T) {
	n := newTestNode()

	require.NoError(t, n.style.SetWidth(Integer(10)))
	assert.Equal(t, Integer(10), n.style.Width())
	require.NotNil(t, n.dirty)
	assert.True(t, *n.dirty)

	// Same value again: flag stays clean.
	n.clean()
	require.NoError(t, n.style.SetWidth(Integer(10)))
	assert.False(t, *n.dirty)

	require.NoError(t, n.style.SetWidth(Integer(20)))
	assert.True(t, *n.dirty)

	// Delete restores the default.
	n.clean()
	require.NoError(t, n.style.Delete("width"))
	assert.Equal(t, Auto, n.style.Width())
	assert.True(t, *n.dirty)
}

func TestStyle_MarginScenarios(t *testing.T) {
	n := newTestNode()

	require.NoError(t, n.style.Set("margin_top", Integer(10)))
	assert.Equal(t, Edges{
		Top: Integer(10), Right: Integer(0),
		Bottom: Integer(0), Left: Integer(0),
	}, n.style.Margin())

	require.NoError(t, n.style.SetMargin(Integer(10), Integer(20), Integer(30)))
	assert.Equal(t, Edges{
		Top: Integer(10), Right: Integer(20),
		Bottom: Integer(30), Left: Integer(20),
	}, n.style.Margin())

	err := n.style.SetMargin()
	var invalid *InvalidValueError
	require.ErrorAs(t, err, &invalid)

	err = n.style.SetMargin(Integer(1), Integer(2), Integer(3), Integer(4), Integer(5))
	require.ErrorAs(t, err, &invalid)
}

func TestStyle_DisplayValidation(t *testing.T) {
	n := newTestNode()

	err := n.style.SetDisplay(Integer(10))
	var invalid *InvalidValueError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t,
		"Invalid value 10 for CSS property 'display'; Valid values are: block, inline, none, table",
		err.Error())
	assert.Nil(t, n.dirty)

	require.NoError(t, n.style.SetDisplay(Block))
	assert.Equal(t, Block, n.style.Display())
	assert.True(t, *n.dirty)
}

func TestStyle_BulkSet(t *testing.T) {
	n := newTestNode()

	require.NoError(t, n.style.Apply(
		Assign("width", Integer(10)),
		Assign("height", Integer(20)),
	))
	assert.Equal(t, Integer(10), n.style.Width())
	assert.Equal(t, Integer(20), n.style.Height())
	assert.Equal(t, Auto, n.style.Top())
	assert.True(t, *n.dirty)

	// Assigning the sentinel clears a property.
	require.NoError(t, n.style.Apply(
		Assign("width", None()),
		Assign("top", Integer(30)),
	))
	assert.Equal(t, Auto, n.style.Width())
	assert.Equal(t, Integer(20), n.style.Height())
	assert.Equal(t, Integer(30), n.style.Top())

	// Unknown names fail atomically without touching the flag.
	n.dirty = nil
	err := n.style.Apply(Assign("not_a_property", Integer(10)))
	var unknown *UnknownPropertyError
	require.ErrorAs(t, err, &unknown)
	assert.Nil(t, n.dirty)
}

func TestStyle_String(t *testing.T) {
	n := newTestNode()

	require.NoError(t, n.style.Apply(
		Assign("width", Integer(10)),
		Assign("height", Integer(20)),
		Assign("margin", Integer(30), Integer(40), Integer(50), Integer(60)),
		Assign("display", Block),
	))

	assert.Equal(t,
		"display: block; height: 20px; "+
			"margin-bottom: 50px; margin-left: 60px; "+
			"margin-right: 40px; margin-top: 30px; width: 10px",
		n.style.String())
}

func TestStyle_MaxWidthAcceptsExplicitNone(t *testing.T) {
	n := newTestNode()

	// max_width lists the sentinel in its domain, so a direct Set
	// stores it explicitly and it serializes.
	require.NoError(t, n.style.SetMaxWidth(None()))
	assert.Equal(t, "max-width: none", n.style.String())

	// width does not accept the sentinel on a direct Set.
	err := n.style.SetWidth(None())
	var invalid *InvalidValueError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t,
		"Invalid value None for CSS property 'width'; Valid values are: <integer>, <length>, <percentage>, auto",
		err.Error())
}

func TestStyle_SharedRegistry(t *testing.T) {
	// Descriptors are shared; stores are not. Two styles never see each
	// other's values.
	a := newTestNode()
	b := newTestNode()

	require.NoError(t, a.style.SetWidth(Integer(10)))
	assert.Equal(t, Integer(10), a.style.Width())
	assert.Equal(t, Auto, b.style.Width())
	assert.Nil(t, b.dirty)
}
