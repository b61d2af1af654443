package colosseum

// Typed accessors for the standard property set. Each getter applies
// the property's default fallback; each setter validates through the
// property's domain and reports effective changes via the style's
// change callback. The property names are registered in css.go, so the
// lookups cannot fail.

func (s *Style) scalar(name string) Value {
	v, _ := s.Store.Get(name)
	return v
}

func (s *Style) edges(name string) Edges {
	e, _ := s.Store.GetEdges(name)
	return e
}

// Width returns the effective width.
func (s *Style) Width() Value {
	return s.scalar("width")
}

// SetWidth sets the width.
func (s *Style) SetWidth(v Value) error {
	return s.Set("width", v)
}

// Height returns the effective height.
func (s *Style) Height() Value {
	return s.scalar("height")
}

// SetHeight sets the height.
func (s *Style) SetHeight(v Value) error {
	return s.Set("height", v)
}

// MinWidth returns the effective minimum width.
func (s *Style) MinWidth() Value {
	return s.scalar("min_width")
}

// SetMinWidth sets the minimum width.
func (s *Style) SetMinWidth(v Value) error {
	return s.Set("min_width", v)
}

// MinHeight returns the effective minimum height.
func (s *Style) MinHeight() Value {
	return s.scalar("min_height")
}

// SetMinHeight sets the minimum height.
func (s *Style) SetMinHeight(v Value) error {
	return s.Set("min_height", v)
}

// MaxWidth returns the effective maximum width.
func (s *Style) MaxWidth() Value {
	return s.scalar("max_width")
}

// SetMaxWidth sets the maximum width.
func (s *Style) SetMaxWidth(v Value) error {
	return s.Set("max_width", v)
}

// MaxHeight returns the effective maximum height.
func (s *Style) MaxHeight() Value {
	return s.scalar("max_height")
}

// SetMaxHeight sets the maximum height.
func (s *Style) SetMaxHeight(v Value) error {
	return s.Set("max_height", v)
}

// Display returns the effective display mode.
func (s *Style) Display() Value {
	return s.scalar("display")
}

// SetDisplay sets the display mode.
func (s *Style) SetDisplay(v Value) error {
	return s.Set("display", v)
}

// Position returns the effective positioning scheme.
func (s *Style) Position() Value {
	return s.scalar("position")
}

// SetPosition sets the positioning scheme.
func (s *Style) SetPosition(v Value) error {
	return s.Set("position", v)
}

// Top returns the effective top offset.
func (s *Style) Top() Value {
	return s.scalar("top")
}

// SetTop sets the top offset.
func (s *Style) SetTop(v Value) error {
	return s.Set("top", v)
}

// Right returns the effective right offset.
func (s *Style) Right() Value {
	return s.scalar("right")
}

// SetRight sets the right offset.
func (s *Style) SetRight(v Value) error {
	return s.Set("right", v)
}

// Bottom returns the effective bottom offset.
func (s *Style) Bottom() Value {
	return s.scalar("bottom")
}

// SetBottom sets the bottom offset.
func (s *Style) SetBottom(v Value) error {
	return s.Set("bottom", v)
}

// Left returns the effective left offset.
func (s *Style) Left() Value {
	return s.scalar("left")
}

// SetLeft sets the left offset.
func (s *Style) SetLeft(v Value) error {
	return s.Set("left", v)
}

// Margin returns the four effective margins in top, right, bottom,
// left order.
func (s *Style) Margin() Edges {
	return s.edges("margin")
}

// SetMargin assigns 1 to 4 margin values, expanded with the CSS fill
// rule.
func (s *Style) SetMargin(values ...Value) error {
	return s.Set("margin", values...)
}

// Padding returns the four effective paddings in top, right, bottom,
// left order.
func (s *Style) Padding() Edges {
	return s.edges("padding")
}

// SetPadding assigns 1 to 4 padding values, expanded with the CSS fill
// rule.
func (s *Style) SetPadding(values ...Value) error {
	return s.Set("padding", values...)
}

// BorderWidth returns the four effective border widths in top, right,
// bottom, left order.
func (s *Style) BorderWidth() Edges {
	return s.edges("border_width")
}

// SetBorderWidth assigns 1 to 4 border widths, expanded with the CSS
// fill rule.
func (s *Style) SetBorderWidth(values ...Value) error {
	return s.Set("border_width", values...)
}
