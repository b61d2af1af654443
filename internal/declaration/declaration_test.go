package declaration

import "testing"

// layoutStub stands in for the layout object that owns the dirty flag.
// The flag is tri-state: nil means the store has not signalled since
// the last reset, mirroring how a layout engine distinguishes "never
// touched" from "explicitly cleaned".
type layoutStub struct {
	dirty *bool
}

func (l *layoutStub) markDirty() {
	v := true
	l.dirty = &v
}

func (l *layoutStub) clean() {
	v := false
	l.dirty = &v
}

func (l *layoutStub) assertDirty(t *testing.T, want bool) {
	t.Helper()
	if l.dirty == nil {
		t.Fatalf("dirty flag untouched, want %v", want)
	}
	if *l.dirty != want {
		t.Fatalf("dirty = %v, want %v", *l.dirty, want)
	}
}

func (l *layoutStub) assertUntouched(t *testing.T) {
	t.Helper()
	if l.dirty != nil {
		t.Fatalf("dirty flag touched: %v, want untouched", *l.dirty)
	}
}

// testRegistry declares the property vocabulary the engine tests run
// against: representative defaults (keyword, zero, unset), a
// keyword-only property, and a directional family.
func testRegistry() *Registry {
	size := Choices{Keywords: []string{"auto"}, Integer: true, Length: true, Percent: true}

	r := NewRegistry()
	r.Add("width", size, Keyword("auto"))
	r.Add("height", size, Keyword("auto"))
	r.Add("min_width", Choices{Integer: true, Length: true, Percent: true}, Integer(0))
	r.Add("max_width", Choices{None: true, Integer: true, Length: true, Percent: true}, None())
	r.Add("top", size, Keyword("auto"))
	r.Add("display", Choices{Keywords: []string{"none", "inline", "block", "table"}}, Keyword("inline"))
	r.AddDirectional("margin", Choices{Integer: true, Length: true, Percent: true}, Integer(0))
	return r
}

func newTestStore(t *testing.T) (*Store, *layoutStub) {
	t.Helper()
	layout := &layoutStub{}
	return NewStore(testRegistry(), layout.markDirty), layout
}
