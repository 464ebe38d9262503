package widget

import "testing"

func paletteFixture() (*ToolPalette, *ToolItemGroup, []*ToolButton) {
	palette := NewToolPalette()
	group := NewToolItemGroup("Tools")
	palette.AddGroup(group)

	buttons := []*ToolButton{
		NewToolButton("doc-new", "New"),
		NewToolButton("doc-open", "Open"),
	}
	for _, b := range buttons {
		group.Insert(b, -1)
	}
	return palette, group, buttons
}

func TestGroupInsertOrderAndPosition(t *testing.T) {
	_, group, buttons := paletteFixture()

	first := NewToolButton("edit-cut", "Cut")
	group.Insert(first, 0)

	if got := group.ItemPosition(first); got != 0 {
		t.Errorf("got position %d, want 0", got)
	}
	if got := group.ItemPosition(buttons[1]); got != 2 {
		t.Errorf("got position %d, want 2", got)
	}
	if got := group.ItemPosition(NewToolButton("x", "x")); got != -1 {
		t.Errorf("stranger: got position %d, want -1", got)
	}

	group.RemoveItem(first)
	if first.Parent() != nil {
		t.Error("removed item still parented")
	}
	if got := group.ItemPosition(buttons[0]); got != 0 {
		t.Errorf("after removal: got position %d, want 0", got)
	}
}

func TestGroupInsertRejectsBadItems(t *testing.T) {
	_, group, buttons := paletteFixture()
	mustPanic(t, "nil item", func() { group.Insert(nil, 0) })
	other := NewToolItemGroup("Other")
	mustPanic(t, "parented item", func() { other.Insert(buttons[0], -1) })
}

func TestGroupHeightDependsOnWidth(t *testing.T) {
	_, group, _ := paletteFixture()

	// Two 32-wide items and a 20-tall header.
	min, _, _, _ := group.Measure(Vertical, 64)
	if min != 52 {
		t.Errorf("two per row: got %d, want 52", min)
	}

	min, _, _, _ = group.Measure(Vertical, 32)
	if min != 84 {
		t.Errorf("one per row: got %d, want 84", min)
	}
}

func TestCollapsedGroupShowsOnlyHeader(t *testing.T) {
	_, group, _ := paletteFixture()
	group.SetCollapsed(true)

	min, _, _, _ := group.Measure(Vertical, 64)
	if min != groupHeaderHeight {
		t.Errorf("got %d, want the header height %d", min, groupHeaderHeight)
	}
}

func TestPaletteGroupPosition(t *testing.T) {
	palette, g1, _ := paletteFixture()
	g2 := NewToolItemGroup("Shapes")
	palette.AddGroup(g2)

	if got := palette.GroupPosition(g2); got != 1 {
		t.Fatalf("got %d, want 1", got)
	}

	palette.SetGroupPosition(g2, 0)
	if palette.GroupPosition(g2) != 0 || palette.GroupPosition(g1) != 1 {
		t.Errorf("got %d/%d, want g2 first", palette.GroupPosition(g2), palette.GroupPosition(g1))
	}

	palette.RemoveGroup(g2)
	if g2.Parent() != nil {
		t.Error("removed group still parented")
	}
	if got := palette.GroupPosition(g2); got != -1 {
		t.Errorf("removed group: got position %d, want -1", got)
	}
}

func TestPalettePropagatesStyleAndIconSize(t *testing.T) {
	palette, group, buttons := paletteFixture()

	palette.SetStyle(StyleBoth)
	palette.SetIconSize(32)

	for i, b := range buttons {
		if b.Style() != StyleBoth || b.IconSize() != 32 {
			t.Errorf("button %d: got %v/%d, want both/32", i, b.Style(), b.IconSize())
		}
	}

	// Items inserted later pick up the palette configuration too.
	late := NewToolButton("edit-paste", "Paste")
	group.Insert(late, -1)
	if late.Style() != StyleBoth || late.IconSize() != 32 {
		t.Errorf("late item: got %v/%d, want both/32", late.Style(), late.IconSize())
	}

	palette.UnsetStyle()
	palette.UnsetIconSize()
	if late.Style() != StyleIcons || late.IconSize() != DefaultIconSize {
		t.Errorf("after unset: got %v/%d, want defaults", late.Style(), late.IconSize())
	}
}

func TestExclusiveGroupCollapsesOthers(t *testing.T) {
	palette, g1, _ := paletteFixture()
	g2 := NewToolItemGroup("Shapes")
	palette.AddGroup(g2)

	palette.SetExclusive(g1, true)
	if !g2.Collapsed() {
		t.Fatal("making an expanded group exclusive did not collapse the others")
	}

	g2.SetCollapsed(false)
	if g1.Collapsed() {
		t.Error("expanding a non-exclusive group collapsed the exclusive one")
	}

	g1.SetCollapsed(true)
	g1.SetCollapsed(false)
	if !g2.Collapsed() {
		t.Error("expanding the exclusive group did not collapse the others")
	}
}

func TestPaletteAllocateStacksGroups(t *testing.T) {
	palette, g1, _ := paletteFixture()
	g2 := NewToolItemGroup("Shapes")
	g2.Insert(NewToolButton("shape-square", "Square"), -1)
	g2.Insert(NewToolButton("shape-circle", "Circle"), -1)
	palette.AddGroup(g2)
	palette.SetExpand(g2, true)

	palette.Allocate(Rect{X: 0, Y: 0, Width: 64, Height: 200}, NoBaseline)

	r1, r2 := g1.Allocation(), g2.Allocation()
	if r1.Y != 0 || r1.Height != 52 {
		t.Errorf("first group: got y=%d h=%d, want y=0 h=52", r1.Y, r1.Height)
	}
	if r2.Y != 52 || r2.Height != 148 {
		t.Errorf("expanding group: got y=%d h=%d, want y=52 h=148", r2.Y, r2.Height)
	}
}

func TestDropLookups(t *testing.T) {
	palette, group, buttons := paletteFixture()
	palette.Allocate(Rect{X: 0, Y: 0, Width: 64, Height: 200}, NoBaseline)

	if got := palette.DropGroup(10, 10); got != group {
		t.Error("point in the header did not resolve to the group")
	}
	if got := palette.DropItem(40, 25); got != ToolItem(buttons[1]) {
		t.Error("point over the second item did not resolve to it")
	}
	if got := palette.DropItem(10, 190); got != nil {
		t.Error("point outside every group resolved to an item")
	}
}
