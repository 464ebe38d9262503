package widget

import "testing"

func mustPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected panic", name)
		}
	}()
	fn()
}

func TestAttachRejectsBadArguments(t *testing.T) {
	g := NewGrid()
	child := newStub(1, 1, 1, 1)

	mustPanic(t, "nil child", func() { g.Attach(nil, 0, 0, 1, 1) })
	mustPanic(t, "zero col span", func() { g.Attach(child, 0, 0, 0, 1) })
	mustPanic(t, "zero row span", func() { g.Attach(child, 0, 0, 1, 0) })

	g.Attach(child, 0, 0, 1, 1)
	mustPanic(t, "reattach", func() { g.Attach(child, 1, 1, 1, 1) })

	other := NewGrid()
	mustPanic(t, "attach to second grid", func() { other.Attach(child, 0, 0, 1, 1) })
}

func TestAttachAndChildPosition(t *testing.T) {
	g := NewGrid()
	child := newStub(1, 1, 1, 1)
	g.Attach(child, 2, -1, 3, 2)

	col, row, colSpan, rowSpan, ok := g.ChildPosition(child)
	if !ok || col != 2 || row != -1 || colSpan != 3 || rowSpan != 2 {
		t.Errorf("got (%d,%d,%d,%d,%v), want (2,-1,3,2,true)", col, row, colSpan, rowSpan, ok)
	}

	if _, _, _, _, ok := g.ChildPosition(newStub(1, 1, 1, 1)); ok {
		t.Error("ChildPosition of a stranger reported ok")
	}
}

func TestAttachNextToSibling(t *testing.T) {
	g := NewGrid()
	anchor := newStub(1, 1, 1, 1)
	g.Attach(anchor, 1, 1, 2, 2)

	tests := []struct {
		name     string
		side     Side
		col, row int
	}{
		{"left", SideLeft, 0, 1},
		{"right", SideRight, 3, 1},
		{"top", SideTop, 1, 0},
		{"bottom", SideBottom, 1, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			child := newStub(1, 1, 1, 1)
			g.AttachNextTo(child, anchor, tt.side, 1, 1)
			col, row, _, _, _ := g.ChildPosition(child)
			if col != tt.col || row != tt.row {
				t.Errorf("got (%d,%d), want (%d,%d)", col, row, tt.col, tt.row)
			}
			g.Remove(child)
		})
	}
}

func TestAttachNextToWithoutSibling(t *testing.T) {
	g := NewGrid()

	// On an empty grid the start position is zero minus the child's span.
	first := newStub(1, 1, 1, 1)
	g.AttachNextTo(first, nil, SideLeft, 1, 1)
	if col, row, _, _, _ := g.ChildPosition(first); col != -1 || row != 0 {
		t.Errorf("empty grid: got (%d,%d), want (-1,0)", col, row)
	}

	second := newStub(1, 1, 1, 1)
	g.AttachNextTo(second, nil, SideRight, 1, 1)
	if col, row, _, _, _ := g.ChildPosition(second); col != 0 || row != 0 {
		t.Errorf("right edge: got (%d,%d), want (0,0)", col, row)
	}
}

func TestAddFollowsOrientation(t *testing.T) {
	g := NewGrid()
	a := newStub(1, 1, 1, 1)
	b := newStub(1, 1, 1, 1)
	g.Add(a)
	g.Add(b)
	if col, row, _, _, _ := g.ChildPosition(b); col != 1 || row != 0 {
		t.Errorf("horizontal growth: got (%d,%d), want (1,0)", col, row)
	}

	g.SetOrientation(Vertical)
	c := newStub(1, 1, 1, 1)
	g.Add(c)
	if col, row, _, _, _ := g.ChildPosition(c); col != 0 || row != 1 {
		t.Errorf("vertical growth: got (%d,%d), want (0,1)", col, row)
	}
}

func TestChildAtPrefersMostRecent(t *testing.T) {
	g := NewGrid()
	older := newStub(1, 1, 1, 1)
	newer := newStub(1, 1, 1, 1)
	g.Attach(older, 0, 0, 2, 2)
	g.Attach(newer, 1, 1, 1, 1)

	if got := g.ChildAt(1, 1); got != Widget(newer) {
		t.Error("overlapping cell did not report the most recently attached child")
	}
	if got := g.ChildAt(0, 0); got != Widget(older) {
		t.Error("non-overlapping cell of the older child not found")
	}
	if got := g.ChildAt(5, 5); got != nil {
		t.Error("empty cell reported a child")
	}
}

func TestRemoveDetaches(t *testing.T) {
	g := NewGrid()
	child := newStub(1, 1, 1, 1)
	g.Attach(child, 0, 0, 1, 1)

	g.Remove(child)
	if child.Parent() != nil {
		t.Error("removed child still has a parent")
	}
	if len(g.Children()) != 0 {
		t.Error("removed child still listed")
	}

	// Removing a stranger is a no-op.
	g.Remove(newStub(1, 1, 1, 1))
}

func TestInsertRowShiftsAndStretches(t *testing.T) {
	g := NewGrid()
	below := newStub(1, 1, 1, 1)
	spanning := newStub(1, 1, 1, 1)
	g.Attach(below, 0, 1, 1, 1)
	g.Attach(spanning, 1, 0, 1, 3)

	g.InsertRow(1)

	if _, row, _, _, _ := g.ChildPosition(below); row != 2 {
		t.Errorf("child below the insert: got row %d, want 2", row)
	}
	if _, row, _, span, _ := g.ChildPosition(spanning); row != 0 || span != 4 {
		t.Errorf("spanning child: got row %d span %d, want 0, 4", row, span)
	}
}

func TestRemoveRowDetachesAndShrinks(t *testing.T) {
	g := NewGrid()
	only := newStub(1, 1, 1, 1)
	spanning := newStub(1, 1, 1, 1)
	after := newStub(1, 1, 1, 1)
	g.Attach(only, 0, 1, 1, 1)
	g.Attach(spanning, 1, 0, 1, 3)
	g.Attach(after, 2, 2, 1, 1)

	g.RemoveRow(1)

	if only.Parent() != nil {
		t.Error("child living only in the removed row was not detached")
	}
	if _, row, _, span, _ := g.ChildPosition(spanning); row != 0 || span != 2 {
		t.Errorf("spanning child: got row %d span %d, want 0, 2", row, span)
	}
	if _, row, _, _, _ := g.ChildPosition(after); row != 1 {
		t.Errorf("child after the removed row: got row %d, want 1", row)
	}
}

func TestInsertThenRemoveRowRestoresPlacements(t *testing.T) {
	g := NewGrid()
	before := newStub(1, 1, 1, 1)
	at := newStub(1, 1, 1, 1)
	spanning := newStub(1, 1, 1, 1)
	g.Attach(before, 0, 0, 1, 1)
	g.Attach(at, 0, 2, 1, 1)
	g.Attach(spanning, 1, 1, 1, 3)

	type placement struct{ col, row, colSpan, rowSpan int }
	record := func() map[*stub]placement {
		got := map[*stub]placement{}
		for _, c := range []*stub{before, at, spanning} {
			col, row, colSpan, rowSpan, _ := g.ChildPosition(c)
			got[c] = placement{col, row, colSpan, rowSpan}
		}
		return got
	}

	want := record()
	g.InsertRow(2)
	g.RemoveRow(2)

	for child, p := range record() {
		if p != want[child] {
			t.Errorf("placement not restored: got %+v, want %+v", p, want[child])
		}
	}
	if len(g.Children()) != 3 {
		t.Errorf("got %d children, want 3", len(g.Children()))
	}
}

func TestInsertColumnNextTo(t *testing.T) {
	g := NewGrid()
	anchor := newStub(1, 1, 1, 1)
	right := newStub(1, 1, 1, 1)
	g.Attach(anchor, 0, 0, 1, 1)
	g.Attach(right, 1, 0, 1, 1)

	g.InsertNextTo(anchor, SideRight)

	if col, _, _, _, _ := g.ChildPosition(anchor); col != 0 {
		t.Errorf("anchor moved to column %d", col)
	}
	if col, _, _, _, _ := g.ChildPosition(right); col != 2 {
		t.Errorf("right neighbor: got column %d, want 2", col)
	}
}

func TestInsertRowShiftsBaselineProperties(t *testing.T) {
	g := NewGrid()
	g.SetRowBaselinePosition(1, BaselineBottom)

	g.InsertRow(0)

	if got := g.RowBaselinePosition(2); got != BaselineBottom {
		t.Errorf("shifted row: got %v, want BaselineBottom", got)
	}
	if got := g.RowBaselinePosition(1); got != BaselineCenter {
		t.Errorf("fresh row: got %v, want the BaselineCenter default", got)
	}
}

func TestComputeExpandAggregatesChildren(t *testing.T) {
	g := NewGrid()
	if g.ComputeExpand(Horizontal) {
		t.Error("empty grid wants to expand")
	}

	child := newStub(1, 1, 1, 1)
	child.SetHExpand(true)
	g.Attach(child, 0, 0, 1, 1)
	if !g.ComputeExpand(Horizontal) {
		t.Error("grid ignores expanding child")
	}
	if g.ComputeExpand(Vertical) {
		t.Error("horizontal expand leaked to the vertical axis")
	}

	// An explicit setting on the grid itself wins.
	g.SetHExpand(false)
	if g.ComputeExpand(Horizontal) {
		t.Error("explicit grid setting did not override the children")
	}
}

func TestInvalidateHookFires(t *testing.T) {
	g := NewGrid()
	fired := 0
	g.SetOnInvalidate(func() { fired++ })

	g.SetRowSpacing(4)
	g.SetRowSpacing(4) // unchanged, no notification
	g.Attach(newStub(1, 1, 1, 1), 0, 0, 1, 1)

	if fired != 2 {
		t.Errorf("got %d invalidations, want 2", fired)
	}
}
