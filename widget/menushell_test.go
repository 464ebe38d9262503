package widget

import "testing"

func buildShell(labels ...string) (*MenuShell, []*MenuItemBase) {
	shell := NewMenuShell()
	items := make([]*MenuItemBase, len(labels))
	for i, label := range labels {
		if label == "---" {
			items[i] = NewSeparatorMenuItem()
		} else {
			items[i] = NewMenuItem(label)
		}
		shell.Append(items[i])
	}
	return shell, items
}

func activeLabel(shell *MenuShell) string {
	item, ok := shell.ActiveItem().(*MenuItemBase)
	if !ok || item == nil {
		return ""
	}
	return item.Label()
}

func TestShellInsertOrder(t *testing.T) {
	shell, _ := buildShell("b", "c")
	shell.Prepend(NewMenuItem("a"))
	shell.Insert(NewMenuItem("d"), -1)
	shell.Insert(NewMenuItem("x"), 2)

	var got []string
	for _, item := range shell.Items() {
		got = append(got, item.(*MenuItemBase).Label())
	}
	want := []string{"a", "b", "x", "c", "d"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestShellInsertRejectsBadItems(t *testing.T) {
	shell, items := buildShell("a")
	mustPanic(t, "nil item", func() { shell.Insert(nil, 0) })
	other := NewMenuShell()
	mustPanic(t, "parented item", func() { other.Append(items[0]) })
}

func TestSelectItem(t *testing.T) {
	shell, items := buildShell("open", "---", "quit")

	shell.SelectItem(items[0])
	if !shell.Active() || activeLabel(shell) != "open" {
		t.Fatalf("got active=%v item=%q, want open selected", shell.Active(), activeLabel(shell))
	}
	if !items[0].Selected() {
		t.Error("selected item not marked")
	}

	// Selecting a separator clears the selection.
	shell.SelectItem(items[1])
	if shell.ActiveItem() != nil {
		t.Error("separator became the active item")
	}
	if items[0].Selected() {
		t.Error("previous item still marked selected")
	}
}

func TestMoveSelectedSkipsAndWraps(t *testing.T) {
	shell, items := buildShell("a", "---", "b")
	shell.SelectItem(items[0])

	shell.MoveSelected(1)
	if activeLabel(shell) != "b" {
		t.Fatalf("got %q, want separator skipped to b", activeLabel(shell))
	}

	shell.MoveSelected(1)
	if activeLabel(shell) != "a" {
		t.Fatalf("got %q, want wrap-around to a", activeLabel(shell))
	}

	shell.MoveSelected(-1)
	if activeLabel(shell) != "b" {
		t.Fatalf("got %q, want backward wrap to b", activeLabel(shell))
	}
}

func TestMoveSelectedWithoutSelection(t *testing.T) {
	shell, _ := buildShell("---", "a", "b")

	shell.MoveSelected(1)
	if activeLabel(shell) != "a" {
		t.Errorf("forward: got %q, want first selectable", activeLabel(shell))
	}

	shell.Deactivate()
	shell.MoveSelected(-1)
	if activeLabel(shell) != "b" {
		t.Errorf("backward: got %q, want last selectable", activeLabel(shell))
	}
}

func TestSelectSkipsInsensitive(t *testing.T) {
	shell, items := buildShell("a", "b")
	items[0].SetSensitive(false)

	shell.SelectFirst(true)
	if activeLabel(shell) != "b" {
		t.Errorf("got %q, want the insensitive item skipped", activeLabel(shell))
	}
}

func TestActivateItemFiresSelectionDoneOutermostFirst(t *testing.T) {
	var order []string

	outer, outerItems := buildShell("file")
	outer.SetOnSelectionDone(func() { order = append(order, "outer") })

	inner := NewMenuShell()
	inner.SetOnSelectionDone(func() { order = append(order, "inner") })
	outerItems[0].SetSubmenu(inner)

	quit := NewMenuItem("quit")
	quit.SetOnActivate(func() { order = append(order, "activate") })
	inner.Append(quit)

	outer.SelectItem(outerItems[0])
	inner.SelectItem(quit)
	inner.ActivateItem(quit, true)

	want := []string{"activate", "outer", "inner"}
	if len(order) != len(want) {
		t.Fatalf("got %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("got %v, want %v", order, want)
		}
	}
	if inner.Active() || inner.ActiveItem() != nil {
		t.Error("inner shell still active after activation")
	}
}

func TestCancelReportsSelectionDone(t *testing.T) {
	shell, items := buildShell("a")
	done := false
	shell.SetOnSelectionDone(func() { done = true })

	shell.SelectItem(items[0])
	shell.Cancel()

	if !done {
		t.Error("selection-done not reported")
	}
	if shell.Active() || shell.ActiveItem() != nil {
		t.Error("shell still active after cancel")
	}
}

func TestHandleKeyNavigation(t *testing.T) {
	shell, items := buildShell("a", "b")
	activated := false
	items[1].SetOnActivate(func() { activated = true })

	if !shell.HandleKey(KeyEvent{Key: KeyDown}) {
		t.Fatal("down not consumed")
	}
	if activeLabel(shell) != "a" {
		t.Fatalf("got %q, want a", activeLabel(shell))
	}

	shell.HandleKey(KeyEvent{Key: KeyEnd})
	if activeLabel(shell) != "b" {
		t.Fatalf("got %q, want b", activeLabel(shell))
	}

	shell.HandleKey(KeyEvent{Key: KeyEnter})
	if !activated {
		t.Error("enter did not activate the selection")
	}
	if shell.Active() {
		t.Error("shell still active after activation")
	}

	if shell.HandleKey(KeyEvent{Key: KeyEnter}) {
		t.Error("enter without a selection was consumed")
	}
	if shell.HandleKey(KeyEvent{Key: KeyLeft}) {
		t.Error("unbound key was consumed")
	}
}

func TestRemoveActiveItemDeselects(t *testing.T) {
	shell, items := buildShell("a", "b")
	shell.SelectItem(items[0])

	shell.RemoveItem(items[0])

	if shell.ActiveItem() != nil {
		t.Error("removed item still active")
	}
	if items[0].Parent() != nil {
		t.Error("removed item still parented")
	}
	if len(shell.Items()) != 1 {
		t.Errorf("got %d items, want 1", len(shell.Items()))
	}
}
