package widget

// MenuItem is the contract the shell needs from its items: selection
// highlighting, activation, and whether the item can be selected at all
// (separators and insensitive items cannot).
type MenuItem interface {
	Widget
	Selectable() bool
	Select()
	Deselect()
	Activate()
	// Submenu returns the shell this item opens, or nil.
	Submenu() *MenuShell
}

// MenuShell is the navigation base for menu-like containers: an ordered
// list of items, one of which may be selected, with wrap-around keyboard
// movement and activation that propagates selection-done up the chain of
// parent shells. Popup windows, pointer grabs and screen placement are
// the host framework's business.
type MenuShell struct {
	Base

	items []MenuItem

	active             bool
	activeItem         MenuItem
	inUnselectableItem bool
	keyboardMode       bool

	parentShell *MenuShell

	// onSelectionDone fires when a selection concludes, either through
	// item activation or cancellation.
	onSelectionDone func()
}

// NewMenuShell creates an empty menu shell.
func NewMenuShell() *MenuShell {
	return &MenuShell{Base: NewBase()}
}

// SetOnSelectionDone installs the selection-done callback.
func (m *MenuShell) SetOnSelectionDone(fn func()) { m.onSelectionDone = fn }

// ParentShell returns the shell this one was opened from, or nil.
func (m *MenuShell) ParentShell() *MenuShell { return m.parentShell }

// KeyboardMode reports whether the current navigation session was driven
// by the keyboard. Hosts use this to decide whether hover should steal
// the selection.
func (m *MenuShell) KeyboardMode() bool { return m.keyboardMode }

// SetKeyboardMode marks the session as keyboard driven.
func (m *MenuShell) SetKeyboardMode(on bool) { m.keyboardMode = on }

// InUnselectableItem reports whether the cursor last landed on an item
// that cannot be selected, such as a separator.
func (m *MenuShell) InUnselectableItem() bool { return m.inUnselectableItem }

// Append adds an item at the end of the shell.
func (m *MenuShell) Append(item MenuItem) { m.Insert(item, -1) }

// Prepend adds an item at the beginning of the shell.
func (m *MenuShell) Prepend(item MenuItem) { m.Insert(item, 0) }

// Insert adds an item at the given position; a negative position
// appends.
func (m *MenuShell) Insert(item MenuItem, pos int) {
	if item == nil {
		panic("widget: Insert with nil menu item")
	}
	if item.Parent() != nil {
		panic("widget: Insert of a menu item that already has a parent")
	}

	if pos < 0 || pos > len(m.items) {
		pos = len(m.items)
	}
	m.items = append(m.items, nil)
	copy(m.items[pos+1:], m.items[pos:])
	m.items[pos] = item
	item.SetParent(m)

	if sub := item.Submenu(); sub != nil {
		sub.parentShell = m
	}
}

// RemoveItem detaches an item; a no-op if the item is not in this shell.
func (m *MenuShell) RemoveItem(item MenuItem) {
	for i, it := range m.items {
		if it == item {
			if m.activeItem == item {
				m.Deselect()
			}
			item.SetParent(nil)
			if sub := item.Submenu(); sub != nil && sub.parentShell == m {
				sub.parentShell = nil
			}
			m.items = append(m.items[:i], m.items[i+1:]...)
			return
		}
	}
}

// Items returns the items in order.
func (m *MenuShell) Items() []MenuItem {
	out := make([]MenuItem, len(m.items))
	copy(out, m.items)
	return out
}

// Active reports whether the shell currently owns a navigation session.
func (m *MenuShell) Active() bool { return m.active }

// ActiveItem returns the selected item, or nil.
func (m *MenuShell) ActiveItem() MenuItem { return m.activeItem }

// Activate begins a navigation session. Idempotent.
func (m *MenuShell) Activate() {
	m.active = true
}

// Deactivate ends the navigation session and clears the selection.
func (m *MenuShell) Deactivate() {
	if !m.active {
		return
	}
	m.active = false
	if m.activeItem != nil {
		m.activeItem.Deselect()
		m.activeItem = nil
	}
	m.keyboardMode = false
}

// SelectItem makes item the selected one, deselecting any previous
// selection. Selecting an unselectable item clears the selection but
// remembers that the cursor sits on it.
func (m *MenuShell) SelectItem(item MenuItem) {
	if m.active && m.activeItem == item {
		return
	}

	if m.activeItem != nil {
		m.activeItem.Deselect()
		m.activeItem = nil
	}

	if !item.Selectable() {
		m.inUnselectableItem = true
		return
	}
	m.inUnselectableItem = false

	m.Activate()

	m.activeItem = item
	item.Select()

	if sub := item.Submenu(); sub != nil {
		sub.parentShell = m
	}
}

// Deselect clears the current selection, if any.
func (m *MenuShell) Deselect() {
	if m.activeItem != nil {
		m.activeItem.Deselect()
		m.activeItem = nil
	}
}

// ActivateItem activates the item. Unless the shell is told otherwise,
// activation deactivates the whole chain of shells first and then fires
// selection-done on each of them, outermost first.
func (m *MenuShell) ActivateItem(item MenuItem, deactivate bool) {
	var shells []*MenuShell
	if deactivate {
		for shell := m; shell != nil; shell = shell.parentShell {
			shells = append([]*MenuShell{shell}, shells...)
		}
		m.Deactivate()
	}

	item.Activate()

	for _, shell := range shells {
		if shell.onSelectionDone != nil {
			shell.onSelectionDone()
		}
	}
}

// Cancel abandons the navigation session without activating anything and
// reports selection-done.
func (m *MenuShell) Cancel() {
	m.Deactivate()
	if m.onSelectionDone != nil {
		m.onSelectionDone()
	}
}

// SelectFirst selects the first selectable item. When searchSensitive is
// false the first visible item is taken even if it cannot be selected,
// matching the behavior of a freshly popped-up menu.
func (m *MenuShell) SelectFirst(searchSensitive bool) {
	for _, item := range m.items {
		if (!searchSensitive && item.Visible()) || item.Selectable() {
			m.SelectItem(item)
			return
		}
	}
}

// SelectLast selects the last selectable item.
func (m *MenuShell) SelectLast(searchSensitive bool) {
	for i := len(m.items) - 1; i >= 0; i-- {
		item := m.items[i]
		if (!searchSensitive && item.Visible()) || item.Selectable() {
			m.SelectItem(item)
			return
		}
	}
}

// MoveSelected moves the selection by distance (+1 or -1), skipping
// unselectable items and wrapping around the ends. Without a current
// selection it behaves like SelectFirst/SelectLast.
func (m *MenuShell) MoveSelected(distance int) {
	if len(m.items) == 0 {
		return
	}

	if m.activeItem == nil {
		if distance > 0 {
			m.SelectFirst(true)
		} else {
			m.SelectLast(true)
		}
		return
	}

	start := -1
	for i, item := range m.items {
		if item == m.activeItem {
			start = i
			break
		}
	}
	if start < 0 {
		return
	}

	step := 1
	if distance < 0 {
		step = -1
	}
	n := len(m.items)
	for i := (start + step + n) % n; i != start; i = (i + step + n) % n {
		if m.items[i].Selectable() {
			m.SelectItem(m.items[i])
			return
		}
	}
}

// HandleKey drives keyboard navigation. Returns true when the key was
// consumed.
func (m *MenuShell) HandleKey(ev KeyEvent) bool {
	switch ev.Key {
	case KeyUp:
		m.keyboardMode = true
		m.MoveSelected(-1)
	case KeyDown:
		m.keyboardMode = true
		m.MoveSelected(1)
	case KeyHome:
		m.keyboardMode = true
		m.SelectFirst(true)
	case KeyEnd:
		m.keyboardMode = true
		m.SelectLast(true)
	case KeyEnter, KeySpace:
		if m.activeItem == nil {
			return false
		}
		m.ActivateItem(m.activeItem, true)
	case KeyEscape:
		m.Cancel()
	default:
		return false
	}
	return true
}

// MenuItemBase is a ready-made MenuItem: a labeled entry with an
// optional submenu and activation callback. Separators are items that
// are never selectable.
type MenuItemBase struct {
	Base

	label     string
	separator bool
	selected  bool
	submenu   *MenuShell

	onActivate func()
}

// NewMenuItem creates a selectable labeled item.
func NewMenuItem(label string) *MenuItemBase {
	return &MenuItemBase{Base: NewBase(), label: label}
}

// NewSeparatorMenuItem creates a separator.
func NewSeparatorMenuItem() *MenuItemBase {
	return &MenuItemBase{Base: NewBase(), separator: true}
}

func (mi *MenuItemBase) Label() string           { return mi.label }
func (mi *MenuItemBase) SetLabel(label string)   { mi.label = label }
func (mi *MenuItemBase) SetOnActivate(fn func()) { mi.onActivate = fn }
func (mi *MenuItemBase) Selected() bool          { return mi.selected }
func (mi *MenuItemBase) Submenu() *MenuShell     { return mi.submenu }

// SetSubmenu attaches a submenu opened when the item is activated.
func (mi *MenuItemBase) SetSubmenu(sub *MenuShell) { mi.submenu = sub }

func (mi *MenuItemBase) Selectable() bool {
	return !mi.separator && mi.Visible() && mi.Sensitive()
}

func (mi *MenuItemBase) Select()   { mi.selected = true }
func (mi *MenuItemBase) Deselect() { mi.selected = false }

func (mi *MenuItemBase) Activate() {
	if mi.onActivate != nil {
		mi.onActivate()
	}
}
