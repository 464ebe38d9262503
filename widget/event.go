package widget

// ============================================================================
// Event Types
// ============================================================================
//
// Only the slice of the event model the menu shell consumes for keyboard
// navigation lives here. Routing, grabs and pointer handling belong to
// the host framework.

// Key identifies a navigation key.
type Key uint8

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyEnter
	KeySpace
	KeyEscape
)

// Modifiers is a bitmask of held modifier keys.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModCtrl
	ModAlt
	ModSuper
)

func (m Modifiers) Shift() bool { return m&ModShift != 0 }
func (m Modifiers) Ctrl() bool  { return m&ModCtrl != 0 }
func (m Modifiers) Alt() bool   { return m&ModAlt != 0 }
func (m Modifiers) Super() bool { return m&ModSuper != 0 }

// KeyEvent is a key press delivered to a widget.
type KeyEvent struct {
	Key       Key
	Rune      rune
	Modifiers Modifiers
}
