// Package gtk provides a retained-mode widget toolkit core: a grid
// container with constraint-based two-pass size negotiation, a menu-shell
// navigation base, a tool palette and tool button, and the widget state
// that backs them. The widget system lives in the widget subpackage; this
// package carries toolkit-level configuration.
package gtk

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Settings holds toolkit-wide defaults. Widgets fall back to these values
// when no explicit per-widget override has been set (for example a tool
// palette without its own icon size).
type Settings struct {
	// IconSize is the default edge length, in pixels, for tool item icons.
	IconSize int `toml:"icon_size"`

	// PaletteStyle selects how tool buttons compose their contents:
	// "icons", "text", "both" or "both-horiz".
	PaletteStyle string `toml:"palette_style"`

	// TextDirection is "ltr" or "rtl" and seeds the direction of newly
	// created widgets.
	TextDirection string `toml:"text_direction"`

	// MenuPopupDelay is the delay in milliseconds before a submenu is
	// shown while hovering. Kept here for hosts that route pointer events.
	MenuPopupDelay int `toml:"menu_popup_delay"`
}

// DefaultSettings returns the built-in defaults.
func DefaultSettings() *Settings {
	return &Settings{
		IconSize:       24,
		PaletteStyle:   "icons",
		TextDirection:  "ltr",
		MenuPopupDelay: 225,
	}
}

// LoadSettings reads a TOML settings file and overlays it on the defaults.
// Fields absent from the file keep their default values.
func LoadSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	settings := DefaultSettings()
	if err := toml.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings file %s: %w", path, err)
	}

	if err := settings.validate(); err != nil {
		return nil, fmt.Errorf("invalid settings in %s: %w", path, err)
	}

	return settings, nil
}

func (s *Settings) validate() error {
	if s.IconSize <= 0 {
		return fmt.Errorf("icon_size must be positive, got %d", s.IconSize)
	}
	switch s.PaletteStyle {
	case "icons", "text", "both", "both-horiz":
	default:
		return fmt.Errorf("unknown palette_style %q", s.PaletteStyle)
	}
	switch s.TextDirection {
	case "ltr", "rtl":
	default:
		return fmt.Errorf("unknown text_direction %q", s.TextDirection)
	}
	if s.MenuPopupDelay < 0 {
		return fmt.Errorf("menu_popup_delay must not be negative, got %d", s.MenuPopupDelay)
	}
	return nil
}
