package widget

import "fmt"

// ToolbarStyle controls what a tool button shows: its icon, its label,
// or both stacked vertically or side by side.
type ToolbarStyle uint8

const (
	StyleIcons ToolbarStyle = iota
	StyleText
	StyleBoth
	StyleBothHoriz
)

func (s ToolbarStyle) String() string {
	switch s {
	case StyleIcons:
		return "icons"
	case StyleText:
		return "text"
	case StyleBoth:
		return "both"
	case StyleBothHoriz:
		return "both-horiz"
	}
	return fmt.Sprintf("ToolbarStyle(%d)", uint8(s))
}

// ParseToolbarStyle maps the configuration spelling of a style to its
// value.
func ParseToolbarStyle(s string) (ToolbarStyle, error) {
	switch s {
	case "icons":
		return StyleIcons, nil
	case "text":
		return StyleText, nil
	case "both":
		return StyleBoth, nil
	case "both-horiz":
		return StyleBothHoriz, nil
	}
	return StyleIcons, fmt.Errorf("widget: unknown toolbar style %q", s)
}

// DefaultIconSize is the icon edge length tool items use when their
// container does not impose one.
const DefaultIconSize = 24

// ToolItem is an entry a tool container can hold and reconfigure when
// its own style or icon size changes.
type ToolItem interface {
	Widget
	Reconfigure(style ToolbarStyle, iconSize int)
}

const (
	toolButtonPadding = 4
	toolButtonSpacing = 2
)

// ToolButton is a tool item showing an icon and/or a label, depending on
// the toolbar style in effect, and firing a callback when clicked.
type ToolButton struct {
	Base

	labelText    string
	useUnderline bool
	iconName     string

	// Overrides for the internally built contents.
	labelWidget *Label
	iconWidget  *Image

	// cached derived contents, rebuilt when configuration changes
	builtLabel *Label
	builtIcon  *Image

	style    ToolbarStyle
	iconSize int

	onClicked func()
}

// NewToolButton creates a tool button with an icon name and a label.
// Either may be empty.
func NewToolButton(iconName, label string) *ToolButton {
	return &ToolButton{
		Base:      NewBase(),
		iconName:  iconName,
		labelText: label,
		style:     StyleIcons,
		iconSize:  DefaultIconSize,
	}
}

func (b *ToolButton) Label() string { return b.labelText }

func (b *ToolButton) SetLabel(label string) {
	b.labelText = label
	b.builtLabel = nil
}

func (b *ToolButton) IconName() string { return b.iconName }

func (b *ToolButton) SetIconName(name string) {
	b.iconName = name
	b.builtIcon = nil
}

// SetUseUnderline interprets an underscore in the label as a mnemonic
// marker.
func (b *ToolButton) SetUseUnderline(use bool) {
	b.useUnderline = use
	b.builtLabel = nil
}

func (b *ToolButton) UseUnderline() bool { return b.useUnderline }

// SetLabelWidget replaces the internally built label with a custom one.
// A nil widget restores the built-in label.
func (b *ToolButton) SetLabelWidget(w *Label) { b.labelWidget = w }

// SetIconWidget replaces the internally built icon with a custom image.
// A nil widget restores the built-in icon.
func (b *ToolButton) SetIconWidget(w *Image) { b.iconWidget = w }

// SetOnClicked installs the activation callback.
func (b *ToolButton) SetOnClicked(fn func()) { b.onClicked = fn }

// Clicked fires the activation callback, if any. Insensitive buttons
// ignore clicks.
func (b *ToolButton) Clicked() {
	if !b.Sensitive() {
		return
	}
	if b.onClicked != nil {
		b.onClicked()
	}
}

// Reconfigure adopts the container's style and icon size.
func (b *ToolButton) Reconfigure(style ToolbarStyle, iconSize int) {
	if b.style == style && b.iconSize == iconSize {
		return
	}
	b.style = style
	b.iconSize = iconSize
	b.builtIcon = nil
}

func (b *ToolButton) Style() ToolbarStyle { return b.style }
func (b *ToolButton) IconSize() int       { return b.iconSize }

// label returns the label widget in effect, or nil when the style shows
// no text or there is none to show.
func (b *ToolButton) label() *Label {
	if b.style == StyleIcons {
		return nil
	}
	if b.labelWidget != nil {
		return b.labelWidget
	}
	if b.labelText == "" {
		return nil
	}
	if b.builtLabel == nil {
		l := NewLabel(b.labelText)
		l.SetUseUnderline(b.useUnderline)
		b.builtLabel = l
	}
	return b.builtLabel
}

// icon returns the icon widget in effect, or nil for text-only styles.
func (b *ToolButton) icon() *Image {
	if b.style == StyleText {
		return nil
	}
	if b.iconWidget != nil {
		b.iconWidget.SetIconSize(b.iconSize)
		return b.iconWidget
	}
	if b.iconName == "" {
		return nil
	}
	if b.builtIcon == nil {
		b.builtIcon = NewImage(nil)
	}
	b.builtIcon.SetIconSize(b.iconSize)
	return b.builtIcon
}

// contentSize is the natural width and height of the icon/label
// arrangement, before padding.
func (b *ToolButton) contentSize() (w, h int) {
	icon := b.icon()
	label := b.label()

	var iw, ih, lw, lh int
	if icon != nil {
		_, iw, _, _ = icon.Measure(Horizontal, -1)
		_, ih, _, _ = icon.Measure(Vertical, -1)
	}
	if label != nil {
		_, lw, _, _ = label.Measure(Horizontal, -1)
		_, lh, _, _ = label.Measure(Vertical, -1)
	}

	switch {
	case icon == nil:
		return lw, lh
	case label == nil:
		return iw, ih
	case b.style == StyleBothHoriz:
		return iw + toolButtonSpacing + lw, maxInt(ih, lh)
	default: // StyleBoth stacks the icon over the label
		return maxInt(iw, lw), ih + toolButtonSpacing + lh
	}
}

func (b *ToolButton) Measure(orient Orientation, forSize int) (minimum, natural, minBaseline, natBaseline int) {
	w, h := b.contentSize()
	if orient == Horizontal {
		w += 2 * toolButtonPadding
		return w, w, NoBaseline, NoBaseline
	}
	h += 2 * toolButtonPadding
	return h, h, NoBaseline, NoBaseline
}

// Allocate positions the icon and label inside the given rectangle,
// centered along the packing axis.
func (b *ToolButton) Allocate(rect Rect, baseline int) {
	b.Base.Allocate(rect, baseline)

	icon := b.icon()
	label := b.label()

	inner := Rect{
		X:      rect.X + toolButtonPadding,
		Y:      rect.Y + toolButtonPadding,
		Width:  maxInt(1, rect.Width-2*toolButtonPadding),
		Height: maxInt(1, rect.Height-2*toolButtonPadding),
	}

	switch {
	case icon == nil && label == nil:
		return
	case icon == nil:
		label.Allocate(inner, NoBaseline)
	case label == nil:
		icon.Allocate(inner, NoBaseline)
	case b.style == StyleBothHoriz:
		_, iw, _, _ := icon.Measure(Horizontal, -1)
		iw = minInt(iw, inner.Width)
		icon.Allocate(Rect{X: inner.X, Y: inner.Y, Width: iw, Height: inner.Height}, NoBaseline)
		lx := inner.X + iw + toolButtonSpacing
		label.Allocate(Rect{
			X: lx, Y: inner.Y,
			Width:  maxInt(1, inner.X+inner.Width-lx),
			Height: inner.Height,
		}, NoBaseline)
	default:
		_, ih, _, _ := icon.Measure(Vertical, -1)
		ih = minInt(ih, inner.Height)
		icon.Allocate(Rect{X: inner.X, Y: inner.Y, Width: inner.Width, Height: ih}, NoBaseline)
		ly := inner.Y + ih + toolButtonSpacing
		label.Allocate(Rect{
			X: inner.X, Y: ly,
			Width:  inner.Width,
			Height: maxInt(1, inner.Y+inner.Height-ly),
		}, NoBaseline)
	}
}
