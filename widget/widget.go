// Package widget provides the retained-mode widget system: the grid
// container and its size-negotiation engine, the menu-shell navigation
// base, the tool palette and tool button composites, and the shared
// widget state they are built on.
//
// Layout is synchronous and single-threaded. A size request or size
// allocation is a self-contained computation over scratch state that is
// acquired at call entry and released at call exit; only the widget
// structures themselves persist between calls.
package widget

// Orientation selects one of the two layout axes.
type Orientation int

const (
	// Horizontal covers columns: positions and sizes along the x axis.
	Horizontal Orientation = iota
	// Vertical covers rows: positions and sizes along the y axis.
	Vertical
)

func (o Orientation) String() string {
	if o == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// opposite returns the other axis.
func (o Orientation) opposite() Orientation {
	return 1 - o
}

// Side identifies an edge of a widget, used for relative placement.
type Side int

const (
	SideLeft Side = iota
	SideRight
	SideTop
	SideBottom
)

// TextDirection controls whether horizontal positions are mirrored.
type TextDirection int

const (
	TextDirLTR TextDirection = iota
	TextDirRTL
)

// RequestMode describes which axis a widget prefers to negotiate first.
type RequestMode int

const (
	// HeightForWidth means the widget's height depends on the width it
	// is given. This is the default for the containers in this package.
	HeightForWidth RequestMode = iota
	// WidthForHeight is the transposed mode.
	WidthForHeight
)

// NoBaseline is the sentinel for "no baseline information".
const NoBaseline = -1

// Rect is an allocated rectangle in toolkit coordinates.
type Rect struct {
	X, Y          int
	Width, Height int
}

func (r Rect) size(orient Orientation) int {
	if orient == Horizontal {
		return r.Width
	}
	return r.Height
}

// BaselinePosition describes how a row's extra vertical space is split
// around its baseline when the row is allocated more than it requested.
type BaselinePosition int

const (
	BaselineTop BaselinePosition = iota
	BaselineCenter
	BaselineBottom
)

// Measurable is the capability a container needs from a child to lay it
// out. forSize is the already-decided extent on the opposite axis, or -1
// for a context-free request. The returned baselines are NoBaseline
// unless the widget aligns to a text baseline; they are only meaningful
// for Vertical measurements.
type Measurable interface {
	Visible() bool
	ComputeExpand(orient Orientation) bool
	Measure(orient Orientation, forSize int) (minimum, natural, minBaseline, natBaseline int)
	Allocate(rect Rect, baseline int)
}

// Widget is a Measurable that participates in the containment protocol:
// containers claim children by setting themselves as the parent, and
// refuse children that already have one.
type Widget interface {
	Measurable
	Parent() Widget
	SetParent(parent Widget)
	Allocation() Rect
}

// Base carries the widget state shared by every widget in this package.
// It corresponds to the private per-instance struct of the original
// widget hierarchy, reduced to the fields layout actually reads. Embed
// it and override Measure to build a concrete widget.
type Base struct {
	visible   bool
	sensitive bool
	canFocus  bool
	hasFocus  bool

	// Explicit expand flags. When the corresponding set flag is false,
	// ComputeExpand falls back to false rather than consulting children;
	// containers that aggregate child expand (like Grid) override
	// ComputeExpand themselves.
	hExpand    bool
	vExpand    bool
	hExpandSet bool
	vExpandSet bool

	parent      Widget
	direction   TextDirection
	requestMode RequestMode

	// Result of the last Allocate call.
	allocation        Rect
	allocatedBaseline int

	// Size reported by the default Measure. Concrete widgets either set
	// these or replace Measure entirely.
	minWidth, natWidth   int
	minHeight, natHeight int
}

// NewBase returns a Base with the defaults every widget starts from:
// visible, sensitive, no baseline, height-for-width.
func NewBase() Base {
	return Base{
		visible:           true,
		sensitive:         true,
		allocatedBaseline: NoBaseline,
	}
}

func (b *Base) Visible() bool        { return b.visible }
func (b *Base) SetVisible(v bool)    { b.visible = v }
func (b *Base) Sensitive() bool      { return b.sensitive }
func (b *Base) SetSensitive(s bool)  { b.sensitive = s }
func (b *Base) CanFocus() bool       { return b.canFocus }
func (b *Base) SetCanFocus(c bool)   { b.canFocus = c }
func (b *Base) HasFocus() bool       { return b.hasFocus }
func (b *Base) Parent() Widget       { return b.parent }
func (b *Base) SetParent(p Widget)   { b.parent = p }
func (b *Base) Direction() TextDirection {
	return b.direction
}
func (b *Base) SetDirection(d TextDirection) { b.direction = d }
func (b *Base) RequestMode() RequestMode     { return b.requestMode }
func (b *Base) SetRequestMode(m RequestMode) { b.requestMode = m }

// SetHExpand and SetVExpand force the expand flag for one axis.
func (b *Base) SetHExpand(expand bool) { b.hExpand = expand; b.hExpandSet = true }
func (b *Base) SetVExpand(expand bool) { b.vExpand = expand; b.vExpandSet = true }

// ComputeExpand reports whether the widget wants extra space on the axis.
// A widget that is not visible never expands.
func (b *Base) ComputeExpand(orient Orientation) bool {
	if !b.visible {
		return false
	}
	if orient == Horizontal {
		return b.hExpandSet && b.hExpand
	}
	return b.vExpandSet && b.vExpand
}

// SetSizeRequest sets the size reported by the default Measure. Natural
// sizes are clamped up to the minimum.
func (b *Base) SetSizeRequest(minWidth, minHeight int) {
	b.minWidth = minWidth
	b.minHeight = minHeight
	if b.natWidth < minWidth {
		b.natWidth = minWidth
	}
	if b.natHeight < minHeight {
		b.natHeight = minHeight
	}
}

// SetNaturalSize sets the natural size reported by the default Measure.
func (b *Base) SetNaturalSize(natWidth, natHeight int) {
	b.natWidth = natWidth
	b.natHeight = natHeight
}

// Measure is the default implementation: the explicitly requested sizes,
// no baseline, no dependence on forSize.
func (b *Base) Measure(orient Orientation, forSize int) (minimum, natural, minBaseline, natBaseline int) {
	if orient == Horizontal {
		minimum, natural = b.minWidth, b.natWidth
	} else {
		minimum, natural = b.minHeight, b.natHeight
	}
	if natural < minimum {
		natural = minimum
	}
	return minimum, natural, NoBaseline, NoBaseline
}

// Allocate records the final rectangle and baseline for the widget.
// Containers override this to also place their children.
func (b *Base) Allocate(rect Rect, baseline int) {
	b.allocation = rect
	b.allocatedBaseline = baseline
}

// Allocation returns the rectangle from the last Allocate call.
func (b *Base) Allocation() Rect { return b.allocation }

// AllocatedBaseline returns the baseline passed down by the parent in the
// last Allocate call, or NoBaseline.
func (b *Base) AllocatedBaseline() int { return b.allocatedBaseline }

// GrabFocus moves keyboard focus to the widget if it accepts focus.
func (b *Base) GrabFocus() bool {
	if !b.canFocus || !b.sensitive {
		return false
	}
	b.hasFocus = true
	return true
}

// DropFocus takes keyboard focus away from the widget.
func (b *Base) DropFocus() { b.hasFocus = false }
