package widget

import "fmt"

// Grid arranges children in rows and columns. Children are attached with
// explicit cell coordinates and may span multiple rows or columns; cells
// may be negative. Several children occupying the same cell is allowed;
// which one ChildAt reports is determined by attach order (see ChildAt).
//
// Row and column sizes are negotiated in two passes (minimum/natural),
// support homogeneous distribution, spanning children and per-row
// baseline alignment. The solver lives in gridlayout.go.
type Grid struct {
	Base

	// children is kept in prepend order: the most recently attached
	// child is first. Iteration order is externally observable through
	// ChildAt on overlapping placements.
	children []*gridChild

	rowProps []gridRowProperties

	orientation Orientation
	baselineRow int

	// linedata is indexed by the axis the sizes run along:
	// linedata[Horizontal] configures columns, linedata[Vertical] rows.
	linedata [2]gridLineData

	onInvalidate func()
}

type gridAttach struct {
	pos  int
	span int
}

type gridChild struct {
	widget Widget
	// attach[Horizontal] is the column position/span,
	// attach[Vertical] the row position/span.
	attach [2]gridAttach
}

type gridLineData struct {
	spacing     int
	homogeneous bool
}

type gridRowProperties struct {
	row              int
	baselinePosition BaselinePosition
}

// NewGrid creates an empty grid.
func NewGrid() *Grid {
	return &Grid{Base: NewBase()}
}

// SetOnInvalidate installs the hook called whenever a mutation changes
// the layout (placement, spacing, homogeneity, baseline configuration).
// The host decides how to schedule the resulting re-layout.
func (g *Grid) SetOnInvalidate(fn func()) {
	g.onInvalidate = fn
}

func (g *Grid) invalidate() {
	if g.onInvalidate != nil {
		g.onInvalidate()
	}
}

func (g *Grid) findChild(child Widget) *gridChild {
	for _, c := range g.children {
		if c.widget == child {
			return c
		}
	}
	return nil
}

func (g *Grid) attach(child Widget, left, top, width, height int) {
	c := &gridChild{widget: child}
	c.attach[Horizontal] = gridAttach{pos: left, span: width}
	c.attach[Vertical] = gridAttach{pos: top, span: height}

	g.children = append([]*gridChild{c}, g.children...)
	child.SetParent(g)
	g.invalidate()
}

// Attach adds a child at the cell (col, row), spanning colSpan columns
// and rowSpan rows. Spans must be positive and the child must not have a
// parent yet; violations are programming errors and panic.
func (g *Grid) Attach(child Widget, col, row, colSpan, rowSpan int) {
	if child == nil {
		panic("widget: Attach with nil child")
	}
	if colSpan <= 0 || rowSpan <= 0 {
		panic(fmt.Sprintf("widget: Attach with non-positive span %dx%d", colSpan, rowSpan))
	}
	if child.Parent() != nil {
		panic("widget: Attach of a child that already has a parent")
	}
	g.attach(child, col, row, colSpan, rowSpan)
}

// findAttachPosition scans children whose span on the perpendicular axis
// overlaps [opPos, opPos+opSpan] and returns the extreme coordinate they
// reach on orient: the largest end when max is true, the smallest start
// otherwise. With no overlapping children the result is 0.
func (g *Grid) findAttachPosition(orient Orientation, opPos, opSpan int, max bool) int {
	const intMax = int(^uint(0) >> 1)

	pos := intMax
	if max {
		pos = -intMax - 1
	}
	hit := false

	for _, c := range g.children {
		attach := c.attach[orient]
		opposite := c.attach[orient.opposite()]

		if opposite.pos <= opPos+opSpan && opPos <= opposite.pos+opposite.span {
			hit = true
			if max {
				if end := attach.pos + attach.span; end > pos {
					pos = end
				}
			} else if attach.pos < pos {
				pos = attach.pos
			}
		}
	}

	if !hit {
		return 0
	}
	return pos
}

// AttachNextTo adds a child next to sibling on the given side. With a nil
// sibling the child is placed at the start or end of the implicit first
// row (for left/right) or column (for top/bottom); on an empty grid that
// start position is 0 minus the child's own span.
func (g *Grid) AttachNextTo(child Widget, sibling Widget, side Side, colSpan, rowSpan int) {
	if child == nil {
		panic("widget: AttachNextTo with nil child")
	}
	if colSpan <= 0 || rowSpan <= 0 {
		panic(fmt.Sprintf("widget: AttachNextTo with non-positive span %dx%d", colSpan, rowSpan))
	}
	if child.Parent() != nil {
		panic("widget: AttachNextTo of a child that already has a parent")
	}

	var left, top int
	if sibling != nil {
		sc := g.findChild(sibling)
		if sc == nil {
			panic("widget: AttachNextTo sibling is not a child of this grid")
		}
		switch side {
		case SideLeft:
			left = sc.attach[Horizontal].pos - colSpan
			top = sc.attach[Vertical].pos
		case SideRight:
			left = sc.attach[Horizontal].pos + sc.attach[Horizontal].span
			top = sc.attach[Vertical].pos
		case SideTop:
			left = sc.attach[Horizontal].pos
			top = sc.attach[Vertical].pos - rowSpan
		case SideBottom:
			left = sc.attach[Horizontal].pos
			top = sc.attach[Vertical].pos + sc.attach[Vertical].span
		default:
			panic(fmt.Sprintf("widget: invalid side %d", side))
		}
	} else {
		switch side {
		case SideLeft:
			left = g.findAttachPosition(Horizontal, 0, rowSpan, false) - colSpan
			top = 0
		case SideRight:
			left = g.findAttachPosition(Horizontal, 0, rowSpan, true)
			top = 0
		case SideTop:
			left = 0
			top = g.findAttachPosition(Vertical, 0, colSpan, false) - rowSpan
		case SideBottom:
			left = 0
			top = g.findAttachPosition(Vertical, 0, colSpan, true)
		default:
			panic(fmt.Sprintf("widget: invalid side %d", side))
		}
	}

	g.attach(child, left, top, colSpan, rowSpan)
}

// Add appends a child in a single cell next to the grid's growth edge,
// box-style, along the grid's orientation.
func (g *Grid) Add(child Widget) {
	if child == nil {
		panic("widget: Add with nil child")
	}
	if child.Parent() != nil {
		panic("widget: Add of a child that already has a parent")
	}

	var pos [2]int
	pos[g.orientation] = g.findAttachPosition(g.orientation, 0, 1, true)
	g.attach(child, pos[Horizontal], pos[Vertical], 1, 1)
}

// Remove detaches a child from the grid. Removing a widget that is not a
// child is a no-op.
func (g *Grid) Remove(child Widget) {
	for i, c := range g.children {
		if c.widget == child {
			child.SetParent(nil)
			g.children = append(g.children[:i], g.children[i+1:]...)
			g.invalidate()
			return
		}
	}
}

// Children returns the attached widgets in iteration order (most recently
// attached first).
func (g *Grid) Children() []Widget {
	out := make([]Widget, len(g.children))
	for i, c := range g.children {
		out[i] = c.widget
	}
	return out
}

// ChildAt returns the child whose area covers the cell (col, row), or nil.
// With overlapping placements the most recently attached child wins,
// a consequence of the prepend-order child list.
func (g *Grid) ChildAt(col, row int) Widget {
	for _, c := range g.children {
		if c.attach[Horizontal].pos <= col &&
			c.attach[Horizontal].pos+c.attach[Horizontal].span > col &&
			c.attach[Vertical].pos <= row &&
			c.attach[Vertical].pos+c.attach[Vertical].span > row {
			return c.widget
		}
	}
	return nil
}

// ChildPosition reports the placement of a child. ok is false when the
// widget is not a child of the grid.
func (g *Grid) ChildPosition(child Widget) (col, row, colSpan, rowSpan int, ok bool) {
	c := g.findChild(child)
	if c == nil {
		return 0, 0, 0, 0, false
	}
	return c.attach[Horizontal].pos, c.attach[Vertical].pos,
		c.attach[Horizontal].span, c.attach[Vertical].span, true
}

// InsertRow inserts a row at the given position. Children attached at or
// below the position move one row down; children spanning across it grow
// by one row. Per-row baseline settings at or below the position shift
// with their rows.
func (g *Grid) InsertRow(pos int) {
	g.insertLine(Vertical, pos)

	for i := range g.rowProps {
		if g.rowProps[i].row >= pos {
			g.rowProps[i].row++
		}
	}
	g.invalidate()
}

// InsertColumn inserts a column at the given position. Children attached
// at or after the position move one column right; children spanning
// across it grow by one column.
func (g *Grid) InsertColumn(pos int) {
	g.insertLine(Horizontal, pos)
	g.invalidate()
}

func (g *Grid) insertLine(orient Orientation, pos int) {
	for _, c := range g.children {
		attach := &c.attach[orient]
		if attach.pos >= pos {
			attach.pos++
		} else if attach.pos+attach.span > pos {
			attach.span++
		}
	}
}

// RemoveRow removes a row. Children placed only in this row are detached,
// spanning children shrink by one row, and children below move up.
func (g *Grid) RemoveRow(pos int) {
	g.removeLine(Vertical, pos)
	g.invalidate()
}

// RemoveColumn removes a column, with the same rules as RemoveRow.
func (g *Grid) RemoveColumn(pos int) {
	g.removeLine(Horizontal, pos)
	g.invalidate()
}

func (g *Grid) removeLine(orient Orientation, pos int) {
	// Snapshot: shrinking a placement to zero detaches it, which mutates
	// the child list.
	snapshot := make([]*gridChild, len(g.children))
	copy(snapshot, g.children)

	for _, c := range snapshot {
		attach := c.attach[orient]
		p, span := attach.pos, attach.span

		if p <= pos && p+span > pos {
			span--
		}
		if p > pos {
			p--
		}

		if span <= 0 {
			g.Remove(c.widget)
		} else {
			c.attach[orient] = gridAttach{pos: p, span: span}
		}
	}
}

// InsertNextTo inserts a whole row or column adjacent to sibling: a row
// for top/bottom sides, a column for left/right.
func (g *Grid) InsertNextTo(sibling Widget, side Side) {
	c := g.findChild(sibling)
	if c == nil {
		panic("widget: InsertNextTo sibling is not a child of this grid")
	}

	switch side {
	case SideLeft:
		g.InsertColumn(c.attach[Horizontal].pos)
	case SideRight:
		g.InsertColumn(c.attach[Horizontal].pos + c.attach[Horizontal].span)
	case SideTop:
		g.InsertRow(c.attach[Vertical].pos)
	case SideBottom:
		g.InsertRow(c.attach[Vertical].pos + c.attach[Vertical].span)
	default:
		panic(fmt.Sprintf("widget: invalid side %d", side))
	}
}

// Orientation returns the growth axis used by Add.
func (g *Grid) Orientation() Orientation { return g.orientation }

// SetOrientation sets the growth axis used by Add.
func (g *Grid) SetOrientation(orient Orientation) {
	if g.orientation != orient {
		g.orientation = orient
		g.invalidate()
	}
}

// SetRowSpacing sets the gap between adjacent non-empty rows.
func (g *Grid) SetRowSpacing(spacing int) {
	if spacing < 0 {
		panic(fmt.Sprintf("widget: negative row spacing %d", spacing))
	}
	if g.linedata[Vertical].spacing != spacing {
		g.linedata[Vertical].spacing = spacing
		g.invalidate()
	}
}

// RowSpacing returns the gap between adjacent non-empty rows.
func (g *Grid) RowSpacing() int { return g.linedata[Vertical].spacing }

// SetColumnSpacing sets the gap between adjacent non-empty columns.
func (g *Grid) SetColumnSpacing(spacing int) {
	if spacing < 0 {
		panic(fmt.Sprintf("widget: negative column spacing %d", spacing))
	}
	if g.linedata[Horizontal].spacing != spacing {
		g.linedata[Horizontal].spacing = spacing
		g.invalidate()
	}
}

// ColumnSpacing returns the gap between adjacent non-empty columns.
func (g *Grid) ColumnSpacing() int { return g.linedata[Horizontal].spacing }

// SetRowHomogeneous forces all rows to the same height.
func (g *Grid) SetRowHomogeneous(homogeneous bool) {
	if g.linedata[Vertical].homogeneous != homogeneous {
		g.linedata[Vertical].homogeneous = homogeneous
		g.invalidate()
	}
}

// RowHomogeneous reports whether all rows share one height.
func (g *Grid) RowHomogeneous() bool { return g.linedata[Vertical].homogeneous }

// SetColumnHomogeneous forces all columns to the same width.
func (g *Grid) SetColumnHomogeneous(homogeneous bool) {
	if g.linedata[Horizontal].homogeneous != homogeneous {
		g.linedata[Horizontal].homogeneous = homogeneous
		g.invalidate()
	}
}

// ColumnHomogeneous reports whether all columns share one width.
func (g *Grid) ColumnHomogeneous() bool { return g.linedata[Horizontal].homogeneous }

// SetBaselineRow elects the row whose baseline becomes the grid's own
// reported baseline.
func (g *Grid) SetBaselineRow(row int) {
	if g.baselineRow != row {
		g.baselineRow = row
		g.invalidate()
	}
}

// BaselineRow returns the row that defines the grid's global baseline.
func (g *Grid) BaselineRow() int { return g.baselineRow }

// SetRowBaselinePosition sets how the baseline is positioned within the
// row when the row is allocated more space than it requested. An entry is
// created on first customization.
func (g *Grid) SetRowBaselinePosition(row int, pos BaselinePosition) {
	for i := range g.rowProps {
		if g.rowProps[i].row == row {
			if g.rowProps[i].baselinePosition != pos {
				g.rowProps[i].baselinePosition = pos
				g.invalidate()
			}
			return
		}
	}
	g.rowProps = append(g.rowProps, gridRowProperties{row: row, baselinePosition: pos})
	g.invalidate()
}

// RowBaselinePosition returns the baseline position for a row,
// defaulting to BaselineCenter when the row was never customized.
func (g *Grid) RowBaselinePosition(row int) BaselinePosition {
	for i := range g.rowProps {
		if g.rowProps[i].row == row {
			return g.rowProps[i].baselinePosition
		}
	}
	return BaselineCenter
}

// ComputeExpand aggregates the children: the grid wants to expand on an
// axis when any visible child does. An invisible grid never expands.
func (g *Grid) ComputeExpand(orient Orientation) bool {
	if !g.Visible() {
		return false
	}
	if orient == Horizontal && g.hExpandSet {
		return g.hExpand
	}
	if orient == Vertical && g.vExpandSet {
		return g.vExpand
	}
	for _, c := range g.children {
		if c.widget.Visible() && c.widget.ComputeExpand(orient) {
			return true
		}
	}
	return false
}
