package widget

// ToolItemGroup is a labeled, collapsible section of a tool palette. Its
// items are laid out homogeneously in as many rows as the available
// width allows, so the group's height depends on its width.
type ToolItemGroup struct {
	Base

	label     string
	collapsed bool

	items   []ToolItem
	palette *ToolPalette
}

const groupHeaderHeight = labelHeight + 2*labelPadding

// NewToolItemGroup creates an empty group with the given header label.
func NewToolItemGroup(label string) *ToolItemGroup {
	g := &ToolItemGroup{Base: NewBase(), label: label}
	g.SetRequestMode(HeightForWidth)
	return g
}

func (g *ToolItemGroup) Label() string         { return g.label }
func (g *ToolItemGroup) SetLabel(label string) { g.label = label }

// Collapsed reports whether only the header is shown.
func (g *ToolItemGroup) Collapsed() bool { return g.collapsed }

// SetCollapsed shows or hides the group's items. In an exclusive palette
// expanding one group collapses the others.
func (g *ToolItemGroup) SetCollapsed(collapsed bool) {
	if g.collapsed == collapsed {
		return
	}
	g.collapsed = collapsed
	if !collapsed && g.palette != nil && g.palette.Exclusive(g) {
		g.palette.collapseOthers(g)
	}
}

// Insert adds an item at the given position; a negative position
// appends.
func (g *ToolItemGroup) Insert(item ToolItem, pos int) {
	if item == nil {
		panic("widget: Insert with nil tool item")
	}
	if item.Parent() != nil {
		panic("widget: Insert of a tool item that already has a parent")
	}
	if pos < 0 || pos > len(g.items) {
		pos = len(g.items)
	}
	g.items = append(g.items, nil)
	copy(g.items[pos+1:], g.items[pos:])
	g.items[pos] = item
	item.SetParent(g)
	if g.palette != nil {
		g.palette.reconfigureItem(item)
	}
}

// RemoveItem detaches an item; a no-op if the item is not in this group.
func (g *ToolItemGroup) RemoveItem(item ToolItem) {
	for i, it := range g.items {
		if it == item {
			item.SetParent(nil)
			g.items = append(g.items[:i], g.items[i+1:]...)
			return
		}
	}
}

// Items returns the items in order.
func (g *ToolItemGroup) Items() []ToolItem {
	out := make([]ToolItem, len(g.items))
	copy(out, g.items)
	return out
}

// ItemPosition returns the index of item, or -1.
func (g *ToolItemGroup) ItemPosition(item ToolItem) int {
	for i, it := range g.items {
		if it == item {
			return i
		}
	}
	return -1
}

// itemSize is the homogeneous cell size: the largest natural width and
// height over the visible items.
func (g *ToolItemGroup) itemSize() (w, h int) {
	for _, item := range g.items {
		if !item.Visible() {
			continue
		}
		_, nw, _, _ := item.Measure(Horizontal, -1)
		_, nh, _, _ := item.Measure(Vertical, -1)
		w = maxInt(w, nw)
		h = maxInt(h, nh)
	}
	return w, h
}

// visibleItems counts the items that take up a cell.
func (g *ToolItemGroup) visibleItems() int {
	n := 0
	for _, item := range g.items {
		if item.Visible() {
			n++
		}
	}
	return n
}

// rowsForWidth is how many item rows the group needs at the given width.
func (g *ToolItemGroup) rowsForWidth(width int) (rows, perRow int) {
	n := g.visibleItems()
	if n == 0 || g.collapsed {
		return 0, 0
	}
	itemW, _ := g.itemSize()
	perRow = 1
	if itemW > 0 && width > itemW {
		perRow = width / itemW
	}
	rows = (n + perRow - 1) / perRow
	return rows, perRow
}

func (g *ToolItemGroup) Measure(orient Orientation, forSize int) (minimum, natural, minBaseline, natBaseline int) {
	itemW, itemH := g.itemSize()

	header := 0
	if g.label != "" {
		header = groupHeaderHeight
	}

	if orient == Horizontal {
		// Minimum is one item per row; natural is all items on one row.
		n := g.visibleItems()
		if g.collapsed {
			n = 0
		}
		w := maxInt(itemW, len(g.label)*labelCharWidth+2*labelPadding)
		return w, maxInt(w, n*itemW), NoBaseline, NoBaseline
	}

	if forSize >= 0 {
		rows, _ := g.rowsForWidth(forSize)
		h := header + rows*itemH
		return h, h, NoBaseline, NoBaseline
	}
	rows := 0
	if !g.collapsed && g.visibleItems() > 0 {
		rows = 1
	}
	h := header + rows*itemH
	return h, h, NoBaseline, NoBaseline
}

// Allocate lays the items out row-major inside the given rectangle,
// below the header.
func (g *ToolItemGroup) Allocate(rect Rect, baseline int) {
	g.Base.Allocate(rect, baseline)

	header := 0
	if g.label != "" {
		header = groupHeaderHeight
	}
	if g.collapsed {
		return
	}

	itemW, itemH := g.itemSize()
	_, perRow := g.rowsForWidth(rect.Width)
	if perRow == 0 {
		return
	}

	col, row := 0, 0
	for _, item := range g.items {
		if !item.Visible() {
			continue
		}
		item.Allocate(Rect{
			X:      rect.X + col*itemW,
			Y:      rect.Y + header + row*itemH,
			Width:  maxInt(1, itemW),
			Height: maxInt(1, itemH),
		}, NoBaseline)
		col++
		if col == perRow {
			col, row = 0, row+1
		}
	}
}

// ItemAt returns the item whose allocation contains the point, or nil.
func (g *ToolItemGroup) ItemAt(x, y int) ToolItem {
	for _, item := range g.items {
		if !item.Visible() {
			continue
		}
		r := item.Allocation()
		if x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height {
			return item
		}
	}
	return nil
}

// paletteGroupInfo carries the palette's per-group packing properties.
type paletteGroupInfo struct {
	group     *ToolItemGroup
	exclusive bool
	expand    bool
}

// ToolPalette stacks tool item groups along its orientation and pushes a
// shared toolbar style and icon size down to every item.
type ToolPalette struct {
	Base

	groups []*paletteGroupInfo

	orientation Orientation

	iconSize    int
	iconSizeSet bool

	style    ToolbarStyle
	styleSet bool
}

// NewToolPalette creates an empty vertical tool palette.
func NewToolPalette() *ToolPalette {
	p := &ToolPalette{
		Base:        NewBase(),
		orientation: Vertical,
		iconSize:    DefaultIconSize,
		style:       StyleIcons,
	}
	p.SetRequestMode(HeightForWidth)
	return p
}

func (p *ToolPalette) Orientation() Orientation { return p.orientation }

func (p *ToolPalette) SetOrientation(orient Orientation) {
	p.orientation = orient
	if orient == Vertical {
		p.SetRequestMode(HeightForWidth)
	} else {
		p.SetRequestMode(WidthForHeight)
	}
}

// AddGroup appends a group to the palette.
func (p *ToolPalette) AddGroup(group *ToolItemGroup) {
	if group == nil {
		panic("widget: AddGroup with nil group")
	}
	if group.Parent() != nil {
		panic("widget: AddGroup of a group that already has a parent")
	}
	p.groups = append(p.groups, &paletteGroupInfo{group: group})
	group.SetParent(p)
	group.palette = p
	for _, item := range group.items {
		p.reconfigureItem(item)
	}
}

// RemoveGroup detaches a group; a no-op if the group is not in the
// palette.
func (p *ToolPalette) RemoveGroup(group *ToolItemGroup) {
	for i, info := range p.groups {
		if info.group == group {
			group.SetParent(nil)
			group.palette = nil
			p.groups = append(p.groups[:i], p.groups[i+1:]...)
			return
		}
	}
}

// Groups returns the groups in order.
func (p *ToolPalette) Groups() []*ToolItemGroup {
	out := make([]*ToolItemGroup, len(p.groups))
	for i, info := range p.groups {
		out[i] = info.group
	}
	return out
}

func (p *ToolPalette) infoFor(group *ToolItemGroup) *paletteGroupInfo {
	for _, info := range p.groups {
		if info.group == group {
			return info
		}
	}
	return nil
}

// GroupPosition returns the index of group, or -1.
func (p *ToolPalette) GroupPosition(group *ToolItemGroup) int {
	for i, info := range p.groups {
		if info.group == group {
			return i
		}
	}
	return -1
}

// SetGroupPosition moves group to the given index. A position of -1
// moves it to the end.
func (p *ToolPalette) SetGroupPosition(group *ToolItemGroup, pos int) {
	old := p.GroupPosition(group)
	if old < 0 {
		return
	}
	if pos < 0 || pos >= len(p.groups) {
		pos = len(p.groups) - 1
	}
	if pos == old {
		return
	}
	info := p.groups[old]
	p.groups = append(p.groups[:old], p.groups[old+1:]...)
	p.groups = append(p.groups[:pos], append([]*paletteGroupInfo{info}, p.groups[pos:]...)...)
}

// Exclusive reports whether expanding group collapses the others.
func (p *ToolPalette) Exclusive(group *ToolItemGroup) bool {
	info := p.infoFor(group)
	return info != nil && info.exclusive
}

// SetExclusive marks group as exclusive. Making an expanded group
// exclusive immediately collapses the others.
func (p *ToolPalette) SetExclusive(group *ToolItemGroup, exclusive bool) {
	info := p.infoFor(group)
	if info == nil || info.exclusive == exclusive {
		return
	}
	info.exclusive = exclusive
	if exclusive && !group.collapsed {
		p.collapseOthers(group)
	}
}

// Expand reports whether group receives a share of leftover space.
func (p *ToolPalette) Expand(group *ToolItemGroup) bool {
	info := p.infoFor(group)
	return info != nil && info.expand
}

// SetExpand controls whether group receives a share of leftover space.
func (p *ToolPalette) SetExpand(group *ToolItemGroup, expand bool) {
	if info := p.infoFor(group); info != nil {
		info.expand = expand
	}
}

func (p *ToolPalette) collapseOthers(group *ToolItemGroup) {
	for _, info := range p.groups {
		if info.group != group {
			info.group.collapsed = true
		}
	}
}

// IconSize returns the icon size in effect.
func (p *ToolPalette) IconSize() int { return p.iconSize }

// SetIconSize overrides the icon size for every item in the palette.
func (p *ToolPalette) SetIconSize(size int) {
	if size <= 0 {
		panic("widget: SetIconSize with non-positive size")
	}
	p.iconSize = size
	p.iconSizeSet = true
	p.reconfigure()
}

// UnsetIconSize reverts to the default icon size.
func (p *ToolPalette) UnsetIconSize() {
	p.iconSize = DefaultIconSize
	p.iconSizeSet = false
	p.reconfigure()
}

// Style returns the toolbar style in effect.
func (p *ToolPalette) Style() ToolbarStyle { return p.style }

// SetStyle overrides the toolbar style for every item in the palette.
func (p *ToolPalette) SetStyle(style ToolbarStyle) {
	p.style = style
	p.styleSet = true
	p.reconfigure()
}

// UnsetStyle reverts to the default style.
func (p *ToolPalette) UnsetStyle() {
	p.style = StyleIcons
	p.styleSet = false
	p.reconfigure()
}

func (p *ToolPalette) reconfigure() {
	for _, info := range p.groups {
		for _, item := range info.group.items {
			p.reconfigureItem(item)
		}
	}
}

func (p *ToolPalette) reconfigureItem(item ToolItem) {
	item.Reconfigure(p.style, p.iconSize)
}

func (p *ToolPalette) Measure(orient Orientation, forSize int) (minimum, natural, minBaseline, natBaseline int) {
	// Groups stack along the palette's orientation; across it the
	// palette is as wide as its widest group.
	if orient != p.orientation {
		for _, info := range p.groups {
			if !info.group.Visible() {
				continue
			}
			gmin, gnat, _, _ := info.group.Measure(orient, -1)
			minimum = maxInt(minimum, gmin)
			natural = maxInt(natural, gnat)
		}
		return minimum, natural, NoBaseline, NoBaseline
	}

	for _, info := range p.groups {
		if !info.group.Visible() {
			continue
		}
		gmin, gnat, _, _ := info.group.Measure(orient, forSize)
		minimum += gmin
		natural += gnat
	}
	return minimum, natural, NoBaseline, NoBaseline
}

// Allocate stacks the groups, giving extra space first to natural
// growth and then evenly to groups marked expand.
func (p *ToolPalette) Allocate(rect Rect, baseline int) {
	p.Base.Allocate(rect, baseline)

	across := rect.Width
	along := rect.Height
	if p.orientation == Horizontal {
		across, along = rect.Height, rect.Width
	}

	var visible []*paletteGroupInfo
	sizes := make([]RequestedSize, 0, len(p.groups))
	total := 0
	for _, info := range p.groups {
		if !info.group.Visible() {
			continue
		}
		gmin, gnat, _, _ := info.group.Measure(p.orientation, across)
		visible = append(visible, info)
		sizes = append(sizes, RequestedSize{Minimum: gmin, Natural: gnat})
		total += gmin
	}
	if len(visible) == 0 {
		return
	}

	extra := DistributeNaturalAllocation(maxInt(0, along-total), sizes)

	expanding := 0
	for _, info := range visible {
		if info.expand {
			expanding++
		}
	}
	if expanding > 0 {
		share := extra / expanding
		rest := extra % expanding
		for i, info := range visible {
			if !info.expand {
				continue
			}
			sizes[i].Minimum += share
			if rest > 0 {
				sizes[i].Minimum++
				rest--
			}
		}
	}

	offset := 0
	for i, info := range visible {
		size := sizes[i].Minimum
		var r Rect
		if p.orientation == Vertical {
			r = Rect{X: rect.X, Y: rect.Y + offset, Width: maxInt(1, across), Height: maxInt(1, size)}
		} else {
			r = Rect{X: rect.X + offset, Y: rect.Y, Width: maxInt(1, size), Height: maxInt(1, across)}
		}
		info.group.Allocate(r, NoBaseline)
		offset += size
	}
}

// DropGroup returns the group whose allocation contains the point, or
// nil.
func (p *ToolPalette) DropGroup(x, y int) *ToolItemGroup {
	for _, info := range p.groups {
		if !info.group.Visible() {
			continue
		}
		r := info.group.Allocation()
		if x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height {
			return info.group
		}
	}
	return nil
}

// DropItem returns the item whose allocation contains the point, or nil.
func (p *ToolPalette) DropItem(x, y int) ToolItem {
	group := p.DropGroup(x, y)
	if group == nil {
		return nil
	}
	return group.ItemAt(x, y)
}
