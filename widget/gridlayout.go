package widget

import "fmt"

// This file implements the grid's size negotiation: a two-pass
// (minimum/natural) constraint solver over the rows and columns spanned
// by the grid's children. Each request or allocation rebuilds transient
// per-line state from scratch; nothing here survives a pass.

var gridDebug = false // Set to true for solver trace output

func gridLog(format string, args ...interface{}) {
	if gridDebug {
		fmt.Printf(format+"\n", args...)
	}
}

// gridLine is the state of a single row or column during one pass.
type gridLine struct {
	minimum int
	natural int

	// Baseline split of minimum/natural. NoBaseline when no child on
	// this line reported baseline-aware sizing.
	minimumAbove int
	minimumBelow int
	naturalAbove int
	naturalBelow int

	position          int
	allocation        int
	allocatedBaseline int

	needExpand bool
	expand     bool
	empty      bool
}

// gridLines is the working array for one axis. Occupied line indexes form
// the half-open interval [min, max); lines[i] is the line at index min+i.
type gridLines struct {
	lines []gridLine
	min   int
	max   int
}

// at returns the line at absolute index pos. Consulting a line outside
// the counted range means the line index builder and a later stage have
// gone out of sync, which is a bug, not an input error.
func (ls *gridLines) at(pos int) *gridLine {
	if pos < ls.min || pos >= ls.max {
		panic(fmt.Sprintf("widget: line %d outside computed range [%d,%d)", pos, ls.min, ls.max))
	}
	return &ls.lines[pos-ls.min]
}

// gridRequest is the scratch state of one request/allocate pass.
type gridRequest struct {
	grid  *Grid
	lines [2]gridLines
}

// countLines determines the occupied [min, max) interval for both axes.
func (req *gridRequest) countLines() {
	const intMax = int(^uint(0) >> 1)

	var min, max [2]int
	min[0], min[1] = intMax, intMax
	max[0], max[1] = -intMax-1, -intMax-1

	for _, child := range req.grid.children {
		for _, orient := range []Orientation{Horizontal, Vertical} {
			attach := child.attach[orient]
			if attach.pos < min[orient] {
				min[orient] = attach.pos
			}
			if attach.pos+attach.span > max[orient] {
				max[orient] = attach.pos + attach.span
			}
		}
	}

	req.lines[Horizontal].min = min[Horizontal]
	req.lines[Horizontal].max = max[Horizontal]
	req.lines[Vertical].min = min[Vertical]
	req.lines[Vertical].max = max[Vertical]
}

// requestInit zeroes the lines of one axis and marks a line expanding
// when a non-spanning child on it wants to expand.
func (req *gridRequest) requestInit(orient Orientation) {
	lines := &req.lines[orient]

	for i := range lines.lines {
		lines.lines[i].minimum = 0
		lines.lines[i].natural = 0
		lines.lines[i].minimumAbove = NoBaseline
		lines.lines[i].minimumBelow = NoBaseline
		lines.lines[i].naturalAbove = NoBaseline
		lines.lines[i].naturalBelow = NoBaseline
		lines.lines[i].expand = false
		lines.lines[i].empty = true
	}

	for _, child := range req.grid.children {
		attach := child.attach[orient]
		if attach.span == 1 && child.widget.ComputeExpand(orient) {
			lines.at(attach.pos).expand = true
		}
	}
}

// allocationForChild sums the allocations of the lines spanned by the
// child, plus the spacing between them.
func (req *gridRequest) allocationForChild(child *gridChild, orient Orientation) int {
	linedata := &req.grid.linedata[orient]
	lines := &req.lines[orient]
	attach := child.attach[orient]

	size := (attach.span - 1) * linedata.spacing
	for i := 0; i < attach.span; i++ {
		size += lines.at(attach.pos + i).allocation
	}
	return size
}

// requestForChild queries a child's preferred size on the axis. When
// contextual, the child's already-allocated extent on the opposite axis
// is passed as the for-size hint. Baselines are only meaningful for the
// vertical axis.
func (req *gridRequest) requestForChild(child *gridChild, orient Orientation, contextual bool) (minimum, natural, minBaseline, natBaseline int) {
	forSize := -1
	if contextual {
		forSize = req.allocationForChild(child, orient.opposite())
	}
	minimum, natural, minBaseline, natBaseline = child.widget.Measure(orient, forSize)
	if orient == Horizontal {
		minBaseline, natBaseline = NoBaseline, NoBaseline
	}
	return minimum, natural, minBaseline, natBaseline
}

// requestNonSpanning folds every visible single-span child into its
// line's minimum/natural, accumulating baseline splits separately, then
// reconciles the splits with each line's baseline position policy.
func (req *gridRequest) requestNonSpanning(orient Orientation, contextual bool) {
	lines := &req.lines[orient]

	for _, child := range req.grid.children {
		if !child.widget.Visible() {
			continue
		}
		attach := child.attach[orient]
		if attach.span != 1 {
			continue
		}

		minimum, natural, minBaseline, natBaseline := req.requestForChild(child, orient, contextual)

		line := lines.at(attach.pos)
		if minBaseline != NoBaseline {
			line.minimumAbove = maxInt(line.minimumAbove, minBaseline)
			line.minimumBelow = maxInt(line.minimumBelow, minimum-minBaseline)
			line.naturalAbove = maxInt(line.naturalAbove, natBaseline)
			line.naturalBelow = maxInt(line.naturalBelow, natural-natBaseline)
		} else {
			line.minimum = maxInt(line.minimum, minimum)
			line.natural = maxInt(line.natural, natural)
		}
	}

	for i := range lines.lines {
		line := &lines.lines[i]
		if line.minimumAbove == NoBaseline {
			continue
		}

		line.minimum = maxInt(line.minimum, line.minimumAbove+line.minimumBelow)
		line.natural = maxInt(line.natural, line.naturalAbove+line.naturalBelow)

		// Distribute the slack between above and below according to the
		// row's baseline position.
		switch req.grid.RowBaselinePosition(i + lines.min) {
		case BaselineTop:
			line.minimumBelow += line.minimum - (line.minimumAbove + line.minimumBelow)
			line.naturalBelow += line.natural - (line.naturalAbove + line.naturalBelow)
		case BaselineCenter:
			line.minimumAbove += (line.minimum - (line.minimumAbove + line.minimumBelow)) / 2
			line.minimumBelow += (line.minimum - (line.minimumAbove + line.minimumBelow)) / 2
			line.naturalAbove += (line.natural - (line.naturalAbove + line.naturalBelow)) / 2
			line.naturalBelow += (line.natural - (line.naturalAbove + line.naturalBelow)) / 2
		case BaselineBottom:
			line.minimumAbove += line.minimum - (line.minimumAbove + line.minimumBelow)
			line.naturalAbove += line.natural - (line.naturalAbove + line.naturalBelow)
		}
	}
}

// requestHomogeneous forces every line of a homogeneous axis to the
// largest minimum and natural found on that axis.
func (req *gridRequest) requestHomogeneous(orient Orientation) {
	linedata := &req.grid.linedata[orient]
	lines := &req.lines[orient]

	if !linedata.homogeneous {
		return
	}

	minimum, natural := 0, 0
	for i := range lines.lines {
		minimum = maxInt(minimum, lines.lines[i].minimum)
		natural = maxInt(natural, lines.lines[i].natural)
	}
	for i := range lines.lines {
		lines.lines[i].minimum = minimum
		lines.lines[i].natural = natural
	}
}

// requestSpanning raises covered lines until each spanning child's own
// request fits into the lines it covers. Requires the expand flags set by
// requestInit. Baselines are ignored for spanning children.
func (req *gridRequest) requestSpanning(orient Orientation, contextual bool) {
	linedata := &req.grid.linedata[orient]
	lines := &req.lines[orient]

	for _, child := range req.grid.children {
		if !child.widget.Visible() {
			continue
		}
		attach := child.attach[orient]
		if attach.span == 1 {
			continue
		}

		minimum, natural, _, _ := req.requestForChild(child, orient, contextual)

		spanMinimum := (attach.span - 1) * linedata.spacing
		spanNatural := (attach.span - 1) * linedata.spacing
		spanExpand := 0
		forceExpand := false
		for i := 0; i < attach.span; i++ {
			line := lines.at(attach.pos + i)
			spanMinimum += line.minimum
			spanNatural += line.natural
			if line.expand {
				spanExpand++
			}
		}
		if spanExpand == 0 {
			spanExpand = attach.span
			forceExpand = true
		}

		// If the child needs more than its covered lines currently sum
		// to, inject the shortfall into the covered lines, favoring
		// expandable ones. On a homogeneous axis keep the lines even
		// instead, since they will be forced equal afterwards anyway.
		if spanMinimum < minimum {
			if linedata.homogeneous {
				total := minimum - (attach.span-1)*linedata.spacing
				m := total / attach.span
				if total%attach.span != 0 {
					m++
				}
				for i := 0; i < attach.span; i++ {
					line := lines.at(attach.pos + i)
					line.minimum = maxInt(line.minimum, m)
				}
			} else {
				extra := minimum - spanMinimum
				expand := spanExpand
				for i := 0; i < attach.span; i++ {
					line := lines.at(attach.pos + i)
					if forceExpand || line.expand {
						lineExtra := extra / expand
						line.minimum += lineExtra
						extra -= lineExtra
						expand--
					}
				}
			}
		}

		if spanNatural < natural {
			if linedata.homogeneous {
				total := natural - (attach.span-1)*linedata.spacing
				n := total / attach.span
				if total%attach.span != 0 {
					n++
				}
				for i := 0; i < attach.span; i++ {
					line := lines.at(attach.pos + i)
					line.natural = maxInt(line.natural, n)
				}
			} else {
				extra := natural - spanNatural
				expand := spanExpand
				for i := 0; i < attach.span; i++ {
					line := lines.at(attach.pos + i)
					if forceExpand || line.expand {
						lineExtra := extra / expand
						line.natural += lineExtra
						extra -= lineExtra
						expand--
					}
				}
			}
		}
	}
}

// requestComputeExpand recomputes the empty and expand flags for lines in
// [min, max) and counts non-empty and expanding lines. A line is
// non-empty when a visible child occupies or covers it.
func (req *gridRequest) requestComputeExpand(orient Orientation, min, max int) (nonemptyLines, expandLines int) {
	lines := &req.lines[orient]

	min = maxInt(min, lines.min)
	max = minInt(max, lines.max)

	for i := min - lines.min; i < max-lines.min; i++ {
		lines.lines[i].needExpand = false
		lines.lines[i].expand = false
		lines.lines[i].empty = true
	}

	for _, child := range req.grid.children {
		if !child.widget.Visible() {
			continue
		}
		attach := child.attach[orient]
		if attach.span != 1 {
			continue
		}
		if attach.pos >= max || attach.pos < min {
			continue
		}

		line := lines.at(attach.pos)
		line.empty = false
		if child.widget.ComputeExpand(orient) {
			line.expand = true
		}
	}

	for _, child := range req.grid.children {
		if !child.widget.Visible() {
			continue
		}
		attach := child.attach[orient]
		if attach.span == 1 {
			continue
		}

		hasExpand := false
		for i := 0; i < attach.span; i++ {
			line := lines.at(attach.pos + i)
			if line.expand {
				hasExpand = true
			}
			if attach.pos+i >= max || attach.pos+i < min {
				continue
			}
			line.empty = false
		}

		if !hasExpand && child.widget.ComputeExpand(orient) {
			for i := 0; i < attach.span; i++ {
				if attach.pos+i >= max || attach.pos+i < min {
					continue
				}
				lines.at(attach.pos + i).needExpand = true
			}
		}
	}

	empty, expand := 0, 0
	for i := min - lines.min; i < max-lines.min; i++ {
		line := &lines.lines[i]
		if line.needExpand {
			line.expand = true
		}
		if line.empty {
			empty++
		}
		if line.expand {
			expand++
		}
	}

	return max - min - empty, expand
}

// requestSum adds up line minimums/naturals plus the spacing between
// adjacent non-empty lines. On the vertical axis it also reports the
// offset of the designated baseline row as the grid's own baseline.
func (req *gridRequest) requestSum(orient Orientation) (minimum, natural, minBaseline, natBaseline int) {
	nonempty, _ := req.requestComputeExpand(orient, req.lines[orient].min, req.lines[orient].max)

	linedata := &req.grid.linedata[orient]
	lines := &req.lines[orient]

	minBaseline, natBaseline = NoBaseline, NoBaseline

	min, nat := 0, 0
	for i := range lines.lines {
		if orient == Vertical &&
			lines.min+i == req.grid.baselineRow &&
			lines.lines[i].minimumAbove != NoBaseline {
			minBaseline = min + lines.lines[i].minimumAbove
			natBaseline = nat + lines.lines[i].naturalAbove
		}

		min += lines.lines[i].minimum
		nat += lines.lines[i].natural

		if !lines.lines[i].empty {
			min += linedata.spacing
			nat += linedata.spacing
		}
	}

	// Remove the trailing spacing, if any was applied.
	if nonempty > 0 {
		min -= linedata.spacing
		nat -= linedata.spacing
	}

	return min, nat, minBaseline, natBaseline
}

// requestRun computes the minimum and natural fields of one axis's
// lines. Homogeneity is asserted again after the spanning pass because
// span-driven growth may have raised individual lines.
func (req *gridRequest) requestRun(orient Orientation, contextual bool) {
	req.requestInit(orient)
	req.requestNonSpanning(orient, contextual)
	req.requestHomogeneous(orient)
	req.requestSpanning(orient, contextual)
	req.requestHomogeneous(orient)
}

// distributeNonHomogeneous fills the allocation fields of the non-empty
// lines in [min, max): every line starts at its minimum, grows toward its
// natural from the available size, and expanding lines split whatever is
// left, remainder to the earliest lines.
func distributeNonHomogeneous(lines *gridLines, nonempty, expand, size, min, max int) {
	if nonempty == 0 {
		return
	}

	sizes := make([]RequestedSize, 0, nonempty)
	for i := min - lines.min; i < max-lines.min; i++ {
		line := &lines.lines[i]
		if line.empty {
			continue
		}
		size -= line.minimum
		sizes = append(sizes, RequestedSize{
			Minimum: line.minimum,
			Natural: line.natural,
			Data:    line,
		})
	}

	size = DistributeNaturalAllocation(maxInt(0, size), sizes)

	extra, rest := 0, 0
	if expand > 0 {
		extra = size / expand
		rest = size % expand
	}

	j := 0
	for i := min - lines.min; i < max-lines.min; i++ {
		line := &lines.lines[i]
		if line.empty {
			continue
		}
		if sizes[j].Data != line {
			panic("widget: line distribution out of sync")
		}

		line.allocation = sizes[j].Minimum
		if line.expand {
			line.allocation += extra
			if rest > 0 {
				line.allocation++
				rest--
			}
		}
		j++
	}
}

// requestAllocate distributes totalSize over the lines of one axis,
// filling their allocation fields. Requires minimum/natural to be set.
// On the vertical axis, a known allocated baseline splits the rows into
// an above-baseline and an at-or-after partition that are distributed
// independently, so that the baseline row lands exactly on the baseline.
func (req *gridRequest) requestAllocate(orient Orientation, totalSize int) {
	linedata := &req.grid.linedata[orient]
	lines := &req.lines[orient]

	baseline := req.grid.AllocatedBaseline()

	var nonempty1, nonempty2, expand1, expand2 int
	var size1, size2 int
	var split int

	if orient == Vertical && baseline != NoBaseline &&
		req.grid.baselineRow >= lines.min && req.grid.baselineRow < lines.max &&
		lines.at(req.grid.baselineRow).minimumAbove != NoBaseline {
		split = req.grid.baselineRow
		splitPos := baseline - lines.at(req.grid.baselineRow).minimumAbove
		nonempty1, expand1 = req.requestComputeExpand(orient, lines.min, split)
		nonempty2, expand2 = req.requestComputeExpand(orient, split, lines.max)

		if nonempty2 > 0 {
			size1 = splitPos - nonempty1*linedata.spacing
			size2 = (totalSize - splitPos) - (nonempty2-1)*linedata.spacing
		} else {
			size1 = totalSize - (nonempty1-1)*linedata.spacing
			size2 = 0
		}
	} else {
		nonempty1, expand1 = req.requestComputeExpand(orient, lines.min, lines.max)
		nonempty2, expand2 = 0, 0
		split = lines.max

		size1 = totalSize - (nonempty1-1)*linedata.spacing
		size2 = 0
	}

	if nonempty1 == 0 && nonempty2 == 0 {
		return
	}

	if linedata.homogeneous {
		extra, rest := 0, 0
		if nonempty1 > 0 {
			extra = size1 / nonempty1
			rest = size1 % nonempty1
		}
		if nonempty2 > 0 {
			extra2 := size2 / nonempty2
			// Favor equal line sizes across the whole axis.
			if extra2 < extra || nonempty1 == 0 {
				extra = extra2
				rest = size2 % nonempty2
			}
		}

		for i := range lines.lines {
			line := &lines.lines[i]
			if line.empty {
				continue
			}
			line.allocation = extra
			if rest > 0 {
				line.allocation++
				rest--
			}
		}
	} else {
		distributeNonHomogeneous(lines, nonempty1, expand1, size1, lines.min, split)
		distributeNonHomogeneous(lines, nonempty2, expand2, size2, split, lines.max)
	}

	// Fix up each line's baseline offset against its final allocation.
	for i := range lines.lines {
		line := &lines.lines[i]
		if line.empty {
			continue
		}

		if line.minimumAbove != NoBaseline {
			// The baseline row itself is overridden in requestPosition
			// once the absolute positions are known.
			switch req.grid.RowBaselinePosition(i + lines.min) {
			case BaselineTop:
				line.allocatedBaseline = line.minimumAbove
			case BaselineCenter:
				line.allocatedBaseline = line.minimumAbove +
					(line.allocation-(line.minimumAbove+line.minimumBelow))/2
			case BaselineBottom:
				line.allocatedBaseline = line.allocation - line.minimumBelow
			}
		} else {
			line.allocatedBaseline = NoBaseline
		}
	}
}

// requestPosition computes each line's position from the allocations and
// spacing. When the grid itself was allocated a baseline, the running
// position is reset at the baseline row so its content lines up at that
// exact offset, and the earlier rows are shifted by the same delta.
func (req *gridRequest) requestPosition(orient Orientation) {
	linedata := &req.grid.linedata[orient]
	lines := &req.lines[orient]

	allocatedBaseline := req.grid.AllocatedBaseline()

	position := 0
	for i := range lines.lines {
		line := &lines.lines[i]

		atBaselineRow := orient == Vertical &&
			lines.min+i == req.grid.baselineRow &&
			allocatedBaseline != NoBaseline &&
			line.minimumAbove != NoBaseline

		if atBaselineRow {
			oldPosition := position
			position = allocatedBaseline - line.minimumAbove

			// Back-patch the rows already positioned.
			for j := 0; j < i; j++ {
				if !lines.lines[j].empty {
					lines.lines[j].position += position - oldPosition
				}
			}
		}

		if !line.empty {
			line.position = position
			position += line.allocation + linedata.spacing

			if atBaselineRow {
				line.allocatedBaseline = allocatedBaseline - line.position
			}
		}
	}
}

// allocateChild resolves one axis of a child's rectangle: the position of
// its first line, the sum of its spanned allocations plus spacing, and
// the baseline (single-span children only; spans get none).
func (req *gridRequest) allocateChild(child *gridChild, orient Orientation) (position, size, baseline int) {
	linedata := &req.grid.linedata[orient]
	lines := &req.lines[orient]
	attach := child.attach[orient]

	position = lines.at(attach.pos).position
	if attach.span == 1 {
		baseline = lines.at(attach.pos).allocatedBaseline
	} else {
		baseline = NoBaseline
	}

	size = (attach.span - 1) * linedata.spacing
	for i := 0; i < attach.span; i++ {
		size += lines.at(attach.pos + i).allocation
	}
	return position, size, baseline
}

// allocateChildren derives every visible child's rectangle from the
// positioned lines and hands it down. Right-to-left direction mirrors the
// horizontal axis only.
func (req *gridRequest) allocateChildren() {
	allocation := req.grid.Allocation()

	for _, child := range req.grid.children {
		if !child.widget.Visible() {
			continue
		}

		x, width, _ := req.allocateChild(child, Horizontal)
		y, height, baseline := req.allocateChild(child, Vertical)

		rect := Rect{
			X:      allocation.X + x,
			Y:      allocation.Y + y,
			Width:  maxInt(1, width),
			Height: maxInt(1, height),
		}

		if req.grid.Direction() == TextDirRTL {
			rect.X = allocation.X + allocation.Width - (rect.X - allocation.X) - rect.Width
		}

		child.widget.Allocate(rect, baseline)
	}
}

// size computes the context-free preferred size for one axis.
func (g *Grid) size(orient Orientation) (minimum, natural, minBaseline, natBaseline int) {
	minBaseline, natBaseline = NoBaseline, NoBaseline
	if len(g.children) == 0 {
		return 0, 0, minBaseline, natBaseline
	}

	req := gridRequest{grid: g}
	req.countLines()
	lines := &req.lines[orient]
	lines.lines = acquireLines(lines.max - lines.min)
	defer releaseLines(lines.lines)

	req.requestRun(orient, false)
	return req.requestSum(orient)
}

// sizeForSize computes the preferred size for one axis given a concrete
// extent on the opposite axis: the opposite axis is solved and allocated
// first, then this axis is solved contextually.
func (g *Grid) sizeForSize(orient Orientation, forSize int) (minimum, natural, minBaseline, natBaseline int) {
	minBaseline, natBaseline = NoBaseline, NoBaseline
	if len(g.children) == 0 {
		return 0, 0, minBaseline, natBaseline
	}

	req := gridRequest{grid: g}
	req.countLines()
	for i := range req.lines {
		req.lines[i].lines = acquireLines(req.lines[i].max - req.lines[i].min)
		defer releaseLines(req.lines[i].lines)
	}

	opposite := orient.opposite()
	req.requestRun(opposite, false)
	minSize, _, _, _ := req.requestSum(opposite)
	req.requestAllocate(opposite, maxInt(forSize, minSize))

	req.requestRun(orient, true)
	return req.requestSum(orient)
}

// Measure implements the Measurable contract for the grid itself. The
// contextual path is taken when forSize is given and the grid's request
// mode makes this axis depend on the other one.
func (g *Grid) Measure(orient Orientation, forSize int) (minimum, natural, minBaseline, natBaseline int) {
	contextual := forSize >= 0 &&
		((orient == Vertical && g.RequestMode() == HeightForWidth) ||
			(orient == Horizontal && g.RequestMode() == WidthForHeight))

	if contextual {
		minimum, natural, minBaseline, natBaseline = g.sizeForSize(orient, forSize)
	} else {
		minimum, natural, minBaseline, natBaseline = g.size(orient)
	}
	if orient == Horizontal {
		minBaseline, natBaseline = NoBaseline, NoBaseline
	}
	gridLog("grid measure %s for %d: min=%d nat=%d", orient, forSize, minimum, natural)
	return minimum, natural, minBaseline, natBaseline
}

// Allocate assigns the grid its final rectangle and baseline, solves both
// axes against the concrete sizes and places every child.
func (g *Grid) Allocate(rect Rect, baseline int) {
	g.Base.Allocate(rect, baseline)

	if len(g.children) == 0 {
		return
	}

	req := gridRequest{grid: g}
	req.countLines()
	for i := range req.lines {
		req.lines[i].lines = acquireLines(req.lines[i].max - req.lines[i].min)
		defer releaseLines(req.lines[i].lines)
	}

	// The context-dependent axis is solved second, against the other
	// axis's concrete allocation.
	orient := Vertical
	if g.RequestMode() == WidthForHeight {
		orient = Horizontal
	}
	opposite := orient.opposite()

	req.requestRun(opposite, false)
	req.requestAllocate(opposite, rect.size(opposite))
	req.requestRun(orient, true)
	req.requestAllocate(orient, rect.size(orient))

	req.requestPosition(Horizontal)
	req.requestPosition(Vertical)

	req.allocateChildren()
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
