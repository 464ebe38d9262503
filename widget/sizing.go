package widget

import "sort"

// RequestedSize is one entry in a natural-size distribution: a minimum
// that is already granted and a natural size the entry would like to
// reach. DistributeNaturalAllocation raises Minimum in place.
type RequestedSize struct {
	Minimum int
	Natural int
	Data    interface{}
}

// DistributeNaturalAllocation spreads extra space over the entries,
// growing each entry's Minimum toward its Natural. Entries furthest from
// their natural size are filled first, but never past it, so the result
// is the usual "give everyone up to natural, proportionally, then stop"
// flexible-box distribution. Returns the space left over once every entry
// has reached its natural size.
func DistributeNaturalAllocation(extraSpace int, sizes []RequestedSize) int {
	if extraSpace <= 0 || len(sizes) == 0 {
		if extraSpace < 0 {
			return 0
		}
		return extraSpace
	}

	// Process entries in order of descending gap. Ties go to the later
	// entry so the walk below, which runs back to front, sees them in
	// index order.
	spreading := make([]int, len(sizes))
	for i := range spreading {
		spreading[i] = i
	}
	gap := func(i int) int {
		g := sizes[i].Natural - sizes[i].Minimum
		if g < 0 {
			g = 0
		}
		return g
	}
	sort.Slice(spreading, func(a, b int) bool {
		ga, gb := gap(spreading[a]), gap(spreading[b])
		if ga != gb {
			return ga > gb
		}
		return spreading[a] > spreading[b]
	})

	// Walk from the smallest gap up. Each entry gets an equal share of
	// what remains, clamped to its own gap; reducing the pool as we go
	// keeps the shares equal among the entries still in play.
	for i := len(sizes) - 1; extraSpace > 0 && i >= 0; i-- {
		idx := spreading[i]
		glue := (extraSpace + i) / (i + 1)
		g := gap(idx)
		extra := glue
		if g < extra {
			extra = g
		}
		sizes[idx].Minimum += extra
		extraSpace -= extra
	}

	return extraSpace
}
