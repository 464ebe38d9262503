package widget

import "sync"

// ============================================================================
// Scratch Line Pooling
// ============================================================================
//
// Every size request and size allocation rebuilds per-line solver state
// from scratch. The line arrays never escape the pass that created them,
// so they are pooled to keep repeated layout passes allocation-free.
//
// Usage:
//   lines := acquireLines(n)
//   ... solver passes ...
//   releaseLines(lines)

var linePool = sync.Pool{
	New: func() interface{} {
		return make([]gridLine, 0, 16)
	},
}

// acquireLines returns a zeroed line slice of length n.
// Caller must call releaseLines when the pass is done.
func acquireLines(n int) []gridLine {
	slice := linePool.Get().([]gridLine)

	if cap(slice) < n {
		// Hand the small slice back for someone else.
		linePool.Put(slice[:0])
		return make([]gridLine, n, n*2)
	}

	slice = slice[:n]
	for i := range slice {
		slice[i] = gridLine{}
	}
	return slice
}

// releaseLines returns a line slice to the pool.
// The slice must not be used after this call.
func releaseLines(slice []gridLine) {
	if slice == nil {
		return
	}

	// Cap what we retain so a single huge grid does not pin memory.
	if cap(slice) <= 1024 {
		linePool.Put(slice[:0])
	}
}
