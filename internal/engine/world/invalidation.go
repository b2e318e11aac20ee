package world

import (
	"log/slog"
	"slices"

	"github.com/OCharnyshevich/sidescroll/internal/engine/world/coords"
)

// Cell is a global grid coordinate.
type Cell struct {
	X, Y int
}

// Invalidations is everything the renderer must redraw since the last drain.
// Evicted chunks should be dropped before Loaded chunks are drawn.
type Invalidations struct {
	Evicted []int  // chunk indices that left the window
	Loaded  []int  // chunk indices to redraw completely
	Cells   []Cell // individual cells, outside the Loaded chunks
}

// Empty reports whether there is nothing to redraw.
func (inv Invalidations) Empty() bool {
	return len(inv.Evicted) == 0 && len(inv.Loaded) == 0 && len(inv.Cells) == 0
}

// invalidationQueue collects redraw events emitted by grid mutation.
type invalidationQueue struct {
	log     *slog.Logger
	warnAt  int
	warned  bool
	evicted []int
	chunks  map[int]struct{}
	cells   *workList[Cell]
}

func newInvalidationQueue(warnAt int, log *slog.Logger) *invalidationQueue {
	return &invalidationQueue{
		log:    log,
		warnAt: warnAt,
		chunks: make(map[int]struct{}),
		cells:  newWorkList[Cell](),
	}
}

func (q *invalidationQueue) markCell(c Cell) {
	if _, ok := q.chunks[coords.WorldToChunk(c.X)]; ok {
		return
	}
	if q.cells.Push(c) {
		q.checkBacklog()
	}
}

func (q *invalidationQueue) markChunk(chunk int) {
	q.chunks[chunk] = struct{}{}
	q.checkBacklog()
}

func (q *invalidationQueue) markEvicted(chunk int) {
	delete(q.chunks, chunk)
	q.evicted = append(q.evicted, chunk)
}

func (q *invalidationQueue) backlog() int {
	return q.cells.Len() + len(q.chunks) + len(q.evicted)
}

func (q *invalidationQueue) checkBacklog() {
	if q.warned || q.warnAt <= 0 {
		return
	}
	if n := q.backlog(); n > q.warnAt {
		q.warned = true
		q.log.Warn("render invalidation backlog is growing, renderer is falling behind", "pending", n, "threshold", q.warnAt)
	}
}

func (q *invalidationQueue) drain() Invalidations {
	inv := Invalidations{Evicted: q.evicted}
	for chunk := range q.chunks {
		inv.Loaded = append(inv.Loaded, chunk)
	}
	slices.Sort(inv.Loaded)

	for _, c := range q.cells.Take() {
		// A chunk may have been queued for a full redraw after the cell was marked.
		if _, ok := q.chunks[coords.WorldToChunk(c.X)]; !ok {
			inv.Cells = append(inv.Cells, c)
		}
	}

	q.evicted = nil
	clear(q.chunks)
	q.warned = false
	return inv
}
