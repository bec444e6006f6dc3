package search

import (
	"github.com/zyedidia/generic/mapset"

	"mazesearch/internal/maze"
)

// GreedyBestFirst always expands the frontier cell closest to a pellet by
// Manhattan distance, ignoring the cost walked so far.
func GreedyBestFirst(g *maze.Grid, opts ...Option) (*Result, error) {
	o := newOptions(opts)
	g.ResetSearchState()

	goals := NewGoalSet(g.Goals)
	if goals.Empty() {
		return &Result{}, ErrNoGoals
	}

	pq := newPriorityQueue()
	open := mapset.New[int]()
	closed := mapset.New[int]()
	expanded := 0

	start := g.Cell(g.Start)
	start.Heuristic = Admissible(g, g.Start, goals)
	pq.PushCell(g.Start, start.Heuristic)
	open.Put(g.Start)

	for pq.Len() > 0 {
		front := pq.PopCell()
		// stale copy of a cell that was re-pushed with a better heuristic
		if closed.Has(front) {
			continue
		}
		open.Remove(front)
		closed.Put(front)

		if g.IsWall(front) {
			continue
		}

		expanded++
		if g.IsPellet(front) {
			return finalize(g, front, expanded, o.Dots), nil
		}

		cur := g.Cell(front)
		for _, n := range g.Neighbors(front) {
			if closed.Has(n) {
				continue
			}
			h := Admissible(g, n, goals)
			nc := g.Cell(n)
			if !open.Has(n) || h < nc.Heuristic {
				nc.Heuristic = h
				nc.Cost = cur.Cost + 1
				nc.Parent = front
				open.Put(n)
				pq.PushCell(n, h)
			}
		}
	}

	return &Result{Expanded: expanded}, ErrNoPath
}
