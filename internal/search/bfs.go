package search

import (
	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/queue"

	"mazesearch/internal/maze"
)

// BreadthFirst searches for the pellet nearest to the start in steps.
func BreadthFirst(g *maze.Grid, opts ...Option) (*Result, error) {
	o := newOptions(opts)
	g.ResetSearchState()

	q := queue.New[int]()
	open := mapset.New[int]()
	closed := mapset.New[int]()
	expanded := 0

	q.Enqueue(g.Start)
	open.Put(g.Start)
	for !q.Empty() {
		front := q.Dequeue()
		open.Remove(front)
		closed.Put(front)

		if g.IsWall(front) {
			continue
		}

		expanded++
		if g.IsPellet(front) {
			return finalize(g, front, expanded, o.Dots), nil
		}

		for _, n := range g.Neighbors(front) {
			if open.Has(n) || closed.Has(n) {
				continue
			}
			open.Put(n)
			g.Cell(n).Parent = front
			g.Cell(n).Cost = g.Cell(front).Cost + 1
			q.Enqueue(n)
		}
	}

	return &Result{Expanded: expanded}, ErrNoPath
}
