package search

import (
	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/stack"

	"mazesearch/internal/maze"
)

// DepthFirst searches for any pellet, diving along the most recently
// discovered cell. A cell is marked traversed when it is pushed, so it is
// pushed at most once; there is no separate open and closed bookkeeping.
func DepthFirst(g *maze.Grid, opts ...Option) (*Result, error) {
	o := newOptions(opts)
	g.ResetSearchState()

	s := stack.New[int]()
	traversed := mapset.New[int]()
	expanded := 0

	s.Push(g.Start)
	traversed.Put(g.Start)
	for s.Size() > 0 {
		front := s.Pop()

		if g.IsWall(front) {
			continue
		}

		expanded++
		if g.IsPellet(front) {
			return finalize(g, front, expanded, o.Dots), nil
		}

		for _, n := range g.Neighbors(front) {
			if traversed.Has(n) {
				continue
			}
			traversed.Put(n)
			g.Cell(n).Parent = front
			g.Cell(n).Cost = g.Cell(front).Cost + 1
			s.Push(n)
		}
	}

	return &Result{Expanded: expanded}, ErrNoPath
}
