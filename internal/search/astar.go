package search

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"mazesearch/internal/maze"
)

type heuristicFunc func(cell int, goals *GoalSet) int

// phase is one single-target A* run from origin toward the nearest remaining
// pellet. A new phase starts every time a pellet is consumed.
type phase struct {
	origin   int
	frontier *PriorityQueue
	open     mapset.Set[int]
	closed   mapset.Set[int]
}

func newPhase(g *maze.Grid, origin int) *phase {
	p := &phase{
		origin:   origin,
		frontier: newPriorityQueue(),
		open:     mapset.New[int](),
		closed:   mapset.New[int](),
	}
	p.frontier.PushCell(origin, g.Cell(origin).Priority())
	p.open.Put(origin)
	return p
}

// MultiGoalAStar tours every pellet of the grid. mode is AStar for the
// admissible heuristic or Suboptimal for the sampled one.
//
// Each phase is an optimal search to the nearest remaining pellet (with the
// admissible heuristic), but the visiting order is greedy, so the tour as a
// whole is not the shortest one.
func MultiGoalAStar(g *maze.Grid, mode Algorithm, opts ...Option) (*Result, error) {
	o := newOptions(opts)

	var h heuristicFunc
	switch mode {
	case AStar:
		h = func(cell int, goals *GoalSet) int { return Admissible(g, cell, goals) }
	case Suboptimal:
		h = func(cell int, goals *GoalSet) int { return Inadmissible(g, cell, goals, o.Rand) }
	default:
		return nil, fmt.Errorf("%q is not a multi-goal mode: %w", mode, ErrUnknownAlgorithm)
	}

	g.ResetSearchState()
	goals := NewGoalSet(g.Goals)
	if goals.Empty() {
		return &Result{}, ErrNoGoals
	}

	marker := newOrderMarker()
	res := &Result{Path: []int{g.Start}}
	p := newPhase(g, g.Start)

	for p.frontier.Len() > 0 {
		front := p.frontier.PopCell()
		// duplicates are pruned lazily
		if p.closed.Has(front) {
			continue
		}
		p.open.Remove(front)
		p.closed.Put(front)

		if g.IsWall(front) {
			continue
		}

		res.Expanded++
		cur := g.Cell(front)

		if goals.Has(front) {
			goals.Remove(front)
			symbol := marker.Next()
			cur.Terrain = symbol
			res.Order = append(res.Order, Visit{Cell: front, Symbol: symbol})

			// a later phase may walk back over these cells and relink them,
			// so the segment is taken now
			segment := reconstruct(g, front, p.origin)
			res.Path = append(res.Path, segment[1:]...)

			if goals.Empty() {
				res.Found = true
				res.Cost = cur.Cost
				if o.Dots {
					markTour(g, res)
				}
				return res, nil
			}

			g.ResetScores(front)
			p = newPhase(g, front)
			continue
		}

		relax(g, p, front, goals, h)
	}

	res.Cost = g.Cell(p.origin).Cost
	return res, ErrNoPath
}

func relax(g *maze.Grid, p *phase, front int, goals *GoalSet, h heuristicFunc) {
	cur := g.Cell(front)
	for _, n := range g.Neighbors(front) {
		if p.closed.Has(n) {
			continue
		}
		cost := cur.Cost + 1
		heuristic := h(n, goals)

		nc := g.Cell(n)
		if !p.open.Has(n) || cost < nc.Cost {
			nc.Cost = cost
			nc.Heuristic = heuristic
			nc.Parent = front
			p.open.Put(n)
			p.frontier.PushCell(n, nc.Priority())
		}
	}
}
