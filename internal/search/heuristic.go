package search

import (
	"math/rand"

	"mazesearch/internal/maze"
)

func Manhattan(g *maze.Grid, a, b int) int {
	ca, cb := g.Cell(a), g.Cell(b)
	return abs(ca.Row-cb.Row) + abs(ca.Col-cb.Col)
}

// Admissible is the minimum Manhattan distance from cell to any remaining
// goal. It never overestimates on a unit-cost 4-connected grid.
func Admissible(g *maze.Grid, cell int, goals *GoalSet) int {
	if goals.Empty() {
		panic("search: heuristic called with no remaining goals")
	}
	best := -1
	goals.Each(func(goal int) {
		if d := Manhattan(g, cell, goal); best < 0 || d < best {
			best = d
		}
	})
	return best
}

// Inadmissible is the Manhattan distance to one goal sampled uniformly from
// the remaining set, so it can overestimate.
func Inadmissible(g *maze.Grid, cell int, goals *GoalSet, rng *rand.Rand) int {
	if goals.Empty() {
		panic("search: heuristic called with no remaining goals")
	}
	return Manhattan(g, cell, goals.Sample(rng))
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
