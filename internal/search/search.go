// Package search implements the maze searches: breadth-first, depth-first,
// greedy best-first and a multi-goal A* that tours every pellet.
//
// Every search mutates the grid it is given: scores and parent links are
// rewritten in place, and the path is drawn into the terrain when asked to.
// Run each search on its own copy of a grid (see maze.Grid.Clone).
package search

import (
	"fmt"
	"strings"

	"mazesearch/internal/maze"
)

func ParseAlgorithm(name string) (Algorithm, error) {
	algo := Algorithm(strings.ToLower(strings.TrimSpace(name)))
	for _, a := range Algorithms {
		if a == algo {
			return a, nil
		}
	}
	return "", fmt.Errorf("%q: %w", name, ErrUnknownAlgorithm)
}

// Run executes the named search on g. When no pellet can be reached the
// returned error is ErrNoPath and the result has Found unset.
func Run(g *maze.Grid, algo Algorithm, opts ...Option) (*Result, error) {
	switch algo {
	case BFS:
		return BreadthFirst(g, opts...)
	case DFS:
		return DepthFirst(g, opts...)
	case Greedy:
		return GreedyBestFirst(g, opts...)
	case AStar, Suboptimal:
		return MultiGoalAStar(g, algo, opts...)
	}
	return nil, fmt.Errorf("%q: %w", algo, ErrUnknownAlgorithm)
}
