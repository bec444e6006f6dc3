package search

import (
	"slices"

	"mazesearch/internal/maze"
)

// reconstruct follows parent links from cell back to origin and returns the
// chain in walking order, origin first.
func reconstruct(g *maze.Grid, cell, origin int) []int {
	path := make([]int, 0)
	for cur := cell; cur != maze.NoParent; cur = g.Cell(cur).Parent {
		path = append(path, cur)
		// parent links form a tree within one search, never longer than the grid
		if cur == origin || len(path) > len(g.Cells) {
			break
		}
	}
	slices.Reverse(path)
	return path
}

// finalize builds the result of a single-goal search that reached terminal.
func finalize(g *maze.Grid, terminal, expanded int, dots bool) *Result {
	path := reconstruct(g, terminal, g.Start)
	if dots {
		for _, idx := range path {
			g.Cell(idx).Terrain = maze.PathChar
		}
	}
	return &Result{
		Found:    true,
		Path:     path,
		Cost:     len(path) - 1,
		Expanded: expanded,
	}
}

// markTour dots the tour of a multi-goal search. Consumed pellets keep their
// order symbol.
func markTour(g *maze.Grid, res *Result) {
	labelled := make(map[int]bool, len(res.Order))
	for _, v := range res.Order {
		labelled[v.Cell] = true
	}
	for _, idx := range res.Path {
		if !labelled[idx] {
			g.Cell(idx).Terrain = maze.PathChar
		}
	}
}
