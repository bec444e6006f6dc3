package search

import (
	"math/rand"
	"strings"
	"testing"

	"mazesearch/internal/maze"
)

func mustGrid(t *testing.T, text string) *maze.Grid {
	t.Helper()
	g, err := maze.Parse(strings.NewReader(text))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return g
}

// randomGrid builds a rows x cols maze with walls placed with probability
// wallProb, a random start and up to pellets pellets.
func randomGrid(t *testing.T, rng *rand.Rand, rows, cols int, wallProb float64, pellets int) *maze.Grid {
	t.Helper()
	cells := make([][]byte, rows)
	for r := range cells {
		cells[r] = make([]byte, cols)
		for c := range cells[r] {
			cells[r][c] = maze.FloorChar
			if rng.Float64() < wallProb {
				cells[r][c] = maze.WallChar
			}
		}
	}
	sr, sc := rng.Intn(rows), rng.Intn(cols)
	cells[sr][sc] = maze.StartChar
	for i := 0; i < pellets; i++ {
		r, c := rng.Intn(rows), rng.Intn(cols)
		if cells[r][c] != maze.StartChar {
			cells[r][c] = maze.PelletChar
		}
	}
	g, err := maze.New(cells)
	if err != nil {
		t.Fatalf("maze.New: %v", err)
	}
	return g
}

// distances returns step counts from cell to every cell, -1 when unreachable.
func distances(g *maze.Grid, from int) []int {
	dist := make([]int, len(g.Cells))
	for i := range dist {
		dist[i] = -1
	}
	dist[from] = 0
	q := []int{from}
	for len(q) > 0 {
		cur := q[0]
		q = q[1:]
		for _, n := range g.Neighbors(cur) {
			if dist[n] >= 0 || g.IsWall(n) {
				continue
			}
			dist[n] = dist[cur] + 1
			q = append(q, n)
		}
	}
	return dist
}

// checkWalk fails unless path is a wall-free sequence of adjacent cells that
// begins at the start.
func checkWalk(t *testing.T, g *maze.Grid, path []int) {
	t.Helper()
	if len(path) == 0 || path[0] != g.Start {
		t.Fatalf("path %v does not begin at start %d", path, g.Start)
	}
	for i := 1; i < len(path); i++ {
		if Manhattan(g, path[i-1], path[i]) != 1 {
			t.Fatalf("cells %d and %d are not adjacent", path[i-1], path[i])
		}
		if g.IsWall(path[i]) {
			t.Fatalf("path crosses wall at %d", path[i])
		}
	}
}
