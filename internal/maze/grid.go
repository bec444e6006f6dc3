package maze

import (
	"errors"
	"fmt"
	"strings"

	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/queue"
)

var (
	ErrEmptyMaze      = errors.New("maze has no rows")
	ErrRaggedRows     = errors.New("maze rows have different widths")
	ErrNoStart        = errors.New("maze has no start cell")
	ErrMultipleStarts = errors.New("maze has more than one start cell")
)

// Grid is a row-major arena of cells. Its shape is fixed once built; the
// per-cell search state is mutated in place by whichever search runs on it.
type Grid struct {
	Rows  int
	Cols  int
	Cells []Cell

	Start int
	Goals []int
}

func New(rows [][]byte) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyMaze
	}
	g := &Grid{
		Rows:  len(rows),
		Cols:  len(rows[0]),
		Cells: make([]Cell, 0, len(rows)*len(rows[0])),
		Start: NoParent,
		Goals: make([]int, 0),
	}

	for r, row := range rows {
		if len(row) != g.Cols {
			return nil, fmt.Errorf("row %d has width %d, expected %d: %w", r, len(row), g.Cols, ErrRaggedRows)
		}
		for c, ch := range row {
			idx := len(g.Cells)
			g.Cells = append(g.Cells, Cell{Row: r, Col: c, Terrain: ch, Parent: NoParent})

			switch ch {
			case PelletChar:
				g.Goals = append(g.Goals, idx)
			case StartChar:
				if g.Start != NoParent {
					return nil, fmt.Errorf("start at %d,%d: %w", r, c, ErrMultipleStarts)
				}
				g.Start = idx
			}
		}
	}

	if g.Start == NoParent {
		return nil, ErrNoStart
	}
	return g, nil
}

func (g *Grid) Index(row, col int) int { return row*g.Cols + col }

func (g *Grid) Cell(i int) *Cell { return &g.Cells[i] }

func (g *Grid) IsWall(i int) bool   { return g.Cells[i].IsWall() }
func (g *Grid) IsPellet(i int) bool { return g.Cells[i].IsPellet() }

// Neighbors returns the in-bounds orthogonal neighbors of i, ordered up, down,
// left, right. Walls are included.
func (g *Grid) Neighbors(i int) []int {
	c := &g.Cells[i]
	out := make([]int, 0, 4)
	if c.Row > 0 {
		out = append(out, i-g.Cols)
	}
	if c.Row < g.Rows-1 {
		out = append(out, i+g.Cols)
	}
	if c.Col > 0 {
		out = append(out, i-1)
	}
	if c.Col < g.Cols-1 {
		out = append(out, i+1)
	}
	return out
}

// ResetScores zeroes cost and heuristic of every cell, except that keep
// retains its cost. Pass NoParent to keep nothing.
func (g *Grid) ResetScores(keep int) {
	kept := 0
	if keep != NoParent {
		kept = g.Cells[keep].Cost
	}
	for i := range g.Cells {
		g.Cells[i].reset()
	}
	if keep != NoParent {
		g.Cells[keep].Cost = kept
	}
}

// ResetSearchState clears every score and parent link.
func (g *Grid) ResetSearchState() {
	for i := range g.Cells {
		g.Cells[i].reset()
		g.Cells[i].Parent = NoParent
	}
}

func (g *Grid) Clone() *Grid {
	clone := &Grid{
		Rows:  g.Rows,
		Cols:  g.Cols,
		Cells: make([]Cell, len(g.Cells)),
		Start: g.Start,
		Goals: make([]int, len(g.Goals)),
	}
	copy(clone.Cells, g.Cells)
	copy(clone.Goals, g.Goals)
	return clone
}

// Reachable floods from the start cell and reports which cells can be
// reached without crossing a wall.
func (g *Grid) Reachable() []bool {
	seen := mapset.New[int]()
	q := queue.New[int]()
	q.Enqueue(g.Start)
	seen.Put(g.Start)

	for !q.Empty() {
		cur := q.Dequeue()
		for _, n := range g.Neighbors(cur) {
			if seen.Has(n) || g.IsWall(n) {
				continue
			}
			seen.Put(n)
			q.Enqueue(n)
		}
	}

	reach := make([]bool, len(g.Cells))
	seen.Each(func(i int) { reach[i] = true })
	return reach
}

// PruneUnreachable turns pellets that cannot be reached from the start into
// floor and returns how many were removed.
func (g *Grid) PruneUnreachable() int {
	reach := g.Reachable()
	kept := g.Goals[:0]
	removed := 0
	for _, idx := range g.Goals {
		if reach[idx] {
			kept = append(kept, idx)
			continue
		}
		g.Cells[idx].Terrain = FloorChar
		removed++
	}
	g.Goals = kept
	return removed
}

func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.Rows * (g.Cols + 1))
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			sb.WriteByte(g.Cells[g.Index(r, c)].Terrain)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
