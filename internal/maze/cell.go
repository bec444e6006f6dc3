package maze

import "fmt"

// terrain markers of the text map format
const (
	WallChar   byte = '%'
	PelletChar byte = '.'
	StartChar  byte = 'P'
	FloorChar  byte = ' '
	PathChar   byte = '.'
)

// NoParent marks a cell without a predecessor on the current path.
const NoParent = -1

type Cell struct {
	Row     int
	Col     int
	Terrain byte

	Cost      int
	Heuristic int

	// index of the predecessor inside the owning grid
	Parent int
}

func (c *Cell) IsWall() bool   { return c.Terrain == WallChar }
func (c *Cell) IsPellet() bool { return c.Terrain == PelletChar }

// Priority is the A* ordering key.
func (c *Cell) Priority() int { return c.Cost + c.Heuristic }

func (c *Cell) String() string {
	return fmt.Sprintf("%d, %d", c.Row, c.Col)
}

func (c *Cell) reset() {
	c.Cost = 0
	c.Heuristic = 0
}
