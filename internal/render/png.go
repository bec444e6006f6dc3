// Package render draws solved mazes as PNG images.
package render

import (
	"fmt"
	"image/color"
	"io"

	"github.com/fogleman/gg"

	"mazesearch/internal/maze"
	"mazesearch/internal/search"
)

var (
	wallColor   = color.RGBA{40, 40, 48, 255}
	floorColor  = color.White
	pathColor   = color.RGBA{230, 80, 60, 255}
	startColor  = color.RGBA{0, 170, 0, 255}
	pelletColor = color.RGBA{30, 90, 220, 255}
	labelColor  = color.Black
)

const minCellSize = 4

// Draw paints the grid, the path of res (may be nil) and the visit order of
// consumed pellets.
func Draw(g *maze.Grid, res *search.Result, cellSize int) *gg.Context {
	if cellSize < minCellSize {
		cellSize = minCellSize
	}
	scale := float64(cellSize)
	dc := gg.NewContext(g.Cols*cellSize, g.Rows*cellSize)
	dc.SetColor(floorColor)
	dc.Clear()

	for i := range g.Cells {
		c := g.Cell(i)
		if !c.IsWall() {
			continue
		}
		dc.SetColor(wallColor)
		dc.DrawRectangle(float64(c.Col)*scale, float64(c.Row)*scale, scale, scale)
		dc.Fill()
	}

	center := func(idx int) (float64, float64) {
		c := g.Cell(idx)
		return float64(c.Col)*scale + scale/2, float64(c.Row)*scale + scale/2
	}

	if res != nil && len(res.Path) > 1 {
		dc.SetColor(pathColor)
		dc.SetLineWidth(scale / 3)
		dc.MoveTo(center(res.Path[0]))
		for _, idx := range res.Path[1:] {
			dc.LineTo(center(idx))
		}
		dc.Stroke()
	}

	for _, idx := range g.Goals {
		x, y := center(idx)
		dc.SetColor(pelletColor)
		dc.DrawCircle(x, y, scale/4)
		dc.Fill()
	}

	x, y := center(g.Start)
	dc.SetColor(startColor)
	dc.DrawCircle(x, y, scale/2.5)
	dc.Fill()

	if res != nil {
		dc.SetColor(labelColor)
		for _, v := range res.Order {
			x, y := center(v.Cell)
			dc.DrawStringAnchored(string(v.Symbol), x, y, 0.5, 0.5)
		}
	}
	return dc
}

func SavePNG(g *maze.Grid, res *search.Result, cellSize int, filename string) error {
	if err := Draw(g, res, cellSize).SavePNG(filename); err != nil {
		return fmt.Errorf("failed to save %s: %w", filename, err)
	}
	return nil
}

func EncodePNG(w io.Writer, g *maze.Grid, res *search.Result, cellSize int) error {
	return Draw(g, res, cellSize).EncodePNG(w)
}
