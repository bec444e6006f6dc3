package render

import (
	"bytes"
	"image/png"
	"path/filepath"
	"strings"
	"testing"

	"mazesearch/internal/maze"
	"mazesearch/internal/search"
)

func solved(t *testing.T) (*maze.Grid, *search.Result) {
	t.Helper()
	g, err := maze.Parse(strings.NewReader("%%%%%\n%P .%\n%. %%\n%%%%%\n"))
	if err != nil {
		t.Fatal(err)
	}
	res, err := search.Run(g.Clone(), search.AStar)
	if err != nil {
		t.Fatal(err)
	}
	return g, res
}

func TestDrawDimensions(t *testing.T) {
	g, res := solved(t)
	img := Draw(g, res, 10).Image()

	b := img.Bounds()
	if b.Dx() != 50 || b.Dy() != 40 {
		t.Fatalf("image is %dx%d, want 50x40", b.Dx(), b.Dy())
	}

	// wall in the top-left corner, floor inside the open cell at (1,2)
	if r, _, _, _ := img.At(1, 1).RGBA(); r>>8 != uint32(wallColor.R) {
		t.Errorf("corner is not a wall: %v", img.At(1, 1))
	}
	if r, gr, bl, _ := img.At(21, 11).RGBA(); r>>8 != 255 || gr>>8 != 255 || bl>>8 != 255 {
		t.Errorf("floor pixel = %v", img.At(21, 11))
	}
}

func TestEncodePNG(t *testing.T) {
	g, res := solved(t)

	var buf bytes.Buffer
	if err := EncodePNG(&buf, g, res, 2); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	// cell size is clamped to the minimum
	if img.Bounds().Dx() != 5*minCellSize {
		t.Fatalf("width = %d", img.Bounds().Dx())
	}
}

func TestSavePNG(t *testing.T) {
	g, _ := solved(t)
	out := filepath.Join(t.TempDir(), "maze.png")
	if err := SavePNG(g, nil, 8, out); err != nil {
		t.Fatal(err)
	}
}
