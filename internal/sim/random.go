package sim

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"os"

	"mazesearch/internal/maze"
)

var ErrTooSmall = errors.New("maze needs at least 3 rows and 3 columns")

// GenerateMaze builds a walled rows x cols maze. Interior cells become walls
// with probability wallDensity, the start sits on a random open cell and up
// to pellets pellets are scattered over cells reachable from it.
func GenerateMaze(rng *rand.Rand, rows, cols, pellets int, wallDensity float64) (*maze.Grid, error) {
	if rows < 3 || cols < 3 {
		return nil, fmt.Errorf("%dx%d: %w", rows, cols, ErrTooSmall)
	}

	terrain := make([][]byte, rows)
	open := make([][2]int, 0, rows*cols)
	for r := range terrain {
		terrain[r] = make([]byte, cols)
		for c := range terrain[r] {
			border := r == 0 || c == 0 || r == rows-1 || c == cols-1
			if border || rng.Float64() < wallDensity {
				terrain[r][c] = maze.WallChar
				continue
			}
			terrain[r][c] = maze.FloorChar
			open = append(open, [2]int{r, c})
		}
	}

	// a fully walled interior still gets a start
	if len(open) == 0 {
		r, c := 1+rng.Intn(rows-2), 1+rng.Intn(cols-2)
		terrain[r][c] = maze.FloorChar
		open = append(open, [2]int{r, c})
	}
	start := open[rng.Intn(len(open))]
	terrain[start[0]][start[1]] = maze.StartChar

	g, err := maze.New(terrain)
	if err != nil {
		return nil, err
	}

	reach := g.Reachable()
	candidates := make([]int, 0, len(open))
	for _, rc := range open {
		idx := g.Index(rc[0], rc[1])
		if reach[idx] && idx != g.Start {
			candidates = append(candidates, idx)
		}
	}
	rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	if pellets > len(candidates) {
		pellets = len(candidates)
	}
	for _, idx := range candidates[:pellets] {
		c := g.Cell(idx)
		terrain[c.Row][c.Col] = maze.PelletChar
	}

	return maze.New(terrain)
}

// GenerateMazes returns count maze texts drawn from rng.
func GenerateMazes(rng *rand.Rand, count, rows, cols, pellets int, wallDensity float64) ([]string, error) {
	mazes := make([]string, 0, count)
	for i := 0; i < count; i++ {
		g, err := GenerateMaze(rng, rows, cols, pellets, wallDensity)
		if err != nil {
			return nil, err
		}
		mazes = append(mazes, g.String())
	}
	return mazes, nil
}

func SaveMazesToFile(mazes []string, filename string) error {
	data, err := json.MarshalIndent(mazes, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filename, data, 0644)
}

func LoadMazesFromFile(filename string) ([]string, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var mazes []string
	if err := json.Unmarshal(data, &mazes); err != nil {
		return nil, err
	}
	return mazes, nil
}
