package main

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"

	"mazesearch/internal/config"
	"mazesearch/internal/maze"
	"mazesearch/internal/render"
	"mazesearch/internal/search"
)

var (
	mazeFile string
	algoName string
	outFile  string
	pngFile  string
	drawDots bool
	seed     int64
	cellSize int
)

func Solve(cmd *commander.Command, args []string) error {
	VerifyFlags(cmd, []string{"f"})

	algo, err := search.ParseAlgorithm(algoName)
	if err != nil {
		return err
	}
	defer config.TimeTrack(time.Now(), "solve "+string(algo))

	g, err := maze.LoadMaze(mazeFile)
	if err != nil {
		return err
	}
	// pristine copy for the picture, the search draws into g
	pristine := g.Clone()

	out := outFile
	if out == "" {
		out = maze.SolutionFileName(mazeFile, string(algo))
	}
	res, err := solveAndDump(g, algo, out, solveOptions(algo, drawDots, seed)...)
	if err != nil {
		return err
	}

	if pngFile != "" {
		if err := render.SavePNG(pristine, res, cellSize, pngFile); err != nil {
			return err
		}
		log.Printf("Image written to %s", pngFile)
	}
	return nil
}

func solveOptions(algo search.Algorithm, dots bool, seed int64) []search.Option {
	// single-goal searches always draw their path
	opts := []search.Option{search.WithDots(dots || !algo.MultiGoal())}
	if seed != 0 {
		opts = append(opts, search.WithRand(rand.New(rand.NewSource(seed))))
	}
	return opts
}

// solveAndDump runs algo on g and writes the resulting grid to out. A maze
// whose pellets cannot all be reached is still dumped and is not an error.
func solveAndDump(g *maze.Grid, algo search.Algorithm, out string, opts ...search.Option) (*search.Result, error) {
	res, err := search.Run(g, algo, opts...)
	switch {
	case errors.Is(err, search.ErrNoPath):
		log.Printf("no solution: %v", err)
	case err != nil:
		return nil, err
	}

	if err := maze.Dump(g, out); err != nil {
		return nil, err
	}
	fmt.Printf("Maze dumped to %s: Total cost %d, %d nodes expanded\n", out, res.Cost, res.Expanded)
	return res, nil
}

func SolveCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       Solve,
		UsageLine: "solve <file options> [arguments]",
		Short:     "solve a maze with one of the searches",
		Long: `
solve a maze and dump the solution next to it

	$ ./mazesolve solve -f <maze> [-t bfs|dfs|greedy|astar|suboptimal] [-d] [-o <out>] [-png <image>]

`,
		Flag: *flag.NewFlagSet("solve", flag.ExitOnError),
	}
	cmd.Flag.StringVar(&mazeFile, "f", "", "Maze file")
	cmd.Flag.StringVar(&algoName, "t", config.Global.Search.Algorithm, "Search type [bfs, dfs, greedy, astar, suboptimal]")
	cmd.Flag.BoolVar(&drawDots, "d", config.Global.Search.Dots, "Draw the full path of astar searches")
	cmd.Flag.StringVar(&outFile, "o", "", "Optional - solution file (default <maze>_<type>_soln.txt)")
	cmd.Flag.StringVar(&pngFile, "png", "", "Optional - also draw the solution as a PNG image")
	cmd.Flag.Int64Var(&seed, "seed", config.Global.Search.Seed, "Random seed for the suboptimal heuristic; 0 = time based")
	cmd.Flag.IntVar(&cellSize, "cell", config.Global.Render.CellSize, "Pixels per cell in the PNG image")
	return cmd
}
