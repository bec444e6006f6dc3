package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"

	"mazesearch/internal/config"
	"mazesearch/internal/maze"
	"mazesearch/internal/sim"
)

var (
	genRows, genCols, genPellets int
	genWalls                     float64
	genSeed                      int64
	genOut                       string
)

func Gen(cmd *commander.Command, args []string) error {
	VerifyFlags(cmd, []string{"o"})

	if genSeed == 0 {
		genSeed = time.Now().UnixNano()
	}
	g, err := sim.GenerateMaze(rand.New(rand.NewSource(genSeed)), genRows, genCols, genPellets, genWalls)
	if err != nil {
		return err
	}
	if err := maze.Dump(g, genOut); err != nil {
		return err
	}
	fmt.Printf("Maze written to %s: %dx%d, %d pellets, seed %d\n", genOut, g.Rows, g.Cols, len(g.Goals), genSeed)
	return nil
}

func GenCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       Gen,
		UsageLine: "gen <file options> [arguments]",
		Short:     "generate a random maze",
		Long: `
generate a random walled maze whose pellets are all reachable from the start

	$ ./mazesolve gen -o <out> [-rows n] [-cols n] [-pellets n] [-walls density] [-seed n]

`,
		Flag: *flag.NewFlagSet("gen", flag.ExitOnError),
	}
	sc := config.Global.Simulation
	cmd.Flag.StringVar(&genOut, "o", "", "Output maze file")
	cmd.Flag.IntVar(&genRows, "rows", sc.Rows, "Rows, border included")
	cmd.Flag.IntVar(&genCols, "cols", sc.Cols, "Columns, border included")
	cmd.Flag.IntVar(&genPellets, "pellets", sc.Pellets, "Number of pellets")
	cmd.Flag.Float64Var(&genWalls, "walls", sc.WallDensity, "Probability of an interior wall")
	cmd.Flag.Int64Var(&genSeed, "seed", 0, "Random seed; 0 = time based")
	return cmd
}
