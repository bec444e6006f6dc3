package main

import (
	"fmt"
	"time"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"

	"mazesearch/internal/config"
	"mazesearch/internal/maze"
)

var pruneIn, pruneOut string

// Prune keeps only the pellets reachable from the start.
func Prune(cmd *commander.Command, args []string) error {
	VerifyFlags(cmd, []string{"f", "o"})
	defer config.TimeTrack(time.Now(), "prune")

	g, err := maze.LoadMaze(pruneIn)
	if err != nil {
		return err
	}
	removed := g.PruneUnreachable()
	if err := maze.Dump(g, pruneOut); err != nil {
		return err
	}
	fmt.Printf("Removed %d unreachable pellets, %d left. Saved to %s\n", removed, len(g.Goals), pruneOut)
	return nil
}

func PruneCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       Prune,
		UsageLine: "prune <file options>",
		Short:     "drop pellets that cannot be reached",
		Long: `
drop pellets that cannot be reached from the start

	$ ./mazesolve prune -f <maze> -o <out>

`,
		Flag: *flag.NewFlagSet("prune", flag.ExitOnError),
	}
	cmd.Flag.StringVar(&pruneIn, "f", "", "Input maze file")
	cmd.Flag.StringVar(&pruneOut, "o", "", "Output maze file")
	return cmd
}
