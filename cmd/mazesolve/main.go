package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gonuts/commander"

	"mazesearch/internal/config"
)

var CONFIG_FILE string = "config.json"

var cmd = &commander.Command{
	UsageLine: os.Args[0] + " solves pacman style mazes",
}

func init() {
	// flag defaults come from the config, a missing file keeps the built-in ones
	if err := config.Load(CONFIG_FILE); err != nil && !os.IsNotExist(err) {
		log.Fatal(err)
	}
	cmd.Subcommands = []*commander.Command{
		SolveCmd(),
		GenCmd(),
		PruneCmd(),
	}
}

func main() {
	if err := cmd.Dispatch(os.Args[1:]); err != nil {
		fmt.Printf("**err**: %v\n", err)
		os.Exit(1)
	}
}

func VerifyFlags(cmd *commander.Command, required []string) {
	for _, flag := range required {
		f := cmd.Flag.Lookup(flag)
		if f.Value.String() == "" {
			log.Printf("Required flag %s not set", f.Name)
			cmd.Usage()
			os.Exit(1)
		}
	}
}
