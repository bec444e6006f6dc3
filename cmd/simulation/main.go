package main

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/gonuts/flag"

	"mazesearch/internal/config"
	"mazesearch/internal/sim"
)

var CONFIG_FILE string = "config.json"

func main() {
	algo := flag.String("algo", "", "search to request, empty for the server default")
	mazesFile := flag.String("mazes", "", "replay mazes from this JSON file instead of generating them")
	saveFile := flag.String("save", "", "save the generated mazes to this JSON file")
	flag.Parse()

	// load constants from config.json
	if err := config.Load(CONFIG_FILE); err != nil {
		panic(err)
	}
	sc := config.Global.Simulation
	client := sim.NewClient(sc.ServerURL + config.Global.Server.Port)

	var mazes []string
	var err error
	if *mazesFile != "" {
		mazes, err = sim.LoadMazesFromFile(*mazesFile)
	} else {
		seed := config.Global.Search.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		mazes, err = sim.GenerateMazes(rand.New(rand.NewSource(seed)), sc.NumMazes, sc.Rows, sc.Cols, sc.Pellets, sc.WallDensity)
	}
	if err != nil {
		log.Fatal(err)
	}
	if *saveFile != "" {
		if err := sim.SaveMazesToFile(mazes, *saveFile); err != nil {
			log.Fatal(err)
		}
	}

	algos, err := client.Algorithms()
	if err != nil {
		log.Fatalf("server not reachable: %v", err)
	}
	fmt.Printf("Sending %d mazes to %s (server default %s)\n", len(mazes), client.BaseURL, algos.Default)

	workers := max(sc.Concurrency, 1)
	runner := sim.NewRunner(workers)
	defer runner.Close()

	chunkSize := (len(mazes) + workers - 1) / workers
	stats := runner.SolveChunked(client, mazes, *algo, config.Global.Search.Dots, chunkSize)

	fmt.Printf("Sent %d, solved %d, unsolved %d, failed %d in %s\n",
		stats.Sent, stats.Solved, stats.Unsolved, stats.Failed, stats.Elapsed)
	if stats.Solved > 0 {
		fmt.Printf("Average cost %.1f, average expanded %.1f\n",
			float64(stats.TotalCost)/float64(stats.Solved), float64(stats.TotalExpanded)/float64(stats.Solved))
	}
	fmt.Println("Simulation Finished!")
}
