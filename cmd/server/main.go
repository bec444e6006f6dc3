package main

import (
	"fmt"
	"log"
	"net/http"
	"runtime"

	"mazesearch/internal/config"
	"mazesearch/internal/server"
)

func main() {
	// get constants from config.json
	if err := config.Load("config.json"); err != nil {
		panic(err)
	}
	srv, err := server.NewServer(config.Global)
	if err != nil {
		log.Fatal(err)
	}

	workers := config.Global.Server.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	fmt.Printf("The num of cores is: %d, default search: %s\n", runtime.NumCPU(), config.Global.Search.Algorithm)
	srv.WakeWorkers(workers)

	mux := http.NewServeMux()
	srv.Routes(mux)

	log.Printf("Server running on: %s\n", config.Global.Server.Port)
	log.Fatal(http.ListenAndServe(config.Global.Server.Port, mux))
}
