package server

import (
	"mazesearch/internal/maze"
	"mazesearch/internal/search"
	"mazesearch/internal/types"
)

type SolveRequest struct {
	ID        string
	Grid      *maze.Grid
	Algorithm search.Algorithm
	Dots      bool

	// channel to notify when the response is ready
	ResponseChannel chan SolveResult
}

type SolveResult struct {
	Response types.SolveResponse
	Err      error
}
