package server

import (
	"errors"
	"log"
	"math/rand"
	"time"

	"mazesearch/internal/search"
	"mazesearch/internal/types"
)

func (s *Server) WakeWorkers(numWorkers int) {
	seed := s.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	for i := 0; i < numWorkers; i++ {
		// each worker owns its random source, rand.Rand is not safe to share
		rng := rand.New(rand.NewSource(seed + int64(i)))
		go s.worker(rng)
	}
	log.Printf("JobQueue started with %d workers", numWorkers)
}

func (s *Server) worker(rng *rand.Rand) {
	for req := range s.JobQueue {
		req.ResponseChannel <- solve(req, rng)
	}
}

func solve(req SolveRequest, rng *rand.Rand) SolveResult {
	start := time.Now()
	res, err := search.Run(req.Grid, req.Algorithm, search.WithDots(req.Dots), search.WithRand(rng))

	result := SolveResult{
		Response: types.SolveResponse{
			ID:        req.ID,
			Algorithm: string(req.Algorithm),
		},
	}
	if res != nil {
		result.Response.Found = res.Found
		result.Response.Cost = res.Cost
		result.Response.Expanded = res.Expanded
		for _, v := range res.Order {
			result.Response.Order += string(v.Symbol)
		}
	}
	result.Response.Solution = req.Grid.String()

	switch {
	case err == nil:
	case errors.Is(err, search.ErrNoPath):
		// an unreachable pellet is an answer, not a failure
		result.Response.Err = err.Error()
	default:
		result.Err = err
	}

	log.Printf("job %s: %s found=%v cost=%d expanded=%d in %s",
		req.ID, req.Algorithm, result.Response.Found, result.Response.Cost, result.Response.Expanded, time.Since(start))
	return result
}
