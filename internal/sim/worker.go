package sim

import (
	"log"
	"sync"
	"time"

	"mazesearch/internal/types"
)

// Stats aggregates the answers of one load run.
type Stats struct {
	Sent          int
	Solved        int
	Unsolved      int
	Failed        int
	TotalCost     int
	TotalExpanded int
	Elapsed       time.Duration
}

func (s *Stats) add(resp types.SolveResponse, err error) {
	s.Sent++
	switch {
	case err != nil:
		s.Failed++
	case resp.Found:
		s.Solved++
		s.TotalCost += resp.Cost
		s.TotalExpanded += resp.Expanded
	default:
		s.Unsolved++
	}
}

type solveChunkJob struct {
	Mazes  []string
	Algo   string
	Dots   bool
	Client *Client
}

// Runner sends mazes to a solve server from a fixed pool of chunk workers.
type Runner struct {
	jobs  chan solveChunkJob
	wg    sync.WaitGroup
	mu    sync.Mutex
	stats Stats
}

func NewRunner(numWorkers int) *Runner {
	if numWorkers < 1 {
		numWorkers = 1
	}
	r := &Runner{jobs: make(chan solveChunkJob, 100)}
	for i := 0; i < numWorkers; i++ {
		go r.chunkWorker()
	}
	return r
}

func (r *Runner) chunkWorker() {
	for job := range r.jobs {
		var local Stats
		for _, m := range job.Mazes {
			resp, err := job.Client.Solve(m, job.Algo, job.Dots)
			if err != nil {
				log.Printf("solve failed: %v", err)
			}
			local.add(resp, err)
		}

		r.mu.Lock()
		r.stats.Sent += local.Sent
		r.stats.Solved += local.Solved
		r.stats.Unsolved += local.Unsolved
		r.stats.Failed += local.Failed
		r.stats.TotalCost += local.TotalCost
		r.stats.TotalExpanded += local.TotalExpanded
		r.mu.Unlock()

		r.wg.Done()
	}
}

// SolveChunked splits mazes into chunks, waits for every answer and returns
// the stats of this call.
func (r *Runner) SolveChunked(client *Client, mazes []string, algo string, dots bool, chunkSize int) Stats {
	began := time.Now()
	r.mu.Lock()
	r.stats = Stats{}
	r.mu.Unlock()

	if len(mazes) == 0 {
		return Stats{}
	}
	if chunkSize < 1 {
		chunkSize = 1
	}
	numChunks := (len(mazes) + chunkSize - 1) / chunkSize
	r.wg.Add(numChunks)

	for i := 0; i < numChunks; i++ {
		start := i * chunkSize
		end := min(start+chunkSize, len(mazes))
		r.jobs <- solveChunkJob{
			Mazes:  mazes[start:end],
			Algo:   algo,
			Dots:   dots,
			Client: client,
		}
	}
	r.wg.Wait()

	r.mu.Lock()
	defer r.mu.Unlock()
	stats := r.stats
	stats.Elapsed = time.Since(began)
	return stats
}

// Close stops the workers. The runner cannot be used afterwards.
func (r *Runner) Close() {
	close(r.jobs)
}
