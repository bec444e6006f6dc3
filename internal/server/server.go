package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"sync"

	"github.com/google/uuid"

	"mazesearch/internal/config"
	"mazesearch/internal/maze"
	"mazesearch/internal/search"
	"mazesearch/internal/types"
)

type Server struct {
	Hub      *Hub
	JobQueue chan SolveRequest

	algorithm search.Algorithm
	dots      bool
	seed      int64
	maxBytes  int64
}

// NewServer builds a server from cfg and starts its websocket hub.
// Workers are started separately with WakeWorkers.
func NewServer(cfg config.Config) (*Server, error) {
	algo, err := search.ParseAlgorithm(cfg.Search.Algorithm)
	if err != nil {
		return nil, err
	}
	queueSize := cfg.Server.QueueSize
	if queueSize < 0 {
		queueSize = 0
	}
	maxBytes := cfg.Server.MaxBytes
	if maxBytes <= 0 {
		maxBytes = config.Default().Server.MaxBytes
	}
	s := &Server{
		Hub:       NewHub(),
		JobQueue:  make(chan SolveRequest, queueSize),
		algorithm: algo,
		dots:      cfg.Search.Dots,
		seed:      cfg.Search.Seed,
		maxBytes:  maxBytes,
	}
	go s.Hub.Run()
	return s, nil
}

// Routes registers every handler on mux.
func (s *Server) Routes(mux *http.ServeMux) {
	mux.HandleFunc("/api/solve", s.HandleSolve)
	mux.HandleFunc("/api/solve/batch", s.HandleSolveBatch)
	mux.HandleFunc("/api/algorithms", s.HandleAlgorithms)
	mux.HandleFunc("/ws", s.HandleWebSocket)
}

// request builds a job from a maze text and the raw algorithm/dots options.
// An empty algorithm or dots falls back to the configured default.
func (s *Server) request(text []byte, algoName, dotsStr string) (SolveRequest, error) {
	algo := s.algorithm
	if algoName != "" {
		a, err := search.ParseAlgorithm(algoName)
		if err != nil {
			return SolveRequest{}, err
		}
		algo = a
	}

	dots := s.dots
	if dotsStr != "" {
		d, err := strconv.ParseBool(dotsStr)
		if err != nil {
			return SolveRequest{}, fmt.Errorf("invalid 'dot' parameter %q", dotsStr)
		}
		dots = d
	}
	// single-goal searches always draw their path
	if !algo.MultiGoal() {
		dots = true
	}

	g, err := maze.Parse(bytes.NewReader(text))
	if err != nil {
		return SolveRequest{}, err
	}

	return SolveRequest{
		ID:              uuid.NewString(),
		Grid:            g,
		Algorithm:       algo,
		Dots:            dots,
		ResponseChannel: make(chan SolveResult, 1),
	}, nil
}

func (s *Server) submit(req SolveRequest) SolveResult {
	s.JobQueue <- req
	result := <-req.ResponseChannel
	if result.Err == nil {
		s.Hub.BroadcastUpdate("solved", result.Response)
	}
	return result
}

func (s *Server) HandleSolve(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Only POST request allowed", http.StatusMethodNotAllowed)
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.maxBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			http.Error(w, "Maze too large", http.StatusRequestEntityTooLarge)
			return
		}
		http.Error(w, "Invalid body", http.StatusBadRequest)
		return
	}

	req, err := s.request(body, r.URL.Query().Get("algo"), r.URL.Query().Get("dot"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result := s.submit(req)
	if result.Err != nil {
		log.Printf("job %s failed: %v", req.ID, result.Err)
		http.Error(w, result.Err.Error(), http.StatusUnprocessableEntity)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result.Response)
}

// HandleSolveBatch solves a JSON array of mazes. Entries are split into
// chunks handed to the job queue in parallel; the answers keep the order
// of the request.
func (s *Server) HandleSolveBatch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Only POST request allowed", http.StatusMethodNotAllowed)
		return
	}

	var entries []types.SolveRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, s.maxBytes)).Decode(&entries); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			http.Error(w, "Batch too large", http.StatusRequestEntityTooLarge)
			return
		}
		http.Error(w, "Invalid Json", http.StatusBadRequest)
		return
	}

	responses := make([]types.SolveResponse, len(entries))
	count := len(entries)
	if count == 0 {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(responses)
		return
	}

	numWorkers := 8
	if count < numWorkers {
		numWorkers = 1
	}
	chunkSize := (count + numWorkers - 1) / numWorkers

	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		start := i * chunkSize
		end := min(start+chunkSize, count)
		if start >= end {
			break
		}
		wg.Add(1)
		go func(startIdx, endIdx int) {
			defer wg.Done()
			for j := startIdx; j < endIdx; j++ {
				responses[j] = s.solveEntry(entries[j])
			}
		}(start, end)
	}
	wg.Wait()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(responses)
}

func (s *Server) solveEntry(e types.SolveRequest) types.SolveResponse {
	dotsStr := ""
	if e.Dots != nil {
		dotsStr = strconv.FormatBool(*e.Dots)
	}
	req, err := s.request([]byte(e.Maze), e.Algorithm, dotsStr)
	if err != nil {
		return types.SolveResponse{Algorithm: e.Algorithm, Err: err.Error()}
	}
	result := s.submit(req)
	if result.Err != nil {
		result.Response.Err = result.Err.Error()
	}
	return result.Response
}

func (s *Server) algorithms() types.AlgorithmsResponse {
	resp := types.AlgorithmsResponse{Default: string(s.algorithm)}
	for _, a := range search.Algorithms {
		resp.Algorithms = append(resp.Algorithms, string(a))
	}
	return resp
}

func (s *Server) HandleAlgorithms(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(s.algorithms())
}
