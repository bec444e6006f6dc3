package search

import (
	"errors"
	"math/rand"
	"time"
)

var (
	ErrNoPath           = errors.New("no path found")
	ErrNoGoals          = errors.New("maze has no pellets")
	ErrUnknownAlgorithm = errors.New("unknown search algorithm")
)

type Algorithm string

const (
	BFS        Algorithm = "bfs"
	DFS        Algorithm = "dfs"
	Greedy     Algorithm = "greedy"
	AStar      Algorithm = "astar"
	Suboptimal Algorithm = "suboptimal"
)

var Algorithms = []Algorithm{BFS, DFS, Greedy, AStar, Suboptimal}

// MultiGoal reports whether the algorithm tours every pellet.
func (a Algorithm) MultiGoal() bool { return a == AStar || a == Suboptimal }

// Visit records a pellet consumed by the multi-goal search.
type Visit struct {
	Cell   int  `json:"cell"`
	Symbol byte `json:"symbol"`
}

type Result struct {
	Found bool

	// cell indices from the start to the terminal cell
	Path     []int
	Cost     int
	Expanded int

	// pellets in the order the multi-goal search consumed them
	Order []Visit
}

// Terminal returns the last cell of the path, or -1 without one.
func (r *Result) Terminal() int {
	if len(r.Path) == 0 {
		return -1
	}
	return r.Path[len(r.Path)-1]
}

type Options struct {
	Dots bool
	Rand *rand.Rand
}

type Option func(*Options)

// WithDots marks the discovered path on the grid with dots.
func WithDots(dots bool) Option {
	return func(o *Options) { o.Dots = dots }
}

// WithRand sets the random source of the inadmissible heuristic.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) { o.Rand = r }
}

func newOptions(opts []Option) Options {
	o := Options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.Rand == nil {
		o.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return o
}
