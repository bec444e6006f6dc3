package sim

import (
	"errors"
	"io"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"mazesearch/internal/config"
	"mazesearch/internal/maze"
	"mazesearch/internal/server"
	"mazesearch/internal/types"
)

func TestGenerateMaze(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 50; i++ {
		g, err := GenerateMaze(rng, 8, 12, 4, 0.3)
		if err != nil {
			t.Fatal(err)
		}
		if g.Rows != 8 || g.Cols != 12 {
			t.Fatalf("size %dx%d", g.Rows, g.Cols)
		}
		for c := 0; c < g.Cols; c++ {
			if !g.IsWall(g.Index(0, c)) || !g.IsWall(g.Index(g.Rows-1, c)) {
				t.Fatalf("open border:\n%s", g)
			}
		}
		if len(g.Goals) > 4 {
			t.Fatalf("%d pellets", len(g.Goals))
		}
		reach := g.Reachable()
		for _, idx := range g.Goals {
			if !reach[idx] {
				t.Fatalf("unreachable pellet at %d:\n%s", idx, g)
			}
		}
	}
}

func TestGenerateMazeOpen(t *testing.T) {
	g, err := GenerateMaze(rand.New(rand.NewSource(1)), 5, 5, 20, 0)
	if err != nil {
		t.Fatal(err)
	}
	// 9 interior cells, one of them the start
	if len(g.Goals) != 8 {
		t.Fatalf("%d pellets:\n%s", len(g.Goals), g)
	}
}

func TestGenerateMazeSolid(t *testing.T) {
	g, err := GenerateMaze(rand.New(rand.NewSource(1)), 4, 4, 3, 1)
	if err != nil {
		t.Fatal(err)
	}
	if g.Cell(g.Start).Terrain != maze.StartChar || len(g.Goals) != 0 {
		t.Fatalf("maze:\n%s", g)
	}
}

func TestGenerateMazeTooSmall(t *testing.T) {
	if _, err := GenerateMaze(rand.New(rand.NewSource(1)), 2, 10, 1, 0); !errors.Is(err, ErrTooSmall) {
		t.Fatalf("err = %v", err)
	}
}

func TestGenerateMazesDeterministic(t *testing.T) {
	a, err := GenerateMazes(rand.New(rand.NewSource(3)), 5, 6, 6, 2, 0.2)
	if err != nil {
		t.Fatal(err)
	}
	b, _ := GenerateMazes(rand.New(rand.NewSource(3)), 5, 6, 6, 2, 0.2)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("maze %d differs:\n%s\n%s", i, a[i], b[i])
		}
	}
}

func TestMazesFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mazes.json")
	in := []string{"P.\n", "%P%\n%.%\n"}
	if err := SaveMazesToFile(in, path); err != nil {
		t.Fatal(err)
	}
	out, err := LoadMazesFromFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 2 || out[0] != in[0] || out[1] != in[1] {
		t.Fatalf("got %q", out)
	}
}

func startServer(t *testing.T) *Client {
	t.Helper()
	cfg := config.Default()
	cfg.Search.Algorithm = "astar"
	s, err := server.NewServer(cfg)
	if err != nil {
		t.Fatal(err)
	}
	s.WakeWorkers(2)
	mux := http.NewServeMux()
	s.Routes(mux)
	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)
	return NewClient(ts.URL)
}

func TestClient(t *testing.T) {
	client := startServer(t)

	resp, err := client.Solve("P . .\n", "", true)
	if err != nil {
		t.Fatal(err)
	}
	if !resp.Found || resp.Cost != 4 || resp.Solution != "..0.1\n" {
		t.Fatalf("response = %+v", resp)
	}

	if _, err := client.Solve("P.\n", "dijkstra", false); err == nil {
		t.Fatal("expected error for unknown algorithm")
	}

	algos, err := client.Algorithms()
	if err != nil {
		t.Fatal(err)
	}
	if algos.Default != "astar" {
		t.Fatalf("algorithms = %+v", algos)
	}

	batch, err := client.SolveBatch([]types.SolveRequest{{Maze: "P.\n"}, {Maze: "P%.\n"}})
	if err != nil {
		t.Fatal(err)
	}
	if len(batch) != 2 || !batch[0].Found || batch[1].Found {
		t.Fatalf("batch = %+v", batch)
	}
}

func TestRunnerSolveChunked(t *testing.T) {
	client := startServer(t)
	mazes, err := GenerateMazes(rand.New(rand.NewSource(11)), 23, 7, 9, 3, 0.2)
	if err != nil {
		t.Fatal(err)
	}
	mazes = append(mazes, "not a maze\n")

	r := NewRunner(3)
	defer r.Close()

	stats := r.SolveChunked(client, mazes, "bfs", true, 5)
	if stats.Sent != len(mazes) {
		t.Fatalf("sent %d of %d", stats.Sent, len(mazes))
	}
	if stats.Failed != 1 {
		t.Fatalf("stats = %+v", stats)
	}
	if stats.Solved+stats.Unsolved != len(mazes)-1 {
		t.Fatalf("stats = %+v", stats)
	}

	// stats are per call
	again := r.SolveChunked(client, mazes[:2], "bfs", true, 5)
	if again.Sent != 2 {
		t.Fatalf("second run sent %d", again.Sent)
	}
}

func TestClientTruncatedResponse(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// promise more bytes than are sent
		w.Header().Set("Content-Length", "100")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"id":"`))
	}))
	defer ts.Close()

	_, err := NewClient(ts.URL).Solve("P.\n", "bfs", false)
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatalf("err = %v", err)
	}
}
