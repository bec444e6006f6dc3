package maze

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

func mustParse(t *testing.T, text string) *Grid {
	t.Helper()
	g, err := Parse(strings.NewReader(text))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return g
}

func TestParse(t *testing.T) {
	g := mustParse(t, "%%%%\n%P.%\r\n%. %\n%%%%\n\n")

	if g.Rows != 4 || g.Cols != 4 {
		t.Fatalf("got %dx%d, want 4x4", g.Rows, g.Cols)
	}
	if g.Start != g.Index(1, 1) {
		t.Errorf("start = %d, want %d", g.Start, g.Index(1, 1))
	}
	want := []int{g.Index(1, 2), g.Index(2, 1)}
	if !slices.Equal(g.Goals, want) {
		t.Errorf("goals = %v, want %v", g.Goals, want)
	}
	for i := range g.Cells {
		if g.Cells[i].Parent != NoParent {
			t.Fatalf("cell %d has parent %d", i, g.Cells[i].Parent)
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		text string
		want error
	}{
		{"empty", "", ErrEmptyMaze},
		{"blank lines", "\n\n", ErrEmptyMaze},
		{"ragged", "%%%\n%P\n%%%\n", ErrRaggedRows},
		{"no start", "%%%\n%.%\n%%%\n", ErrNoStart},
		{"two starts", "%%%%\n%PP%\n%%%%\n", ErrMultipleStarts},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.text))
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestNeighbors(t *testing.T) {
	g := mustParse(t, "P  \n   \n  .\n")

	tests := []struct {
		row, col int
		want     []int
	}{
		{0, 0, []int{g.Index(1, 0), g.Index(0, 1)}},
		{1, 1, []int{g.Index(0, 1), g.Index(2, 1), g.Index(1, 0), g.Index(1, 2)}},
		{2, 2, []int{g.Index(1, 2), g.Index(2, 1)}},
		{0, 2, []int{g.Index(1, 2), g.Index(0, 1)}},
	}
	for _, tt := range tests {
		got := g.Neighbors(g.Index(tt.row, tt.col))
		if !slices.Equal(got, tt.want) {
			t.Errorf("Neighbors(%d,%d) = %v, want %v", tt.row, tt.col, got, tt.want)
		}
	}
}

func TestResetScores(t *testing.T) {
	g := mustParse(t, "P..\n")
	for i := range g.Cells {
		g.Cells[i].Cost = 5 + i
		g.Cells[i].Heuristic = 3
		g.Cells[i].Parent = 0
	}

	g.ResetScores(1)
	for i, c := range g.Cells {
		wantCost := 0
		if i == 1 {
			wantCost = 6
		}
		if c.Cost != wantCost || c.Heuristic != 0 {
			t.Errorf("cell %d: cost=%d heuristic=%d", i, c.Cost, c.Heuristic)
		}
		if c.Parent != 0 {
			t.Errorf("cell %d: parent cleared by ResetScores", i)
		}
	}

	g.ResetSearchState()
	for i, c := range g.Cells {
		if c.Cost != 0 || c.Parent != NoParent {
			t.Errorf("cell %d not cleared: %+v", i, c)
		}
	}
}

func TestCloneIsIndependent(t *testing.T) {
	g := mustParse(t, "P.\n")
	clone := g.Clone()
	clone.Cells[1].Terrain = '0'
	clone.Goals[0] = 0

	if g.Cells[1].Terrain != PelletChar || g.Goals[0] != 1 {
		t.Fatal("clone shares storage with original")
	}
}

func TestPruneUnreachable(t *testing.T) {
	g := mustParse(t, "P.%.\n%%%.\n")

	removed := g.PruneUnreachable()
	if removed != 2 {
		t.Fatalf("removed = %d, want 2", removed)
	}
	if !slices.Equal(g.Goals, []int{1}) {
		t.Fatalf("goals = %v", g.Goals)
	}
	if got := g.String(); got != "P.% \n%%% \n" {
		t.Fatalf("grid = %q", got)
	}
}

func TestDumpRoundTrip(t *testing.T) {
	text := "%%%%%\n%P .%\n%%%%%\n"
	g := mustParse(t, text)

	out := filepath.Join(t.TempDir(), "dump.txt")
	if err := Dump(g, out); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != text {
		t.Fatalf("dump = %q, want %q", data, text)
	}

	loaded, err := LoadMaze(out)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Start != g.Start || !slices.Equal(loaded.Goals, g.Goals) {
		t.Fatal("reloaded maze differs")
	}
}

func TestLoadMazeMissingFile(t *testing.T) {
	if _, err := LoadMaze(filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Fatal("expected error")
	}
}

func TestSolutionFileName(t *testing.T) {
	tests := []struct {
		in, algo, want string
	}{
		{"medium.txt", "bfs", "medium_bfs_soln.txt"},
		{"mazes/big.txt", "astar", "mazes/big_astar_soln.txt"},
		{"noext", "dfs", "noext_dfs_soln.txt"},
	}
	for _, tt := range tests {
		if got := SolutionFileName(tt.in, tt.algo); got != tt.want {
			t.Errorf("SolutionFileName(%q, %q) = %q, want %q", tt.in, tt.algo, got, tt.want)
		}
	}
}

func TestWriteTo(t *testing.T) {
	text := "%%%\n%P%\n%.%\n"
	g := mustParse(t, text)

	var sb strings.Builder
	n, err := g.WriteTo(&sb)
	if err != nil {
		t.Fatal(err)
	}
	if sb.String() != text || n != int64(len(text)) {
		t.Fatalf("wrote %d bytes %q", n, sb.String())
	}
}

func TestDumpMissingDir(t *testing.T) {
	g := mustParse(t, "P.\n")
	if err := Dump(g, filepath.Join(t.TempDir(), "no", "such", "dir.txt")); err == nil {
		t.Fatal("expected error")
	}
}
