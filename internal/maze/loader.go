package maze

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Parse reads a text maze: one line per row, one byte per column.
func Parse(r io.Reader) (*Grid, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var rows [][]byte
	for scanner.Scan() {
		line := bytes.TrimSuffix(scanner.Bytes(), []byte{'\r'})
		row := make([]byte, len(line))
		copy(row, line)
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read maze: %w", err)
	}

	// trailing blank lines are not rows
	for len(rows) > 0 && len(rows[len(rows)-1]) == 0 {
		rows = rows[:len(rows)-1]
	}
	return New(rows)
}

func LoadMaze(fileName string) (*Grid, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, fmt.Errorf("failed to open maze %s: %w", fileName, err)
	}
	defer f.Close()

	g, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse maze %s: %w", fileName, err)
	}
	return g, nil
}

func (g *Grid) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, g.String())
	return int64(n), err
}

// Dump writes the grid's current terrain to fileName.
func Dump(g *Grid, fileName string) error {
	f, err := os.Create(fileName)
	if err != nil {
		return fmt.Errorf("failed to dump maze %s: %w", fileName, err)
	}
	if _, err := g.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to dump maze %s: %w", fileName, err)
	}
	return f.Close()
}

// SolutionFileName names the dump of a solved maze: "mazes/big.txt" solved
// with astar becomes "mazes/big_astar_soln.txt".
func SolutionFileName(mazeFile, algorithm string) string {
	base := strings.TrimSuffix(mazeFile, filepath.Ext(mazeFile))
	return fmt.Sprintf("%s_%s_soln.txt", base, algorithm)
}
