package config

import (
	"encoding/json"
	"log"
	"os"
	"sync"
	"time"
)

type Config struct {
	Server struct {
		Port      string `json:"server_port"`
		Workers   int    `json:"workers"`
		QueueSize int    `json:"queue_size"`
		MaxBytes  int64  `json:"max_maze_bytes"`
	} `json:"server"`

	Search struct {
		Algorithm string `json:"algorithm"`
		Dots      bool   `json:"dots"`
		Seed      int64  `json:"seed"`
	} `json:"search"`

	Simulation struct {
		ServerURL   string  `json:"server_url"`
		NumMazes    int     `json:"num_mazes"`
		Concurrency int     `json:"concurrency"`
		Rows        int     `json:"rows"`
		Cols        int     `json:"cols"`
		Pellets     int     `json:"pellets"`
		WallDensity float64 `json:"wall_density"`
	} `json:"simulation"`

	Render struct {
		CellSize int `json:"cell_size"`
	} `json:"render"`
}

var (
	Global = Default()
	once   sync.Once
)

func Default() Config {
	var c Config
	c.Server.Port = ":8080"
	c.Server.QueueSize = 100
	c.Server.MaxBytes = 1 << 20
	c.Search.Algorithm = "bfs"
	c.Simulation.ServerURL = "http://localhost"
	c.Simulation.NumMazes = 50
	c.Simulation.Concurrency = 4
	c.Simulation.Rows = 20
	c.Simulation.Cols = 40
	c.Simulation.Pellets = 5
	c.Simulation.WallDensity = 0.25
	c.Render.CellSize = 16
	return c
}

// Parse decodes data on top of the defaults.
func Parse(data []byte) (Config, error) {
	c := Default()
	if err := json.Unmarshal(data, &c); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Load reads filename into Global. Only the first call has any effect.
func Load(filename string) error {
	var err error
	once.Do(func() {
		data, e := os.ReadFile(filename)
		if e != nil {
			err = e
			return
		}
		Global, err = Parse(data)
	})
	return err
}

func TimeTrack(start time.Time, name string) {
	elapsed := time.Since(start)
	log.Printf("%s took %s", name, elapsed)
}
