package sim

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"mazesearch/internal/types"
)

type Client struct {
	BaseURL string
	Http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: baseURL,
		Http: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

// Solve posts one maze and returns the server's answer. An empty algo uses
// the server default.
func (c *Client) Solve(mazeText, algo string, dots bool) (types.SolveResponse, error) {
	q := url.Values{}
	if algo != "" {
		q.Set("algo", algo)
	}
	q.Set("dot", strconv.FormatBool(dots))

	var result types.SolveResponse
	resp, err := c.Http.Post(c.BaseURL+"/api/solve?"+q.Encode(), "text/plain", bytes.NewBufferString(mazeText))
	if err != nil {
		return result, err
	}
	// close the connection after the function ends
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return result, fmt.Errorf("failed to read solve response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return result, fmt.Errorf("solve failed, status %d: %s", resp.StatusCode, bytes.TrimSpace(body))
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return result, err
	}
	return result, nil
}

// SolveBatch sends every entry in one request.
func (c *Client) SolveBatch(entries []types.SolveRequest) ([]types.SolveResponse, error) {
	jsonData, _ := json.Marshal(entries)
	resp, err := c.Http.Post(c.BaseURL+"/api/solve/batch", "application/json", bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("Server returned status: %d", resp.StatusCode)
	}
	var results []types.SolveResponse
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, err
	}
	return results, nil
}

func (c *Client) Algorithms() (types.AlgorithmsResponse, error) {
	var result types.AlgorithmsResponse
	resp, err := c.Http.Get(c.BaseURL + "/api/algorithms")
	if err != nil {
		return result, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return result, fmt.Errorf("Server returned status: %d", resp.StatusCode)
	}
	err = json.NewDecoder(resp.Body).Decode(&result)
	return result, err
}
