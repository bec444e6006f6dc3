package types

// format of a solve answer
type SolveResponse struct {
	ID        string `json:"id"`
	Algorithm string `json:"algorithm"`
	Found     bool   `json:"found"`
	Cost      int    `json:"cost"`
	Expanded  int    `json:"expanded"`
	// pellet symbols in visiting order, multi-goal searches only
	Order    string `json:"order,omitempty"`
	Solution string `json:"solution"`
	Err      string `json:"error,omitempty"`
}

// format of the algorithm listing
type AlgorithmsResponse struct {
	Algorithms []string `json:"algorithms"`
	Default    string   `json:"default"`
}

// one entry of a batch solve request
type SolveRequest struct {
	Maze      string `json:"maze"`
	Algorithm string `json:"algorithm,omitempty"`
	Dots      *bool  `json:"dots,omitempty"`
}
