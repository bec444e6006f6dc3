package search

import (
	"math/rand"
)

// GoalSet holds the pellets still to be visited. pos maps each member to its
// slot in cells, which stays dense for uniform sampling.
type GoalSet struct {
	cells []int
	pos   map[int]int
}

func NewGoalSet(cells []int) *GoalSet {
	s := &GoalSet{
		cells: make([]int, 0, len(cells)),
		pos:   make(map[int]int, len(cells)),
	}
	for _, c := range cells {
		if _, ok := s.pos[c]; ok {
			continue
		}
		s.pos[c] = len(s.cells)
		s.cells = append(s.cells, c)
	}
	return s
}

func (s *GoalSet) Has(cell int) bool {
	_, ok := s.pos[cell]
	return ok
}
func (s *GoalSet) Len() int    { return len(s.cells) }
func (s *GoalSet) Empty() bool { return len(s.cells) == 0 }

func (s *GoalSet) Remove(cell int) {
	i, ok := s.pos[cell]
	if !ok {
		return
	}

	// swap with the last member to keep the slice dense
	last := s.cells[len(s.cells)-1]
	s.cells[i] = last
	s.pos[last] = i
	s.cells = s.cells[:len(s.cells)-1]
	delete(s.pos, cell)
}

func (s *GoalSet) Each(fn func(cell int)) {
	for _, c := range s.cells {
		fn(c)
	}
}

// Sample returns one member chosen uniformly at random.
func (s *GoalSet) Sample(rng *rand.Rand) int {
	return s.cells[rng.Intn(len(s.cells))]
}
