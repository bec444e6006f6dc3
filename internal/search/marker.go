package search

const orderSymbols = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// orderMarker hands out the symbols that label pellets in visiting order.
// After 'Z' it wraps to '0', so mazes with more than 62 pellets repeat labels.
type orderMarker struct {
	next int
}

func newOrderMarker() *orderMarker { return &orderMarker{} }

func (m *orderMarker) Next() byte {
	s := orderSymbols[m.next]
	m.next = (m.next + 1) % len(orderSymbols)
	return s
}
