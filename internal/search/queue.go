package search

import "container/heap"

type queueItem struct {
	Cell     int
	Priority int

	// push order, breaks priority ties so the first discovered wins
	seq uint64
}

// PriorityQueue is a min-heap of cells. The same cell may sit in the queue
// more than once; callers drop stale copies when they pop them.
type PriorityQueue struct {
	items []*queueItem
	next  uint64
}

// return number of items in the queue
func (pq PriorityQueue) Len() int { return len(pq.items) }

func (pq PriorityQueue) Less(i, j int) bool {
	if pq.items[i].Priority != pq.items[j].Priority {
		return pq.items[i].Priority < pq.items[j].Priority
	}
	return pq.items[i].seq < pq.items[j].seq
}

func (pq PriorityQueue) Swap(i, j int) { pq.items[i], pq.items[j] = pq.items[j], pq.items[i] }

func (pq *PriorityQueue) Push(x interface{}) {
	item := x.(*queueItem)
	item.seq = pq.next
	pq.next++
	pq.items = append(pq.items, item)
}

func (pq *PriorityQueue) Pop() interface{} {
	n := len(pq.items)
	old := pq.items[n-1]
	pq.items[n-1] = nil
	pq.items = pq.items[:n-1]
	return old
}

func (pq *PriorityQueue) PushCell(cell, priority int) {
	heap.Push(pq, &queueItem{Cell: cell, Priority: priority})
}

func (pq *PriorityQueue) PopCell() int {
	return heap.Pop(pq).(*queueItem).Cell
}

func newPriorityQueue() *PriorityQueue {
	pq := &PriorityQueue{items: []*queueItem{}}
	heap.Init(pq)
	return pq
}
