package core

import "pkgresolver/internal/types"

// queueItem is one entry of the search frontier. Ordering matches the
// pack's golang-dep resolver, which also drives its "unselected" version
// queue with container/heap over a slice-backed heap.Interface.
type queueItem struct {
	state    types.SearchState
	priority float64
	index    int
}

// priorityQueue orders queueItems by priority ascending; ties are broken
// by preferring the state with more committed choices (more search
// progress), so the frontier drains deeper branches first among equals.
type priorityQueue []*queueItem

func (pq priorityQueue) Len() int { return len(pq) }

func (pq priorityQueue) Less(i, j int) bool {
	if pq[i].priority != pq[j].priority {
		return pq[i].priority < pq[j].priority
	}
	return pq[i].state.Choices.Len() > pq[j].state.Choices.Len()
}

func (pq priorityQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}

func (pq *priorityQueue) Push(x any) {
	item := x.(*queueItem)
	item.index = len(*pq)
	*pq = append(*pq, item)
}

func (pq *priorityQueue) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*pq = old[:n-1]
	return item
}
