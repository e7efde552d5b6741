package graph

import (
	"container/heap"
	"math"
)

// ShortestPathLength computes the shortest-path distance from s to t over g
// using Dijkstra's algorithm with non-negative float weights and a
// lazy-decrease-key heap: a stale entry is simply skipped once its node has
// been finalized rather than removed in place.
//
// Returns math.Inf(1) if t is unreachable from s, or if s == t and g has no
// nodes at all. Returns 0 when s == t and g is non-empty (a trivial path);
// membership of s itself is not checked in that case.
//
// Complexity: O((V + E) log V).
func ShortestPathLength(g GraphService, s, t Node) float64 {
	if s == t {
		if g.NodeCount() == 0 {
			return math.Inf(1)
		}

		return 0
	}

	dist := map[Node]float64{s: 0}
	visited := make(map[Node]bool)

	pq := make(distPQ, 0, 1)
	heap.Init(&pq)
	heap.Push(&pq, &distItem{node: s, dist: 0})

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*distItem)
		u := item.node
		d := item.dist

		if visited[u] {
			continue
		}
		if u == t {
			return d
		}
		visited[u] = true

		for _, v := range g.Neighbors(u) {
			w := g.EdgeWeight(u, v)
			if math.IsInf(w, 1) || w < 0 {
				continue
			}
			nd := d + w
			if cur, ok := dist[v]; !ok || nd < cur {
				dist[v] = nd
				heap.Push(&pq, &distItem{node: v, dist: nd})
			}
		}
	}

	return math.Inf(1)
}

// distItem is a (node, distance) pair stored in the Dijkstra priority queue.
type distItem struct {
	node Node
	dist float64
}

// distPQ is a min-heap of *distItem ordered by ascending dist.
type distPQ []*distItem

func (pq distPQ) Len() int            { return len(pq) }
func (pq distPQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq distPQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *distPQ) Push(x interface{}) { *pq = append(*pq, x.(*distItem)) }
func (pq *distPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
