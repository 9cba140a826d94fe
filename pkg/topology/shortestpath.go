package topology

import (
	"container/heap"
	"math"
)

// nodeItem is one (vertex, tentative distance) entry in the shortest-path
// priority queue.
type nodeItem struct {
	id   string
	dist int
}

// nodePQ is a min-heap of *nodeItem ordered by ascending distance. Like the
// algorithm it is grounded on, it uses a lazy-decrease-key strategy:
// improving a vertex's distance pushes a new entry rather than mutating an
// existing one; stale entries are skipped on pop via the visited set.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}

// AllShortestNodePaths runs a multi-predecessor Dijkstra from src and
// returns the cost of the shortest src-to-dst path plus every node-hop
// sequence achieving that cost. ok is false if dst is unreachable from src
// (including when src or dst is not a vertex of g).
func (g *Graph) AllShortestNodePaths(src, dst string) (cost int, paths [][]string, ok bool) {
	if _, exists := g.Adjacency[src]; !exists {
		return 0, nil, false
	}
	if _, exists := g.Adjacency[dst]; !exists {
		return 0, nil, false
	}
	if src == dst {
		return 0, [][]string{{src}}, true
	}

	dist := make(map[string]int, len(g.Adjacency))
	preds := make(map[string][]string, len(g.Adjacency))
	predSeen := make(map[string]map[string]bool, len(g.Adjacency))
	visited := make(map[string]bool, len(g.Adjacency))
	for v := range g.Adjacency {
		dist[v] = math.MaxInt64
	}
	dist[src] = 0

	pq := make(nodePQ, 0, len(g.Adjacency))
	heap.Init(&pq)
	heap.Push(&pq, &nodeItem{id: src, dist: 0})

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*nodeItem)
		u, d := item.id, item.dist
		if visited[u] {
			continue
		}
		visited[u] = true

		for _, e := range g.Neighbors(u) {
			newDist := d + e.Cost
			switch {
			case newDist < dist[e.To]:
				dist[e.To] = newDist
				preds[e.To] = []string{u}
				predSeen[e.To] = map[string]bool{u: true}
				heap.Push(&pq, &nodeItem{id: e.To, dist: newDist})
			case newDist == dist[e.To]:
				// A node-hop predecessor is recorded once per (u, e.To) pair:
				// parallel edges realizing the same tied hop are the Path
				// Enumerator's concern (pkg/pathenum.Normalize), not this
				// node-hop search's.
				if !predSeen[e.To][u] {
					preds[e.To] = append(preds[e.To], u)
					predSeen[e.To][u] = true
				}
			}
		}
	}

	if dist[dst] == math.MaxInt64 {
		return 0, nil, false
	}
	var sequences [][]string
	reconstructPaths(preds, src, dst, []string{dst}, &sequences)
	return dist[dst], sequences, true
}

// reconstructPaths walks the predecessor DAG backward from node, appending
// every complete src-to-dst node sequence it finds to out. tail holds the
// path built so far, in reverse (node first, src last).
func reconstructPaths(preds map[string][]string, src, node string, tail []string, out *[][]string) {
	if node == src {
		seq := make([]string, len(tail))
		for i, n := range tail {
			seq[len(tail)-1-i] = n
		}
		*out = append(*out, seq)
		return
	}
	for _, p := range preds[node] {
		next := make([]string, len(tail)+1)
		copy(next, tail)
		next[len(tail)] = p
		reconstructPaths(preds, src, p, next, out)
	}
}
