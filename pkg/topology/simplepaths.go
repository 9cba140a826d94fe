package topology

// AllSimpleNodePaths enumerates every simple path (no repeated node) from
// src to dst with at most cutoffHops edges. It backs all_paths_reservable_bw,
// which is a distinct query from the shortest-path machinery above: it wants
// every usable route up to a hop bound, not just minimum-cost ones.
func (g *Graph) AllSimpleNodePaths(src, dst string, cutoffHops int) [][]string {
	if _, exists := g.Adjacency[src]; !exists {
		return nil
	}
	if _, exists := g.Adjacency[dst]; !exists {
		return nil
	}

	var out [][]string
	visited := map[string]bool{src: true}
	path := []string{src}
	var walk func(node string)
	walk = func(node string) {
		if node == dst {
			seq := make([]string, len(path))
			copy(seq, path)
			out = append(out, seq)
			return
		}
		if len(path)-1 >= cutoffHops {
			return
		}
		// Parallel edges to the same neighbor give the same node path, so
		// each neighbor is expanded once.
		expanded := make(map[string]bool)
		for _, e := range g.Neighbors(node) {
			if visited[e.To] || expanded[e.To] {
				continue
			}
			expanded[e.To] = true
			visited[e.To] = true
			path = append(path, e.To)
			walk(e.To)
			path = path[:len(path)-1]
			visited[e.To] = false
		}
	}
	walk(src)
	return out
}
