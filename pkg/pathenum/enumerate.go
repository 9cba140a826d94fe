package pathenum

import "github.com/dshills/netsim/pkg/topology"

// Normalize expands every node-hop sequence in nodePaths into all concrete
// interface sequences that realize it at minimum per-hop cost in g.
//
// For each adjacent pair (n[j], n[j+1]) in a node-hop sequence, the set of
// edges from n[j] to n[j+1] whose cost equals the minimum cost among edges
// between that pair is the local ECMP set at that hop. The Cartesian
// product of the local ECMP sets across all hops yields one concrete
// interface sequence per combination.
func Normalize(g *topology.Graph, nodePaths [][]string) [][]*topology.Edge {
	var out [][]*topology.Edge
	for _, nodePath := range nodePaths {
		out = append(out, normalizeOne(g, nodePath)...)
	}
	return out
}

func normalizeOne(g *topology.Graph, nodePath []string) [][]*topology.Edge {
	if len(nodePath) < 2 {
		return nil
	}

	hopSets := make([][]*topology.Edge, 0, len(nodePath)-1)
	for i := 0; i < len(nodePath)-1; i++ {
		from, to := nodePath[i], nodePath[i+1]
		minCost := -1
		var candidates []*topology.Edge
		edges := g.Neighbors(from)
		for idx := range edges {
			e := &edges[idx]
			if e.To != to {
				continue
			}
			edge := e
			if minCost == -1 || e.Cost < minCost {
				minCost = e.Cost
				candidates = []*topology.Edge{edge}
			} else if e.Cost == minCost {
				candidates = append(candidates, edge)
			}
		}
		if len(candidates) == 0 {
			// No edge realizes this hop (should not happen for a path the
			// graph itself produced); abort this node-hop sequence.
			return nil
		}
		hopSets = append(hopSets, candidates)
	}

	return cartesianProduct(hopSets)
}

// cartesianProduct forms every combination picking one edge per hop set, in
// hop order.
func cartesianProduct(hopSets [][]*topology.Edge) [][]*topology.Edge {
	if len(hopSets) == 0 {
		return nil
	}
	combos := [][]*topology.Edge{{}}
	for _, set := range hopSets {
		var next [][]*topology.Edge
		for _, combo := range combos {
			for _, edge := range set {
				extended := make([]*topology.Edge, len(combo)+1)
				copy(extended, combo)
				extended[len(combo)] = edge
				next = append(next, extended)
			}
		}
		combos = next
	}
	return combos
}
