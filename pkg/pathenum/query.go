package pathenum

import (
	"github.com/dshills/netsim/pkg/model"
	"github.com/dshills/netsim/pkg/topology"
)

// ShortestPath finds every concrete interface sequence achieving the
// minimum cost from src to dst under a bandwidth and RSVP-free filter
// (include_failed=false, rsvp_required=false, needed_bw=neededBW). It
// mirrors the engine's own internal path queries so callers can ask the
// same question C5/C6 ask without reaching into pkg/topology directly.
func ShortestPath(net *model.Network, src, dst string, neededBW float64) (cost int, paths [][]*topology.Edge, ok bool) {
	g := topology.Build(net, false, neededBW, false)
	c, nodePaths, ok := g.AllShortestNodePaths(src, dst)
	if !ok {
		return 0, nil, false
	}
	return c, Normalize(g, nodePaths), true
}

// AllPathsReservableBW enumerates every simple (no repeated node) path from
// src to dst up to cutoffHops edges, filtered to interfaces whose
// reservable bandwidth meets neededBW, optionally including failed
// interfaces. Unlike ShortestPath, it is not limited to minimum-cost
// node routes: it answers "what could still carry this much traffic," the
// question the original engine's all_paths_reservable_bw exposed. Each
// node path is expanded through Normalize, so where parallel interfaces
// join two adjacent nodes only the lowest-cost ones appear in the result.
func AllPathsReservableBW(net *model.Network, src, dst string, includeFailed bool, cutoffHops int, neededBW float64) [][]*topology.Edge {
	g := topology.Build(net, includeFailed, neededBW, false)
	nodePaths := g.AllSimpleNodePaths(src, dst, cutoffHops)
	if len(nodePaths) == 0 {
		return nil
	}
	return Normalize(g, nodePaths)
}
