package topology

import (
	"sort"

	"github.com/dshills/netsim/pkg/model"
)

// Edge is one directed, eligible interface in the filtered multigraph.
type Edge struct {
	To        string
	Cost      int
	Interface *model.Interface
}

// Graph is a directed multigraph over node names, built from a Network
// filtered by failure state, reservable bandwidth, and RSVP eligibility.
// Every node in the source network appears as a vertex, even with no
// eligible outbound edges, so shortest-path queries return "no path"
// rather than "unknown vertex".
type Graph struct {
	Adjacency map[string][]Edge
}

// Build produces the filtered multigraph. An interface contributes an edge
// node -> remote_node iff:
//
//	(includeFailed || !down) && reservable_bandwidth >= neededBW && (!rsvpRequired || rsvp_enabled)
func Build(net *model.Network, includeFailed bool, neededBW float64, rsvpRequired bool) *Graph {
	g := &Graph{Adjacency: make(map[string][]Edge, len(net.Nodes))}
	for name := range net.Nodes {
		g.Adjacency[name] = nil
	}

	// Visit interfaces in key order so each node's edge list, and so every
	// path enumeration built on it, is the same on every call.
	keys := make([]string, 0, len(net.Interfaces))
	for key := range net.Interfaces {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		iface := net.Interfaces[key]
		down := net.InterfaceDown(iface)
		if !includeFailed && down {
			continue
		}
		if iface.ReservableBandwidth() < neededBW {
			continue
		}
		if rsvpRequired && !iface.RSVPEnabled {
			continue
		}
		g.Adjacency[iface.NodeName] = append(g.Adjacency[iface.NodeName], Edge{
			To:        iface.RemoteNodeName,
			Cost:      iface.Cost,
			Interface: iface,
		})
	}
	return g
}

// Neighbors returns the edges leaving node, or nil if node has none.
func (g *Graph) Neighbors(node string) []Edge {
	return g.Adjacency[node]
}
