package lspplace

import (
	"sort"

	"github.com/dshills/netsim/pkg/model"
	"github.com/dshills/netsim/pkg/pathenum"
	"github.com/dshills/netsim/pkg/rng"
	"github.com/dshills/netsim/pkg/topology"
)

// tieBreakPoint names the single decision point in the engine that consumes
// randomness: choosing among multiple fewest-hop, bandwidth-eligible LSP
// paths.
const tieBreakPoint = "lsp_path_tiebreak"

type group struct {
	source, dest string
	lsps         []*model.LSP
}

// Place groups every LSP in net by (source, dest), derives each LSP's
// setup bandwidth, and commits each to a concrete path in turn. masterSeed
// and configHash derive the tie-break RNG (see package rng) so that path
// selection among equally good candidates is reproducible.
func Place(net *model.Network, masterSeed uint64, configHash []byte) {
	tieBreak := rng.NewRNG(masterSeed, tieBreakPoint, configHash)

	groups := groupLSPs(net)
	for _, g := range groups {
		placeGroup(net, g, tieBreak)
	}
}

// groupLSPs buckets every LSP by its (source, dest) pair and returns the
// groups in a deterministic order (by source then dest), with each group's
// LSPs sorted by name.
func groupLSPs(net *model.Network) []*group {
	index := make(map[string]*group)
	var order []string
	for _, lsp := range net.LSPs {
		key := lsp.SourceNode + "\x00" + lsp.DestNode
		g, ok := index[key]
		if !ok {
			g = &group{source: lsp.SourceNode, dest: lsp.DestNode}
			index[key] = g
			order = append(order, key)
		}
		g.lsps = append(g.lsps, lsp)
	}
	sort.Strings(order)

	groups := make([]*group, 0, len(order))
	for _, key := range order {
		g := index[key]
		sort.Slice(g.lsps, func(i, j int) bool { return g.lsps[i].Name < g.lsps[j].Name })
		groups = append(groups, g)
	}
	return groups
}

func placeGroup(net *model.Network, g *group, tieBreak *rng.RNG) {
	totalDemandTraffic := 0.0
	for _, d := range net.Demands {
		if d.SourceNode == g.source && d.DestNode == g.dest {
			totalDemandTraffic += d.Traffic
		}
	}
	perLSPTraffic := totalDemandTraffic / float64(len(g.lsps))

	for _, lsp := range g.lsps {
		setupBandwidth := perLSPTraffic
		if lsp.ConfiguredSetupBandwidth != nil {
			setupBandwidth = *lsp.ConfiguredSetupBandwidth
		}
		placeOne(net, lsp, setupBandwidth, tieBreak)
	}
}

func placeOne(net *model.Network, lsp *model.LSP, setupBandwidth float64, tieBreak *rng.RNG) {
	g := topology.Build(net, false, setupBandwidth, true)
	_, nodePaths, ok := g.AllShortestNodePaths(lsp.SourceNode, lsp.DestNode)
	if !ok {
		lsp.MarkUnrouted()
		return
	}

	sequences := pathenum.Normalize(g, nodePaths)
	var eligible [][]*topology.Edge
	for _, seq := range sequences {
		if minReservableBandwidth(seq) >= setupBandwidth {
			eligible = append(eligible, seq)
		}
	}
	if len(eligible) == 0 {
		lsp.MarkUnrouted()
		return
	}

	chosen := choosePath(eligible, tieBreak)

	interfaces := make([]*model.Interface, len(chosen))
	baselineCost := 0
	for i, edge := range chosen {
		interfaces[i] = edge.Interface
		baselineCost += edge.Cost
	}
	for _, iface := range interfaces {
		iface.ReservedBandwidth += setupBandwidth
	}
	lsp.Place(interfaces, baselineCost, setupBandwidth)
}

func minReservableBandwidth(seq []*topology.Edge) float64 {
	min := seq[0].Interface.ReservableBandwidth()
	for _, e := range seq[1:] {
		if rb := e.Interface.ReservableBandwidth(); rb < min {
			min = rb
		}
	}
	return min
}

// choosePath applies the placement tie-break policy: prefer fewest hops; if
// still multiple, choose uniformly at random.
func choosePath(eligible [][]*topology.Edge, tieBreak *rng.RNG) []*topology.Edge {
	fewestHops := len(eligible[0])
	for _, seq := range eligible {
		if len(seq) < fewestHops {
			fewestHops = len(seq)
		}
	}
	var shortest [][]*topology.Edge
	for _, seq := range eligible {
		if len(seq) == fewestHops {
			shortest = append(shortest, seq)
		}
	}
	if len(shortest) == 1 {
		return shortest[0]
	}
	return shortest[tieBreak.Intn(len(shortest))]
}
