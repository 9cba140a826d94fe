package demand

import (
	"sort"

	"github.com/dshills/netsim/pkg/model"
	"github.com/dshills/netsim/pkg/pathenum"
	"github.com/dshills/netsim/pkg/topology"
)

// Route routes every demand in net: each demand rides routed LSPs between
// its endpoints if any exist, otherwise it falls back to plain IP ECMP.
// Once every demand has a path, Route aggregates the resulting traffic
// split onto every interface that carries it.
func Route(net *model.Network) {
	lspsByEndpoints := groupRoutedLSPs(net)

	demands := sortedDemands(net)
	for _, d := range demands {
		key := d.SourceNode + "\x00" + d.DestNode
		if lsps := lspsByEndpoints[key]; len(lsps) > 0 {
			d.Path = model.RoutedVia(lspCarriers(lsps)...)
			continue
		}
		d.Path = routeIPECMP(net, d)
	}

	for _, d := range demands {
		aggregateTraffic(d)
	}
}

// groupRoutedLSPs indexes every currently-routed LSP by (source, dest).
func groupRoutedLSPs(net *model.Network) map[string][]*model.LSP {
	index := make(map[string][]*model.LSP)
	for _, lsp := range net.LSPs {
		if !lsp.Routed {
			continue
		}
		key := lsp.SourceNode + "\x00" + lsp.DestNode
		index[key] = append(index[key], lsp)
	}
	for _, lsps := range index {
		sort.Slice(lsps, func(i, j int) bool { return lsps[i].Name < lsps[j].Name })
	}
	return index
}

func lspCarriers(lsps []*model.LSP) []model.Carrier {
	carriers := make([]model.Carrier, len(lsps))
	for i, lsp := range lsps {
		carriers[i] = model.Carrier{LSP: lsp}
	}
	return carriers
}

func routeIPECMP(net *model.Network, d *model.Demand) model.RoutePath {
	g := topology.Build(net, false, 0, false)
	_, nodePaths, ok := g.AllShortestNodePaths(d.SourceNode, d.DestNode)
	if !ok {
		return model.Unrouted()
	}
	sequences := pathenum.Normalize(g, nodePaths)
	if len(sequences) == 0 {
		return model.Unrouted()
	}
	carriers := make([]model.Carrier, len(sequences))
	for i, seq := range sequences {
		interfaces := make([]*model.Interface, len(seq))
		for j, e := range seq {
			interfaces[j] = e.Interface
		}
		carriers[i] = model.Carrier{Interfaces: interfaces}
	}
	return model.RoutedVia(carriers...)
}

// aggregateTraffic applies d's contribution to every interface on its
// path, per the traffic split rule: IP-ECMP carriers split d.traffic
// evenly across all k concrete paths; LSP carriers split d.traffic evenly
// across the k_lsp LSPs riding it, and each LSP's own (single) placed path
// receives that share in full, since a placed LSP carries exactly one
// concrete interface sequence.
func aggregateTraffic(d *model.Demand) {
	if !d.Path.Routed || len(d.Path.Carriers) == 0 {
		return
	}
	if d.Path.Carriers[0].IsLSP() {
		share := d.Traffic / float64(len(d.Path.Carriers))
		for _, c := range d.Path.Carriers {
			for _, iface := range c.LSP.Path.Interfaces {
				iface.Traffic += share
			}
		}
		return
	}
	share := d.Traffic / float64(len(d.Path.Carriers))
	for _, c := range d.Path.Carriers {
		for _, iface := range c.Interfaces {
			iface.Traffic += share
		}
	}
}

func sortedDemands(net *model.Network) []*model.Demand {
	keys := make([]string, 0, len(net.Demands))
	for k := range net.Demands {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	demands := make([]*model.Demand, len(keys))
	for i, k := range keys {
		demands[i] = net.Demands[k]
	}
	return demands
}
