package export

import (
	"sort"

	"github.com/dshills/netsim/pkg/model"
)

// NodeView is the externalized shape of a node in a snapshot.
type NodeView struct {
	Name   string `json:"name"`
	Failed bool   `json:"failed"`
}

// InterfaceView is the externalized shape of an interface in a snapshot.
type InterfaceView struct {
	Node              string  `json:"node"`
	Name              string  `json:"name"`
	RemoteNode        string  `json:"remote_node"`
	CircuitID         string  `json:"circuit_id"`
	Capacity          float64 `json:"capacity"`
	Traffic           float64 `json:"traffic"`
	ReservedBandwidth float64 `json:"reserved_bandwidth"`
	Failed            bool    `json:"failed"`
}

// CircuitView is the externalized shape of a derived circuit: the pairing
// of two opposing interfaces sharing a circuit_id, as computed by
// Network.Circuits().
type CircuitView struct {
	CircuitID string  `json:"circuit_id"`
	NodeA     string  `json:"node_a"`
	NodeB     string  `json:"node_b"`
	Capacity  float64 `json:"capacity"`
	Failed    bool    `json:"failed"`
}

// Snapshot is a point-in-time, JSON-serializable view of a simulated
// network: the arena's entities plus the routing outcome of the tick that
// produced it.
type Snapshot struct {
	Nodes      []NodeView      `json:"nodes"`
	Interfaces []InterfaceView `json:"interfaces"`
	Circuits   []CircuitView   `json:"circuits"`
	Demands    []*model.Demand `json:"demands"`
	LSPs       []*model.LSP    `json:"lsps"`
}

// BuildSnapshot flattens a Network's maps into deterministically ordered
// slices suitable for external consumption.
func BuildSnapshot(net *model.Network) *Snapshot {
	snap := &Snapshot{}

	for name, n := range net.Nodes {
		_ = name
		snap.Nodes = append(snap.Nodes, NodeView{Name: n.Name, Failed: n.Failed()})
	}
	sort.Slice(snap.Nodes, func(i, j int) bool { return snap.Nodes[i].Name < snap.Nodes[j].Name })

	for _, iface := range net.Interfaces {
		snap.Interfaces = append(snap.Interfaces, InterfaceView{
			Node:              iface.NodeName,
			Name:              iface.Name,
			RemoteNode:        iface.RemoteNodeName,
			CircuitID:         iface.CircuitID,
			Capacity:          iface.Capacity,
			Traffic:           iface.Traffic,
			ReservedBandwidth: iface.ReservedBandwidth,
			Failed:            net.InterfaceDown(iface),
		})
	}
	sort.Slice(snap.Interfaces, func(i, j int) bool {
		if snap.Interfaces[i].Node != snap.Interfaces[j].Node {
			return snap.Interfaces[i].Node < snap.Interfaces[j].Node
		}
		return snap.Interfaces[i].Name < snap.Interfaces[j].Name
	})

	circuits, _ := net.Circuits()
	for _, c := range circuits {
		snap.Circuits = append(snap.Circuits, CircuitView{
			CircuitID: c.CircuitID,
			NodeA:     c.A.NodeName,
			NodeB:     c.B.NodeName,
			Capacity:  c.Capacity(),
			Failed:    net.InterfaceDown(c.A),
		})
	}
	sort.Slice(snap.Circuits, func(i, j int) bool { return snap.Circuits[i].CircuitID < snap.Circuits[j].CircuitID })

	for _, d := range net.Demands {
		snap.Demands = append(snap.Demands, d)
	}
	sort.Slice(snap.Demands, func(i, j int) bool {
		if snap.Demands[i].SourceNode != snap.Demands[j].SourceNode {
			return snap.Demands[i].SourceNode < snap.Demands[j].SourceNode
		}
		return snap.Demands[i].Name < snap.Demands[j].Name
	})

	for _, l := range net.LSPs {
		snap.LSPs = append(snap.LSPs, l)
	}
	sort.Slice(snap.LSPs, func(i, j int) bool {
		if snap.LSPs[i].SourceNode != snap.LSPs[j].SourceNode {
			return snap.LSPs[i].SourceNode < snap.LSPs[j].SourceNode
		}
		return snap.LSPs[i].Name < snap.LSPs[j].Name
	})

	return snap
}
