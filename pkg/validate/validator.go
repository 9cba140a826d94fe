package validate

import (
	"github.com/dshills/netsim/pkg/model"
)

// Validate runs every structural and capacity check against net,
// accumulating failures into a single report. It never stops at the first
// problem: all checks run to completion so every violation is visible in
// one pass.
func Validate(net *model.Network) *Report {
	report := &Report{}

	checkCircuitFormation(net, report)
	checkPerNodeInterfaceUniqueness(net, report)
	checkReservedBandwidthBounds(net, report)
	checkReservedBandwidthConsistency(net, report)
	checkSRLGSymmetry(net, report)
	checkNodeNameUniqueness(net, report)

	return report
}

// checkCircuitFormation pairs every interface with its reverse-direction
// counterpart sharing circuit_id (via Network.Circuits), reports orphans,
// and checks capacity/failed-state parity on matched pairs.
func checkCircuitFormation(net *model.Network, report *Report) {
	circuits, orphans := net.Circuits()

	for _, iface := range orphans {
		report.Add("circuit_formation", "interface %s/%s (circuit %s) has no matching reverse interface", iface.NodeName, iface.Name, iface.CircuitID)
	}

	for _, c := range circuits {
		iface, peer := c.A, c.B
		if iface.Capacity != peer.Capacity {
			report.Add("capacity_parity", "circuit %s: capacity mismatch %s/%s=%.2f vs %s/%s=%.2f",
				iface.CircuitID, iface.NodeName, iface.Name, iface.Capacity, peer.NodeName, peer.Name, peer.Capacity)
		}
		if net.InterfaceDown(iface) != net.InterfaceDown(peer) {
			report.Add("capacity_parity", "circuit %s: failed-state mismatch between %s/%s and %s/%s",
				iface.CircuitID, iface.NodeName, iface.Name, peer.NodeName, peer.Name)
		}
	}
}

func checkPerNodeInterfaceUniqueness(net *model.Network, report *Report) {
	seen := make(map[string]int, len(net.Interfaces))
	for _, iface := range net.Interfaces {
		seen[iface.NodeName+"\x00"+iface.Name]++
	}
	for key, count := range seen {
		if count > 1 {
			report.Add("interface_uniqueness", "%d interfaces share the key %q", count, key)
		}
	}
}

func checkReservedBandwidthBounds(net *model.Network, report *Report) {
	for _, iface := range net.Interfaces {
		max := iface.MaxReservableBandwidth()
		if iface.ReservedBandwidth > max {
			report.Add("reserved_bandwidth_bounds", "interface %s/%s: reserved_bandwidth %.2f exceeds max reservable %.2f",
				iface.NodeName, iface.Name, iface.ReservedBandwidth, max)
		}
	}
}

func checkReservedBandwidthConsistency(net *model.Network, report *Report) {
	expected := make(map[string]float64, len(net.Interfaces))
	for _, lsp := range net.LSPs {
		if !lsp.Routed {
			continue
		}
		for _, iface := range lsp.Path.Interfaces {
			expected[iface.Key()] += lsp.ReservedBandwidth
		}
	}
	for key, iface := range net.Interfaces {
		want := expected[key]
		if !floatEqual(iface.ReservedBandwidth, want) {
			report.Add("reserved_bandwidth_consistency", "interface %s/%s: reserved_bandwidth %.4f does not equal sum of LSP reservations %.4f",
				iface.NodeName, iface.Name, iface.ReservedBandwidth, want)
		}
	}
}

func checkSRLGSymmetry(net *model.Network, report *Report) {
	for name, srlg := range net.SRLGs {
		for _, nodeName := range srlg.Nodes() {
			node, ok := net.Nodes[nodeName]
			if !ok || !node.InSRLG(name) {
				report.Add("srlg_symmetry", "srlg %s: node %s does not record membership", name, nodeName)
			}
		}
		for _, ifaceKey := range srlg.Interfaces() {
			iface, ok := net.Interfaces[ifaceKey]
			if !ok || !iface.InSRLG(name) {
				report.Add("srlg_symmetry", "srlg %s: interface %s does not record membership", name, ifaceKey)
			}
		}
	}
}

func checkNodeNameUniqueness(net *model.Network, report *Report) {
	seen := make(map[string]int, len(net.Nodes))
	for name, n := range net.Nodes {
		if name != n.Name {
			report.Add("node_name_uniqueness", "node stored under key %q has name %q", name, n.Name)
		}
		seen[n.Name]++
	}
	for name, count := range seen {
		if count > 1 {
			report.Add("node_name_uniqueness", "%d nodes share the name %q", count, name)
		}
	}
}

func floatEqual(a, b float64) bool {
	const epsilon = 1e-9
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	return diff <= epsilon
}
