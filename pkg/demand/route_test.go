package demand_test

import (
	"testing"

	"github.com/dshills/netsim/pkg/demand"
	"github.com/dshills/netsim/pkg/model"
)

func TestRouteIPECMPSplitsTrafficAcrossParallelLinks(t *testing.T) {
	net := model.NewNetwork()
	if err := net.AddCircuit("A", "B", "eth0", "eth0", 10, 10, 100, false, "c1"); err != nil {
		t.Fatalf("AddCircuit: %v", err)
	}
	if err := net.AddCircuit("A", "B", "eth1", "eth1", 10, 10, 100, false, "c2"); err != nil {
		t.Fatalf("AddCircuit: %v", err)
	}
	if err := net.AddDemand(model.NewDemand("A", "B", "d1", 100)); err != nil {
		t.Fatalf("AddDemand: %v", err)
	}

	demand.Route(net)

	d := net.Demands["A\x00d1"]
	if !d.Path.Routed {
		t.Fatalf("expected demand routed")
	}
	if len(d.Path.Carriers) != 2 {
		t.Fatalf("expected 2 ECMP carriers, got %d", len(d.Path.Carriers))
	}
	eth0, _ := net.GetInterface("A", "eth0")
	eth1, _ := net.GetInterface("A", "eth1")
	if eth0.Traffic != 50 || eth1.Traffic != 50 {
		t.Fatalf("expected 50/50 split, got %f and %f", eth0.Traffic, eth1.Traffic)
	}
}

func TestRoutePrefersRoutedLSPOverIPPath(t *testing.T) {
	net := model.NewNetwork()
	if err := net.AddCircuit("A", "B", "eth0", "eth0", 10, 10, 100, false, "c1"); err != nil {
		t.Fatalf("AddCircuit: %v", err)
	}
	lsp := model.NewLSP("A", "B", "lsp1", nil)
	iface, _ := net.GetInterface("A", "eth0")
	lsp.Place([]*model.Interface{iface}, 10, 60)
	if err := net.AddLSP(lsp); err != nil {
		t.Fatalf("AddLSP: %v", err)
	}
	if err := net.AddDemand(model.NewDemand("A", "B", "d1", 60)); err != nil {
		t.Fatalf("AddDemand: %v", err)
	}

	demand.Route(net)

	d := net.Demands["A\x00d1"]
	if !d.Path.Routed || len(d.Path.Carriers) != 1 || !d.Path.Carriers[0].IsLSP() {
		t.Fatalf("expected demand to ride the single routed LSP")
	}
	if iface.Traffic != 60 {
		t.Fatalf("expected interface traffic 60 from the single LSP carrier, got %f", iface.Traffic)
	}
}

func TestRouteSplitsAcrossMultipleLSPsRidingSameEndpoints(t *testing.T) {
	net := model.NewNetwork()
	if err := net.AddCircuit("A", "B", "eth0", "eth0", 10, 10, 100, false, "c1"); err != nil {
		t.Fatalf("AddCircuit: %v", err)
	}
	if err := net.AddCircuit("A", "B", "eth1", "eth1", 10, 10, 100, false, "c2"); err != nil {
		t.Fatalf("AddCircuit: %v", err)
	}
	iface0, _ := net.GetInterface("A", "eth0")
	iface1, _ := net.GetInterface("A", "eth1")
	lsp1 := model.NewLSP("A", "B", "lsp1", nil)
	lsp1.Place([]*model.Interface{iface0}, 10, 40)
	lsp2 := model.NewLSP("A", "B", "lsp2", nil)
	lsp2.Place([]*model.Interface{iface1}, 10, 40)
	if err := net.AddLSP(lsp1); err != nil {
		t.Fatalf("AddLSP lsp1: %v", err)
	}
	if err := net.AddLSP(lsp2); err != nil {
		t.Fatalf("AddLSP lsp2: %v", err)
	}
	if err := net.AddDemand(model.NewDemand("A", "B", "d1", 80)); err != nil {
		t.Fatalf("AddDemand: %v", err)
	}

	demand.Route(net)

	if iface0.Traffic != 40 || iface1.Traffic != 40 {
		t.Fatalf("expected 40/40 split across the two LSPs, got %f and %f", iface0.Traffic, iface1.Traffic)
	}
}

func TestRouteMarksUnroutedWhenNoPathExists(t *testing.T) {
	net := model.NewNetwork()
	net.EnsureNode("A")
	net.EnsureNode("B")
	if err := net.AddDemand(model.NewDemand("A", "B", "d1", 10)); err != nil {
		t.Fatalf("AddDemand: %v", err)
	}

	demand.Route(net)

	d := net.Demands["A\x00d1"]
	if d.Path.Routed {
		t.Fatalf("expected demand unrouted with no connecting circuit")
	}
}
