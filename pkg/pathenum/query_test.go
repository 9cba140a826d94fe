package pathenum_test

import (
	"testing"

	"github.com/dshills/netsim/pkg/model"
	"github.com/dshills/netsim/pkg/pathenum"
)

func buildDiamond(t *testing.T) *model.Network {
	t.Helper()
	net := model.NewNetwork()
	if err := net.AddCircuit("A", "B", "eth0", "eth0", 10, 10, 100, false, "c1"); err != nil {
		t.Fatalf("AddCircuit A-B: %v", err)
	}
	if err := net.AddCircuit("A", "C", "eth1", "eth0", 10, 10, 100, false, "c2"); err != nil {
		t.Fatalf("AddCircuit A-C: %v", err)
	}
	if err := net.AddCircuit("C", "B", "eth1", "eth1", 10, 10, 100, false, "c3"); err != nil {
		t.Fatalf("AddCircuit C-B: %v", err)
	}
	return net
}

func TestShortestPathFindsMinimumCostRoute(t *testing.T) {
	net := buildDiamond(t)
	cost, paths, ok := pathenum.ShortestPath(net, "A", "B", 0)
	if !ok {
		t.Fatalf("expected a path")
	}
	if cost != 10 {
		t.Fatalf("expected direct A-B cost 10, got %d", cost)
	}
	if len(paths) != 1 || len(paths[0]) != 1 {
		t.Fatalf("expected the single direct hop, got %v", paths)
	}
}

func TestShortestPathUnreachableReturnsNotOK(t *testing.T) {
	net := model.NewNetwork()
	net.EnsureNode("A")
	net.EnsureNode("B")
	_, _, ok := pathenum.ShortestPath(net, "A", "B", 0)
	if ok {
		t.Fatalf("expected no path")
	}
}

func TestAllPathsReservableBWRespectsCutoffAndBandwidth(t *testing.T) {
	net := buildDiamond(t)
	paths := pathenum.AllPathsReservableBW(net, "A", "B", false, 5, 0)
	if len(paths) != 2 {
		t.Fatalf("expected direct and via-C routes, got %d", len(paths))
	}

	iface, _ := net.GetInterface("A", "eth0")
	iface.ReservedBandwidth = 100 // saturate the direct A-B link

	paths = pathenum.AllPathsReservableBW(net, "A", "B", false, 5, 1)
	if len(paths) != 1 {
		t.Fatalf("expected only the via-C route once direct link is saturated, got %d", len(paths))
	}
}

func TestAllPathsReservableBWRespectsCutoffHopBound(t *testing.T) {
	net := buildDiamond(t)
	paths := pathenum.AllPathsReservableBW(net, "A", "B", false, 1, 0)
	if len(paths) != 1 {
		t.Fatalf("expected cutoff=1 to exclude the two-hop via-C route, got %d", len(paths))
	}
}
