package model

import "testing"

func TestAddCircuitCreatesOpposingInterfaces(t *testing.T) {
	net := NewNetwork()
	if err := net.AddCircuit("A", "B", "eth0", "eth0", 10, 10, 1000, false, "c1"); err != nil {
		t.Fatalf("AddCircuit: %v", err)
	}

	a, ok := net.GetInterface("A", "eth0")
	if !ok {
		t.Fatalf("expected interface A/eth0")
	}
	b, ok := net.GetInterface("B", "eth0")
	if !ok {
		t.Fatalf("expected interface B/eth0")
	}
	if a.RemoteNodeName != "B" || b.RemoteNodeName != "A" {
		t.Fatalf("interfaces do not point at each other: %+v %+v", a, b)
	}
	if a.CircuitID != "c1" || b.CircuitID != "c1" {
		t.Fatalf("expected shared circuit id, got %s %s", a.CircuitID, b.CircuitID)
	}
	if _, ok := net.Nodes["A"]; !ok {
		t.Fatalf("expected node A to be auto-created")
	}
}

func TestAddCircuitRejectsDuplicateCircuitID(t *testing.T) {
	net := NewNetwork()
	if err := net.AddCircuit("A", "B", "eth0", "eth0", 10, 10, 1000, false, "c1"); err != nil {
		t.Fatalf("AddCircuit: %v", err)
	}
	err := net.AddCircuit("A", "C", "eth1", "eth0", 10, 10, 1000, false, "c1")
	if err == nil {
		t.Fatalf("expected duplicate circuit_id error")
	}
}

func TestAddCircuitRejectsDuplicateInterfaceName(t *testing.T) {
	net := NewNetwork()
	if err := net.AddCircuit("A", "B", "eth0", "eth0", 10, 10, 1000, false, "c1"); err != nil {
		t.Fatalf("AddCircuit: %v", err)
	}
	err := net.AddCircuit("A", "C", "eth0", "eth1", 10, 10, 1000, false, "c2")
	if err == nil {
		t.Fatalf("expected duplicate interface name error")
	}
	if _, ok := net.GetInterface("C", "eth1"); ok {
		t.Fatalf("second interface of the failed circuit should have been rolled back")
	}
}

func TestSRLGFailurePropagatesAndUnfailRespectsIndependentFailure(t *testing.T) {
	net := NewNetwork()
	if err := net.AddCircuit("A", "B", "eth0", "eth0", 10, 10, 1000, false, "c1"); err != nil {
		t.Fatalf("AddCircuit: %v", err)
	}
	if _, err := net.AddSRLG("conduit-1"); err != nil {
		t.Fatalf("AddSRLG: %v", err)
	}
	if err := net.AddNodeToSRLG("conduit-1", "A"); err != nil {
		t.Fatalf("AddNodeToSRLG: %v", err)
	}
	if err := net.FailNode("A"); err != nil {
		t.Fatalf("FailNode: %v", err)
	}
	if err := net.FailSRLG("conduit-1"); err != nil {
		t.Fatalf("FailSRLG: %v", err)
	}
	if !net.Nodes["A"].Failed() {
		t.Fatalf("expected A failed after both independent and SRLG failure")
	}

	if err := net.UnfailSRLG("conduit-1"); err != nil {
		t.Fatalf("UnfailSRLG: %v", err)
	}
	if !net.Nodes["A"].Failed() {
		t.Fatalf("A was independently failed; unfailing the SRLG must not clear it")
	}

	if err := net.UnfailNode("A"); err != nil {
		t.Fatalf("UnfailNode: %v", err)
	}
	if net.Nodes["A"].Failed() {
		t.Fatalf("A should be up once both independent and SRLG failure are cleared")
	}
}

func TestSRLGFailureCountHandlesMultipleMemberships(t *testing.T) {
	net := NewNetwork()
	if err := net.AddCircuit("A", "B", "eth0", "eth0", 10, 10, 1000, false, "c1"); err != nil {
		t.Fatalf("AddCircuit: %v", err)
	}
	if _, err := net.AddSRLG("srlg-1"); err != nil {
		t.Fatalf("AddSRLG: %v", err)
	}
	if _, err := net.AddSRLG("srlg-2"); err != nil {
		t.Fatalf("AddSRLG: %v", err)
	}
	if err := net.AddNodeToSRLG("srlg-1", "A"); err != nil {
		t.Fatalf("AddNodeToSRLG: %v", err)
	}
	if err := net.AddNodeToSRLG("srlg-2", "A"); err != nil {
		t.Fatalf("AddNodeToSRLG: %v", err)
	}
	if err := net.FailSRLG("srlg-1"); err != nil {
		t.Fatalf("FailSRLG srlg-1: %v", err)
	}
	if err := net.FailSRLG("srlg-2"); err != nil {
		t.Fatalf("FailSRLG srlg-2: %v", err)
	}
	if !net.Nodes["A"].Failed() {
		t.Fatalf("expected A failed while either SRLG is failed")
	}
	if err := net.UnfailSRLG("srlg-1"); err != nil {
		t.Fatalf("UnfailSRLG srlg-1: %v", err)
	}
	if !net.Nodes["A"].Failed() {
		t.Fatalf("A still belongs to failed srlg-2, must remain failed")
	}
	if err := net.UnfailSRLG("srlg-2"); err != nil {
		t.Fatalf("UnfailSRLG srlg-2: %v", err)
	}
	if net.Nodes["A"].Failed() {
		t.Fatalf("expected A up once both SRLGs are unfailed")
	}
}

func TestResetCountersClearsTickState(t *testing.T) {
	net := NewNetwork()
	if err := net.AddCircuit("A", "B", "eth0", "eth0", 10, 10, 1000, false, "c1"); err != nil {
		t.Fatalf("AddCircuit: %v", err)
	}
	iface, _ := net.GetInterface("A", "eth0")
	iface.ReservedBandwidth = 500
	iface.Traffic = 250

	lsp := NewLSP("A", "B", "lsp1", nil)
	lsp.Place([]*Interface{iface}, 10, 500)
	if err := net.AddLSP(lsp); err != nil {
		t.Fatalf("AddLSP: %v", err)
	}

	d := NewDemand("A", "B", "d1", 100)
	d.Path = RoutedVia(Carrier{Interfaces: []*Interface{iface}})
	if err := net.AddDemand(d); err != nil {
		t.Fatalf("AddDemand: %v", err)
	}

	net.ResetCounters()

	if iface.ReservedBandwidth != 0 || iface.Traffic != 0 {
		t.Fatalf("expected interface counters reset, got reserved=%f traffic=%f", iface.ReservedBandwidth, iface.Traffic)
	}
	if lsp.Routed {
		t.Fatalf("expected lsp unrouted after reset")
	}
	if d.Path.Routed {
		t.Fatalf("expected demand unrouted after reset")
	}
}

func TestAddDemandRejectsDuplicateName(t *testing.T) {
	net := NewNetwork()
	net.EnsureNode("A")
	net.EnsureNode("B")
	if err := net.AddDemand(NewDemand("A", "B", "d1", 10)); err != nil {
		t.Fatalf("AddDemand: %v", err)
	}
	if err := net.AddDemand(NewDemand("A", "B", "d1", 20)); err == nil {
		t.Fatalf("expected duplicate demand name error")
	}
}

func TestInterfaceDownReflectsNodeFailure(t *testing.T) {
	net := NewNetwork()
	if err := net.AddCircuit("A", "B", "eth0", "eth0", 10, 10, 1000, false, "c1"); err != nil {
		t.Fatalf("AddCircuit: %v", err)
	}
	iface, _ := net.GetInterface("A", "eth0")
	if net.InterfaceDown(iface) {
		t.Fatalf("expected interface up initially")
	}
	if err := net.FailNode("A"); err != nil {
		t.Fatalf("FailNode: %v", err)
	}
	if !net.InterfaceDown(iface) {
		t.Fatalf("expected interface down once its node is failed")
	}
}

// ParallelLinkModel is a plain alias for Network: parallel circuits between
// the same node pair have always been legal, so there is nothing to
// restrict for the "parallel-link-capable" name to mean.
func TestParallelLinkModelAliasAcceptsParallelCircuits(t *testing.T) {
	var net *ParallelLinkModel = NewNetwork()
	if err := net.AddCircuit("A", "B", "eth0", "eth0", 10, 10, 100, false, "c1"); err != nil {
		t.Fatalf("AddCircuit: %v", err)
	}
	if err := net.AddCircuit("A", "B", "eth1", "eth1", 10, 10, 100, false, "c2"); err != nil {
		t.Fatalf("expected a second parallel circuit between A and B to be legal: %v", err)
	}
	circuits, orphans := net.Circuits()
	if len(circuits) != 2 || len(orphans) != 0 {
		t.Fatalf("expected 2 paired circuits and no orphans, got %d circuits, %d orphans", len(circuits), len(orphans))
	}
}

// TestCircuitsPairsOrphansSeparately exercises Network.Circuits directly:
// a dangling interface with no reverse counterpart is reported as an
// orphan rather than silently dropped or paired incorrectly.
func TestCircuitsPairsOrphansSeparately(t *testing.T) {
	net := NewNetwork()
	if err := net.AddCircuit("A", "B", "eth0", "eth0", 10, 10, 100, false, "c1"); err != nil {
		t.Fatalf("AddCircuit: %v", err)
	}
	orphan := NewInterface("C", "D", "eth0", 5, 50, "dangling")
	if err := net.AddInterface(orphan); err != nil {
		t.Fatalf("AddInterface: %v", err)
	}

	circuits, orphans := net.Circuits()
	if len(circuits) != 1 {
		t.Fatalf("expected exactly 1 paired circuit, got %d", len(circuits))
	}
	if len(orphans) != 1 || orphans[0] != orphan {
		t.Fatalf("expected the dangling interface to be reported as the sole orphan, got %+v", orphans)
	}
}
