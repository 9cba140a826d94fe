package loader_test

import (
	"strings"
	"testing"

	"github.com/dshills/netsim/pkg/loader"
)

const validModel = `INTERFACES_TABLE
node_object_name	remote_node_object_name	name	cost	capacity	circuit_id	rsvp_enabled	percent_reservable_bandwidth
A	B	eth0	10	100	c1	True	100
B	A	eth0	10	100	c1	True	100

NODES_TABLE
name	lon	lat
A	-122.4	37.7
B	-73.9	40.7

DEMANDS_TABLE
source	dest	traffic	name
A	B	50	d1

RSVP_LSP_TABLE
source	dest	name	configured_setup_bw
A	B	lsp1
`

func TestLoadFromBytesValidModel(t *testing.T) {
	net, err := loader.LoadFromBytes([]byte(validModel))
	if err != nil {
		t.Fatalf("LoadFromBytes: %v", err)
	}
	if len(net.Interfaces) != 2 {
		t.Fatalf("expected 2 interfaces, got %d", len(net.Interfaces))
	}
	if len(net.Demands) != 1 {
		t.Fatalf("expected 1 demand, got %d", len(net.Demands))
	}
	if len(net.LSPs) != 1 {
		t.Fatalf("expected 1 lsp, got %d", len(net.LSPs))
	}
	a, ok := net.GetInterface("A", "eth0")
	if !ok {
		t.Fatalf("expected interface A/eth0")
	}
	if !a.RSVPEnabled {
		t.Fatalf("expected rsvp_enabled=true")
	}
	node := net.Nodes["A"]
	if node.Lon != -122.4 || node.Lat != 37.7 {
		t.Fatalf("expected node A coordinates to be set from NODES_TABLE, got %+v", node)
	}
	lsp := net.LSPs["A\x00lsp1"]
	if lsp.ConfiguredSetupBandwidth != nil {
		t.Fatalf("expected blank configured_setup_bw to mean auto-bandwidth (nil), got %v", *lsp.ConfiguredSetupBandwidth)
	}
}

func TestLoadRejectsCircuitIDAppearingOnce(t *testing.T) {
	model := `INTERFACES_TABLE
node_object_name	remote_node_object_name	name	cost	capacity	circuit_id
A	B	eth0	10	100	c1

DEMANDS_TABLE
source	dest	traffic	name
A	B	10	d1
`
	_, err := loader.LoadFromBytes([]byte(model))
	if err == nil {
		t.Fatalf("expected error for circuit_id appearing once")
	}
	if !strings.Contains(err.Error(), "c1") {
		t.Fatalf("expected error to name the offending circuit_id, got %v", err)
	}
}

func TestLoadRejectsCircuitIDAppearingThreeTimes(t *testing.T) {
	model := `INTERFACES_TABLE
node_object_name	remote_node_object_name	name	cost	capacity	circuit_id
A	B	eth0	10	100	c1
B	A	eth0	10	100	c1
A	C	eth1	10	100	c1

DEMANDS_TABLE
source	dest	traffic	name
A	B	10	d1
`
	_, err := loader.LoadFromBytes([]byte(model))
	if err == nil {
		t.Fatalf("expected error for circuit_id appearing three times")
	}
}

func TestLoadRejectsMissingRequiredTable(t *testing.T) {
	model := `NODES_TABLE
name	lon	lat
A	0	0
`
	_, err := loader.LoadFromBytes([]byte(model))
	if err == nil {
		t.Fatalf("expected error for missing INTERFACES_TABLE")
	}
}

func TestLoadRejectsMissingColumn(t *testing.T) {
	model := `INTERFACES_TABLE
node_object_name	remote_node_object_name	name	cost	circuit_id
A	B	eth0	10	c1
B	A	eth0	10	c1

DEMANDS_TABLE
source	dest	traffic	name
A	B	10	d1
`
	_, err := loader.LoadFromBytes([]byte(model))
	if err == nil {
		t.Fatalf("expected error for missing capacity column")
	}
	if !strings.Contains(err.Error(), "capacity") {
		t.Fatalf("expected error to name the missing column, got %v", err)
	}
}

func TestLoadDefaultsRSVPEnabledAndPercentReservable(t *testing.T) {
	model := `INTERFACES_TABLE
node_object_name	remote_node_object_name	name	cost	capacity	circuit_id
A	B	eth0	10	100	c1
B	A	eth0	10	100	c1

DEMANDS_TABLE
source	dest	traffic	name
A	B	10	d1
`
	net, err := loader.LoadFromBytes([]byte(model))
	if err != nil {
		t.Fatalf("LoadFromBytes: %v", err)
	}
	a, _ := net.GetInterface("A", "eth0")
	if !a.RSVPEnabled {
		t.Fatalf("expected default rsvp_enabled=true")
	}
	if a.PercentReservableBandwidth != 100 {
		t.Fatalf("expected default percent_reservable_bandwidth=100, got %v", a.PercentReservableBandwidth)
	}
}
