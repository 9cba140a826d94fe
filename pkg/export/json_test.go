package export_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dshills/netsim/pkg/export"
	"github.com/dshills/netsim/pkg/model"
)

func testNetwork(t *testing.T) *model.Network {
	t.Helper()
	net := model.NewNetwork()
	if err := net.AddCircuit("A", "B", "eth0", "eth0", 10, 10, 1000, false, "c1"); err != nil {
		t.Fatalf("AddCircuit: %v", err)
	}
	if err := net.AddDemand(model.NewDemand("A", "B", "d1", 50)); err != nil {
		t.Fatalf("AddDemand: %v", err)
	}
	if err := net.AddLSP(model.NewLSP("A", "B", "lsp1", nil)); err != nil {
		t.Fatalf("AddLSP: %v", err)
	}
	return net
}

func TestExportJSONContainsUnroutedSentinel(t *testing.T) {
	net := testNetwork(t)
	snap := export.BuildSnapshot(net)

	data, err := export.ExportJSON(snap)
	if err != nil {
		t.Fatalf("ExportJSON: %v", err)
	}
	if !strings.Contains(string(data), `"Unrouted"`) {
		t.Fatalf("expected Unrouted sentinel in output, got %s", data)
	}

	var result map[string]interface{}
	if err := json.Unmarshal(data, &result); err != nil {
		t.Fatalf("ExportJSON produced invalid JSON: %v", err)
	}
}

func TestExportJSONCompactSmallerThanFormatted(t *testing.T) {
	net := testNetwork(t)
	snap := export.BuildSnapshot(net)

	compact, err := export.ExportJSONCompact(snap)
	if err != nil {
		t.Fatalf("ExportJSONCompact: %v", err)
	}
	formatted, err := export.ExportJSON(snap)
	if err != nil {
		t.Fatalf("ExportJSON: %v", err)
	}
	if len(compact) >= len(formatted) {
		t.Errorf("compact (%d) not smaller than formatted (%d)", len(compact), len(formatted))
	}
}

func TestSaveJSONToFile(t *testing.T) {
	net := testNetwork(t)
	snap := export.BuildSnapshot(net)
	path := filepath.Join(t.TempDir(), "snapshot.json")

	if err := export.SaveJSONToFile(snap, path); err != nil {
		t.Fatalf("SaveJSONToFile: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	var result map[string]interface{}
	if err := json.Unmarshal(data, &result); err != nil {
		t.Fatalf("saved file contains invalid JSON: %v", err)
	}
}

func TestBuildSnapshotOrdersDeterministically(t *testing.T) {
	net := testNetwork(t)
	snap1 := export.BuildSnapshot(net)
	snap2 := export.BuildSnapshot(net)

	data1, _ := export.ExportJSONCompact(snap1)
	data2, _ := export.ExportJSONCompact(snap2)
	if string(data1) != string(data2) {
		t.Errorf("expected repeated snapshots of the same network to serialize identically")
	}
}
