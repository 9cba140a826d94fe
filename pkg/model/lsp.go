package model

import (
	"encoding/json"
	"fmt"
)

// LSPPath is the concrete interface sequence an LSP was placed on, plus the
// sum of interface costs along it at placement time.
type LSPPath struct {
	Interfaces       []*Interface
	BaselinePathCost int
}

// LSP is an RSVP-TE label-switched path from SourceNode to DestNode. Name
// is unique per source. ConfiguredSetupBandwidth, when set, fixes the
// setup bandwidth instead of deriving it from demand traffic.
type LSP struct {
	SourceNode               string
	DestNode                 string
	Name                     string
	ConfiguredSetupBandwidth *float64

	// Routed is false until the placer successfully places this LSP in a
	// tick. Path, SetupBandwidth, and ReservedBandwidth are meaningful only
	// when Routed is true; otherwise they carry the "Unrouted" sentinel
	// externally (see MarshalJSON).
	Routed            bool
	Path              LSPPath
	SetupBandwidth    float64
	ReservedBandwidth float64
}

// NewLSP creates an unrouted LSP. configuredSetupBandwidth may be nil for
// auto-bandwidth.
func NewLSP(source, dest, name string, configuredSetupBandwidth *float64) *LSP {
	return &LSP{SourceNode: source, DestNode: dest, Name: name, ConfiguredSetupBandwidth: configuredSetupBandwidth}
}

// Validate checks the LSP's own field invariants.
func (l *LSP) Validate() error {
	if l.Name == "" {
		return fmt.Errorf("lsp name cannot be empty")
	}
	if l.SourceNode == "" || l.DestNode == "" {
		return fmt.Errorf("lsp %s: source and dest cannot be empty", l.Name)
	}
	if l.SourceNode == l.DestNode {
		return fmt.Errorf("lsp %s: source and dest must differ", l.Name)
	}
	if l.ConfiguredSetupBandwidth != nil && *l.ConfiguredSetupBandwidth < 0 {
		return fmt.Errorf("lsp %s: configured_setup_bandwidth cannot be negative, got %f", l.Name, *l.ConfiguredSetupBandwidth)
	}
	return nil
}

// MarkUnrouted resets the LSP's placement state to Unrouted. Called at the
// start of every tick, and by the placer when no eligible path is found.
func (l *LSP) MarkUnrouted() {
	l.Routed = false
	l.Path = LSPPath{}
	l.SetupBandwidth = 0
	l.ReservedBandwidth = 0
}

// Place commits a successful placement: the LSP's interface sequence, its
// setup/reserved bandwidth, and the baseline cost of the path taken.
func (l *LSP) Place(path []*Interface, baselineCost int, setupBandwidth float64) {
	l.Routed = true
	l.Path = LSPPath{Interfaces: path, BaselinePathCost: baselineCost}
	l.SetupBandwidth = setupBandwidth
	l.ReservedBandwidth = setupBandwidth
}

func (l *LSP) String() string {
	if !l.Routed {
		return fmt.Sprintf("LSP[%s: %s->%s Unrouted]", l.Name, l.SourceNode, l.DestNode)
	}
	return fmt.Sprintf("LSP[%s: %s->%s setup=%.2f reserved=%.2f hops=%d]",
		l.Name, l.SourceNode, l.DestNode, l.SetupBandwidth, l.ReservedBandwidth, len(l.Path.Interfaces))
}

// lspJSON is the externalized shape of an LSP.
type lspJSON struct {
	SourceNode               string      `json:"source_node"`
	DestNode                 string      `json:"dest_node"`
	Name                     string      `json:"name"`
	ConfiguredSetupBandwidth *float64    `json:"configured_setup_bandwidth,omitempty"`
	Path                     interface{} `json:"path"`
	SetupBandwidth           interface{} `json:"setup_bandwidth"`
	ReservedBandwidth        interface{} `json:"reserved_bandwidth"`
}

// MarshalJSON externalizes the LSP, preserving the "Unrouted" sentinel on
// Path, SetupBandwidth, and ReservedBandwidth when the LSP did not place.
func (l *LSP) MarshalJSON() ([]byte, error) {
	out := lspJSON{
		SourceNode:               l.SourceNode,
		DestNode:                 l.DestNode,
		Name:                     l.Name,
		ConfiguredSetupBandwidth: l.ConfiguredSetupBandwidth,
	}
	if !l.Routed {
		out.Path = unroutedSentinel
		out.SetupBandwidth = unroutedSentinel
		out.ReservedBandwidth = unroutedSentinel
		return json.Marshal(out)
	}
	names := make([]string, len(l.Path.Interfaces))
	for i, iface := range l.Path.Interfaces {
		names[i] = iface.NodeName + ":" + iface.Name
	}
	out.Path = struct {
		Interfaces       []string `json:"interfaces"`
		BaselinePathCost int      `json:"baseline_path_cost"`
	}{Interfaces: names, BaselinePathCost: l.Path.BaselinePathCost}
	out.SetupBandwidth = l.SetupBandwidth
	out.ReservedBandwidth = l.ReservedBandwidth
	return json.Marshal(out)
}
