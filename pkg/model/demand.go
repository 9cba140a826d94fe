package model

import (
	"encoding/json"
	"fmt"
)

// Demand is a unidirectional IP traffic matrix entry from SourceNode to
// DestNode. Name is unique per source.
type Demand struct {
	SourceNode string
	DestNode   string
	Name       string
	Traffic    float64

	// Path is reset to Unrouted() at the start of every simulation tick and
	// filled in by the demand router.
	Path RoutePath
}

// NewDemand creates a demand with an unrouted path.
func NewDemand(source, dest, name string, traffic float64) *Demand {
	return &Demand{SourceNode: source, DestNode: dest, Name: name, Traffic: traffic, Path: Unrouted()}
}

// Validate checks the demand's own field invariants.
func (d *Demand) Validate() error {
	if d.Name == "" {
		return fmt.Errorf("demand name cannot be empty")
	}
	if d.SourceNode == "" || d.DestNode == "" {
		return fmt.Errorf("demand %s: source and dest cannot be empty", d.Name)
	}
	if d.SourceNode == d.DestNode {
		return fmt.Errorf("demand %s: source and dest must differ", d.Name)
	}
	if d.Traffic < 0 {
		return fmt.Errorf("demand %s: traffic cannot be negative, got %f", d.Name, d.Traffic)
	}
	return nil
}

func (d *Demand) String() string {
	status := "Unrouted"
	if d.Path.Routed {
		status = fmt.Sprintf("routed via %d carrier(s)", len(d.Path.Carriers))
	}
	return fmt.Sprintf("Demand[%s: %s->%s traffic=%.2f %s]", d.Name, d.SourceNode, d.DestNode, d.Traffic, status)
}

// demandJSON is the externalized shape of a Demand.
type demandJSON struct {
	SourceNode string    `json:"source_node"`
	DestNode   string    `json:"dest_node"`
	Name       string    `json:"name"`
	Traffic    float64   `json:"traffic"`
	Path       RoutePath `json:"path"`
}

// MarshalJSON externalizes the demand, preserving the "Unrouted" sentinel
// on its Path field.
func (d *Demand) MarshalJSON() ([]byte, error) {
	return json.Marshal(demandJSON{
		SourceNode: d.SourceNode,
		DestNode:   d.DestNode,
		Name:       d.Name,
		Traffic:    d.Traffic,
		Path:       d.Path,
	})
}
