package model

import "fmt"

// SRLG is a named Shared Risk Link Group: a bundle of nodes and/or
// interfaces that fail together when the group is failed.
type SRLG struct {
	Name       string
	nodes      map[string]bool
	interfaces map[string]bool // keyed by Interface.Key()
	failed     bool
}

// NewSRLG creates an empty, unfailed SRLG.
func NewSRLG(name string) *SRLG {
	return &SRLG{
		Name:       name,
		nodes:      make(map[string]bool),
		interfaces: make(map[string]bool),
	}
}

// Validate checks the SRLG's own invariants.
func (s *SRLG) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("srlg name cannot be empty")
	}
	return nil
}

// Failed reports the SRLG's own administrative failure state.
func (s *SRLG) Failed() bool {
	return s.failed
}

// Nodes returns the member node names.
func (s *SRLG) Nodes() []string {
	names := make([]string, 0, len(s.nodes))
	for n := range s.nodes {
		names = append(names, n)
	}
	return names
}

// Interfaces returns the member interface keys (Interface.Key()).
func (s *SRLG) Interfaces() []string {
	keys := make([]string, 0, len(s.interfaces))
	for k := range s.interfaces {
		keys = append(keys, k)
	}
	return keys
}

func (s *SRLG) String() string {
	status := "up"
	if s.failed {
		status = "failed"
	}
	return fmt.Sprintf("SRLG[%s: %s, %d nodes, %d interfaces]", s.Name, status, len(s.nodes), len(s.interfaces))
}
