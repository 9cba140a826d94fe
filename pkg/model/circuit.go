package model

import (
	"fmt"
	"sort"
)

// Circuit is the derived pairing of two opposing interfaces that share a
// CircuitID. Circuits are never declared directly; they are derived on
// demand by Network.Circuits, which package validate's circuit-formation
// check and package export both call, and are a read-only view.
type Circuit struct {
	CircuitID string
	A         *Interface
	B         *Interface
}

// Capacity returns the circuit's shared capacity. Both interfaces are
// required (by validation) to agree on this value.
func (c *Circuit) Capacity() float64 {
	return c.A.Capacity
}

// Failed reports whether the circuit is down. Both interfaces are required
// (by validation) to agree on this value.
func (c *Circuit) Failed() bool {
	return c.A.Failed()
}

func (c *Circuit) String() string {
	return fmt.Sprintf("Circuit[%s: %s<->%s]", c.CircuitID, c.A.NodeName, c.B.NodeName)
}

// Circuits pairs every interface in the network with its reverse-direction
// counterpart sharing CircuitID, returning the matched circuits plus any
// interfaces that had no such counterpart (orphans). This is the same
// pairing package validate's circuit-formation check performs; both share
// this one implementation so the derived Circuit view and the invariant
// check can never drift apart. Interfaces are visited in key order so
// which side of a pair ends up as A vs. B is deterministic across calls.
func (net *Network) Circuits() (circuits []*Circuit, orphans []*Interface) {
	matched := make(map[string]bool, len(net.Interfaces))

	keys := make([]string, 0, len(net.Interfaces))
	for key := range net.Interfaces {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if matched[key] {
			continue
		}
		iface := net.Interfaces[key]
		var peer *Interface
		for _, otherKey := range keys {
			if otherKey == key || matched[otherKey] {
				continue
			}
			other := net.Interfaces[otherKey]
			if other.CircuitID == iface.CircuitID && other.NodeName == iface.RemoteNodeName && other.RemoteNodeName == iface.NodeName {
				peer = other
				break
			}
		}
		if peer == nil {
			orphans = append(orphans, iface)
			continue
		}
		matched[key] = true
		matched[peer.Key()] = true
		circuits = append(circuits, &Circuit{CircuitID: iface.CircuitID, A: iface, B: peer})
	}
	return circuits, orphans
}
