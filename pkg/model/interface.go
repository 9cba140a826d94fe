package model

import "fmt"

// Interface is a directed endpoint of a circuit, anchored on Node and
// pointing at RemoteNode. Two interfaces with the same CircuitID, one on
// each endpoint and oriented opposite to each other, form a Circuit.
type Interface struct {
	Name           string
	NodeName       string
	RemoteNodeName string
	Cost           int
	Capacity       float64
	CircuitID      string

	RSVPEnabled                bool
	PercentReservableBandwidth float64

	// srlgs is the set of SRLG names this interface belongs to.
	srlgs map[string]bool

	independentlyFailed bool
	srlgFailed          int

	// ReservedBandwidth is the sum of reservations from LSPs routed over
	// this interface. Mutated only by the LSP placer during a tick.
	ReservedBandwidth float64

	// Traffic is the sum of demand traffic attributed to this interface.
	// Mutated only by the demand router during a tick.
	Traffic float64
}

// NewInterface creates an interface with default RSVP/reservable-bandwidth
// settings (RSVP enabled, 100% reservable).
func NewInterface(node, remoteNode, name string, cost int, capacity float64, circuitID string) *Interface {
	return &Interface{
		Name:                       name,
		NodeName:                   node,
		RemoteNodeName:             remoteNode,
		Cost:                       cost,
		Capacity:                   capacity,
		CircuitID:                  circuitID,
		RSVPEnabled:                true,
		PercentReservableBandwidth: 100,
		srlgs:                      make(map[string]bool),
	}
}

// Key is the interface's per-node identity key (NodeName, Name).
func (i *Interface) Key() string {
	return ifaceKey(i.NodeName, i.Name)
}

// AddressKey is the interface's circuit-addressing key
// (NodeName, RemoteNodeName, CircuitID). No node may carry two interfaces
// sharing this triple.
func (i *Interface) AddressKey() string {
	return i.NodeName + "\x00" + i.RemoteNodeName + "\x00" + i.CircuitID
}

func ifaceKey(node, name string) string {
	return node + "\x00" + name
}

// Validate checks the interface's own field invariants.
func (i *Interface) Validate() error {
	if i.Name == "" {
		return fmt.Errorf("interface name cannot be empty")
	}
	if i.NodeName == "" {
		return fmt.Errorf("interface %s: node cannot be empty", i.Name)
	}
	if i.RemoteNodeName == "" {
		return fmt.Errorf("interface %s: remote node cannot be empty", i.Name)
	}
	if i.NodeName == i.RemoteNodeName {
		return fmt.Errorf("interface %s: node and remote node must differ, got %s", i.Name, i.NodeName)
	}
	if i.Cost <= 0 {
		return fmt.Errorf("interface %s: cost must be positive, got %d", i.Name, i.Cost)
	}
	if i.Capacity <= 0 {
		return fmt.Errorf("interface %s: capacity must be positive, got %f", i.Name, i.Capacity)
	}
	if i.CircuitID == "" {
		return fmt.Errorf("interface %s: circuit_id cannot be empty", i.Name)
	}
	if i.PercentReservableBandwidth < 0 || i.PercentReservableBandwidth > 100 {
		return fmt.Errorf("interface %s: percent_reservable_bandwidth must be in [0,100], got %f", i.Name, i.PercentReservableBandwidth)
	}
	return nil
}

// Failed reports whether the interface itself is down, independent of its
// node. Callers that need the effective (node-aware) failure state should
// use Network.InterfaceDown instead.
func (i *Interface) Failed() bool {
	return i.independentlyFailed || i.srlgFailed > 0
}

// InSRLG reports whether the interface belongs to the named SRLG.
func (i *Interface) InSRLG(name string) bool {
	return i.srlgs[name]
}

// ReservableBandwidth is the headroom available to new LSP reservations:
// capacity * percent_reservable_bandwidth / 100 - reserved_bandwidth.
func (i *Interface) ReservableBandwidth() float64 {
	return i.Capacity*i.PercentReservableBandwidth/100 - i.ReservedBandwidth
}

// MaxReservableBandwidth is capacity * percent_reservable_bandwidth / 100,
// the bound reserved_bandwidth must never exceed.
func (i *Interface) MaxReservableBandwidth() float64 {
	return i.Capacity * i.PercentReservableBandwidth / 100
}

// Utilization is traffic / capacity.
func (i *Interface) Utilization() float64 {
	if i.Capacity == 0 {
		return 0
	}
	return i.Traffic / i.Capacity
}

func (i *Interface) String() string {
	return fmt.Sprintf("Interface[%s %s->%s circuit=%s cost=%d cap=%.2f]",
		i.NodeName, i.Name, i.RemoteNodeName, i.CircuitID, i.Cost, i.Capacity)
}
