package model

import "fmt"

// Network is the arena owning every node, interface, demand, LSP, and SRLG
// in a topology. All cross-entity references inside the package are plain
// Go pointers into this arena's own maps, never copies, so mutating a
// reservation on an interface is visible everywhere that interface is
// referenced (an LSP's path, a demand's carrier list, and so on).
type Network struct {
	Nodes      map[string]*Node
	Interfaces map[string]*Interface // keyed by Interface.Key()
	SRLGs      map[string]*SRLG
	Demands    map[string]*Demand // keyed by SourceNode+"\x00"+Name
	LSPs       map[string]*LSP    // keyed by SourceNode+"\x00"+Name
}

// NewNetwork creates an empty network.
func NewNetwork() *Network {
	return &Network{
		Nodes:      make(map[string]*Node),
		Interfaces: make(map[string]*Interface),
		SRLGs:      make(map[string]*SRLG),
		Demands:    make(map[string]*Demand),
		LSPs:       make(map[string]*LSP),
	}
}

func demandKey(source, name string) string { return source + "\x00" + name }
func lspKey(source, name string) string    { return source + "\x00" + name }

// AddNode registers a node. Returns a ConstructionError if the node is
// invalid or its name is already taken by a different node object,
// including a bare node that EnsureNode created when a circuit or
// interface referenced the name first.
func (net *Network) AddNode(n *Node) error {
	if err := n.Validate(); err != nil {
		return newConstructionError("AddNode", "%v", err)
	}
	if existing, ok := net.Nodes[n.Name]; ok && existing != n {
		return newConstructionError("AddNode", "node %q already exists", n.Name)
	}
	net.Nodes[n.Name] = n
	return nil
}

// EnsureNode returns the node with the given name, creating a bare one
// (coordinates 0,0) if it does not exist yet. Interface addition uses this
// so that topologies can omit the NODES_TABLE entirely.
func (net *Network) EnsureNode(name string) *Node {
	if n, ok := net.Nodes[name]; ok {
		return n
	}
	n := NewNode(name, 0, 0)
	net.Nodes[name] = n
	return n
}

// AddCircuit creates two opposing interfaces sharing circuitID, one on
// nodeA pointing at nodeB and one on nodeB pointing at nodeA. circuitID is
// mandatory and must not already be in use. Both interfaces get nodeA/nodeB
// auto-created if they don't yet exist.
func (net *Network) AddCircuit(nodeA, nodeB, nameA, nameB string, costA, costB int, capacity float64, failed bool, circuitID string) error {
	if circuitID == "" {
		return newConstructionError("AddCircuit", "circuit_id is mandatory")
	}
	for _, iface := range net.Interfaces {
		if iface.CircuitID == circuitID {
			return newConstructionError("AddCircuit", "circuit_id %q already in use", circuitID)
		}
	}

	net.EnsureNode(nodeA)
	net.EnsureNode(nodeB)

	ifA := NewInterface(nodeA, nodeB, nameA, costA, capacity, circuitID)
	ifB := NewInterface(nodeB, nodeA, nameB, costB, capacity, circuitID)
	if failed {
		ifA.independentlyFailed = true
		ifB.independentlyFailed = true
	}

	if err := net.addInterface(ifA); err != nil {
		return fmt.Errorf("AddCircuit %s: %w", circuitID, err)
	}
	if err := net.addInterface(ifB); err != nil {
		net.removeInterface(ifA)
		return fmt.Errorf("AddCircuit %s: %w", circuitID, err)
	}
	return nil
}

// AddInterface registers a single, already-constructed interface. Unlike
// AddCircuit, it does not require the opposing interface to be supplied in
// the same call and does not force both sides of a circuit to share
// capacity: this is what package loader uses to load a TSV interfaces
// table row by row, leaving circuit pairing and capacity-parity checks to
// package validate. Node is auto-created if it doesn't exist; circuit_id
// must be non-empty.
func (net *Network) AddInterface(iface *Interface) error {
	if iface.CircuitID == "" {
		return newConstructionError("AddInterface", "circuit_id is mandatory")
	}
	net.EnsureNode(iface.NodeName)
	net.EnsureNode(iface.RemoteNodeName)
	return net.addInterface(iface)
}

// addInterface registers a single interface, enforcing the per-node
// identity invariants: unique Name per node, unique (RemoteNode, CircuitID)
// per node.
func (net *Network) addInterface(iface *Interface) error {
	if err := iface.Validate(); err != nil {
		return newConstructionError("AddInterface", "%v", err)
	}
	if _, exists := net.Interfaces[iface.Key()]; exists {
		return newConstructionError("AddInterface", "node %s already has an interface named %s", iface.NodeName, iface.Name)
	}
	for _, other := range net.Interfaces {
		if other.NodeName == iface.NodeName && other.AddressKey() == iface.AddressKey() {
			return newConstructionError("AddInterface", "node %s already has an interface to %s on circuit %s", iface.NodeName, iface.RemoteNodeName, iface.CircuitID)
		}
	}
	net.Interfaces[iface.Key()] = iface
	return nil
}

func (net *Network) removeInterface(iface *Interface) {
	delete(net.Interfaces, iface.Key())
}

// GetInterface looks up an interface by (node, name).
func (net *Network) GetInterface(node, name string) (*Interface, bool) {
	iface, ok := net.Interfaces[ifaceKey(node, name)]
	return iface, ok
}

// AddDemand registers a demand. Name must be unique per source.
func (net *Network) AddDemand(d *Demand) error {
	if err := d.Validate(); err != nil {
		return newConstructionError("AddDemand", "%v", err)
	}
	key := demandKey(d.SourceNode, d.Name)
	if _, exists := net.Demands[key]; exists {
		return newConstructionError("AddDemand", "demand %q from %s already exists", d.Name, d.SourceNode)
	}
	net.Demands[key] = d
	return nil
}

// AddLSP registers an LSP. Name must be unique per source.
func (net *Network) AddLSP(l *LSP) error {
	if err := l.Validate(); err != nil {
		return newConstructionError("AddLSP", "%v", err)
	}
	key := lspKey(l.SourceNode, l.Name)
	if _, exists := net.LSPs[key]; exists {
		return newConstructionError("AddLSP", "lsp %q from %s already exists", l.Name, l.SourceNode)
	}
	net.LSPs[key] = l
	return nil
}

// AddSRLG registers a new, empty SRLG.
func (net *Network) AddSRLG(name string) (*SRLG, error) {
	if _, exists := net.SRLGs[name]; exists {
		return nil, newConstructionError("AddSRLG", "srlg %q already exists", name)
	}
	s := NewSRLG(name)
	net.SRLGs[name] = s
	return s, nil
}

// AddNodeToSRLG records symmetric membership of node in srlg.
func (net *Network) AddNodeToSRLG(srlgName, nodeName string) error {
	srlg, ok := net.SRLGs[srlgName]
	if !ok {
		return newConstructionError("AddNodeToSRLG", "srlg %q does not exist", srlgName)
	}
	node, ok := net.Nodes[nodeName]
	if !ok {
		return newConstructionError("AddNodeToSRLG", "node %q does not exist", nodeName)
	}
	srlg.nodes[nodeName] = true
	node.srlgs[srlgName] = true
	if srlg.failed {
		node.srlgFailed++
	}
	return nil
}

// AddInterfaceToSRLG records symmetric membership of the (node, ifaceName)
// interface in srlg.
func (net *Network) AddInterfaceToSRLG(srlgName, nodeName, ifaceName string) error {
	srlg, ok := net.SRLGs[srlgName]
	if !ok {
		return newConstructionError("AddInterfaceToSRLG", "srlg %q does not exist", srlgName)
	}
	iface, ok := net.GetInterface(nodeName, ifaceName)
	if !ok {
		return newConstructionError("AddInterfaceToSRLG", "interface %s/%s does not exist", nodeName, ifaceName)
	}
	srlg.interfaces[iface.Key()] = true
	iface.srlgs[srlgName] = true
	if srlg.failed {
		iface.srlgFailed++
	}
	return nil
}

// FailInterface sets the interface's independent failure flag.
func (net *Network) FailInterface(node, name string) error {
	iface, ok := net.GetInterface(node, name)
	if !ok {
		return newConstructionError("FailInterface", "interface %s/%s does not exist", node, name)
	}
	iface.independentlyFailed = true
	return nil
}

// UnfailInterface clears the interface's independent failure flag. If the
// interface is still a member of a failed SRLG it remains failed.
func (net *Network) UnfailInterface(node, name string) error {
	iface, ok := net.GetInterface(node, name)
	if !ok {
		return newConstructionError("UnfailInterface", "interface %s/%s does not exist", node, name)
	}
	iface.independentlyFailed = false
	return nil
}

// FailNode sets the node's independent failure flag.
func (net *Network) FailNode(name string) error {
	n, ok := net.Nodes[name]
	if !ok {
		return newConstructionError("FailNode", "node %q does not exist", name)
	}
	n.independentlyFailed = true
	return nil
}

// UnfailNode clears the node's independent failure flag. If the node is
// still a member of a failed SRLG it remains failed.
func (net *Network) UnfailNode(name string) error {
	n, ok := net.Nodes[name]
	if !ok {
		return newConstructionError("UnfailNode", "node %q does not exist", name)
	}
	n.independentlyFailed = false
	return nil
}

// FailSRLG fails the named SRLG, propagating failure to every member node
// and interface. See the open-question resolution in DESIGN.md: this never
// sets a member's independently-failed flag, only its SRLG-failed count.
func (net *Network) FailSRLG(name string) error {
	srlg, ok := net.SRLGs[name]
	if !ok {
		return newConstructionError("FailSRLG", "srlg %q does not exist", name)
	}
	if srlg.failed {
		return nil
	}
	srlg.failed = true
	for nodeName := range srlg.nodes {
		net.Nodes[nodeName].srlgFailed++
	}
	for ifaceKey := range srlg.interfaces {
		net.Interfaces[ifaceKey].srlgFailed++
	}
	return nil
}

// UnfailSRLG unfails the named SRLG. A member that was independently
// failed (via FailNode/FailInterface) remains failed; only the SRLG
// contribution to its failure state is removed.
func (net *Network) UnfailSRLG(name string) error {
	srlg, ok := net.SRLGs[name]
	if !ok {
		return newConstructionError("UnfailSRLG", "srlg %q does not exist", name)
	}
	if !srlg.failed {
		return nil
	}
	srlg.failed = false
	for nodeName := range srlg.nodes {
		net.Nodes[nodeName].srlgFailed--
	}
	for ifaceKey := range srlg.interfaces {
		net.Interfaces[ifaceKey].srlgFailed--
	}
	return nil
}

// InterfaceDown reports the effective failure state of an interface: its
// own failure state, or its node's.
func (net *Network) InterfaceDown(iface *Interface) bool {
	if iface.Failed() {
		return true
	}
	if node, ok := net.Nodes[iface.NodeName]; ok {
		return node.Failed()
	}
	return false
}

// ResetCounters zeroes every interface's reserved_bandwidth and traffic and
// marks every LSP and demand Unrouted, as step 1-2 of a simulation tick.
func (net *Network) ResetCounters() {
	for _, iface := range net.Interfaces {
		iface.ReservedBandwidth = 0
		iface.Traffic = 0
	}
	for _, l := range net.LSPs {
		l.MarkUnrouted()
	}
	for _, d := range net.Demands {
		d.Path = Unrouted()
	}
}
