// Package model defines the value types of the simulated network: nodes,
// interfaces, circuits, demands, LSPs, and SRLGs.
//
// The Network type is an arena: every entity is owned by exactly one
// Network and addressed by a stable string key, never by an ad-hoc pointer
// graph. This keeps the node/interface/circuit relationship acyclic from
// the caller's point of view even though interfaces point back at their
// node and circuit.
//
// # Identity
//
// A node is unique by Name. An interface is unique per node by Name, and
// addressable as (NodeName, RemoteNodeName, CircuitID) — no node may carry
// two interfaces with the same remote/circuit pair. A circuit is not
// declared directly; it is derived by pairing two opposing interfaces that
// share a CircuitID (see package validate).
package model
