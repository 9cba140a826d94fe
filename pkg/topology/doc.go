// Package topology builds the filtered, directed multi-edge graph that LSP
// placement and demand routing run shortest-path queries against, and
// implements the shortest-path and bounded simple-path search algorithms
// themselves.
//
// A node pair may be joined by more than one interface (parallel links), so
// the graph is a multigraph: Graph.Adjacency maps a node name to every
// outbound Edge, one per eligible interface, not one per neighbor.
package topology
