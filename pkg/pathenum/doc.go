// Package pathenum normalizes node-hop shortest-path results into concrete
// interface sequences. A multigraph's node-hop path collapses parallel
// edges; this package recovers every distinct interface-level route that
// realizes one of those node-hop sequences at minimum per-hop cost, which
// is what ECMP requires.
package pathenum
