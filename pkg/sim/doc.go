// Package sim implements the simulation driver: a single entry point that
// resets per-tick state, places LSPs, routes demands, and re-validates, in
// that fixed order with no short-circuits.
package sim
