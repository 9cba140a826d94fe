// Package export serializes a simulated network to JSON, either formatted
// for human inspection or compact for storage and transmission.
package export
