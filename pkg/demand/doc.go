// Package demand routes the IP traffic matrix across a network once LSPs
// have been placed: each demand prefers routed LSPs between its endpoints,
// falling back to plain IP ECMP, and the package aggregates the resulting
// traffic split onto every interface carrying it.
package demand
