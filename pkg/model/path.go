package model

import "encoding/json"

// unroutedSentinel is the externalized JSON representation of an
// unrouted LSP or demand path: "path" is modeled as a tagged sum
// internally, but the string sentinel is preserved for interoperability
// with anything that consumes the JSON.
const unroutedSentinel = "Unrouted"

// Carrier is one member of a routed demand's path: either a reference to
// an LSP the demand rides, or a concrete interface sequence used for
// plain IP ECMP. Exactly one of LSP or Interfaces is set.
type Carrier struct {
	LSP        *LSP
	Interfaces []*Interface
}

// IsLSP reports whether this carrier rides an LSP rather than a concrete
// IP path.
func (c Carrier) IsLSP() bool {
	return c.LSP != nil
}

// MarshalJSON renders an LSP carrier as its name, and an IP carrier as its
// ordered interface names.
func (c Carrier) MarshalJSON() ([]byte, error) {
	if c.IsLSP() {
		return json.Marshal(struct {
			LSP string `json:"lsp"`
		}{LSP: c.LSP.Name})
	}
	names := make([]string, len(c.Interfaces))
	for i, iface := range c.Interfaces {
		names[i] = iface.NodeName + ":" + iface.Name
	}
	return json.Marshal(struct {
		Path []string `json:"path"`
	}{Path: names})
}

// RoutePath is the tagged-sum state of a Demand's path: either unrouted,
// or a non-empty set of carriers that equally share the demand's traffic.
type RoutePath struct {
	Routed   bool
	Carriers []Carrier
}

// Unrouted returns the sentinel "no path found this tick" state.
func Unrouted() RoutePath {
	return RoutePath{}
}

// RoutedVia builds a routed path from the given carriers.
func RoutedVia(carriers ...Carrier) RoutePath {
	return RoutePath{Routed: true, Carriers: carriers}
}

// MarshalJSON renders an unrouted path as the "Unrouted" sentinel string
// and a routed path as its list of carriers.
func (p RoutePath) MarshalJSON() ([]byte, error) {
	if !p.Routed {
		return json.Marshal(unroutedSentinel)
	}
	return json.Marshal(p.Carriers)
}
