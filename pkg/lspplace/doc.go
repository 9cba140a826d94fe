// Package lspplace places RSVP-TE LSPs against a network: it groups LSPs
// sharing the same endpoints, derives each LSP's setup bandwidth from
// demand traffic (or a configured override), and commits each one's
// reservation to a concrete interface sequence in turn, so each commit
// shrinks the reservable bandwidth the next LSP in the group sees.
package lspplace
