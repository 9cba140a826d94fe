package model

// ParallelLinkModel is an alias for Network. The engine this model was
// distilled from drew a nominal distinction between a "Model" (at most one
// circuit between any node pair) and a "Parallel_Link_Model" (arbitrarily
// many). Network has always supported parallel circuits between two nodes,
// so the two names describe identical behavior here.
type ParallelLinkModel = Network
