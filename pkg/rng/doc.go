// Package rng provides deterministic random number generation for the
// engine's one source of nondeterminism: breaking ties among equal-cost
// LSP path candidates during placement.
//
// # Sub-Seed Derivation
//
// Each RNG derives its seed using SHA-256:
//
//	seed_point = H(masterSeed, pointName, configHash)
//
// where:
//   - masterSeed: the engine's configured seed
//   - pointName: identifies the decision point (e.g. "lsp_path_tiebreak")
//   - configHash: hash of the engine configuration
//
// This keeps tie-break outcomes reproducible for a fixed seed and
// topology, while still changing if the config that produced the
// candidates changes.
//
// # Thread Safety
//
// RNG instances are NOT thread-safe; the placer uses one RNG for the
// whole tick's sequential commits rather than sharing it across
// goroutines.
package rng
