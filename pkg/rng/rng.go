package rng

import (
	"crypto/sha256"
	"encoding/binary"
	"math/rand"
)

// RNG provides deterministic random number generation for one decision
// point in a simulation run. A run derives its own seed from the engine's
// master seed so that re-running the same topology and config with the
// same seed reproduces identical tie-break choices. The derivation follows:
//
//	seed_point = H(masterSeed, pointName, configHash)
//
// where H is SHA-256 and the first 8 bytes are used as the uint64 seed.
type RNG struct {
	seed      uint64
	stageName string
	source    *rand.Rand
}

// NewRNG creates a decision-point RNG by deriving a sub-seed from the
// master seed. masterSeed is the engine-wide seed, pointName identifies the
// decision point (e.g. "lsp_path_tiebreak"), and configHash lets config
// changes perturb the derived sequence even under a fixed master seed.
func NewRNG(masterSeed uint64, pointName string, configHash []byte) *RNG {
	h := sha256.New()

	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], masterSeed)
	h.Write(buf[:])
	h.Write([]byte(pointName))
	h.Write(configHash)

	hash := h.Sum(nil)
	derivedSeed := binary.BigEndian.Uint64(hash[:8])

	return &RNG{
		seed:      derivedSeed,
		stageName: pointName,
		source:    rand.New(rand.NewSource(int64(derivedSeed))),
	}
}

// Intn returns a pseudo-random integer in [0, n). It panics if n <= 0.
func (r *RNG) Intn(n int) int {
	if n <= 0 {
		panic("rng: Intn argument must be positive")
	}
	return r.source.Intn(n)
}

// Seed returns the derived seed used by this RNG, for logging.
func (r *RNG) Seed() uint64 {
	return r.seed
}

// StageName returns the decision point name this RNG was created for.
func (r *RNG) StageName() string {
	return r.stageName
}
