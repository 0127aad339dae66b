// Package powengine implements proof-of-work consensus: a header is valid
// iff its hash (which covers its digest) falls below a configured threshold.
package powengine

import (
	"math/rand"
	"time"

	"github.com/chainlab/go-chainlab/types"
)

// Engine is a proof-of-work consensus.Interface[uint64]. The digest is the
// raw nonce; validity is H(header) < Threshold.
type Engine struct {
	Threshold uint64

	rng *rand.Rand
}

// New returns a proof-of-work engine with the given threshold. Lower
// thresholds mean harder puzzles.
func New(threshold uint64) *Engine {
	return &Engine{
		Threshold: threshold,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Validate reports whether header's hash falls below the engine's
// threshold. The parent digest plays no role in PoW validity.
func (e *Engine) Validate(_ uint64, header types.Header[uint64]) bool {
	return uint64(header.Hash()) < e.Threshold
}

// Seal repeatedly samples a fresh pseudo-random digest until the header
// hashes below the threshold. It always eventually succeeds (ok is always
// true); the search is bounded in expectation by 1/(threshold/2^64).
func (e *Engine) Seal(_ uint64, partial types.Header[uint64]) (types.Header[uint64], bool) {
	for {
		partial.ConsensusDigest = e.rng.Uint64()
		if uint64(partial.Hash()) < e.Threshold {
			return partial, true
		}
	}
}
