// Package poa implements proof-of-authority consensus: headers are sealed
// and validated against a fixed, ordered set of known signers instead of a
// computational puzzle.
package poa

import (
	"github.com/chainlab/go-chainlab/types"
)

// Simple is proof-of-authority where any configured authority may seal
// any block: validate checks membership only, with no rotation.
type Simple struct {
	Authorities []types.Authority
}

func (s Simple) Validate(_ types.Authority, header types.Header[types.Authority]) bool {
	return contains(s.Authorities, header.ConsensusDigest)
}

// Seal stamps the first configured authority. It always succeeds,
// provided at least one authority is configured.
func (s Simple) Seal(_ types.Authority, partial types.Header[types.Authority]) (types.Header[types.Authority], bool) {
	if len(s.Authorities) == 0 {
		return partial, false
	}
	partial.ConsensusDigest = s.Authorities[0]
	return partial, true
}

// RoundRobinByHeight requires the scheduled authority for header.Height to
// have sealed it: authorities[(height-1) mod N] for height >= 1. Height 0
// (genesis) carries no seal and is never validated by this engine.
//
// The source this is grounded on computes the schedule index as
// height mod N - 1, which underflows at height == 0. This uses the
// corrected (height-1) mod N, applied only for height >= 1.
type RoundRobinByHeight struct {
	Authorities []types.Authority
}

func (r RoundRobinByHeight) Validate(_ types.Authority, header types.Header[types.Authority]) bool {
	if header.Height == 0 || len(r.Authorities) == 0 {
		return false
	}
	idx := (header.Height - 1) % uint64(len(r.Authorities))
	return header.ConsensusDigest == r.Authorities[idx]
}

func (r RoundRobinByHeight) Seal(_ types.Authority, partial types.Header[types.Authority]) (types.Header[types.Authority], bool) {
	if partial.Height == 0 || len(r.Authorities) == 0 {
		return partial, false
	}
	idx := (partial.Height - 1) % uint64(len(r.Authorities))
	partial.ConsensusDigest = r.Authorities[idx]
	return partial, true
}

func contains(set []types.Authority, who types.Authority) bool {
	for _, a := range set {
		if a == who {
			return true
		}
	}
	return false
}

func indexOf(set []types.Authority, who types.Authority) (int, bool) {
	for i, a := range set {
		if a == who {
			return i, true
		}
	}
	return 0, false
}
