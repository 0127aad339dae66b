// Package forked implements the higher-order consensus engine used to
// change consensus rules partway through a chain's history: changing the
// authority set, changing PoW difficulty, turning on an extra rule, or
// switching algorithms entirely at a fixed height.
package forked

import (
	"github.com/chainlab/go-chainlab/consensus"
	"github.com/chainlab/go-chainlab/types"
)

// Engine wraps two differently-digested inner engines, Before and After,
// switching between them at ForkHeight: headers below ForkHeight are
// validated/sealed by Before, headers at or above it by After.
//
// Because Before and After may use different digest shapes (BD, AD) than
// the outer digest D the header actually carries, the engine needs an
// explicit way to move between them. ToBefore/ToAfter project the outer
// digest down to the inner shape (fallibly: the projection can fail,
// e.g. a PoA digest can never be read back as a PoW nonce); FromBefore/
// FromAfter inject an inner digest back up into the outer shape (always
// total).
type Engine[D, BD, AD any] struct {
	ForkHeight uint64
	Before     consensus.Interface[BD]
	After      consensus.Interface[AD]

	ToBefore   func(D) (BD, bool)
	FromBefore func(BD) D
	ToAfter    func(D) (AD, bool)
	FromAfter  func(AD) D
}

func (e Engine[D, BD, AD]) Validate(parentDigest D, header types.Header[D]) bool {
	if header.Height < e.ForkHeight {
		parentBD, ok := e.ToBefore(parentDigest)
		if !ok {
			return false
		}
		headerBD, ok := e.ToBefore(header.ConsensusDigest)
		if !ok {
			return false
		}
		return e.Before.Validate(parentBD, project(header, headerBD))
	}
	parentAD, ok := e.ToAfter(parentDigest)
	if !ok {
		// the parent of the first header at ForkHeight was sealed by
		// Before, so its digest may not project; After sees a zero one.
		if header.Height != e.ForkHeight {
			return false
		}
		parentAD = *new(AD)
	}
	headerAD, ok := e.ToAfter(header.ConsensusDigest)
	if !ok {
		return false
	}
	return e.After.Validate(parentAD, project(header, headerAD))
}

func (e Engine[D, BD, AD]) Seal(parentDigest D, partial types.Header[D]) (types.Header[D], bool) {
	if partial.Height < e.ForkHeight {
		parentBD, ok := e.ToBefore(parentDigest)
		if !ok {
			return partial, false
		}
		sealed, ok := e.Before.Seal(parentBD, project(partial, *new(BD)))
		if !ok {
			return partial, false
		}
		return project(sealed, e.FromBefore(sealed.ConsensusDigest)), true
	}
	parentAD, ok := e.ToAfter(parentDigest)
	if !ok {
		if partial.Height != e.ForkHeight {
			return partial, false
		}
		parentAD = *new(AD)
	}
	sealed, ok := e.After.Seal(parentAD, project(partial, *new(AD)))
	if !ok {
		return partial, false
	}
	return project(sealed, e.FromAfter(sealed.ConsensusDigest)), true
}

// project rebuilds a header with a different digest type, keeping every
// other field. It is the mechanical half of moving a header between the
// outer digest shape and an inner engine's own digest shape.
func project[From, To any](h types.Header[From], digest To) types.Header[To] {
	return types.Header[To]{
		Parent:          h.Parent,
		Height:          h.Height,
		StateRoot:       h.StateRoot,
		ExtrinsicsRoot:  h.ExtrinsicsRoot,
		ConsensusDigest: digest,
	}
}

// IdentityProjection returns the trivial (total, always-succeeding)
// projector pair used whenever the outer and inner digest types coincide,
// as in change-of-authority-set, change-of-difficulty, and
// turn-on-even-only forks.
func IdentityProjection[D any]() (func(D) (D, bool), func(D) D) {
	return func(d D) (D, bool) { return d, true }, func(d D) D { return d }
}
