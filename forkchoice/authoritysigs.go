package forkchoice

import (
	"github.com/chainlab/go-chainlab/chainhash"
	"github.com/chainlab/go-chainlab/types"
)

// MostAuthoritySignatures prefers whichever chain carries the most blocks
// signed by a configured preferred authority. It only makes sense paired
// with a proof-of-authority consensus engine.
//
// This generalizes the original rule (which hardcoded a single
// "most Alice signatures" preference) into a configurable Preferred
// field.
type MostAuthoritySignatures[T any] struct {
	Preferred types.Authority

	sigsToTip map[uint64]chainhash.Hash
	maxSigs   uint64
	hasAny    bool
}

func NewMostAuthoritySignatures[T any](preferred types.Authority) *MostAuthoritySignatures[T] {
	return &MostAuthoritySignatures[T]{
		Preferred: preferred,
		sigsToTip: make(map[uint64]chainhash.Hash),
	}
}

func (m *MostAuthoritySignatures[T]) BestBlock() (chainhash.Hash, bool) {
	if !m.hasAny {
		return 0, false
	}
	return m.sigsToTip[m.maxSigs], true
}

// ImportHook updates bookkeeping for block. Note a deliberately preserved
// quirk from the rule this is grounded on: when a matching chain is found
// but the new block does not carry the preferred authority's signature,
// the chain's tracked tip is left pointing at the old (parent) block
// rather than being advanced to the new one. A chain only "moves" in this
// rule's bookkeeping when it gains a signature.
func (m *MostAuthoritySignatures[T]) ImportHook(block types.Block[types.Authority, T]) {
	newHash := block.Header.Hash()

	// already tracked as a tip: this is a replay of a block already
	// imported, not a new extension.
	for _, tip := range m.sigsToTip {
		if tip == newHash {
			return
		}
	}

	hasPreferredSig := block.Header.ConsensusDigest == m.Preferred

	var sigs uint64
	found := false
	for s, tip := range m.sigsToTip {
		if tip == block.Header.Parent {
			sigs = s
			found = true
			break
		}
	}

	if found {
		if !hasPreferredSig {
			return
		}
		delete(m.sigsToTip, sigs)
		newSigs := sigs + 1
		m.sigsToTip[newSigs] = newHash
		if newSigs > m.maxSigs || !m.hasAny {
			m.maxSigs = newSigs
		}
	} else {
		var toInsert uint64
		if hasPreferredSig {
			toInsert = 1
		}
		m.sigsToTip[toInsert] = newHash
		if toInsert > m.maxSigs || !m.hasAny {
			m.maxSigs = toInsert
		}
	}
	m.hasAny = true
	m.recomputeMax()
}

func (m *MostAuthoritySignatures[T]) recomputeMax() {
	if _, ok := m.sigsToTip[m.maxSigs]; ok {
		return
	}
	var max uint64
	first := true
	for s := range m.sigsToTip {
		if first || s > max {
			max = s
			first = false
		}
	}
	m.maxSigs = max
}
