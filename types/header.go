package types

import "github.com/chainlab/go-chainlab/chainhash"

// Header is generic over the consensus digest type D: a plain uint64 for
// proof-of-work threshold digests, an Authority for proof-of-authority
// digests, a SlotDigest for slot-based rotation, or a tagged union for
// compositions that fork from one digest shape to another.
type Header[D any] struct {
	Parent         chainhash.Hash
	Height         uint64
	StateRoot      chainhash.Hash
	ExtrinsicsRoot chainhash.Hash
	ConsensusDigest D
}

// Hash returns the canonical digest of the header, used as the child's
// Parent field and as the chain's block-identity key in storage.
func (h Header[D]) Hash() chainhash.Hash {
	return chainhash.Sum(h)
}

// Genesis returns a valid genesis header: zero parent, zero height, the
// given state root, an empty-body extrinsics root, and a zero-value
// consensus digest (every engine in this module treats the genesis
// digest as a no-op placeholder, never validated).
func Genesis[D any](genesisStateRoot chainhash.Hash) Header[D] {
	var empty []byte
	return Header[D]{
		Parent:         0,
		Height:         0,
		StateRoot:      genesisStateRoot,
		ExtrinsicsRoot: chainhash.Sum(empty),
	}
}

// Child returns a valid child header descending from h, with the given
// post-state root and extrinsics root. The consensus digest is left at
// its zero value; sealing fills it in afterward.
func (h Header[D]) Child(stateRoot, extrinsicsRoot chainhash.Hash) Header[D] {
	return Header[D]{
		Parent:         h.Hash(),
		Height:         h.Height + 1,
		StateRoot:      stateRoot,
		ExtrinsicsRoot: extrinsicsRoot,
	}
}

// VerifyChild reports whether child is a structurally valid direct child
// of h: correct parent linkage and exactly one greater height. It does
// not check consensus validity or state transitions.
func (h Header[D]) VerifyChild(child Header[D]) bool {
	if child.Parent != h.Hash() {
		return false
	}
	if child.Height != h.Height+1 {
		return false
	}
	return true
}

// VerifySubChain reports whether chain is a valid sequence of headers
// descending from h, each linking to the previous.
func (h Header[D]) VerifySubChain(chain []Header[D]) bool {
	parent := h
	for _, next := range chain {
		if !parent.VerifyChild(next) {
			return false
		}
		parent = next
	}
	return true
}
