package forkchoice

import (
	"github.com/chainlab/go-chainlab/chainhash"
	"github.com/chainlab/go-chainlab/types"
)

// HeaviestChain prefers the chain with the most accumulated proof-of-work.
// It only makes sense paired with the proof-of-work consensus engine,
// whose digest (the nonce) is taken directly as the block's work
// contribution.
type HeaviestChain[T any] struct {
	// weightToTip maps cumulative work to the tip hash of the chain that
	// has accumulated exactly that much work.
	weightToTip map[uint64]chainhash.Hash
	maxWeight   uint64
	hasAny      bool
}

func NewHeaviestChain[T any]() *HeaviestChain[T] {
	return &HeaviestChain[T]{weightToTip: make(map[uint64]chainhash.Hash)}
}

func (h *HeaviestChain[T]) BestBlock() (chainhash.Hash, bool) {
	if !h.hasAny {
		return 0, false
	}
	return h.weightToTip[h.maxWeight], true
}

func (h *HeaviestChain[T]) ImportHook(block types.Block[uint64, T]) {
	newHash := block.Header.Hash()

	// already tracked as a tip: this is a replay of a block already
	// imported, not a new extension.
	for _, tip := range h.weightToTip {
		if tip == newHash {
			return
		}
	}

	var parentWeight uint64
	found := false
	for weight, tip := range h.weightToTip {
		if tip == block.Header.Parent {
			parentWeight = weight
			found = true
			break
		}
	}

	if found {
		delete(h.weightToTip, parentWeight)
		newWeight := parentWeight + block.Header.ConsensusDigest
		h.weightToTip[newWeight] = newHash
		if newWeight > h.maxWeight || !h.hasAny {
			h.maxWeight = newWeight
		}
	} else {
		weight := block.Header.ConsensusDigest
		h.weightToTip[weight] = newHash
		if weight > h.maxWeight || !h.hasAny {
			h.maxWeight = weight
		}
	}
	h.hasAny = true
	h.recomputeMax()
}

// recomputeMax is needed because removing a chain's old weight entry can
// leave maxWeight pointing at a key that no longer exists, if that was the
// chain that just moved.
func (h *HeaviestChain[T]) recomputeMax() {
	if _, ok := h.weightToTip[h.maxWeight]; ok {
		return
	}
	var max uint64
	first := true
	for w := range h.weightToTip {
		if first || w > max {
			max = w
			first = false
		}
	}
	h.maxWeight = max
}
