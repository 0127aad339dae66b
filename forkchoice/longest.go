package forkchoice

import (
	"github.com/chainlab/go-chainlab/chainhash"
	"github.com/chainlab/go-chainlab/types"
)

// LongestChain prefers whichever imported block has the greatest height.
// Ties keep whichever block was imported first, since the comparison is
// strict (>), not (>=).
type LongestChain[D, T any] struct {
	bestHeight uint64
	bestHash   chainhash.Hash
	hasAny     bool
}

func NewLongestChain[D, T any]() *LongestChain[D, T] {
	return &LongestChain[D, T]{}
}

func (l *LongestChain[D, T]) BestBlock() (chainhash.Hash, bool) {
	return l.bestHash, l.hasAny
}

func (l *LongestChain[D, T]) ImportHook(block types.Block[D, T]) {
	if block.Header.Height > l.bestHeight || !l.hasAny {
		l.bestHeight = block.Header.Height
		l.bestHash = block.Header.Hash()
		l.hasAny = true
	}
}
