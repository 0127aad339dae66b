package forkchoice

import (
	"github.com/chainlab/go-chainlab/chainhash"
	"github.com/chainlab/go-chainlab/types"
)

// ghostChain tracks one candidate chain's cumulative weight and the
// ordered list of block hashes along it, from root to tip.
type ghostChain struct {
	weight uint64
	hashes []chainhash.Hash
}

// Ghost implements the Greedy Heaviest Observed Subtree rule: the best
// chain is the one with the greatest accumulated proof-of-work across all
// its blocks.
//
// The rule this is grounded on keyed its tracked chains by cumulative
// weight in a map, which silently collapses two distinct subtrees that
// happen to reach the same weight into one entry. This implementation
// keys chains by their own identity (a slice of chains, located by tip
// hash) instead, so same-weight subtrees never collide.
type Ghost[T any] struct {
	chains []ghostChain
}

func NewGhost[T any]() *Ghost[T] {
	return &Ghost[T]{}
}

func (g *Ghost[T]) BestBlock() (chainhash.Hash, bool) {
	if len(g.chains) == 0 {
		return 0, false
	}
	best := g.chains[0]
	for _, c := range g.chains[1:] {
		if c.weight > best.weight {
			best = c
		}
	}
	return best.hashes[len(best.hashes)-1], true
}

func (g *Ghost[T]) ImportHook(block types.Block[uint64, T]) {
	newHash := block.Header.Hash()

	// already tracked as a tip: this is a replay of a block already
	// imported, not a new extension.
	for i := range g.chains {
		if g.chains[i].hashes[len(g.chains[i].hashes)-1] == newHash {
			return
		}
	}

	for i := range g.chains {
		if g.chains[i].hashes[len(g.chains[i].hashes)-1] == block.Header.Parent {
			g.chains[i].hashes = append(g.chains[i].hashes, newHash)
			g.chains[i].weight += block.Header.ConsensusDigest
			return
		}
	}
	g.chains = append(g.chains, ghostChain{
		weight: block.Header.ConsensusDigest,
		hashes: []chainhash.Hash{newHash},
	})
}
