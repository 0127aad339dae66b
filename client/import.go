package client

import (
	"github.com/chainlab/go-chainlab/chainhash"
	"github.com/chainlab/go-chainlab/errs"
	"github.com/chainlab/go-chainlab/types"
)

// ImportBlock resolves block.Header.Parent to a known block p in storage
// and, if every check passes, persists the result and advances both
// cursors. Validation is: p is known, height is exactly p's height + 1,
// the consensus engine accepts the sealed header against p's digest,
// replaying the body against the state associated with p reproduces the
// declared state root, and the body hashes to the declared extrinsics
// root. p need not be the current last block: importing a block that
// extends a competing branch still succeeds and moves the cursors onto
// it, leaving fork choice to decide which tip is actually best. Any
// failure leaves storage untouched.
func (c *Client[D, T, S]) ImportBlock(block types.Block[D, T]) bool {
	h := block.Header.Hash()
	if _, known := c.badBlocks.Get(h); known {
		return false
	}

	parent, ok := c.store.GetBlock(block.Header.Parent)
	if !ok {
		// not cached as bad: the block may import once its parent is known.
		c.metrics.BlockRejected()
		clientErrors.New(codeUnknownParent, "block %v parent %v is not known", h, block.Header.Parent).Log(c.log)
		return false
	}
	if block.Header.Height != parent.Header.Height+1 {
		c.reject(h, clientErrors.New(codeInvalidHeight, "block %v has height %d, want %d", h, block.Header.Height, parent.Header.Height+1))
		return false
	}
	if !c.consensusEngine.Validate(parent.Header.ConsensusDigest, block.Header) {
		c.reject(h, clientErrors.New(codeInvalidConsensus, "block %v failed consensus validation", h))
		return false
	}

	parentState, ok := c.store.GetState(parent.Header.StateRoot)
	if !ok {
		c.reject(h, clientErrors.New(codeUnknownState, "block %v parent %v has no known state", h, block.Header.Parent))
		return false
	}
	state := parentState
	for _, t := range block.Body {
		state = c.stateMachine.NextState(state, t)
	}
	stateHash := chainhash.Sum(state)
	if stateHash != block.Header.StateRoot {
		c.reject(h, clientErrors.New(codeInvalidStateRoot, "block %v replayed state root does not match header", h))
		return false
	}
	if chainhash.Sum(block.Body) != block.Header.ExtrinsicsRoot {
		c.reject(h, clientErrors.New(codeInvalidExtrinsic, "block %v body does not match declared extrinsics root", h))
		return false
	}

	c.store.AddBlock(block)
	c.store.SetState(state)
	c.store.SetCurrentState(stateHash)
	c.store.SetLastBlock(h)
	c.forkChoice.ImportHook(block)

	c.metrics.BlockImported()
	c.metrics.SetBestBlockHeight(block.Header.Height)
	c.log.Debug("imported block", "hash", h, "height", block.Header.Height)
	return true
}

func (c *Client[D, T, S]) reject(h chainhash.Hash, err *errs.Error) {
	c.badBlocks.Add(h, struct{}{})
	c.metrics.BlockRejected()
	err.Log(c.log)
}

// GetBlock retrieves a previously imported or authored block by hash.
func (c *Client[D, T, S]) GetBlock(hash chainhash.Hash) (types.Block[D, T], bool) {
	return c.store.GetBlock(hash)
}

// GetLastBlock returns the block at the storage layer's last-block
// cursor.
func (c *Client[D, T, S]) GetLastBlock() types.Block[D, T] {
	return c.store.GetLastBlock()
}

// CurrentState returns the state at the storage layer's current-state
// cursor.
func (c *Client[D, T, S]) CurrentState() S {
	return c.store.CurrentState()
}

// BestBlock returns the fork-choice rule's current preferred tip. New
// registers the genesis block with fork choice, so ok is false only if
// the fork-choice rule itself reports no tip.
func (c *Client[D, T, S]) BestBlock() (chainhash.Hash, bool) {
	return c.forkChoice.BestBlock()
}

// SubmitTransaction offers t to the transaction pool, reporting whether
// it was accepted.
func (c *Client[D, T, S]) SubmitTransaction(t T) bool {
	ok := c.pool.TryInsert(t)
	c.metrics.SetPoolSize(c.pool.Size())
	return ok
}

// PoolSize reports how many transitions are currently queued for
// authoring.
func (c *Client[D, T, S]) PoolSize() int {
	return c.pool.Size()
}

// PoolContains reports whether t is currently queued.
func (c *Client[D, T, S]) PoolContains(t T) bool {
	return c.pool.Contains(t)
}
