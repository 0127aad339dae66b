package client

import (
	"github.com/chainlab/go-chainlab/chainhash"
	"github.com/chainlab/go-chainlab/types"
)

// automaticDrainLimit bounds how many transitions AuthorAndImportAutomaticBlock
// drains from the pool for a single authored block.
const automaticDrainLimit = 10

// AuthorAndImportManualBlock builds, seals, and imports a block extending
// the explicitly named parent (which need not be the current tip) from
// the given transitions. Unlike AuthorAndImportAutomaticBlock, it
// persists the new block and state but leaves the last-block and
// current-state cursors untouched: a manually authored block records a
// side branch without making it the node's working chain.
func (c *Client[D, T, S]) AuthorAndImportManualBlock(extrinsics []T, parentHash chainhash.Hash) bool {
	parent, ok := c.store.GetBlock(parentHash)
	if !ok {
		clientErrors.New(codeUnknownParent, "no block known for hash %v", parentHash).Log(c.log)
		return false
	}
	parentState, ok := c.store.GetState(parent.Header.StateRoot)
	if !ok {
		clientErrors.New(codeUnknownState, "no state known for parent %v", parentHash).Log(c.log)
		return false
	}

	state := parentState
	for _, t := range extrinsics {
		state = c.stateMachine.NextState(state, t)
	}
	header := parent.Header.Child(chainhash.Sum(state), chainhash.Sum(extrinsics))

	sealed, ok := c.consensusEngine.Seal(parent.Header.ConsensusDigest, header)
	if !ok {
		clientErrors.New(codeSealRefused, "consensus engine refused to seal block extending %v", parentHash).Log(c.log)
		return false
	}

	block := types.Block[D, T]{Header: sealed, Body: extrinsics}
	c.store.AddBlock(block)
	c.store.SetState(state)
	c.forkChoice.ImportHook(block)

	c.metrics.BlockAuthored()
	c.log.Debug("authored manual block", "hash", sealed.Hash(), "parent", parentHash, "height", sealed.Height)
	return true
}

// AuthorAndImportAutomaticBlock builds, seals, and imports a block
// extending the fork-choice rule's current best block, draining up to
// automaticDrainLimit transitions from the pool. Draining zero
// transitions (an empty pool) is a successful no-op. Unlike
// AuthorAndImportManualBlock, on success it advances both the
// current-state and last-block cursors and becomes the new tip.
func (c *Client[D, T, S]) AuthorAndImportAutomaticBlock() bool {
	bestHash, ok := c.forkChoice.BestBlock()
	if !ok {
		clientErrors.New(codeNoBestBlock, "fork choice has no best block to author from").Log(c.log)
		return false
	}
	parent, ok := c.store.GetBlock(bestHash)
	if !ok {
		clientErrors.New(codeUnknownParent, "no block known for best hash %v", bestHash).Log(c.log)
		return false
	}
	parentState, ok := c.store.GetState(parent.Header.StateRoot)
	if !ok {
		clientErrors.New(codeUnknownState, "no state known for best block %v", bestHash).Log(c.log)
		return false
	}

	var drained []T
	for i := 0; i < automaticDrainLimit; i++ {
		t, ok := c.pool.NextFromPool()
		if !ok {
			break
		}
		drained = append(drained, t)
	}
	if len(drained) == 0 {
		return true
	}

	state := parentState
	for _, t := range drained {
		state = c.stateMachine.NextState(state, t)
	}
	header := parent.Header.Child(chainhash.Sum(state), chainhash.Sum(drained))

	sealed, ok := c.consensusEngine.Seal(parent.Header.ConsensusDigest, header)
	if !ok {
		// NextFromPool already dequeued these; put them back since the
		// block they were drained for was never sealed.
		for _, t := range drained {
			c.pool.TryInsert(t)
		}
		clientErrors.New(codeSealRefused, "consensus engine refused to seal block extending %v", bestHash).Log(c.log)
		return false
	}

	block := types.Block[D, T]{Header: sealed, Body: drained}
	stateHash := chainhash.Sum(state)
	c.store.AddBlock(block)
	c.store.SetState(state)
	c.store.SetCurrentState(stateHash)
	c.store.SetLastBlock(sealed.Hash())
	c.forkChoice.ImportHook(block)

	c.metrics.BlockAuthored()
	c.metrics.SetPoolSize(c.pool.Size())
	c.metrics.SetBestBlockHeight(sealed.Height)
	c.log.Debug("authored automatic block", "hash", sealed.Hash(), "parent", bestHash, "height", sealed.Height, "transitions", len(drained))
	return true
}
