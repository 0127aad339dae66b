// Package storage implements the in-memory, non-evicting block and state
// store the client engine persists every successfully imported or
// authored block into.
package storage

import (
	mapset "github.com/deckarep/golang-set/v2"

	"github.com/chainlab/go-chainlab/chainhash"
	"github.com/chainlab/go-chainlab/types"
)

// Interface is the storage contract the client engine depends on. It
// never evicts: every block and state ever inserted remains retrievable
// for the lifetime of the store.
type Interface[D, T, S any] interface {
	// AddBlock persists block, keyed by its own header hash.
	AddBlock(block types.Block[D, T])
	// GetBlock retrieves a previously persisted block by hash.
	GetBlock(hash chainhash.Hash) (types.Block[D, T], bool)
	// GetLastBlock returns the block at the store's current cursor.
	GetLastBlock() types.Block[D, T]
	// SetLastBlock advances the cursor to the given, already-persisted
	// block hash.
	SetLastBlock(hash chainhash.Hash)
	// SetState persists a state snapshot, keyed by its own hash. It does
	// not move the current-state cursor: a state reachable only through
	// SetState is retrievable via GetState but is not yet "current".
	SetState(state S)
	// GetState retrieves a previously persisted state by its hash.
	GetState(hash chainhash.Hash) (S, bool)
	// SetCurrentState advances the current-state cursor to an
	// already-persisted state hash.
	SetCurrentState(hash chainhash.Hash)
	// CurrentState returns the state at the store's current cursor.
	CurrentState() S
	// Leaves returns every known block hash that has no known child.
	Leaves() []chainhash.Hash
}

// Basic is the reference in-memory Interface implementation: plain Go
// maps from hash to block and from hash to state, plus a leaf-tracking
// set and two cursors.
type Basic[D, T, S any] struct {
	blocks map[chainhash.Hash]types.Block[D, T]
	states map[chainhash.Hash]S

	lastBlock    chainhash.Hash
	currentState chainhash.Hash

	leaves mapset.Set[chainhash.Hash]
}

// New returns a store seeded with genesisBlock/genesisState as the only
// known block and the current cursor position.
func New[D, T, S any](genesisBlock types.Block[D, T], genesisState S) *Basic[D, T, S] {
	s := &Basic[D, T, S]{
		blocks: make(map[chainhash.Hash]types.Block[D, T]),
		states: make(map[chainhash.Hash]S),
		leaves: mapset.NewSet[chainhash.Hash](),
	}
	s.AddBlock(genesisBlock)
	s.SetState(genesisState)
	s.SetCurrentState(chainhash.Sum(genesisState))
	s.SetLastBlock(genesisBlock.Header.Hash())
	return s
}

func (s *Basic[D, T, S]) AddBlock(block types.Block[D, T]) {
	h := block.Header.Hash()
	s.blocks[h] = block
	s.leaves.Add(h)
	s.leaves.Remove(block.Header.Parent)
}

func (s *Basic[D, T, S]) GetBlock(hash chainhash.Hash) (types.Block[D, T], bool) {
	b, ok := s.blocks[hash]
	return b, ok
}

func (s *Basic[D, T, S]) GetLastBlock() types.Block[D, T] {
	return s.blocks[s.lastBlock]
}

func (s *Basic[D, T, S]) SetLastBlock(hash chainhash.Hash) {
	s.lastBlock = hash
}

func (s *Basic[D, T, S]) SetState(state S) {
	s.states[chainhash.Sum(state)] = state
}

func (s *Basic[D, T, S]) GetState(hash chainhash.Hash) (S, bool) {
	st, ok := s.states[hash]
	return st, ok
}

func (s *Basic[D, T, S]) SetCurrentState(hash chainhash.Hash) {
	s.currentState = hash
}

func (s *Basic[D, T, S]) CurrentState() S {
	return s.states[s.currentState]
}

func (s *Basic[D, T, S]) Leaves() []chainhash.Hash {
	return s.leaves.ToSlice()
}
