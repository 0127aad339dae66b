// Package client implements the full node engine: importing blocks
// produced elsewhere, authoring new ones from the transaction pool, and
// answering queries against whichever chain the fork-choice rule judges
// best. It is generic over the consensus digest type D, the state
// machine's transition type T, and its state type S, and depends only on
// the capability contracts (consensus, statemachine, forkchoice, txpool,
// storage), never a concrete implementation of any of them.
package client

import (
	lru "github.com/hashicorp/golang-lru"

	"github.com/chainlab/go-chainlab/consensus"
	"github.com/chainlab/go-chainlab/errs"
	"github.com/chainlab/go-chainlab/forkchoice"
	"github.com/chainlab/go-chainlab/log"
	"github.com/chainlab/go-chainlab/metrics"
	"github.com/chainlab/go-chainlab/statemachine"
	"github.com/chainlab/go-chainlab/storage"
	"github.com/chainlab/go-chainlab/txpool"
)

var clientErrors = &errs.Errors{
	Package: "CLIENT",
	Errors: map[int]string{
		codeUnknownParent:    "unknown parent block",
		codeUnknownState:     "unknown parent state",
		codeInvalidHeight:    "invalid height",
		codeInvalidConsensus: "consensus validation failed",
		codeInvalidStateRoot: "state root mismatch",
		codeInvalidExtrinsic: "extrinsics root mismatch",
		codeSealRefused:      "seal refused",
		codeNoBestBlock:      "no best block to author from",
	},
	Level: func(int) errs.Level { return errs.LevelWarn },
}

const (
	codeUnknownParent = iota
	codeUnknownState
	codeInvalidHeight
	codeInvalidConsensus
	codeInvalidStateRoot
	codeInvalidExtrinsic
	codeSealRefused
	codeNoBestBlock
)

// badBlockCacheSize bounds the in-memory cache of recently rejected block
// hashes; it exists purely to short-circuit repeat-import of a block
// already known to be invalid, never to affect consensus outcomes.
const badBlockCacheSize = 256

// Capabilities bundles every pluggable dependency the engine needs. None
// of them may be nil.
type Capabilities[D any, T comparable, S any] struct {
	Consensus    consensus.Interface[D]
	StateMachine statemachine.Interface[S, T]
	ForkChoice   forkchoice.Interface[D, T]
	TxPool       txpool.Interface[T]
	Storage      storage.Interface[D, T, S]

	// Log and Metrics are optional; New fills in no-op defaults when nil.
	Log     log.Logger
	Metrics *metrics.Set
}

// Client is the full node engine over digest type D, transition type T,
// and state type S.
type Client[D any, T comparable, S any] struct {
	consensusEngine consensus.Interface[D]
	stateMachine    statemachine.Interface[S, T]
	forkChoice      forkchoice.Interface[D, T]
	pool            txpool.Interface[T]
	store           storage.Interface[D, T, S]

	log     log.Logger
	metrics *metrics.Set

	badBlocks *lru.Cache
}

// New builds a Client from caps. The storage capability must already be
// seeded with a genesis block and state (see storage.New).
func New[D any, T comparable, S any](caps Capabilities[D, T, S]) *Client[D, T, S] {
	l := caps.Log
	if l == nil {
		l = log.Root()
	}
	m := caps.Metrics
	if m == nil {
		m = metrics.Noop()
	}
	bad, err := lru.New(badBlockCacheSize)
	if err != nil {
		// lru.New only errors on a non-positive size, which badBlockCacheSize
		// never is.
		panic(err)
	}
	c := &Client[D, T, S]{
		consensusEngine: caps.Consensus,
		stateMachine:    caps.StateMachine,
		forkChoice:      caps.ForkChoice,
		pool:            caps.TxPool,
		store:           caps.Storage,
		log:             l,
		metrics:         m,
		badBlocks:       bad,
	}
	// The storage capability arrives already seeded with a genesis block
	// (see storage.New); register it with fork choice so BestBlock and
	// automatic authoring work immediately, without requiring a caller to
	// import the genesis block as if it arrived over the wire.
	c.forkChoice.ImportHook(c.store.GetLastBlock())
	return c
}
