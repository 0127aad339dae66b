// Package forkchoice implements the client-level rules that decide, among
// every chain a node has imported, which tip is "best".
package forkchoice

import (
	"github.com/chainlab/go-chainlab/chainhash"
	"github.com/chainlab/go-chainlab/types"
)

// Interface is a fork-choice rule over blocks carrying digest type D and
// transition type T. BestBlock reports the current best tip, or ok=false
// if nothing has been imported yet. ImportHook is called once per
// successfully imported block so the rule can update its bookkeeping; it
// is never called for blocks that fail import validation.
type Interface[D, T any] interface {
	BestBlock() (hash chainhash.Hash, ok bool)
	ImportHook(block types.Block[D, T])
}
