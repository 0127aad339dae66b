package forkchoice

import (
	"testing"

	"github.com/chainlab/go-chainlab/types"
)

func blockAt(height uint64) types.Block[uint64, struct{}] {
	return types.Block[uint64, struct{}]{Header: types.Header[uint64]{Height: height}}
}

func TestLongestChainImportsFirstHeader(t *testing.T) {
	lc := NewLongestChain[uint64, struct{}]()
	b := blockAt(1)
	lc.ImportHook(b)

	best, ok := lc.BestBlock()
	if !ok {
		t.Fatal("expected a best block after first import")
	}
	if best != b.Header.Hash() {
		t.Fatalf("got %v, want %v", best, b.Header.Hash())
	}
}

func TestLongestChainKeepsLongerChain(t *testing.T) {
	lc := NewLongestChain[uint64, struct{}]()
	long := blockAt(5)
	lc.ImportHook(long)

	short := blockAt(2)
	lc.ImportHook(short)

	best, ok := lc.BestBlock()
	if !ok {
		t.Fatal("expected a best block")
	}
	if best != long.Header.Hash() {
		t.Fatal("expected the best block to remain the one from the longer chain")
	}
}
