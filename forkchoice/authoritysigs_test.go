package forkchoice

import (
	"testing"

	"github.com/chainlab/go-chainlab/chainhash"
	"github.com/chainlab/go-chainlab/types"
)

func authBlock(parent_ chainhash.Hash, height uint64, signer types.Authority) types.Block[types.Authority, struct{}] {
	return types.Block[types.Authority, struct{}]{Header: types.Header[types.Authority]{
		Parent: parent_, Height: height, ConsensusDigest: signer,
	}}
}

func TestMostAuthoritySignaturesPrefersMostSigs(t *testing.T) {
	fc := NewMostAuthoritySignatures[struct{}](types.Alice)

	aliceChain1 := authBlock(0, 1, types.Alice)
	fc.ImportHook(aliceChain1)
	aliceChain2 := authBlock(aliceChain1.Header.Hash(), 2, types.Alice)
	fc.ImportHook(aliceChain2)

	aliceChain3 := authBlock(12, 1, types.Alice)
	fc.ImportHook(aliceChain3)

	bobChain := authBlock(11, 1, types.Bob)
	fc.ImportHook(bobChain)
	for i := 0; i < 2; i++ {
		next := authBlock(bobChain.Header.Hash(), bobChain.Header.Height+1, types.Bob)
		fc.ImportHook(next)
		bobChain = next
	}

	best, ok := fc.BestBlock()
	if !ok {
		t.Fatal("expected a best block")
	}
	if best != aliceChain2.Header.Hash() {
		t.Fatal("expected the two-Alice-signature chain to be best")
	}
}

func TestMostAuthoritySignaturesImportHookIsIdempotentUnderReplay(t *testing.T) {
	fc := NewMostAuthoritySignatures[struct{}](types.Alice)

	root := authBlock(0, 1, types.Alice)
	fc.ImportHook(root)
	child := authBlock(root.Header.Hash(), 2, types.Alice)
	fc.ImportHook(child)

	if len(fc.sigsToTip) != 1 || fc.sigsToTip[2] != child.Header.Hash() {
		t.Fatalf("expected one tracked chain at 2 signatures, got %v", fc.sigsToTip)
	}

	// replaying child must not re-insert it as a fresh entry that counts
	// only its own signature.
	fc.ImportHook(child)

	if len(fc.sigsToTip) != 1 || fc.sigsToTip[2] != child.Header.Hash() {
		t.Fatalf("expected replaying child to leave tracking unchanged, got %v", fc.sigsToTip)
	}

	grandchild := authBlock(child.Header.Hash(), 3, types.Alice)
	fc.ImportHook(grandchild)

	if len(fc.sigsToTip) != 1 || fc.sigsToTip[3] != grandchild.Header.Hash() {
		t.Fatalf("expected grandchild to extend the true signature count to 3, got %v", fc.sigsToTip)
	}
}
