package evenonly

import (
	"testing"

	"github.com/chainlab/go-chainlab/chainhash"
	"github.com/chainlab/go-chainlab/consensus/powengine"
	"github.com/chainlab/go-chainlab/types"
)

func header(stateRoot uint64) types.Header[uint64] {
	return types.Header[uint64]{Height: 1, StateRoot: chainhash.Hash(stateRoot)}
}

func TestEvenStateRootValidatesWhenInnerDoes(t *testing.T) {
	pow := powengine.New(^uint64(0)) // threshold accepts everything
	e := Engine[uint64]{Inner: pow}
	h := header(2)
	if !e.Validate(0, h) {
		t.Fatal("expected even state root with permissive inner engine to validate")
	}
}

func TestOddStateRootNeverValidates(t *testing.T) {
	pow := powengine.New(^uint64(0))
	e := Engine[uint64]{Inner: pow}
	h := header(3)
	if e.Validate(0, h) {
		t.Fatal("odd state root must never validate under EvenOnly")
	}
}

func TestSealRefusesOnOddStateRoot(t *testing.T) {
	pow := powengine.New(^uint64(0))
	e := Engine[uint64]{Inner: pow}
	_, ok := e.Seal(0, header(3))
	if ok {
		t.Fatal("seal must refuse when partial state root is odd")
	}
}

func TestSealDelegatesOnEvenStateRoot(t *testing.T) {
	pow := powengine.New(^uint64(0))
	e := Engine[uint64]{Inner: pow}
	_, ok := e.Seal(0, header(2))
	if !ok {
		t.Fatal("seal must delegate to inner engine when state root is even")
	}
}
