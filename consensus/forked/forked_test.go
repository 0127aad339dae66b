package forked

import (
	"testing"

	"github.com/chainlab/go-chainlab/consensus/poa"
	"github.com/chainlab/go-chainlab/consensus/powengine"
	"github.com/chainlab/go-chainlab/types"
)

func TestChangeAuthoritiesAtHeight(t *testing.T) {
	before := []types.Authority{types.Alice}
	after := []types.Authority{types.Bob}
	to, from := IdentityProjection[types.Authority]()

	e := Engine[types.Authority, types.Authority, types.Authority]{
		ForkHeight: 3,
		Before:     poa.Simple{Authorities: before},
		After:      poa.Simple{Authorities: after},
		ToBefore:   to,
		FromBefore: from,
		ToAfter:    to,
		FromAfter:  from,
	}

	h2 := types.Header[types.Authority]{Height: 2, ConsensusDigest: types.Alice}
	if !e.Validate(types.Alice, h2) {
		t.Fatal("expected before-fork authority to validate before fork height")
	}

	h3 := types.Header[types.Authority]{Height: 3, ConsensusDigest: types.Bob}
	if !e.Validate(types.Alice, h3) {
		t.Fatal("expected after-fork authority to validate at fork height")
	}

	h3wrong := types.Header[types.Authority]{Height: 3, ConsensusDigest: types.Alice}
	if e.Validate(types.Alice, h3wrong) {
		t.Fatal("old authority must not validate at or after the fork height")
	}
}

func TestPowToPoaFork(t *testing.T) {
	pow := powengine.New(^uint64(0)) // accept-everything for test determinism
	after := poa.Simple{Authorities: []types.Authority{types.Alice, types.Bob}}

	e := Engine[PowOrPoA, uint64, types.Authority]{
		ForkHeight: 5,
		Before:     pow,
		After:      after,
		ToBefore:   ProjectPow,
		FromBefore: PowOrPoAFromPow,
		ToAfter:    ProjectPoA,
		FromAfter:  PowOrPoAFromPoA,
	}

	before := types.Header[PowOrPoA]{Height: 4, ConsensusDigest: PowOrPoAFromPow(1)}
	if !e.Validate(PowOrPoAFromPow(0), before) {
		t.Fatal("expected PoW-tagged header below fork height to validate")
	}

	mismatched := types.Header[PowOrPoA]{Height: 4, ConsensusDigest: PowOrPoAFromPoA(types.Alice)}
	if e.Validate(PowOrPoAFromPow(0), mismatched) {
		t.Fatal("a PoA-tagged digest before the fork height must never validate")
	}

	after5 := types.Header[PowOrPoA]{Height: 5, ConsensusDigest: PowOrPoAFromPoA(types.Alice)}
	if !e.Validate(PowOrPoAFromPow(0), after5) {
		t.Fatal("expected PoA-tagged header at fork height to validate")
	}

	atForkWrongTag := types.Header[PowOrPoA]{Height: 5, ConsensusDigest: PowOrPoAFromPow(1)}
	if e.Validate(PowOrPoAFromPow(0), atForkWrongTag) {
		t.Fatal("a PoW-tagged digest at or after the fork height must never validate")
	}
}
