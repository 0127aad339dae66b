package forked

import "github.com/chainlab/go-chainlab/types"

// DigestKind tags which arm of PowOrPoA is populated.
type DigestKind uint8

const (
	PowKind DigestKind = iota
	PoAKind
)

// PowOrPoA is the tagged-union outer digest used when a chain switches
// from proof-of-work to proof-of-authority at a fork height. Injection
// from either inner digest is total; projection back to a specific inner
// digest is fallible and fails whenever the tag doesn't match, which is
// exactly the "header whose tag mismatches the engine active at its
// height is invalid" rule.
type PowOrPoA struct {
	Kind DigestKind
	Pow  uint64
	PoA  types.Authority
}

// PowOrPoAFromPow total-injects a PoW digest into the outer type.
func PowOrPoAFromPow(d uint64) PowOrPoA {
	return PowOrPoA{Kind: PowKind, Pow: d}
}

// PowOrPoAFromPoA total-injects a PoA digest into the outer type.
func PowOrPoAFromPoA(d types.Authority) PowOrPoA {
	return PowOrPoA{Kind: PoAKind, PoA: d}
}

// ProjectPow fallibly projects the outer digest down to a PoW digest.
func ProjectPow(d PowOrPoA) (uint64, bool) {
	if d.Kind != PowKind {
		return 0, false
	}
	return d.Pow, true
}

// ProjectPoA fallibly projects the outer digest down to a PoA digest.
func ProjectPoA(d PowOrPoA) (types.Authority, bool) {
	if d.Kind != PoAKind {
		return 0, false
	}
	return d.PoA, true
}
