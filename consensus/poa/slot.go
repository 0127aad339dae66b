package poa

import "github.com/chainlab/go-chainlab/types"

// SlotDigest is the consensus digest for RoundRobinBySlot: a
// strictly-increasing slot number together with the authority that
// claimed it.
type SlotDigest struct {
	Slot   uint64
	Signer types.Authority
}

// RoundRobinBySlot requires slots to strictly increase down the chain and
// the signer to be the next authority in rotation after the parent's
// signer. Slots may be skipped (consecutive blocks need not have
// consecutive slot numbers), but may never repeat or go backwards.
type RoundRobinBySlot struct {
	Authorities []types.Authority
}

func (r RoundRobinBySlot) Validate(parentDigest SlotDigest, header types.Header[SlotDigest]) bool {
	if len(r.Authorities) == 0 {
		return false
	}
	if header.ConsensusDigest.Slot <= parentDigest.Slot {
		return false
	}
	idx, ok := indexOf(r.Authorities, parentDigest.Signer)
	if !ok {
		idx = -1
	}
	next := r.Authorities[(idx+1)%len(r.Authorities)]
	return header.ConsensusDigest.Signer == next
}

func (r RoundRobinBySlot) Seal(parentDigest SlotDigest, partial types.Header[SlotDigest]) (types.Header[SlotDigest], bool) {
	if len(r.Authorities) == 0 {
		return partial, false
	}
	idx, ok := indexOf(r.Authorities, parentDigest.Signer)
	if !ok {
		idx = -1
	}
	partial.ConsensusDigest = SlotDigest{
		Slot:   parentDigest.Slot + 1,
		Signer: r.Authorities[(idx+1)%len(r.Authorities)],
	}
	return partial, true
}
