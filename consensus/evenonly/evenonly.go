// Package evenonly implements a higher-order consensus engine: it adds an
// even-state-root requirement on top of whatever inner engine it wraps.
package evenonly

import (
	"github.com/chainlab/go-chainlab/consensus"
	"github.com/chainlab/go-chainlab/types"
)

// Engine wraps Inner, additionally requiring the header's state root to be
// even. Its digest type is exactly Inner's.
type Engine[D any] struct {
	Inner consensus.Interface[D]
}

func (e Engine[D]) Validate(parentDigest D, header types.Header[D]) bool {
	return uint64(header.StateRoot)%2 == 0 && e.Inner.Validate(parentDigest, header)
}

// Seal refuses (ok=false) when the partial header's state root is odd;
// otherwise it delegates sealing to Inner.
func (e Engine[D]) Seal(parentDigest D, partial types.Header[D]) (types.Header[D], bool) {
	if uint64(partial.StateRoot)%2 != 0 {
		return partial, false
	}
	return e.Inner.Seal(parentDigest, partial)
}
