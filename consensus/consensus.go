// Package consensus defines the seal/validate contract shared by every
// consensus engine in this module, independent of its digest shape.
package consensus

import "github.com/chainlab/go-chainlab/types"

// Interface is a pluggable consensus engine over digest type D. Validate
// checks an already-sealed header against its parent's digest; Seal
// produces a sealed header from a partial one (consensus digest at its
// zero value), or refuses by returning ok=false.
type Interface[D any] interface {
	Validate(parentDigest D, header types.Header[D]) bool
	Seal(parentDigest D, partial types.Header[D]) (sealed types.Header[D], ok bool)
}
