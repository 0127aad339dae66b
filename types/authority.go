// Package types holds the generic data model: headers, blocks, and the
// small closed set of signing authorities used by the proof-of-authority
// consensus engines.
package types

// Authority is one of a fixed set of known signers. It has a natural total
// order (its underlying uint8 value), which the accounted-currency state
// machine relies on to produce a canonical, order-independent hash of its
// balances map.
type Authority uint8

const (
	Alice Authority = iota
	Bob
	Charlie
	Dave
)

func (a Authority) String() string {
	switch a {
	case Alice:
		return "Alice"
	case Bob:
		return "Bob"
	case Charlie:
		return "Charlie"
	case Dave:
		return "Dave"
	default:
		return "Unknown"
	}
}

// Authorities is the full known set, in canonical order. Consensus
// engines that need "the configured authority set" (PoA round robin,
// simple PoA) take their own []Authority slice instead of using this
// directly, since rotation order is a configuration choice, not a fixed
// property of the type.
var Authorities = []Authority{Alice, Bob, Charlie, Dave}
