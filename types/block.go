package types

import "github.com/chainlab/go-chainlab/chainhash"

// Block pairs a header with the ordered list of transitions that produced
// it. D is the consensus digest type; T is the state machine's transition
// type.
type Block[D, T any] struct {
	Header Header[D]
	Body   []T
}

// GenesisBlock returns a genesis block over the given genesis state. By
// convention it carries no transitions.
func GenesisBlock[D, T, S any](genesisState S) Block[D, T] {
	return Block[D, T]{
		Header: Genesis[D](chainhash.Sum(genesisState)),
		Body:   nil,
	}
}

// ChildBlock builds a valid child block by replaying extrinsics against
// preState with next, then stamping the resulting header. next is the
// owning state machine's transition function; it is passed explicitly so
// this package stays free of any state-machine dependency.
func ChildBlock[D, T, S any](parent Block[D, T], preState S, extrinsics []T, next func(S, T) S) Block[D, T] {
	state := preState
	for _, e := range extrinsics {
		state = next(state, e)
	}
	return Block[D, T]{
		Header: parent.Header.Child(chainhash.Sum(state), chainhash.Sum(extrinsics)),
		Body:   extrinsics,
	}
}

// VerifySubChain reports whether chain is a valid sequence of blocks
// descending from parent given preState: every block's transitions must
// replay to its declared state root and extrinsics root, and the headers
// must link up structurally.
func VerifySubChain[D, T, S any](parent Block[D, T], preState S, chain []Block[D, T], next func(S, T) S) bool {
	state := preState
	headers := make([]Header[D], 0, len(chain))
	for _, block := range chain {
		for _, e := range block.Body {
			state = next(state, e)
		}
		if chainhash.Sum(state) != block.Header.StateRoot {
			return false
		}
		if chainhash.Sum(block.Body) != block.Header.ExtrinsicsRoot {
			return false
		}
		headers = append(headers, block.Header)
	}
	return parent.Header.VerifySubChain(headers)
}
