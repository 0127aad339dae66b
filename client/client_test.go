package client

import (
	"github.com/davecgh/go-spew/spew"

	"github.com/chainlab/go-chainlab/consensus/powengine"
	"github.com/chainlab/go-chainlab/forkchoice"
	"github.com/chainlab/go-chainlab/statemachine/accounted"
	"github.com/chainlab/go-chainlab/storage"
	"github.com/chainlab/go-chainlab/txpool"
	"github.com/chainlab/go-chainlab/types"
)

// dumper renders failure-path values (headers, balances) for test
// diagnostics without manually formatting every field.
var dumper = spew.ConfigState{Indent: "    ", DisableMethods: true}

func newTestClient() (*Client[uint64, accounted.Transition, accounted.Balances], types.Block[uint64, accounted.Transition]) {
	genesisState := accounted.NewBalances()
	genesisBlock := types.GenesisBlock[uint64, accounted.Transition](genesisState)

	caps := Capabilities[uint64, accounted.Transition, accounted.Balances]{
		Consensus:    powengine.New(^uint64(0)),
		StateMachine: accounted.Machine{},
		ForkChoice:   forkchoice.NewLongestChain[uint64, accounted.Transition](),
		TxPool:       txpool.NewSimple[accounted.Transition](),
		Storage:      storage.New[uint64, accounted.Transition](genesisBlock, genesisState),
	}
	return New(caps), genesisBlock
}
