package main

import (
	"fmt"

	"github.com/chainlab/go-chainlab/client"
	"github.com/chainlab/go-chainlab/consensus"
	"github.com/chainlab/go-chainlab/consensus/powengine"
	"github.com/chainlab/go-chainlab/forkchoice"
	"github.com/chainlab/go-chainlab/log"
	"github.com/chainlab/go-chainlab/metrics"
	"github.com/chainlab/go-chainlab/statemachine/accounted"
	"github.com/chainlab/go-chainlab/storage"
	"github.com/chainlab/go-chainlab/txpool"
	"github.com/chainlab/go-chainlab/types"
	"github.com/prometheus/client_golang/prometheus"
)

// node is the demo binary's single in-process chain: an accounted-currency
// client wired up per the loaded Config.
type node struct {
	client *client.Client[uint64, accounted.Transition, accounted.Balances]
}

func newNode(cfg Config) (*node, error) {
	genesisState := accounted.NewBalances()
	genesisBlock := types.GenesisBlock[uint64, accounted.Transition](genesisState)

	var engine consensus.Interface[uint64]
	switch cfg.Consensus.Kind {
	case "pow", "":
		engine = powengine.New(cfg.Consensus.Threshold)
	default:
		return nil, fmt.Errorf("unknown consensus kind %q", cfg.Consensus.Kind)
	}

	var fc forkchoice.Interface[uint64, accounted.Transition]
	switch cfg.ForkChoice.Kind {
	case "longest", "":
		fc = forkchoice.NewLongestChain[uint64, accounted.Transition]()
	case "heaviest":
		fc = forkchoice.NewHeaviestChain[accounted.Transition]()
	default:
		return nil, fmt.Errorf("unknown fork choice kind %q", cfg.ForkChoice.Kind)
	}

	prio := func(t accounted.Transition) uint64 {
		switch t.(type) {
		case accounted.Mint:
			return 5
		case accounted.Burn:
			return 4
		case accounted.Transfer:
			return 6
		default:
			return 0
		}
	}
	pool := txpool.NewPriority[accounted.Transition](prio, cfg.Pool.MinimumPriority)

	caps := client.Capabilities[uint64, accounted.Transition, accounted.Balances]{
		Consensus:    engine,
		StateMachine: accounted.Machine{},
		ForkChoice:   fc,
		TxPool:       pool,
		Storage:      storage.New[uint64, accounted.Transition](genesisBlock, genesisState),
		Log:          log.Root().New("component", "client"),
		Metrics:      metrics.New(prometheus.DefaultRegisterer),
	}
	return &node{client: client.New(caps)}, nil
}
