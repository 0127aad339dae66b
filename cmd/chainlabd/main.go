// Command chainlabd is a scripted demonstration node: it wires an
// accounted-currency client together from a TOML config, then runs a
// fixed sequence of transaction submissions and authoring ticks so the
// whole pluggable stack can be exercised end to end from the command
// line.
package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/urfave/cli/v2"
	"go.uber.org/automaxprocs/maxprocs"

	"github.com/chainlab/go-chainlab/log"
	"github.com/chainlab/go-chainlab/statemachine/accounted"
	"github.com/chainlab/go-chainlab/types"
)

var (
	configFlag = &cli.StringFlag{
		Name:  "config",
		Usage: "path to a TOML config file",
	}
	verbosityFlag = &cli.IntFlag{
		Name:  "verbosity",
		Usage: "log verbosity from 0 (crit only) to 5 (trace)",
		Value: 3,
	}
	metricsAddrFlag = &cli.StringFlag{
		Name:  "metrics.addr",
		Usage: "address to serve /metrics on; empty disables it",
		Value: "",
	}
)

func main() {
	app := &cli.App{
		Name:  "chainlabd",
		Usage: "run a scripted demonstration of the chainlab client engine",
		Flags: []cli.Flag{configFlag, verbosityFlag, metricsAddrFlag},
		Action: func(c *cli.Context) error {
			return runDemo(c)
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runDemo(c *cli.Context) error {
	if _, err := maxprocs.Set(maxprocs.Logger(func(format string, args ...any) {
		log.Root().Debug(fmt.Sprintf(format, args...))
	})); err != nil {
		log.Root().Warn("failed to set GOMAXPROCS", "err", err)
	}

	level := log.Level(log.LevelCrit) - log.Level(4*c.Int("verbosity"))
	log.SetDefault(log.NewLogger(log.NewTerminalHandlerWithLevel(os.Stderr, level, true)))

	if addr := c.String("metrics.addr"); addr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		go func() {
			if err := http.ListenAndServe(addr, mux); err != nil {
				log.Root().Error("metrics server stopped", "err", err)
			}
		}()
		log.Root().Info("serving metrics", "addr", addr)
	}

	cfg, err := loadConfig(c.String("config"))
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	n, err := newNode(cfg)
	if err != nil {
		return fmt.Errorf("building node: %w", err)
	}

	log.Root().Info("submitting demo transactions")
	n.client.SubmitTransaction(accounted.Mint{Who: types.Alice, Amount: 100})
	n.client.SubmitTransaction(accounted.Mint{Who: types.Bob, Amount: 50})
	n.client.SubmitTransaction(accounted.Transfer{From: types.Alice, To: types.Bob, Amount: 10})

	for i := 0; i < cfg.AutomaticTickTransitions; i++ {
		n.client.SubmitTransaction(accounted.Transfer{From: types.Bob, To: types.Alice, Amount: 1})
	}

	log.Root().Info("authoring a block from the pool")
	if !n.client.AuthorAndImportAutomaticBlock() {
		return fmt.Errorf("authoring failed")
	}

	last := n.client.GetLastBlock()
	alice, _ := n.client.CurrentState().Get(types.Alice)
	bob, _ := n.client.CurrentState().Get(types.Bob)
	log.Root().Info("chain tip", "height", last.Header.Height, "hash", last.Header.Hash(), "alice", alice, "bob", bob)

	if remaining := n.client.PoolSize(); remaining > 0 {
		log.Root().Info("authoring a second block to drain the remaining pool", "queued", remaining)
		if !n.client.AuthorAndImportAutomaticBlock() {
			return fmt.Errorf("authoring failed")
		}
		last = n.client.GetLastBlock()
		alice, _ = n.client.CurrentState().Get(types.Alice)
		bob, _ = n.client.CurrentState().Get(types.Bob)
		log.Root().Info("chain tip", "height", last.Header.Height, "hash", last.Header.Hash(), "alice", alice, "bob", bob)
	}

	return nil
}
