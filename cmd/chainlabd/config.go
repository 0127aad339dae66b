package main

import (
	"github.com/BurntSushi/toml"
)

// Config is the demo binary's on-disk configuration: which consensus
// engine and fork-choice rule to wire up, and how to prioritize the
// transaction pool.
type Config struct {
	Consensus struct {
		Kind      string `toml:"kind"` // "pow"
		Threshold uint64 `toml:"threshold"`
	} `toml:"consensus"`

	ForkChoice struct {
		Kind string `toml:"kind"` // "longest" or "heaviest"
	} `toml:"forkchoice"`

	Pool struct {
		MinimumPriority uint64 `toml:"minimum_priority"`
	} `toml:"pool"`

	AutomaticTickTransitions int `toml:"automatic_tick_transitions"`
}

func defaultConfig() Config {
	var c Config
	c.Consensus.Kind = "pow"
	c.Consensus.Threshold = ^uint64(0) / 4
	c.ForkChoice.Kind = "longest"
	c.Pool.MinimumPriority = 0
	c.AutomaticTickTransitions = 10
	return c
}

func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	_, err := toml.DecodeFile(path, &cfg)
	return cfg, err
}
