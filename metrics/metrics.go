// Package metrics wires the client engine's counters and gauges into a
// prometheus registry. It is deliberately thin: the engine calls the
// handful of methods below at the same points it logs, and a caller that
// never registers a registry gets working no-op metrics for free.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Set is the group of instruments the client engine reports into.
type Set struct {
	importedBlocks  prometheus.Counter
	rejectedBlocks  prometheus.Counter
	authoredBlocks  prometheus.Counter
	poolSize        prometheus.Gauge
	bestBlockHeight prometheus.Gauge
}

// New creates a Set and registers every instrument with reg. Passing a
// fresh prometheus.NewRegistry() per client is fine; passing
// prometheus.DefaultRegisterer wires the engine into the process-global
// /metrics endpoint.
func New(reg prometheus.Registerer) *Set {
	s := &Set{
		importedBlocks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "chainlab",
			Subsystem: "client",
			Name:      "imported_blocks_total",
			Help:      "Number of blocks successfully imported.",
		}),
		rejectedBlocks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "chainlab",
			Subsystem: "client",
			Name:      "rejected_blocks_total",
			Help:      "Number of blocks that failed import validation.",
		}),
		authoredBlocks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "chainlab",
			Subsystem: "client",
			Name:      "authored_blocks_total",
			Help:      "Number of blocks successfully authored, manual or automatic.",
		}),
		poolSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "chainlab",
			Subsystem: "txpool",
			Name:      "size",
			Help:      "Number of transitions currently queued in the transaction pool.",
		}),
		bestBlockHeight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "chainlab",
			Subsystem: "forkchoice",
			Name:      "best_block_height",
			Help:      "Height of the fork-choice rule's current best block, if known.",
		}),
	}
	reg.MustRegister(s.importedBlocks, s.rejectedBlocks, s.authoredBlocks, s.poolSize, s.bestBlockHeight)
	return s
}

// Noop returns a Set that is safe to call but records nothing, for
// callers that don't want a registry.
func Noop() *Set {
	return New(prometheus.NewRegistry())
}

func (s *Set) BlockImported()               { s.importedBlocks.Inc() }
func (s *Set) BlockRejected()               { s.rejectedBlocks.Inc() }
func (s *Set) BlockAuthored()               { s.authoredBlocks.Inc() }
func (s *Set) SetPoolSize(n int)            { s.poolSize.Set(float64(n)) }
func (s *Set) SetBestBlockHeight(h uint64)  { s.bestBlockHeight.Set(float64(h)) }
