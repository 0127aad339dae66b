package forkchoice

import "github.com/chainlab/go-chainlab/types"

// MostEvenHashes is a supplementary, chain-slice-comparison flavor of fork
// choice (not part of the mandatory client-level Interface): given two
// candidate header chains, the one containing more headers whose own
// hash is even is better.
type MostEvenHashes[D any] struct{}

// FirstChainIsBetter reports whether chain1 has strictly more
// even-hashed headers than chain2.
func (MostEvenHashes[D]) FirstChainIsBetter(chain1, chain2 []types.Header[D]) bool {
	return countEven(chain1) > countEven(chain2)
}

// BestChain returns whichever of candidates is preferred by repeated
// pairwise comparison.
func (r MostEvenHashes[D]) BestChain(candidates [][]types.Header[D]) []types.Header[D] {
	best := candidates[0]
	for _, c := range candidates[1:] {
		if r.FirstChainIsBetter(c, best) {
			best = c
		}
	}
	return best
}

func countEven[D any](chain []types.Header[D]) int {
	count := 0
	for _, h := range chain {
		if uint64(h.Hash())%2 == 0 {
			count++
		}
	}
	return count
}
