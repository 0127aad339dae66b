package txpool

import (
	"testing"

	"github.com/chainlab/go-chainlab/statemachine/accounted"
	"github.com/chainlab/go-chainlab/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimplePoolIsFIFO(t *testing.T) {
	p := NewSimple[accounted.Transition]()
	a := accounted.Mint{Who: types.Alice, Amount: 1}
	b := accounted.Mint{Who: types.Bob, Amount: 2}

	require.True(t, p.TryInsert(a))
	require.True(t, p.TryInsert(b))
	require.Equal(t, 2, p.Size())

	got, ok := p.NextFromPool()
	require.True(t, ok)
	assert.Equal(t, accounted.Transition(a), got)
}

func TestPriorityPoolEmptyRemoveDoesNotPanic(t *testing.T) {
	p := NewPriority[accounted.Transition](func(accounted.Transition) uint64 { return 0 }, 0)
	elem := accounted.Mint{Who: types.Alice, Amount: 12}
	p.Remove(elem)
	assert.False(t, p.Contains(elem))
	assert.Equal(t, 0, p.Size())
}

func TestPriorityPoolOrdersByPriorityAndRejectsBelowMinimum(t *testing.T) {
	prioritizer := func(t accounted.Transition) uint64 {
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
	p := NewPriority[accounted.Transition](prioritizer, 5)

	mint := accounted.Mint{Who: types.Alice, Amount: 12}
	require.True(t, p.TryInsert(mint))

	mint2 := accounted.Mint{Who: types.Bob, Amount: 11}
	require.True(t, p.TryInsert(mint2))
	require.Equal(t, 2, p.Size())

	first, ok := p.NextFromPool()
	require.True(t, ok)
	assert.Equal(t, accounted.Transition(mint), first)

	transfer := accounted.Transfer{From: types.Alice, To: types.Bob, Amount: 12}
	require.True(t, p.TryInsert(transfer))
	require.Equal(t, 2, p.Size())

	next, ok := p.NextFromPool()
	require.True(t, ok)
	assert.Equal(t, accounted.Transition(transfer), next, "higher-priority transfer should move to the front")

	burn := accounted.Burn{Who: types.Alice, Amount: 12}
	inserted := p.TryInsert(burn)
	assert.False(t, inserted, "below-minimum priority must be rejected")
	assert.False(t, p.Contains(burn))
}

func TestCensoringPoolRejectsPredicateMatches(t *testing.T) {
	reject := func(t accounted.Transition) bool {
		m, ok := t.(accounted.Mint)
		return ok && m.Who == types.Dave
	}
	p := NewCensoring[accounted.Transition](reject)

	ok := p.TryInsert(accounted.Mint{Who: types.Dave, Amount: 1})
	assert.False(t, ok)
	assert.Equal(t, 0, p.Size())
	assert.Len(t, p.Censored(), 1)

	ok = p.TryInsert(accounted.Mint{Who: types.Alice, Amount: 1})
	assert.True(t, ok)
	assert.Equal(t, 1, p.Size())
}
