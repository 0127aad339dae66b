// Package accounted implements a multi-user account-balance ledger: the
// reference state machine this module ships with.
package accounted

import (
	"sort"

	"github.com/chainlab/go-chainlab/types"
)

// Balances is the account-balance map. It carries an existential deposit
// of 1: an account is removed entirely the instant its balance would
// reach zero, rather than being retained with a zero value.
type Balances struct {
	balances map[types.Authority]uint64
}

// NewBalances returns an empty balances map.
func NewBalances() Balances {
	return Balances{}
}

// Get returns who's balance and whether they are known at all.
func (b Balances) Get(who types.Authority) (uint64, bool) {
	v, ok := b.balances[who]
	return v, ok
}

// Len reports the number of accounts currently holding a nonzero balance.
func (b Balances) Len() int { return len(b.balances) }

// Entry is one (authority, balance) pair, used for canonical hashing and
// for iteration in a stable order.
type Entry struct {
	Who     types.Authority
	Balance uint64
}

// SortedEntries returns every account in b sorted by authority, so that
// hashing a Balances value never depends on Go's randomized map iteration
// order.
func (b Balances) SortedEntries() []Entry {
	entries := make([]Entry, 0, len(b.balances))
	for who, bal := range b.balances {
		entries = append(entries, Entry{Who: who, Balance: bal})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Who < entries[j].Who })
	return entries
}

// Canonical implements chainhash.Canonical: the map's randomized
// iteration order never leaks into the hash, since SortedEntries always
// returns accounts in authority order.
func (b Balances) Canonical() any {
	return b.SortedEntries()
}

// clone returns a shallow copy of b's underlying map, so NextState can
// mutate the copy while leaving the input state untouched.
func (b Balances) clone() Balances {
	cp := make(map[types.Authority]uint64, len(b.balances))
	for k, v := range b.balances {
		cp[k] = v
	}
	return Balances{balances: cp}
}

func (b *Balances) set(who types.Authority, amount uint64) {
	if b.balances == nil {
		b.balances = make(map[types.Authority]uint64)
	}
	if amount == 0 {
		delete(b.balances, who)
		return
	}
	b.balances[who] = amount
}

// Transition is the marker interface implemented by Mint, Burn and
// Transfer. It deliberately carries no methods beyond the marker: the
// three variants are plain comparable structs, so pool implementations
// that need transition equality can rely on Go's built-in == over the
// Transition interface value.
type Transition interface {
	isTransition()
}

// Mint creates new money for Who in the given Amount. An amount of zero is
// a no-op.
type Mint struct {
	Who    types.Authority
	Amount uint64
}

func (Mint) isTransition() {}

// Burn destroys money from Who's account. Burning at least the full
// balance removes the account; burning more than the balance destroys
// only what is there, with no error. An amount of zero is a no-op.
type Burn struct {
	Who    types.Authority
	Amount uint64
}

func (Burn) isTransition() {}

// Transfer moves money from From to To. Any condition that would make the
// transfer invalid (unknown sender, insufficient balance) is a no-op
// rather than an error.
type Transfer struct {
	From, To types.Authority
	Amount   uint64
}

func (Transfer) isTransition() {}

// Machine implements statemachine.Interface[Balances, Transition].
type Machine struct{}

// NextState applies t to pre and returns the resulting balances. Every
// invalid transition (insufficient funds, unknown sender, zero amount) is
// a no-op: it returns pre unchanged rather than signaling an error, per
// this ledger's pure-and-total contract.
func (Machine) NextState(pre Balances, t Transition) Balances {
	switch tr := t.(type) {
	case Mint:
		return nextMint(pre, tr)
	case Burn:
		return nextBurn(pre, tr)
	case Transfer:
		return nextTransfer(pre, tr)
	default:
		return pre
	}
}

func nextMint(pre Balances, t Mint) Balances {
	if t.Amount == 0 {
		return pre
	}
	next := pre.clone()
	cur, _ := next.Get(t.Who)
	next.set(t.Who, cur+t.Amount)
	return next
}

func nextBurn(pre Balances, t Burn) Balances {
	cur, ok := pre.Get(t.Who)
	if !ok {
		return pre
	}
	next := pre.clone()
	if cur <= t.Amount {
		next.set(t.Who, 0)
		return next
	}
	next.set(t.Who, cur-t.Amount)
	return next
}

func nextTransfer(pre Balances, t Transfer) Balances {
	senderBal, ok := pre.Get(t.From)
	if !ok {
		return pre
	}
	if senderBal < t.Amount {
		return pre
	}
	next := pre.clone()
	if senderBal == t.Amount {
		next.set(t.From, 0)
	} else {
		next.set(t.From, senderBal-t.Amount)
	}
	receiverBal, _ := next.Get(t.To)
	next.set(t.To, receiverBal+t.Amount)
	return next
}
