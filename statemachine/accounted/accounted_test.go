package accounted

import (
	"testing"

	"github.com/chainlab/go-chainlab/types"
)

func balancesOf(t *testing.T, pairs ...Entry) Balances {
	t.Helper()
	b := NewBalances()
	for _, p := range pairs {
		b.set(p.Who, p.Balance)
	}
	return b
}

func assertBalances(t *testing.T, got Balances, want ...Entry) {
	t.Helper()
	gotEntries := got.SortedEntries()
	if len(gotEntries) != len(want) {
		t.Fatalf("got %v entries, want %v", gotEntries, want)
	}
	wb := balancesOf(t, want...)
	wantEntries := wb.SortedEntries()
	for i := range wantEntries {
		if gotEntries[i] != wantEntries[i] {
			t.Fatalf("entry %d: got %+v, want %+v", i, gotEntries[i], wantEntries[i])
		}
	}
}

func TestMintCreatesAccount(t *testing.T) {
	end := Machine{}.NextState(NewBalances(), Mint{Who: types.Alice, Amount: 100})
	assertBalances(t, end, Entry{types.Alice, 100})
}

func TestMintCreatesSecondAccount(t *testing.T) {
	start := balancesOf(t, Entry{types.Alice, 100})
	end := Machine{}.NextState(start, Mint{Who: types.Bob, Amount: 50})
	assertBalances(t, end, Entry{types.Alice, 100}, Entry{types.Bob, 50})
}

func TestMintIncreasesBalance(t *testing.T) {
	start := balancesOf(t, Entry{types.Alice, 100})
	end := Machine{}.NextState(start, Mint{Who: types.Alice, Amount: 50})
	assertBalances(t, end, Entry{types.Alice, 150})
}

func TestEmptyMintIsNoop(t *testing.T) {
	end := Machine{}.NextState(NewBalances(), Mint{Who: types.Alice, Amount: 0})
	assertBalances(t, end)
}

func TestSimpleBurn(t *testing.T) {
	start := balancesOf(t, Entry{types.Alice, 100})
	end := Machine{}.NextState(start, Burn{Who: types.Alice, Amount: 50})
	assertBalances(t, end, Entry{types.Alice, 50})
}

func TestBurnRemovesAccountAtExistentialDeposit(t *testing.T) {
	start := balancesOf(t, Entry{types.Alice, 100}, Entry{types.Bob, 50})
	end := Machine{}.NextState(start, Burn{Who: types.Bob, Amount: 50})
	assertBalances(t, end, Entry{types.Alice, 100})
}

func TestBurnMoreThanBalanceRemovesAccount(t *testing.T) {
	start := balancesOf(t, Entry{types.Alice, 100}, Entry{types.Bob, 50})
	end := Machine{}.NextState(start, Burn{Who: types.Bob, Amount: 100})
	assertBalances(t, end, Entry{types.Alice, 100})
}

func TestBurnUnknownAccountIsNoop(t *testing.T) {
	start := balancesOf(t, Entry{types.Alice, 100})
	end := Machine{}.NextState(start, Burn{Who: types.Bob, Amount: 50})
	assertBalances(t, end, Entry{types.Alice, 100})
}

func TestEmptyBurnIsNoop(t *testing.T) {
	start := balancesOf(t, Entry{types.Alice, 100})
	end := Machine{}.NextState(start, Burn{Who: types.Alice, Amount: 0})
	assertBalances(t, end, Entry{types.Alice, 100})
}

func TestSimpleTransfer(t *testing.T) {
	start := balancesOf(t, Entry{types.Alice, 100}, Entry{types.Bob, 50})
	end := Machine{}.NextState(start, Transfer{From: types.Alice, To: types.Bob, Amount: 10})
	assertBalances(t, end, Entry{types.Alice, 90}, Entry{types.Bob, 60})
}

func TestTransferToSelfIsUnaffected(t *testing.T) {
	start := balancesOf(t, Entry{types.Alice, 100}, Entry{types.Bob, 50})
	end := Machine{}.NextState(start, Transfer{From: types.Bob, To: types.Bob, Amount: 10})
	assertBalances(t, end, Entry{types.Alice, 100}, Entry{types.Bob, 50})
}

func TestInsufficientBalanceTransferIsNoop(t *testing.T) {
	start := balancesOf(t, Entry{types.Alice, 100}, Entry{types.Bob, 50})
	end := Machine{}.NextState(start, Transfer{From: types.Bob, To: types.Alice, Amount: 60})
	assertBalances(t, end, Entry{types.Alice, 100}, Entry{types.Bob, 50})
}

func TestTransferFromUnknownSenderIsNoop(t *testing.T) {
	start := balancesOf(t, Entry{types.Alice, 100}, Entry{types.Bob, 50})
	end := Machine{}.NextState(start, Transfer{From: types.Charlie, To: types.Alice, Amount: 50})
	assertBalances(t, end, Entry{types.Alice, 100}, Entry{types.Bob, 50})
}

func TestTransferToUnknownReceiverCreatesAccount(t *testing.T) {
	start := balancesOf(t, Entry{types.Alice, 100}, Entry{types.Bob, 50})
	end := Machine{}.NextState(start, Transfer{From: types.Alice, To: types.Charlie, Amount: 50})
	assertBalances(t, end, Entry{types.Alice, 50}, Entry{types.Bob, 50}, Entry{types.Charlie, 50})
}

func TestTransferToExactBalanceRemovesSender(t *testing.T) {
	start := balancesOf(t, Entry{types.Alice, 100}, Entry{types.Bob, 50})
	end := Machine{}.NextState(start, Transfer{From: types.Bob, To: types.Alice, Amount: 50})
	assertBalances(t, end, Entry{types.Alice, 150})
}

func TestNextStateDoesNotMutateInput(t *testing.T) {
	start := balancesOf(t, Entry{types.Alice, 100})
	_ = Machine{}.NextState(start, Mint{Who: types.Alice, Amount: 50})
	assertBalances(t, start, Entry{types.Alice, 100})
}
