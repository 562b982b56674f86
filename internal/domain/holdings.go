package domain

// AccountKind identifies which of the three Vanguard account types a set of
// holdings belongs to.
type AccountKind int

const (
	KindBrokerage AccountKind = iota
	KindTraditionalIRA
	KindRothIRA
)

func (k AccountKind) String() string {
	switch k {
	case KindBrokerage:
		return "Brokerage"
	case KindTraditionalIRA:
		return "Traditional IRA"
	case KindRothIRA:
		return "Roth IRA"
	}
	return "Unknown"
}

// VanguardHoldings is everything pulled out of one downloaded Vanguard CSV,
// keyed to the accounts the caller asked for. A nil account means the caller
// did not request it. TraditionalShares mirrors TraditionalIRA but holds raw
// share counts instead of dollars so the prior year's balance can be
// reconstructed from the transaction history.
type VanguardHoldings struct {
	Brokerage         *ShareValues
	TraditionalIRA    *ShareValues
	RothIRA           *ShareValues
	TraditionalShares *ShareValues

	Quotes       ShareValues
	Transactions []Transaction
}

// AccountHoldings pairs the current state of one account with its computed
// target. Purchase is the difference converted to share counts, so a positive
// number is a buy and a negative number is a sell. Symbols whose quote kept
// the default of 1 show dollars there instead of shares.
type AccountHoldings struct {
	Current  ShareValues `json:"current"`
	Target   ShareValues `json:"target"`
	Purchase ShareValues `json:"purchase"`
}

func NewAccountHoldings(current, target, quotes ShareValues) AccountHoldings {
	return AccountHoldings{
		Current:  current,
		Target:   target,
		Purchase: target.Subtract(current).Divide(quotes),
	}
}
