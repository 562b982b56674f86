package domain

import "time"

// VanguardRebalance is the full output of one rebalance run. Sections are nil
// for accounts that were not part of the run. RetirementTarget carries the
// combined target the two IRAs were split from and is only set when both are
// present.
type VanguardRebalance struct {
	RunID       string    `json:"runId"`
	GeneratedAt time.Time `json:"generatedAt"`

	Brokerage        *AccountHoldings `json:"brokerage,omitempty"`
	TraditionalIRA   *AccountHoldings `json:"traditionalIra,omitempty"`
	RothIRA          *AccountHoldings `json:"rothIra,omitempty"`
	RetirementTarget *ShareValues     `json:"retirementTarget,omitempty"`
}
