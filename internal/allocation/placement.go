package allocation

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"vanrebal/internal/domain"
)

// HighToLowRisk orders the tradable funds from the highest expected growth
// and volatility down to the most stable. The placement walk fills the Roth
// account from the front of this list so tax-free growth accrues to the
// assets most likely to grow. VTIVX is deliberately absent, an all-in-one
// fund is pre-assigned to whichever account already holds it rather than
// subdivided by the walk.
var HighToLowRisk = []domain.Symbol{
	domain.SymbolVWO,
	domain.SymbolVXUS,
	domain.SymbolVB,
	domain.SymbolVO,
	domain.SymbolVV,
	domain.SymbolBNDX,
	domain.SymbolBND,
	domain.SymbolVTC,
	domain.SymbolVTIP,
}

const (
	// budgetTolerance absorbs float noise where the walk should land on
	// exactly zero. More than a cent left over means the combined target and
	// the account totals disagree, which is a bug and not a market condition.
	budgetTolerance = 0.01

	// bandTolerance is the ±1% sanity band a placed target must stay in
	// around the account's actual value.
	bandTolerance = 0.01
)

var (
	ErrLeftoverBudget = errors.New("placement walk left unassigned budget")
	ErrTargetMismatch = errors.New("placed target diverges from account value")
)

// RetirementSplit is the outcome of dividing one combined retirement target
// between the two IRAs.
type RetirementSplit struct {
	Combined    domain.ShareValues
	Roth        domain.ShareValues
	Traditional domain.ShareValues
}

// SplitRetirement builds a single target across both IRAs and splits it so
// the Roth account absorbs the riskiest slices first. Each account's target
// date fund balance is carved out before the walk and pinned to the account
// holding it. The traditional account gets whatever the walk leaves, which
// by construction sums to its value.
func SplitRetirement(sub SubAllocations, roth, traditional domain.ShareValues) (RetirementSplit, error) {
	rothTDF := roth.Value(domain.SymbolVTIVX)
	tradTDF := traditional.Value(domain.SymbolVTIVX)

	walkValue := roth.TotalValue().
		Add(traditional.TotalValue()).
		Sub(rothTDF).
		Sub(tradTDF)
	combined := BuildTarget(sub, walkValue, OutsideAssets{})
	combined.SetValue(domain.SymbolVTIVX, rothTDF.Add(tradTDF))

	rothTarget := domain.NewShareValues()
	rothTarget.SetValue(domain.SymbolVTIVX, rothTDF)

	budget := roth.TotalValue().Sub(rothTDF)
	for _, symbol := range HighToLowRisk {
		if !budget.IsPositive() {
			break
		}
		assigned := decimalMin(combined.Value(symbol), budget)
		rothTarget.SetValue(symbol, assigned)
		budget = budget.Sub(assigned)
	}

	if err := checkLeftover(budget, domain.KindRothIRA); err != nil {
		return RetirementSplit{}, err
	}
	if err := checkBand(rothTarget, roth, domain.KindRothIRA); err != nil {
		return RetirementSplit{}, err
	}

	return RetirementSplit{
		Combined:    combined,
		Roth:        rothTarget,
		Traditional: combined.Subtract(rothTarget),
	}, nil
}

// PooledSplit is the outcome of pooling the brokerage account with the two
// IRAs under one target.
type PooledSplit struct {
	Combined    domain.ShareValues
	Brokerage   domain.ShareValues
	Roth        domain.ShareValues
	Traditional domain.ShareValues
}

// SplitPooled includes the taxable brokerage account in the placement. The
// brokerage side walks the risk ordering from the safe end so the riskiest
// assets stay out of the taxable account, the Roth side then walks the
// remainder from the risky end, and the traditional account absorbs what is
// left.
func SplitPooled(sub SubAllocations, brokerage, roth, traditional domain.ShareValues, outside OutsideAssets) (PooledSplit, error) {
	brokTDF := brokerage.Value(domain.SymbolVTIVX)
	rothTDF := roth.Value(domain.SymbolVTIVX)
	tradTDF := traditional.Value(domain.SymbolVTIVX)

	walkValue := brokerage.TotalValue().
		Add(roth.TotalValue()).
		Add(traditional.TotalValue()).
		Sub(brokTDF).
		Sub(rothTDF).
		Sub(tradTDF)
	combined := BuildTarget(sub, walkValue, outside)
	combined.SetValue(domain.SymbolVTIVX, brokTDF.Add(rothTDF).Add(tradTDF))

	brokTarget := domain.NewShareValues()
	brokTarget.SetValue(domain.SymbolVTIVX, brokTDF)
	budget := brokerage.TotalValue().Sub(brokTDF)
	for i := len(HighToLowRisk) - 1; i >= 0; i-- {
		if !budget.IsPositive() {
			break
		}
		target := combined.Value(HighToLowRisk[i])
		if target.IsNegative() {
			// an outside balance can push a slice negative; the sell falls
			// through to the traditional account with the rest of the
			// residual
			continue
		}
		assigned := decimalMin(target, budget)
		brokTarget.SetValue(HighToLowRisk[i], assigned)
		budget = budget.Sub(assigned)
	}
	if err := checkLeftover(budget, domain.KindBrokerage); err != nil {
		return PooledSplit{}, err
	}
	if err := checkBand(brokTarget, brokerage, domain.KindBrokerage); err != nil {
		return PooledSplit{}, err
	}

	remaining := combined.Subtract(brokTarget)
	rothTarget := domain.NewShareValues()
	rothTarget.SetValue(domain.SymbolVTIVX, rothTDF)
	budget = roth.TotalValue().Sub(rothTDF)
	for _, symbol := range HighToLowRisk {
		if !budget.IsPositive() {
			break
		}
		target := remaining.Value(symbol)
		if target.IsNegative() {
			continue
		}
		assigned := decimalMin(target, budget)
		rothTarget.SetValue(symbol, assigned)
		budget = budget.Sub(assigned)
	}
	if err := checkLeftover(budget, domain.KindRothIRA); err != nil {
		return PooledSplit{}, err
	}
	if err := checkBand(rothTarget, roth, domain.KindRothIRA); err != nil {
		return PooledSplit{}, err
	}

	return PooledSplit{
		Combined:    combined,
		Brokerage:   brokTarget,
		Roth:        rothTarget,
		Traditional: combined.Subtract(brokTarget).Subtract(rothTarget),
	}, nil
}

func checkLeftover(budget decimal.Decimal, kind domain.AccountKind) error {
	if budget.Abs().GreaterThan(decimal.NewFromFloat(budgetTolerance)) {
		return fmt.Errorf(
			"%w: $%s left after walking the %s account",
			ErrLeftoverBudget, budget.StringFixed(2), kind,
		)
	}
	return nil
}

func checkBand(target, actual domain.ShareValues, kind domain.AccountKind) error {
	actualTotal := actual.TotalValue()
	targetTotal := target.TotalValue()
	band := actualTotal.Mul(decimal.NewFromFloat(bandTolerance)).Abs()
	if targetTotal.Sub(actualTotal).Abs().GreaterThan(band) {
		return fmt.Errorf(
			"%w: %s target $%s vs account value $%s",
			ErrTargetMismatch, kind, targetTotal.StringFixed(2), actualTotal.StringFixed(2),
		)
	}
	return nil
}

func decimalMin(a, b decimal.Decimal) decimal.Decimal {
	if a.LessThan(b) {
		return a
	}
	return b
}
