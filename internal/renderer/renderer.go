// Package renderer turns a computed rebalance into the fixed-width text
// report printed to stdout. Logs go to stderr, so the report stays pipeable.
package renderer

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/montanaflynn/stats"
	"github.com/shopspring/decimal"

	"vanrebal/internal/domain"
)

const (
	accountRule  = "------------------------------------------------------"
	accountClose = "======================================================"
	targetRule   = "-------------------------------"
	targetClose  = "==============================="
)

var usdCurrency = money.GetCurrency(money.USD)

// usd formats a dollar amount with the currency's own formatter, rounded to
// cents.
func usd(amount decimal.Decimal) string {
	return usdCurrency.Formatter().Format(amount.Shift(2).Round(0).IntPart())
}

// Text renders the full report. Sections appear in the order the paper
// worksheet always used: the combined retirement target first, then each
// account's purchase table.
func Text(rebalance *domain.VanguardRebalance) string {
	var b strings.Builder
	if rebalance.RetirementTarget != nil {
		fmt.Fprintf(&b, "Retirement target:\n%s\n\n", TargetTable(*rebalance.RetirementTarget))
	}
	if rebalance.TraditionalIRA != nil {
		fmt.Fprintf(&b, "Traditional IRA:\n%s\n\n", AccountTable(*rebalance.TraditionalIRA))
	}
	if rebalance.RothIRA != nil {
		fmt.Fprintf(&b, "Roth IRA:\n%s\n\n", AccountTable(*rebalance.RothIRA))
	}
	if rebalance.Brokerage != nil {
		fmt.Fprintf(&b, "Brokerage:\n%s\n\n", AccountTable(*rebalance.Brokerage))
	}
	return strings.TrimRight(b.String(), "\n")
}

// AccountTable renders one account's purchase table. The purchase column is
// in shares when a quote was available and in dollars for any symbol that
// fell back to the default quote of 1.
func AccountTable(account domain.AccountHoldings) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-9s%-15s%-16s%s\n", "Symbol", "Purchase/Sell", "Current", "Target")
	fmt.Fprintln(&b, accountRule)
	for _, symbol := range domain.TradedSymbols() {
		fmt.Fprintf(&b, "%-9s%-15s%-16s%s\n",
			symbol,
			account.Purchase.Value(symbol).StringFixed(2),
			usd(account.Current.Value(symbol)),
			usd(account.Target.Value(symbol)),
		)
	}
	fmt.Fprintln(&b, accountRule)
	fmt.Fprintf(&b, "%-24s%-16s%s\n", "Cash", usd(account.Current.Cash()), usd(account.Target.Cash()))
	fmt.Fprintf(&b, "%-24s%s\n", "Total", usd(account.Current.TotalValue()))
	fmt.Fprintf(&b, "%-24s%-16s%s\n", "Outside stock", usd(account.Current.OutsideStock), usd(account.Target.OutsideStock))
	fmt.Fprintf(&b, "%-24s%-16s%s\n", "Outside bond", usd(account.Current.OutsideBond), usd(account.Target.OutsideBond))
	fmt.Fprintf(&b, "%-24s%-16s%s\n", "Stock:Bond:Inflation", ratio(account.Current), ratio(account.Target))
	if mean, max, err := drift(account); err == nil {
		fmt.Fprintf(&b, "%-24s%s / %s\n", "Drift (mean/max)", usd(mean), usd(max))
	}
	fmt.Fprint(&b, accountClose)
	return b.String()
}

// TargetTable renders a bare set of values, used for the combined retirement
// target which has no purchase column.
func TargetTable(values domain.ShareValues) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-17s%s\n", "Symbol", "Value")
	fmt.Fprintln(&b, targetRule)
	for _, symbol := range domain.TradedSymbols() {
		fmt.Fprintf(&b, "%-17s%s\n", symbol, usd(values.Value(symbol)))
	}
	fmt.Fprintln(&b, targetRule)
	fmt.Fprintf(&b, "%-17s%s\n", "Cash", usd(values.Cash()))
	fmt.Fprintf(&b, "%-17s%s\n", "Total", usd(values.TotalValue()))
	fmt.Fprintf(&b, "%-17s%s\n", "Outside stock", usd(values.OutsideStock))
	fmt.Fprintf(&b, "%-17s%s\n", "Outside bond", usd(values.OutsideBond))
	fmt.Fprintf(&b, "%-17s%s\n", "Stock:Bond:Infl", ratio(values))
	fmt.Fprint(&b, targetClose)
	return b.String()
}

// SymbolTable lists every supported ticker with its description.
func SymbolTable() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-9s%s\n", "Symbol", "Description")
	fmt.Fprintln(&b, targetRule)
	for _, symbol := range domain.Symbols() {
		fmt.Fprintf(&b, "%-9s%s\n", symbol, symbol.Description())
	}
	return strings.TrimRight(b.String(), "\n")
}

// Distribution renders the required minimum distribution line appended to
// the report when an age was given.
func Distribution(amount decimal.Decimal) string {
	return fmt.Sprintf("Minimum required distribution: %s", usd(amount))
}

func ratio(values domain.ShareValues) string {
	stock, bond, inflation := values.PercentStockBondInflation()
	return fmt.Sprintf("%.1f:%.1f:%.1f", stock, bond, inflation)
}

// drift summarizes how far each fund sits from its target in dollars.
func drift(account domain.AccountHoldings) (decimal.Decimal, decimal.Decimal, error) {
	diffs := make([]float64, 0, len(domain.TradedSymbols()))
	for _, symbol := range domain.TradedSymbols() {
		gap := account.Target.Value(symbol).Sub(account.Current.Value(symbol))
		diffs = append(diffs, gap.Abs().InexactFloat64())
	}
	mean, err := stats.Mean(diffs)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	max, err := stats.Max(diffs)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	return decimal.NewFromFloat(mean), decimal.NewFromFloat(max), nil
}
