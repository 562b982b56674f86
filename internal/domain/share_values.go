package domain

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

const numSymbols = len(supportedSymbols)

// ShareValues is a fixed-width vector holding one numeric value per supported
// symbol, plus rolled-up totals for assets held outside Vanguard. The same
// shape is reused for dollar balances, share counts, quotes, and purchase
// instructions; which one it is depends on where it came from.
type ShareValues struct {
	values [numSymbols]decimal.Decimal

	OutsideStock decimal.Decimal
	OutsideBond  decimal.Decimal
}

func NewShareValues() ShareValues {
	return ShareValues{}
}

// NewQuotes returns a vector with every field set to 1. A quote that fails to
// download keeps this default, which degrades share math to dollar math for
// that symbol instead of failing the run.
func NewQuotes() ShareValues {
	sv := ShareValues{
		OutsideStock: decimal.NewFromInt(1),
		OutsideBond:  decimal.NewFromInt(1),
	}
	for i := range sv.values {
		sv.values[i] = decimal.NewFromInt(1)
	}
	return sv
}

// Value returns the amount stored for symbol. Unsupported symbols read as
// zero.
func (sv ShareValues) Value(symbol Symbol) decimal.Decimal {
	i, ok := symbolIndex[symbol]
	if !ok {
		return decimal.Zero
	}
	return sv.values[i]
}

// SetValue overwrites the amount stored for symbol. Setting an unsupported
// symbol is a no-op; the parse layer is responsible for warning about those.
func (sv *ShareValues) SetValue(symbol Symbol, value decimal.Decimal) {
	i, ok := symbolIndex[symbol]
	if !ok {
		return
	}
	sv.values[i] = value
}

// AddValue accumulates into the amount stored for symbol.
func (sv *ShareValues) AddValue(symbol Symbol, value decimal.Decimal) {
	i, ok := symbolIndex[symbol]
	if !ok {
		return
	}
	sv.values[i] = sv.values[i].Add(value)
}

// Cash reads the settlement fund balance.
func (sv ShareValues) Cash() decimal.Decimal {
	return sv.Value(SymbolVMFXX)
}

func (sv ShareValues) Add(other ShareValues) ShareValues {
	out := ShareValues{
		OutsideStock: sv.OutsideStock.Add(other.OutsideStock),
		OutsideBond:  sv.OutsideBond.Add(other.OutsideBond),
	}
	for i := range sv.values {
		out.values[i] = sv.values[i].Add(other.values[i])
	}
	return out
}

func (sv ShareValues) Subtract(other ShareValues) ShareValues {
	out := ShareValues{
		OutsideStock: sv.OutsideStock.Sub(other.OutsideStock),
		OutsideBond:  sv.OutsideBond.Sub(other.OutsideBond),
	}
	for i := range sv.values {
		out.values[i] = sv.values[i].Sub(other.values[i])
	}
	return out
}

// Divide divides elementwise, which converts a dollar vector into a share
// vector when the divisor holds quotes. A zero divisor field is treated as 1,
// the same degradation as a quote that never downloaded.
func (sv ShareValues) Divide(other ShareValues) ShareValues {
	out := ShareValues{
		OutsideStock: safeDiv(sv.OutsideStock, other.OutsideStock),
		OutsideBond:  safeDiv(sv.OutsideBond, other.OutsideBond),
	}
	for i := range sv.values {
		out.values[i] = safeDiv(sv.values[i], other.values[i])
	}
	return out
}

func safeDiv(a, b decimal.Decimal) decimal.Decimal {
	if b.IsZero() {
		return a
	}
	return a.Div(b)
}

// TotalValue sums the per-symbol fields. Outside assets are not included.
func (sv ShareValues) TotalValue() decimal.Decimal {
	total := decimal.Zero
	for i := range sv.values {
		total = total.Add(sv.values[i])
	}
	return total
}

// MarketValue prices a share-count vector against quotes and returns the
// total dollar value.
func (sv ShareValues) MarketValue(quotes ShareValues) decimal.Decimal {
	total := decimal.Zero
	for i := range sv.values {
		total = total.Add(sv.values[i].Mul(quotes.values[i]))
	}
	return total
}

// PercentStockBondInflation reports the stock, bond, and inflation-protected
// slices of a dollar vector as percentages. Cash is excluded from the
// denominator and outside assets are counted in theirs. VTI and VTIVX sit in
// the denominator only since the rebalancer never targets them directly.
// When the vector is empty all three percentages are zero.
func (sv ShareValues) PercentStockBondInflation() (float64, float64, float64) {
	totalBond := sv.Value(SymbolBNDX).
		Add(sv.Value(SymbolBND)).
		Add(sv.Value(SymbolVTC)).
		Add(sv.OutsideBond)
	totalStock := sv.Value(SymbolVWO).
		Add(sv.Value(SymbolVO)).
		Add(sv.Value(SymbolVB)).
		Add(sv.Value(SymbolVV)).
		Add(sv.Value(SymbolVXUS)).
		Add(sv.OutsideStock)
	total := sv.TotalValue().
		Sub(sv.Value(SymbolVMFXX)).
		Add(sv.OutsideBond).
		Add(sv.OutsideStock)
	if total.IsZero() {
		return 0, 0, 0
	}

	hundred := decimal.NewFromInt(100)
	stock := totalStock.Div(total).Mul(hundred)
	bond := totalBond.Div(total).Mul(hundred)
	inflation := sv.Value(SymbolVTIP).Div(total).Mul(hundred)
	return stock.InexactFloat64(), bond.InexactFloat64(), inflation.InexactFloat64()
}

// Equal reports exact elementwise equality.
func (sv ShareValues) Equal(other ShareValues) bool {
	for i := range sv.values {
		if !sv.values[i].Equal(other.values[i]) {
			return false
		}
	}
	return sv.OutsideStock.Equal(other.OutsideStock) &&
		sv.OutsideBond.Equal(other.OutsideBond)
}

func (sv ShareValues) MarshalJSON() ([]byte, error) {
	out := map[string]decimal.Decimal{
		"outsideStock": sv.OutsideStock,
		"outsideBond":  sv.OutsideBond,
	}
	for i, s := range supportedSymbols {
		out[string(s)] = sv.values[i]
	}
	return json.Marshal(out)
}

func (sv *ShareValues) UnmarshalJSON(data []byte) error {
	raw := map[string]decimal.Decimal{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*sv = ShareValues{
		OutsideStock: raw["outsideStock"],
		OutsideBond:  raw["outsideBond"],
	}
	for i, s := range supportedSymbols {
		sv.values[i] = raw[string(s)]
	}
	return nil
}
