package allocation

import (
	"github.com/shopspring/decimal"

	"vanrebal/internal/domain"
)

// OutsideAssets are balances held at other institutions that should count
// toward the allocation ratio without being repurchased inside Vanguard,
// split by asset class.
type OutsideAssets struct {
	USStock   decimal.Decimal
	USBond    decimal.Decimal
	IntlStock decimal.Decimal
	IntlBond  decimal.Decimal
}

func (o OutsideAssets) Total() decimal.Decimal {
	return o.USStock.Add(o.USBond).Add(o.IntlStock).Add(o.IntlBond)
}

// BuildTarget spreads the account value plus outside assets across the fund
// weights, then backs each outside balance out of the funds covering the
// same asset class using the class's own sub-split. Cash always targets zero
// since every settled dollar should end up deployed, and the legacy VTI and
// VTIVX positions are never targeted directly.
func BuildTarget(sub SubAllocations, vanguardValue decimal.Decimal, outside OutsideAssets) domain.ShareValues {
	total := vanguardValue.Add(outside.Total())

	slice := func(weight float64) decimal.Decimal {
		return total.Mul(decimal.NewFromFloat(weight / 100.0))
	}
	two := decimal.NewFromInt(2)
	three := decimal.NewFromInt(3)

	target := domain.NewShareValues()
	target.SetValue(domain.SymbolVXUS,
		slice(sub.IntlTotalStock).Sub(outside.IntlStock.Mul(two).Div(three)))
	target.SetValue(domain.SymbolVWO,
		slice(sub.IntlEmergingStock).Sub(outside.IntlStock.Div(three)))
	target.SetValue(domain.SymbolVV,
		slice(sub.USLargeCap).Sub(outside.USStock.Div(three)))
	target.SetValue(domain.SymbolVO,
		slice(sub.USMidCap).Sub(outside.USStock.Div(three)))
	target.SetValue(domain.SymbolVB,
		slice(sub.USSmallCap).Sub(outside.USStock.Div(three)))
	target.SetValue(domain.SymbolBND,
		slice(sub.USTotalBond).Sub(outside.USBond.Div(two)))
	target.SetValue(domain.SymbolVTC,
		slice(sub.USCorporateBond).Sub(outside.USBond.Div(two)))
	target.SetValue(domain.SymbolBNDX,
		slice(sub.IntlBond).Sub(outside.IntlBond))
	target.SetValue(domain.SymbolVTIP,
		slice(sub.InflationProtected))

	target.OutsideStock = outside.USStock.Add(outside.IntlStock)
	target.OutsideBond = outside.USBond.Add(outside.IntlBond)
	return target
}
