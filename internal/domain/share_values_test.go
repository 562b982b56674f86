package domain

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestShareValues_Value(t *testing.T) {
	sv := NewShareValues()
	sv.SetValue(SymbolVV, decimal.NewFromInt(1000))

	require.True(t, sv.Value(SymbolVV).Equal(decimal.NewFromInt(1000)))
	require.True(t, sv.Value(SymbolBND).IsZero())

	t.Run("unsupported symbol is a no-op", func(t *testing.T) {
		sv.SetValue(Symbol("AAPL"), decimal.NewFromInt(500))
		require.True(t, sv.Value(Symbol("AAPL")).IsZero())
		require.True(t, sv.TotalValue().Equal(decimal.NewFromInt(1000)))
	})
}

func TestShareValues_arithmetic(t *testing.T) {
	a := NewShareValues()
	a.SetValue(SymbolVV, decimal.NewFromInt(100))
	a.SetValue(SymbolBND, decimal.NewFromInt(50))
	a.OutsideStock = decimal.NewFromInt(10)

	b := NewShareValues()
	b.SetValue(SymbolVV, decimal.NewFromInt(40))
	b.SetValue(SymbolBND, decimal.NewFromInt(60))
	b.OutsideStock = decimal.NewFromInt(5)

	t.Run("add", func(t *testing.T) {
		got := a.Add(b)

		want := NewShareValues()
		want.SetValue(SymbolVV, decimal.NewFromInt(140))
		want.SetValue(SymbolBND, decimal.NewFromInt(110))
		want.OutsideStock = decimal.NewFromInt(15)

		require.Equal(t, "", cmp.Diff(want, got))
	})

	t.Run("subtract can go negative", func(t *testing.T) {
		got := a.Subtract(b)

		want := NewShareValues()
		want.SetValue(SymbolVV, decimal.NewFromInt(60))
		want.SetValue(SymbolBND, decimal.NewFromInt(-10))
		want.OutsideStock = decimal.NewFromInt(5)

		require.Equal(t, "", cmp.Diff(want, got))
	})

	t.Run("add then subtract is the identity", func(t *testing.T) {
		got := a.Add(b).Subtract(b)
		require.True(t, got.Equal(a))
	})
}

func TestShareValues_Divide(t *testing.T) {
	t.Run("dollars over quotes gives shares", func(t *testing.T) {
		dollars := NewShareValues()
		dollars.SetValue(SymbolVV, decimal.NewFromInt(100))
		dollars.SetValue(SymbolBND, decimal.NewFromInt(75))

		quotes := NewQuotes()
		quotes.SetValue(SymbolVV, decimal.NewFromInt(50))
		// BND keeps the default quote of 1

		got := dollars.Divide(quotes)

		require.True(t, got.Value(SymbolVV).Equal(decimal.NewFromInt(2)))
		require.True(t, got.Value(SymbolBND).Equal(decimal.NewFromInt(75)))
	})

	t.Run("zero divisor falls back to the dividend", func(t *testing.T) {
		dollars := NewShareValues()
		dollars.SetValue(SymbolVWO, decimal.NewFromInt(30))

		got := dollars.Divide(NewShareValues())

		require.True(t, got.Value(SymbolVWO).Equal(decimal.NewFromInt(30)))
	})
}

func TestShareValues_TotalValue(t *testing.T) {
	sv := NewShareValues()
	sv.SetValue(SymbolVV, decimal.NewFromInt(100))
	sv.SetValue(SymbolVMFXX, decimal.NewFromInt(25))
	sv.OutsideStock = decimal.NewFromInt(1000)

	// outside assets never count toward the account total
	require.True(t, sv.TotalValue().Equal(decimal.NewFromInt(125)))
}

func TestShareValues_MarketValue(t *testing.T) {
	shares := NewShareValues()
	shares.SetValue(SymbolVV, decimal.NewFromInt(2))
	shares.SetValue(SymbolVMFXX, decimal.NewFromInt(25))

	quotes := NewQuotes()
	quotes.SetValue(SymbolVV, decimal.NewFromInt(50))

	require.True(t, shares.MarketValue(quotes).Equal(decimal.NewFromInt(125)))
}

func TestShareValues_PercentStockBondInflation(t *testing.T) {
	t.Run("cash excluded from the denominator", func(t *testing.T) {
		sv := NewShareValues()
		sv.SetValue(SymbolVV, decimal.NewFromInt(3000))
		sv.SetValue(SymbolBND, decimal.NewFromInt(1500))
		sv.SetValue(SymbolVTIP, decimal.NewFromInt(500))
		sv.SetValue(SymbolVMFXX, decimal.NewFromInt(1000))

		stock, bond, inflation := sv.PercentStockBondInflation()

		require.InDelta(t, 60.0, stock, 0.001)
		require.InDelta(t, 30.0, bond, 0.001)
		require.InDelta(t, 10.0, inflation, 0.001)
	})

	t.Run("outside assets counted", func(t *testing.T) {
		sv := NewShareValues()
		sv.SetValue(SymbolVV, decimal.NewFromInt(2000))
		sv.SetValue(SymbolBND, decimal.NewFromInt(1000))
		sv.OutsideBond = decimal.NewFromInt(1000)

		stock, bond, _ := sv.PercentStockBondInflation()

		require.InDelta(t, 50.0, stock, 0.001)
		require.InDelta(t, 50.0, bond, 0.001)
	})

	t.Run("target date fund dilutes without counting as stock", func(t *testing.T) {
		sv := NewShareValues()
		sv.SetValue(SymbolVV, decimal.NewFromInt(1000))
		sv.SetValue(SymbolVTIVX, decimal.NewFromInt(1000))

		stock, bond, inflation := sv.PercentStockBondInflation()

		require.InDelta(t, 50.0, stock, 0.001)
		require.InDelta(t, 0.0, bond, 0.001)
		require.InDelta(t, 0.0, inflation, 0.001)
	})

	t.Run("empty vector", func(t *testing.T) {
		stock, bond, inflation := NewShareValues().PercentStockBondInflation()

		require.Equal(t, 0.0, stock)
		require.Equal(t, 0.0, bond)
		require.Equal(t, 0.0, inflation)
	})
}

func TestVanguardRebalance_JSON(t *testing.T) {
	current := NewShareValues()
	current.SetValue(SymbolVV, decimal.NewFromInt(1000))
	current.OutsideStock = decimal.NewFromInt(250)
	target := NewShareValues()
	target.SetValue(SymbolVV, decimal.NewFromInt(1500))
	account := NewAccountHoldings(current, target, NewQuotes())

	rebalance := VanguardRebalance{
		RunID:     "run-1",
		Brokerage: &account,
	}

	payload, err := json.Marshal(rebalance)
	require.NoError(t, err)

	var got VanguardRebalance
	require.NoError(t, json.Unmarshal(payload, &got))

	require.Equal(t, "run-1", got.RunID)
	require.NotNil(t, got.Brokerage)
	require.True(t, got.Brokerage.Current.Equal(current))
	require.True(t, got.Brokerage.Purchase.Equal(account.Purchase))
	require.Nil(t, got.RothIRA)
}

func TestNewQuotes(t *testing.T) {
	quotes := NewQuotes()
	for _, s := range Symbols() {
		require.True(t, quotes.Value(s).Equal(decimal.NewFromInt(1)))
	}
	require.True(t, quotes.OutsideStock.Equal(decimal.NewFromInt(1)))
	require.True(t, quotes.OutsideBond.Equal(decimal.NewFromInt(1)))
}
