package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"vanrebal/internal/domain"
)

const downloadFixture = `Account Number,Investment Name,Symbol,Shares,Share Price,Total Value,
12345678,Vanguard Federal Money Market Fund,VMFXX,1000.00,1.00,1000.00,
12345678,Vanguard Large-Cap ETF,VV,10.0000,200.00,2000.00,
12345678,Apple Inc,AAPL,5.0000,100.00,500.00,
87654321,Vanguard Total Bond Market ETF,BND,20.0000,75.00,1500.00,
87654321,Vanguard Target Retirement 2045 Fund,VTIVX,30.0000,25.00,750.00,

Account Number,Trade Date,Settlement Date,Transaction Type,Transaction Description,Investment Name,Symbol,Shares,Principal Amount,
87654321,2025-03-15,2025-03-17,Buy,Buy,Vanguard Total Bond Market ETF,BND,5.0000,-375.00,
87654321,2024-11-20,2024-11-21,Sell,Sell,Vanguard Target Retirement 2045 Fund,VTIVX,-2.0000,50.00,
12345678,2025-01-05,2025-01-06,Buy,Buy,Vanguard Large-Cap ETF,VV,1.0000,-200.00,
Disclosures: investment products are not FDIC insured.
`

func writeDownload(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ofxdownload.csv")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func TestVanguardRepository_GetHoldings(t *testing.T) {
	ctx := context.Background()
	repo := NewVanguardRepository()

	t.Run("both accounts parsed", func(t *testing.T) {
		holdings, err := repo.GetHoldings(ctx, GetHoldingsRequest{
			CSVPath:            writeDownload(t, downloadFixture),
			BrokerageAccount:   "12345678",
			TraditionalAccount: "87654321",
		})
		require.NoError(t, err)

		require.NotNil(t, holdings.Brokerage)
		require.True(t, holdings.Brokerage.Value(domain.SymbolVV).Equal(decimal.NewFromInt(2000)))
		require.True(t, holdings.Brokerage.Cash().Equal(decimal.NewFromInt(1000)))
		// the unsupported AAPL position is excluded from the account value
		require.True(t, holdings.Brokerage.TotalValue().Equal(decimal.NewFromInt(3000)))

		require.NotNil(t, holdings.TraditionalIRA)
		require.True(t, holdings.TraditionalIRA.Value(domain.SymbolBND).Equal(decimal.NewFromInt(1500)))
		require.True(t, holdings.TraditionalIRA.Value(domain.SymbolVTIVX).Equal(decimal.NewFromInt(750)))

		// roth was never requested
		require.Nil(t, holdings.RothIRA)
	})

	t.Run("quotes picked up from share prices", func(t *testing.T) {
		holdings, err := repo.GetHoldings(ctx, GetHoldingsRequest{
			CSVPath:          writeDownload(t, downloadFixture),
			BrokerageAccount: "12345678",
		})
		require.NoError(t, err)

		require.True(t, holdings.Quotes.Value(domain.SymbolVV).Equal(decimal.NewFromInt(200)))
		require.True(t, holdings.Quotes.Value(domain.SymbolBND).Equal(decimal.NewFromInt(75)))
		// unheld symbols keep the default quote of 1
		require.True(t, holdings.Quotes.Value(domain.SymbolVWO).Equal(decimal.NewFromInt(1)))
	})

	t.Run("traditional shares and transactions captured", func(t *testing.T) {
		holdings, err := repo.GetHoldings(ctx, GetHoldingsRequest{
			CSVPath:            writeDownload(t, downloadFixture),
			TraditionalAccount: "87654321",
		})
		require.NoError(t, err)

		require.NotNil(t, holdings.TraditionalShares)
		require.True(t, holdings.TraditionalShares.Value(domain.SymbolBND).Equal(decimal.NewFromInt(20)))
		require.True(t, holdings.TraditionalShares.Value(domain.SymbolVTIVX).Equal(decimal.NewFromInt(30)))

		// only the traditional account's trades are kept
		require.Len(t, holdings.Transactions, 2)
		require.Equal(t, domain.SymbolBND, holdings.Transactions[0].Symbol)
		require.Equal(t, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), holdings.Transactions[0].TradeDate)
		require.True(t, holdings.Transactions[1].Shares.Equal(decimal.NewFromInt(-2)))
	})

	t.Run("transactions skipped without a traditional account", func(t *testing.T) {
		holdings, err := repo.GetHoldings(ctx, GetHoldingsRequest{
			CSVPath:          writeDownload(t, downloadFixture),
			BrokerageAccount: "12345678",
		})
		require.NoError(t, err)

		require.Nil(t, holdings.TraditionalShares)
		require.Empty(t, holdings.Transactions)
	})

	t.Run("requested account missing from the file", func(t *testing.T) {
		_, err := repo.GetHoldings(ctx, GetHoldingsRequest{
			CSVPath:     writeDownload(t, downloadFixture),
			RothAccount: "99999999",
		})
		require.ErrorIs(t, err, ErrAccountNotFound)
		require.Contains(t, err.Error(), "12345678")
		require.Contains(t, err.Error(), "87654321")
	})

	t.Run("file does not exist", func(t *testing.T) {
		_, err := repo.GetHoldings(ctx, GetHoldingsRequest{
			CSVPath: filepath.Join(t.TempDir(), "nope.csv"),
		})
		require.Error(t, err)
	})
}

func TestSplitSections(t *testing.T) {
	holdings, transactions := splitSections(downloadFixture)

	// header plus five data rows, disclaimers and blanks dropped
	require.Len(t, holdings, 6)
	// header plus three trades
	require.Len(t, transactions, 4)
	require.Contains(t, transactions[0], "Trade Date")
}
