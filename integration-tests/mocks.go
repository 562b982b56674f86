package integration_tests

import (
	"context"

	"github.com/shopspring/decimal"

	"vanrebal/internal/domain"
	"vanrebal/internal/repository"
)

// NewOfflineQuoteRepositoryForTests returns a quote repository that never
// reaches yahoo finance. Current quotes pass through untouched, so tests get
// whatever prices the download fixture carried, and end-of-year lookups
// return the canned values.
func NewOfflineQuoteRepositoryForTests(endOfYear domain.ShareValues) repository.QuoteRepository {
	return offlineQuoteForTestsHandler{endOfYear: endOfYear}
}

type offlineQuoteForTestsHandler struct {
	endOfYear domain.ShareValues
}

func (m offlineQuoteForTestsHandler) CompleteQuotes(ctx context.Context, quotes domain.ShareValues) domain.ShareValues {
	return quotes
}

func (m offlineQuoteForTestsHandler) GetEndOfYearQuotes(ctx context.Context, year int) domain.ShareValues {
	return m.endOfYear
}

// NewStubAlpacaRepositoryForTests returns an alpaca repository reporting a
// fixed account equity.
func NewStubAlpacaRepositoryForTests(equity decimal.Decimal) repository.AlpacaRepository {
	return stubAlpacaForTestsHandler{equity: equity}
}

type stubAlpacaForTestsHandler struct {
	equity decimal.Decimal
}

func (m stubAlpacaForTestsHandler) GetAccountEquity(ctx context.Context) (decimal.Decimal, error) {
	return m.equity, nil
}
