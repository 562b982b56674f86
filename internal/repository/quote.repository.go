package repository

import (
	"context"

	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
	"github.com/piquette/finance-go/quote"
	"github.com/shopspring/decimal"

	"vanrebal/internal/domain"
	"vanrebal/internal/logger"
	"vanrebal/internal/util"
)

type QuoteRepository interface {
	// CompleteQuotes fills in a market price for every supported symbol still
	// sitting at the default of 1, which happens for anything not currently
	// held in a parsed account. A failed lookup keeps the default, degrading
	// that symbol's purchase output from shares to dollars.
	CompleteQuotes(ctx context.Context, quotes domain.ShareValues) domain.ShareValues

	// GetEndOfYearQuotes returns closing prices from the last trading day of
	// the given year, with the same default-1 degradation for symbols that
	// return no bars.
	GetEndOfYearQuotes(ctx context.Context, year int) domain.ShareValues
}

func NewQuoteRepository() QuoteRepository {
	return quoteRepositoryHandler{}
}

type quoteRepositoryHandler struct{}

var one = decimal.NewFromInt(1)

func (h quoteRepositoryHandler) CompleteQuotes(ctx context.Context, quotes domain.ShareValues) domain.ShareValues {
	log := logger.FromContext(ctx)

	for _, symbol := range domain.TradedSymbols() {
		if !quotes.Value(symbol).Equal(one) {
			continue
		}
		q, err := quote.Get(symbol.String())
		if err != nil {
			log.Warnf("failed to get quote for %s, leaving purchase amounts in dollars: %v", symbol, err)
			continue
		}
		if q == nil || q.RegularMarketPrice <= 0 {
			log.Warnf("no market price returned for %s, leaving purchase amounts in dollars", symbol)
			continue
		}
		quotes.SetValue(symbol, decimal.NewFromFloat(q.RegularMarketPrice))
	}

	return quotes
}

func (h quoteRepositoryHandler) GetEndOfYearQuotes(ctx context.Context, year int) domain.ShareValues {
	log := logger.FromContext(ctx)

	// final trading day can land anywhere in the last week of the year, so
	// pull the whole week of bars and keep the latest
	start := util.NewDate(year, 12, 24)
	end := util.EndOfYear(year)

	quotes := domain.NewQuotes()
	for _, symbol := range domain.TradedSymbols() {
		params := &chart.Params{
			Start:    datetime.New(&start),
			End:      datetime.New(&end),
			Symbol:   symbol.String(),
			Interval: datetime.OneDay,
		}
		iter := chart.Get(params)

		var lastClose decimal.Decimal
		for iter.Next() {
			lastClose = iter.Bar().AdjClose
		}
		if err := iter.Err(); err != nil {
			log.Warnf("failed to get %d closing price for %s: %v", year, symbol, err)
			continue
		}
		if lastClose.IsPositive() {
			quotes.SetValue(symbol, lastClose)
		}
	}

	return quotes
}
