package service

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"vanrebal/internal/domain"
	"vanrebal/internal/logger"
	"vanrebal/internal/repository"
	"vanrebal/internal/util"
)

type DistributionService interface {
	GetRequiredDistribution(ctx context.Context, input DistributionInput) (decimal.Decimal, error)
}

type distributionServiceHandler struct {
	DistributionRepository repository.DistributionRepository
	QuoteRepository        repository.QuoteRepository
}

func NewDistributionService(
	distributionRepository repository.DistributionRepository,
	quoteRepository repository.QuoteRepository,
) DistributionService {
	return distributionServiceHandler{
		DistributionRepository: distributionRepository,
		QuoteRepository:        quoteRepository,
	}
}

type DistributionInput struct {
	Age       int
	TablePath string
	Holdings  *domain.VanguardHoldings
	Now       time.Time
}

// GetRequiredDistribution computes the IRS required minimum distribution for
// the traditional IRA. The divisor applies to the account's value at the end
// of last year, which is rebuilt by rewinding this year's trades out of the
// current share counts and pricing what is left at last year's close. When
// the download carries no transaction history the current balance stands in,
// with a warning, since that is the best number available.
func (h distributionServiceHandler) GetRequiredDistribution(ctx context.Context, input DistributionInput) (decimal.Decimal, error) {
	log := logger.FromContext(ctx)

	divisors, err := h.DistributionRepository.GetDivisors(ctx, input.TablePath)
	if err != nil {
		return decimal.Zero, err
	}

	year := input.Now.Year() - 1

	var yearEndValue decimal.Decimal
	if shares, ok := rewindTraditionalShares(ctx, input.Holdings, year); ok {
		yearEndValue = shares.MarketValue(h.QuoteRepository.GetEndOfYearQuotes(ctx, year))
	} else if input.Holdings != nil && input.Holdings.TraditionalIRA != nil {
		log.Warnf("using the current traditional balance in place of the %d year-end value", year)
		yearEndValue = input.Holdings.TraditionalIRA.TotalValue()
	} else {
		return decimal.Zero, errors.New("required distribution needs the traditional ira account")
	}

	distribution := MinimumDistribution(input.Age, yearEndValue, divisors)
	log.Infof(
		"required distribution at age %d on a year-end value of $%s: $%s",
		input.Age, yearEndValue.StringFixed(2), distribution.StringFixed(2),
	)
	return distribution, nil
}

// MinimumDistribution divides a year-end value by the IRS divisor for the
// given age. Ages the table does not cover owe no distribution, so the lookup
// missing is a zero and not an error.
func MinimumDistribution(age int, yearEndValue decimal.Decimal, divisors map[int]float64) decimal.Decimal {
	divisor, ok := divisors[age]
	if !ok || divisor <= 0 {
		return decimal.Zero
	}
	return yearEndValue.Div(decimal.NewFromFloat(divisor))
}

// rewindTraditionalShares backs this year's trades out of the traditional
// account's current share counts, leaving the counts as they stood at the
// close of the given year. Trades dated on or before December 31 were already
// reflected in that close and stay in.
func rewindTraditionalShares(ctx context.Context, holdings *domain.VanguardHoldings, year int) (domain.ShareValues, bool) {
	log := logger.FromContext(ctx)

	if holdings == nil || holdings.TraditionalShares == nil {
		return domain.ShareValues{}, false
	}
	if len(holdings.Transactions) == 0 {
		log.Warn("the download has no transaction section, year-end holdings cannot be rebuilt")
		return domain.ShareValues{}, false
	}

	cutoff := util.EndOfYear(year)
	shares := *holdings.TraditionalShares
	sawSettled := false
	for _, tx := range holdings.Transactions {
		if tx.TradeDate.After(cutoff) {
			shares.AddValue(tx.Symbol, tx.Shares.Neg())
		} else {
			sawSettled = true
		}
	}
	if !sawSettled {
		log.Warnf("every transaction in the download is from after %d, the year-end value may be incomplete", year)
	}
	return shares, true
}
