package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"vanrebal/internal/allocation"
	"vanrebal/internal/domain"
	"vanrebal/internal/logger"
	"vanrebal/internal/repository"
)

var ErrNoAccounts = errors.New("at least one account number is required")

type RebalanceService interface {
	Rebalance(ctx context.Context, input RebalanceInput) (*RebalanceResponse, error)
}

// RebalanceResponse carries the computed instructions plus the parsed
// download, which the distribution lookup reuses without reparsing the file.
type RebalanceResponse struct {
	Rebalance *domain.VanguardRebalance
	Holdings  *domain.VanguardHoldings
}

type rebalanceServiceHandler struct {
	VanguardRepository repository.VanguardRepository
	QuoteRepository    repository.QuoteRepository
	// AlpacaRepository is nil when no API keys are configured
	AlpacaRepository repository.AlpacaRepository
}

func NewRebalanceService(
	vanguardRepository repository.VanguardRepository,
	quoteRepository repository.QuoteRepository,
	alpacaRepository repository.AlpacaRepository,
) RebalanceService {
	return rebalanceServiceHandler{
		VanguardRepository: vanguardRepository,
		QuoteRepository:    quoteRepository,
		AlpacaRepository:   alpacaRepository,
	}
}

type RebalanceInput struct {
	CSVPath            string
	BrokerageAccount   string
	TraditionalAccount string
	RothAccount        string

	Policy allocation.Policy

	// cash moving in or out of each account before rebalancing, negative
	// for withdrawals
	BrokerageAdd   decimal.Decimal
	TraditionalAdd decimal.Decimal
	RothAdd        decimal.Decimal

	Outside allocation.OutsideAssets

	// IncludeBrokerage pools the brokerage account with the IRAs so the
	// placement walk can keep the riskiest assets out of the taxable side
	IncludeBrokerage bool
}

// Rebalance gathers everything the computation needs, the download, any
// missing quotes, and the linked brokerage equity, then hands the
// materialized inputs to the pure computation.
func (h rebalanceServiceHandler) Rebalance(ctx context.Context, input RebalanceInput) (*RebalanceResponse, error) {
	if input.BrokerageAccount == "" && input.TraditionalAccount == "" && input.RothAccount == "" {
		return nil, ErrNoAccounts
	}

	holdings, err := h.VanguardRepository.GetHoldings(ctx, repository.GetHoldingsRequest{
		CSVPath:            input.CSVPath,
		BrokerageAccount:   input.BrokerageAccount,
		TraditionalAccount: input.TraditionalAccount,
		RothAccount:        input.RothAccount,
	})
	if err != nil {
		return nil, err
	}

	holdings.Quotes = h.QuoteRepository.CompleteQuotes(ctx, holdings.Quotes)

	outside := input.Outside
	if h.AlpacaRepository != nil {
		equity, err := h.AlpacaRepository.GetAccountEquity(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to include alpaca equity: %w", err)
		}
		outside.USStock = outside.USStock.Add(equity)
	}

	rebalance, err := computeRebalance(ctx, holdings, input, outside)
	if err != nil {
		return nil, err
	}
	return &RebalanceResponse{Rebalance: rebalance, Holdings: holdings}, nil
}

// computeRebalance is the pure half of a run. Everything it needs has been
// loaded already; from here on no I/O happens.
func computeRebalance(ctx context.Context, holdings *domain.VanguardHoldings, input RebalanceInput, outside allocation.OutsideAssets) (*domain.VanguardRebalance, error) {
	log := logger.FromContext(ctx)

	sub, err := allocation.NewSubAllocations(input.Policy)
	if err != nil {
		return nil, err
	}

	var brokerage, traditional, roth *domain.ShareValues
	if holdings.Brokerage != nil {
		adjusted := withCashAdd(*holdings.Brokerage, input.BrokerageAdd)
		brokerage = &adjusted
	}
	if holdings.TraditionalIRA != nil {
		adjusted := withCashAdd(*holdings.TraditionalIRA, input.TraditionalAdd)
		traditional = &adjusted
	}
	if holdings.RothIRA != nil {
		adjusted := withCashAdd(*holdings.RothIRA, input.RothAdd)
		roth = &adjusted
	}

	result := &domain.VanguardRebalance{
		RunID:       uuid.New().String(),
		GeneratedAt: time.Now().UTC(),
	}

	switch {
	case input.IncludeBrokerage && brokerage != nil && roth != nil && traditional != nil:
		split, err := allocation.SplitPooled(sub, *brokerage, *roth, *traditional, outside)
		if err != nil {
			return nil, err
		}
		result.RetirementTarget = &split.Combined
		setAccount(&result.Brokerage, *brokerage, split.Brokerage, holdings.Quotes)
		setAccount(&result.RothIRA, *roth, split.Roth, holdings.Quotes)
		setAccount(&result.TraditionalIRA, *traditional, split.Traditional, holdings.Quotes)

	case roth != nil && traditional != nil:
		if input.IncludeBrokerage {
			log.Warn("include-brokerage is set without a brokerage account, rebalancing the IRAs alone")
		}
		split, err := allocation.SplitRetirement(sub, *roth, *traditional)
		if err != nil {
			return nil, err
		}
		result.RetirementTarget = &split.Combined
		setAccount(&result.RothIRA, *roth, split.Roth, holdings.Quotes)
		setAccount(&result.TraditionalIRA, *traditional, split.Traditional, holdings.Quotes)
		if brokerage != nil {
			target := allocation.BuildTarget(sub, brokerage.TotalValue(), outside)
			setAccount(&result.Brokerage, *brokerage, target, holdings.Quotes)
		}

	default:
		if input.IncludeBrokerage {
			log.Warn("include-brokerage needs both IRAs present, rebalancing each account alone")
		}
		if roth != nil {
			target := allocation.BuildTarget(sub, roth.TotalValue(), allocation.OutsideAssets{})
			setAccount(&result.RothIRA, *roth, target, holdings.Quotes)
		}
		if traditional != nil {
			target := allocation.BuildTarget(sub, traditional.TotalValue(), allocation.OutsideAssets{})
			setAccount(&result.TraditionalIRA, *traditional, target, holdings.Quotes)
		}
		if brokerage != nil {
			target := allocation.BuildTarget(sub, brokerage.TotalValue(), outside)
			setAccount(&result.Brokerage, *brokerage, target, holdings.Quotes)
		}
	}

	log.Infof("rebalance %s computed", result.RunID)
	return result, nil
}

func setAccount(slot **domain.AccountHoldings, current, target domain.ShareValues, quotes domain.ShareValues) {
	account := domain.NewAccountHoldings(current, target, quotes)
	*slot = &account
}

func withCashAdd(account domain.ShareValues, add decimal.Decimal) domain.ShareValues {
	if add.IsZero() {
		return account
	}
	account.SetValue(domain.SymbolVMFXX, account.Cash().Add(add))
	return account
}
