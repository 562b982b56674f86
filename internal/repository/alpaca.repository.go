package repository

import (
	"context"
	"fmt"

	"github.com/alpacahq/alpaca-trade-api-go/v3/alpaca"
	"github.com/shopspring/decimal"

	"vanrebal/internal/logger"
)

// AlpacaRepository reaches out to an Alpaca brokerage account so its equity
// can be counted as US stock held outside Vanguard.
type AlpacaRepository interface {
	GetAccountEquity(ctx context.Context) (decimal.Decimal, error)
}

func NewAlpacaRepository(apiKey, apiSecret string, endpoint string) AlpacaRepository {
	client := alpaca.NewClient(alpaca.ClientOpts{
		APIKey:     apiKey,
		APISecret:  apiSecret,
		BaseURL:    endpoint,
		RetryLimit: 3,
	})

	return &alpacaRepositoryHandler{
		Client: client,
	}
}

type alpacaRepositoryHandler struct {
	Client *alpaca.Client
}

func (h alpacaRepositoryHandler) GetAccountEquity(ctx context.Context) (decimal.Decimal, error) {
	log := logger.FromContext(ctx)

	acct, err := h.Client.GetAccount()
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to get alpaca account: %w", err)
	}

	log.Infof("alpaca account equity: $%s", acct.Equity.StringFixed(2))
	return acct.Equity, nil
}
