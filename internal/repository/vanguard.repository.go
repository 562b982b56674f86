package repository

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"

	"vanrebal/internal/domain"
	"vanrebal/internal/logger"
)

var ErrAccountNotFound = errors.New("account number not found in the download")

type GetHoldingsRequest struct {
	CSVPath            string
	BrokerageAccount   string
	TraditionalAccount string
	RothAccount        string
}

type VanguardRepository interface {
	GetHoldings(ctx context.Context, req GetHoldingsRequest) (*domain.VanguardHoldings, error)
}

func NewVanguardRepository() VanguardRepository {
	return vanguardRepositoryHandler{}
}

type vanguardRepositoryHandler struct{}

// holdingRow is one line of the download's holdings section. Vanguard often
// pads rows with a trailing comma and mixes in disclaimer text, which the
// section splitter strips before these are decoded.
type holdingRow struct {
	AccountNumber  string  `csv:"Account Number"`
	InvestmentName string  `csv:"Investment Name"`
	Symbol         string  `csv:"Symbol"`
	Shares         float64 `csv:"Shares"`
	SharePrice     float64 `csv:"Share Price"`
	TotalValue     float64 `csv:"Total Value"`
}

// transactionRow is one line of the transaction section. Only the columns
// needed for end-of-year reconstruction are mapped, the rest of the section
// is ignored.
type transactionRow struct {
	AccountNumber string  `csv:"Account Number"`
	TradeDate     string  `csv:"Trade Date"`
	Symbol        string  `csv:"Symbol"`
	Shares        float64 `csv:"Shares"`
}

func (h vanguardRepositoryHandler) GetHoldings(ctx context.Context, req GetHoldingsRequest) (*domain.VanguardHoldings, error) {
	log := logger.FromContext(ctx)

	raw, err := os.ReadFile(req.CSVPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read vanguard download: %w", err)
	}

	holdingLines, transactionLines := splitSections(string(raw))

	holdingRows := []*holdingRow{}
	if len(holdingLines) > 0 {
		if err := gocsv.UnmarshalString(strings.Join(holdingLines, "\n"), &holdingRows); err != nil {
			return nil, fmt.Errorf("failed to parse holdings section: %w", err)
		}
	}

	accounts := map[string]*domain.ShareValues{}
	quotes := domain.NewQuotes()
	var traditionalShares *domain.ShareValues

	for _, row := range holdingRows {
		ticker := strings.TrimSpace(row.Symbol)
		// sweep and footer rows carry no usable symbol
		if len(ticker) < 2 {
			continue
		}
		symbol, ok := domain.ParseSymbol(ticker)
		if !ok {
			log.Warnf(
				"%s in account %s is not a supported symbol and is excluded from rebalancing",
				ticker, row.AccountNumber,
			)
			continue
		}

		account, found := accounts[row.AccountNumber]
		if !found {
			sv := domain.NewShareValues()
			account = &sv
			accounts[row.AccountNumber] = account
		}
		account.AddValue(symbol, decimal.NewFromFloat(row.TotalValue))
		if row.SharePrice > 0 {
			quotes.SetValue(symbol, decimal.NewFromFloat(row.SharePrice))
		}

		if req.TraditionalAccount != "" && row.AccountNumber == req.TraditionalAccount {
			if traditionalShares == nil {
				sv := domain.NewShareValues()
				traditionalShares = &sv
			}
			traditionalShares.AddValue(symbol, decimal.NewFromFloat(row.Shares))
		}
	}

	transactions, err := parseTransactions(transactionLines, req.TraditionalAccount)
	if err != nil {
		return nil, err
	}

	available := make([]string, 0, len(accounts))
	for number := range accounts {
		available = append(available, number)
	}
	sort.Strings(available)

	extract := func(number string, kind domain.AccountKind) (*domain.ShareValues, error) {
		if number == "" {
			return nil, nil
		}
		account, found := accounts[number]
		if !found {
			return nil, fmt.Errorf(
				"%w: %s account %s, accounts present: %v",
				ErrAccountNotFound, kind, number, available,
			)
		}
		return account, nil
	}

	brokerage, err := extract(req.BrokerageAccount, domain.KindBrokerage)
	if err != nil {
		return nil, err
	}
	traditional, err := extract(req.TraditionalAccount, domain.KindTraditionalIRA)
	if err != nil {
		return nil, err
	}
	roth, err := extract(req.RothAccount, domain.KindRothIRA)
	if err != nil {
		return nil, err
	}

	return &domain.VanguardHoldings{
		Brokerage:         brokerage,
		TraditionalIRA:    traditional,
		RothIRA:           roth,
		TraditionalShares: traditionalShares,
		Quotes:            quotes,
		Transactions:      transactions,
	}, nil
}

// splitSections divides the raw download into its holdings and transaction
// sections. The header carrying "Trade Date" starts the transaction section;
// everything before it that looks like a CSV row belongs to holdings. Rows
// with fewer than five fields are disclaimers or blank padding.
func splitSections(raw string) ([]string, []string) {
	var holdings, transactions []string
	inTransactions := false
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimRight(line, "\r")
		line = strings.TrimSuffix(line, ",")
		if !strings.Contains(line, ",") {
			continue
		}
		if strings.Contains(line, "Trade Date") {
			inTransactions = true
		}
		if strings.Count(line, ",") < 4 {
			continue
		}
		if inTransactions {
			transactions = append(transactions, line)
		} else {
			holdings = append(holdings, line)
		}
	}
	return holdings, transactions
}

// parseTransactions keeps only the traditional account's settled trades,
// which are the ones end-of-year reconstruction needs.
func parseTransactions(lines []string, traditionalAccount string) ([]domain.Transaction, error) {
	if len(lines) == 0 || traditionalAccount == "" {
		return nil, nil
	}

	rows := []*transactionRow{}
	if err := gocsv.UnmarshalString(strings.Join(lines, "\n"), &rows); err != nil {
		return nil, fmt.Errorf("failed to parse transaction section: %w", err)
	}

	transactions := []domain.Transaction{}
	for _, row := range rows {
		if row.AccountNumber != traditionalAccount {
			continue
		}
		ticker := strings.TrimSpace(row.Symbol)
		if len(ticker) < 2 {
			continue
		}
		tradeDate, err := time.Parse(time.DateOnly, strings.TrimSpace(row.TradeDate))
		if err != nil {
			return nil, fmt.Errorf("failed to parse trade date %q: %w", row.TradeDate, err)
		}
		symbol, _ := domain.ParseSymbol(ticker)
		transactions = append(transactions, domain.Transaction{
			AccountNumber: row.AccountNumber,
			TradeDate:     tradeDate,
			Symbol:        symbol,
			Shares:        decimal.NewFromFloat(row.Shares),
		})
	}
	return transactions, nil
}
