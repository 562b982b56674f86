package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is one settled trade row from the download's transaction
// section. Shares is signed the way Vanguard reports it, positive for buys
// and negative for sells.
type Transaction struct {
	AccountNumber string
	TradeDate     time.Time
	Symbol        Symbol
	Shares        decimal.Decimal
}
