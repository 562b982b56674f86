package domain

import "strings"

// Symbol is a ticker from the fixed set of funds the rebalancer trades.
// Anything else that shows up in a Vanguard download parses as unsupported
// and is carried around only for logging.
type Symbol string

const (
	SymbolVV    Symbol = "VV"
	SymbolVO    Symbol = "VO"
	SymbolVB    Symbol = "VB"
	SymbolVTC   Symbol = "VTC"
	SymbolBND   Symbol = "BND"
	SymbolVXUS  Symbol = "VXUS"
	SymbolVWO   Symbol = "VWO"
	SymbolBNDX  Symbol = "BNDX"
	SymbolVTIP  Symbol = "VTIP"
	SymbolVTI   Symbol = "VTI"
	SymbolVTIVX Symbol = "VTIVX"
	// VMFXX is the settlement fund. Its balance is treated as cash.
	SymbolVMFXX Symbol = "VMFXX"
)

// supportedSymbols is the display order used everywhere holdings are
// rendered. VMFXX stays last so cash prints after the funds.
var supportedSymbols = [...]Symbol{
	SymbolVV,
	SymbolVO,
	SymbolVB,
	SymbolVTC,
	SymbolBND,
	SymbolVXUS,
	SymbolVWO,
	SymbolBNDX,
	SymbolVTIP,
	SymbolVTI,
	SymbolVTIVX,
	SymbolVMFXX,
}

var symbolIndex = func() map[Symbol]int {
	m := map[Symbol]int{}
	for i, s := range supportedSymbols {
		m[s] = i
	}
	return m
}()

var symbolDescriptions = map[Symbol]string{
	SymbolVV:    "US large-cap stocks",
	SymbolVO:    "US mid-cap stocks",
	SymbolVB:    "US small-cap stocks",
	SymbolVTC:   "US total corporate bond",
	SymbolBND:   "US total bond",
	SymbolVXUS:  "Total international stock",
	SymbolVWO:   "Emerging markets stock",
	SymbolBNDX:  "Total international bond",
	SymbolVTIP:  "Short-term inflation-protected securities",
	SymbolVTI:   "US total stock",
	SymbolVTIVX: "Vanguard 2045 target date fund",
	SymbolVMFXX: "Money market (cash)",
}

// ParseSymbol maps a raw ticker string onto a Symbol. The second return
// reports whether the ticker is one we know how to rebalance.
func ParseSymbol(raw string) (Symbol, bool) {
	s := Symbol(strings.ToUpper(strings.TrimSpace(raw)))
	_, ok := symbolIndex[s]
	return s, ok
}

// Symbols returns the supported tickers in display order.
func Symbols() []Symbol {
	out := make([]Symbol, len(supportedSymbols))
	copy(out, supportedSymbols[:])
	return out
}

// TradedSymbols returns the supported tickers that have a market quote,
// which is everything except the settlement fund.
func TradedSymbols() []Symbol {
	out := []Symbol{}
	for _, s := range supportedSymbols {
		if s != SymbolVMFXX {
			out = append(out, s)
		}
	}
	return out
}

func (s Symbol) Supported() bool {
	_, ok := symbolIndex[s]
	return ok
}

func (s Symbol) Description() string {
	if d, ok := symbolDescriptions[s]; ok {
		return d
	}
	return "Unknown or unsupported symbol"
}

func (s Symbol) String() string {
	return string(s)
}
