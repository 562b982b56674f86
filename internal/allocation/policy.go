package allocation

import (
	"errors"
	"fmt"
	"math"

	"vanrebal/internal/domain"
)

// percentTolerance bounds the float error allowed when percentages that are
// supposed to describe a whole portfolio get added back up.
const percentTolerance = 0.001

var (
	ErrPolicySum = errors.New("allocation percentages must sum to 100")
	ErrSplitSum  = errors.New("sub-allocations do not sum to the policy total")
)

// Policy is the top-level allocation the run is steering toward, in
// percentage points of the whole portfolio.
type Policy struct {
	Stock     float64
	Bond      float64
	Inflation float64
}

func NewPolicy(stock, bond, inflation float64) (Policy, error) {
	p := Policy{
		Stock:     stock,
		Bond:      bond,
		Inflation: inflation,
	}
	if err := p.Validate(); err != nil {
		return Policy{}, err
	}
	return p, nil
}

func (p Policy) Validate() error {
	total := p.Stock + p.Bond + p.Inflation
	if math.Abs(total-100) > percentTolerance {
		return fmt.Errorf(
			"%w: stock %.3f + bond %.3f + inflation %.3f = %.3f",
			ErrPolicySum, p.Stock, p.Bond, p.Inflation, total,
		)
	}
	return nil
}

// SubAllocations spreads a Policy across the individual funds. Every field is
// in percentage points of the whole portfolio, so a valid set sums back to
// the policy total.
type SubAllocations struct {
	USLargeCap         float64 // VV
	USMidCap           float64 // VO
	USSmallCap         float64 // VB
	IntlTotalStock     float64 // VXUS
	IntlEmergingStock  float64 // VWO
	USTotalBond        float64 // BND
	USCorporateBond    float64 // VTC
	IntlBond           float64 // BNDX
	InflationProtected float64 // VTIP
}

// NewSubAllocations decomposes the policy with the fixed fund splits. US
// stock takes 2/3 of the stock slice spread evenly across large, mid, and
// small caps. International stock takes the remaining third, a third of
// which goes to emerging markets. US bonds take 2/3 of the bond slice split
// evenly between the total and corporate funds, international bonds the
// rest. The inflation slice maps straight onto VTIP.
func NewSubAllocations(p Policy) (SubAllocations, error) {
	if err := p.Validate(); err != nil {
		return SubAllocations{}, err
	}

	usStock := p.Stock * 2.0 / 3.0
	intlStock := p.Stock / 3.0
	usBond := p.Bond * 2.0 / 3.0

	s := SubAllocations{
		USLargeCap:         usStock / 3.0,
		USMidCap:           usStock / 3.0,
		USSmallCap:         usStock / 3.0,
		IntlTotalStock:     intlStock * 2.0 / 3.0,
		IntlEmergingStock:  intlStock / 3.0,
		USTotalBond:        usBond / 2.0,
		USCorporateBond:    usBond / 2.0,
		IntlBond:           p.Bond / 3.0,
		InflationProtected: p.Inflation,
	}

	// guards against someone editing a split above without rebalancing the
	// rest to keep the whole portfolio covered
	total := s.Total()
	want := p.Stock + p.Bond + p.Inflation
	if math.Abs(total-want) > percentTolerance {
		return SubAllocations{}, fmt.Errorf(
			"%w: funds cover %.4f of a %.4f policy",
			ErrSplitSum, total, want,
		)
	}

	return s, nil
}

func (s SubAllocations) Total() float64 {
	return s.USLargeCap +
		s.USMidCap +
		s.USSmallCap +
		s.IntlTotalStock +
		s.IntlEmergingStock +
		s.USTotalBond +
		s.USCorporateBond +
		s.IntlBond +
		s.InflationProtected
}

// Weight returns the percentage assigned to one fund, zero for anything the
// decomposition does not target.
func (s SubAllocations) Weight(symbol domain.Symbol) float64 {
	switch symbol {
	case domain.SymbolVV:
		return s.USLargeCap
	case domain.SymbolVO:
		return s.USMidCap
	case domain.SymbolVB:
		return s.USSmallCap
	case domain.SymbolVXUS:
		return s.IntlTotalStock
	case domain.SymbolVWO:
		return s.IntlEmergingStock
	case domain.SymbolBND:
		return s.USTotalBond
	case domain.SymbolVTC:
		return s.USCorporateBond
	case domain.SymbolBNDX:
		return s.IntlBond
	case domain.SymbolVTIP:
		return s.InflationProtected
	}
	return 0
}
