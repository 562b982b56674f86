package repository

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"vanrebal/internal/logger"
)

// DistributionRepository loads the IRS age to distribution-period table used
// for required minimum distributions. The file is two delimited columns, age
// then divisor, with either commas or whitespace between them.
type DistributionRepository interface {
	GetDivisors(ctx context.Context, path string) (map[int]float64, error)
}

func NewDistributionRepository() DistributionRepository {
	return distributionRepositoryHandler{}
}

type distributionRepositoryHandler struct{}

func (h distributionRepositoryHandler) GetDivisors(ctx context.Context, path string) (map[int]float64, error) {
	log := logger.FromContext(ctx)

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read distribution table: %w", err)
	}

	divisors := map[int]float64{}
	for i, line := range strings.Split(string(raw), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		var parts []string
		if strings.Contains(line, ",") {
			parts = strings.Split(line, ",")
		} else {
			parts = strings.Fields(line)
		}
		if len(parts) < 2 {
			return nil, fmt.Errorf("distribution table line %d is not two columns: %q", i+1, line)
		}

		age, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			// tolerate header lines ahead of the first data row
			if len(divisors) == 0 {
				continue
			}
			return nil, fmt.Errorf("distribution table line %d has a bad age: %q", i+1, line)
		}
		divisor, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil || divisor <= 0 {
			return nil, fmt.Errorf("distribution table line %d has a bad divisor: %q", i+1, line)
		}
		divisors[age] = divisor
	}
	if len(divisors) == 0 {
		return nil, fmt.Errorf("distribution table %s contained no usable rows", path)
	}

	log.Debugf("loaded %d distribution divisors from %s", len(divisors), path)
	return divisors, nil
}
