package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeTable(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "distribution_periods.csv")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func TestDistributionRepository_GetDivisors(t *testing.T) {
	ctx := context.Background()
	repo := NewDistributionRepository()

	t.Run("comma separated with header", func(t *testing.T) {
		divisors, err := repo.GetDivisors(ctx, writeTable(t, "age,divisor\n73,26.5\n74,25.5\n75,24.6\n"))
		require.NoError(t, err)
		require.Len(t, divisors, 3)
		require.Equal(t, 24.6, divisors[75])
	})

	t.Run("whitespace separated", func(t *testing.T) {
		divisors, err := repo.GetDivisors(ctx, writeTable(t, "73 26.5\n74\t25.5\n"))
		require.NoError(t, err)
		require.Equal(t, 26.5, divisors[73])
		require.Equal(t, 25.5, divisors[74])
	})

	t.Run("comments and blank lines skipped", func(t *testing.T) {
		divisors, err := repo.GetDivisors(ctx, writeTable(t, "# IRS uniform lifetime table\n\n73,26.5\n"))
		require.NoError(t, err)
		require.Len(t, divisors, 1)
	})

	t.Run("bad divisor is fatal", func(t *testing.T) {
		_, err := repo.GetDivisors(ctx, writeTable(t, "73,26.5\n74,banana\n"))
		require.Error(t, err)
		require.Contains(t, err.Error(), "line 2")
	})

	t.Run("bad age past the header is fatal", func(t *testing.T) {
		_, err := repo.GetDivisors(ctx, writeTable(t, "73,26.5\nseventy-four,25.5\n"))
		require.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := repo.GetDivisors(ctx, filepath.Join(t.TempDir(), "nope.csv"))
		require.Error(t, err)
	})
}
