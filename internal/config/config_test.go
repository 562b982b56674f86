package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("explicit file overlays the defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		require.NoError(t, os.WriteFile(path, []byte(`
[accounts]
brokerage = "11111111"
traditional = "22222222"
roth = "33333333"
include_brokerage = true

[allocation]
retirement_year = 2045

[adds]
roth = 500.0

[outside]
us_stock = 1000.0

[alpaca]
api_key = "file-key"

[distribution]
age = 75
table_path = "table.csv"
`), 0o600))

		cfg, err := Load(path)
		require.NoError(t, err)

		require.Equal(t, "11111111", cfg.Accounts.Brokerage)
		require.Equal(t, "22222222", cfg.Accounts.Traditional)
		require.Equal(t, "33333333", cfg.Accounts.Roth)
		require.True(t, cfg.Accounts.IncludeBrokerage)
		require.Equal(t, 2045, cfg.Allocation.RetirementYear)
		require.Equal(t, 500.0, cfg.Adds.Roth)
		require.Equal(t, 1000.0, cfg.Outside.USStock)
		require.Equal(t, "file-key", cfg.Alpaca.APIKey)
		require.Equal(t, 75, cfg.Distribution.Age)
		require.Equal(t, "table.csv", cfg.Distribution.TablePath)

		// untouched sections keep their defaults
		require.Equal(t, 60.0, cfg.Allocation.StockPercent)
		require.Equal(t, 40.0, cfg.Allocation.BondPercent)
		require.Equal(t, "https://paper-api.alpaca.markets", cfg.Alpaca.Endpoint)
	})

	t.Run("missing default location means defaults", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", t.TempDir())

		cfg, err := Load("")
		require.NoError(t, err)
		require.Equal(t, DefaultConfig(), cfg)
	})

	t.Run("missing explicit file is an error", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
		require.ErrorContains(t, err, "reading config")
	})

	t.Run("malformed toml is an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		require.NoError(t, os.WriteFile(path, []byte("[accounts\nbroken"), 0o600))

		_, err := Load(path)
		require.ErrorContains(t, err, "parsing config")
	})
}

func TestGetAlpacaKey(t *testing.T) {
	t.Run("env var wins over the file", func(t *testing.T) {
		t.Setenv("APCA_API_KEY_ID", "env-key")

		cfg := DefaultConfig()
		cfg.Alpaca.APIKey = "file-key"
		require.Equal(t, "env-key", GetAlpacaKey(cfg))
	})

	t.Run("falls back to the file", func(t *testing.T) {
		t.Setenv("APCA_API_KEY_ID", "")

		cfg := DefaultConfig()
		cfg.Alpaca.APIKey = "file-key"
		require.Equal(t, "file-key", GetAlpacaKey(cfg))
	})
}
