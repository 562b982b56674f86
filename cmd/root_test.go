package cmd

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"vanrebal/internal/allocation"
	"vanrebal/internal/config"
)

func Test_applyFlags(t *testing.T) {
	t.Run("changed flags overlay the file config", func(t *testing.T) {
		cmd := &cobra.Command{}
		registerRebalanceFlags(cmd)
		require.NoError(t, cmd.Flags().Set("stock-percent", "70"))
		require.NoError(t, cmd.Flags().Set("trad-acct", "11111111"))
		require.NoError(t, cmd.Flags().Set("include-brokerage", "true"))

		cfg := config.DefaultConfig()
		cfg.Accounts.Roth = "22222222"

		got := applyFlags(cmd, cfg)

		require.Equal(t, 70.0, got.Allocation.StockPercent)
		require.Equal(t, 40.0, got.Allocation.BondPercent)
		require.Equal(t, "11111111", got.Accounts.Traditional)
		require.Equal(t, "22222222", got.Accounts.Roth)
		require.True(t, got.Accounts.IncludeBrokerage)
	})

	t.Run("untouched flags leave the config alone", func(t *testing.T) {
		cmd := &cobra.Command{}
		registerRebalanceFlags(cmd)

		cfg := config.DefaultConfig()
		cfg.Allocation.StockPercent = 55
		cfg.Allocation.BondPercent = 45
		cfg.Accounts.Brokerage = "33333333"

		got := applyFlags(cmd, cfg)

		require.Equal(t, "", cmp.Diff(cfg, got))
	})
}

func Test_buildInput(t *testing.T) {
	t.Run("retirement year beats the configured percentages", func(t *testing.T) {
		cfg := config.DefaultConfig()
		cfg.Allocation.RetirementYear = 2099

		input, err := buildInput(cfg, false, "download.csv")

		require.NoError(t, err)
		require.Equal(t, allocation.Policy{Stock: 90, Bond: 10}, input.Policy)
		require.Equal(t, "download.csv", input.CSVPath)
	})

	t.Run("explicit percentages beat the retirement year", func(t *testing.T) {
		cfg := config.DefaultConfig()
		cfg.Allocation.RetirementYear = 2099
		cfg.Allocation.StockPercent = 70
		cfg.Allocation.BondPercent = 30

		input, err := buildInput(cfg, true, "download.csv")

		require.NoError(t, err)
		require.Equal(t, allocation.Policy{Stock: 70, Bond: 30}, input.Policy)
	})

	t.Run("config values flow through to the input", func(t *testing.T) {
		cfg := config.DefaultConfig()
		cfg.Accounts.Brokerage = "33333333"
		cfg.Accounts.IncludeBrokerage = true
		cfg.Adds.Roth = 1500.50
		cfg.Outside.USStock = 2000

		input, err := buildInput(cfg, false, "download.csv")

		require.NoError(t, err)
		require.Equal(t, "33333333", input.BrokerageAccount)
		require.True(t, input.IncludeBrokerage)
		require.Equal(t, "", cmp.Diff(decimal.NewFromFloat(1500.50), input.RothAdd))
		require.Equal(t, "", cmp.Diff(decimal.NewFromFloat(2000), input.Outside.USStock))
	})
}
