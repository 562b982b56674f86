// Package cmd implements the vanrebal command line interface.
package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"vanrebal/internal/allocation"
	"vanrebal/internal/config"
	"vanrebal/internal/logger"
	"vanrebal/internal/renderer"
	"vanrebal/internal/service"
)

var (
	flagConfig            string
	flagStockPercent      float64
	flagBondPercent       float64
	flagInflationPercent  float64
	flagRetirementYear    int
	flagBrokerageAcct     string
	flagTradAcct          string
	flagRothAcct          string
	flagBrokerageAdd      float64
	flagTradAdd           float64
	flagRothAdd           float64
	flagOutsideUSStock    float64
	flagOutsideUSBond     float64
	flagOutsideIntlStock  float64
	flagOutsideIntlBond   float64
	flagIncludeBrokerage  bool
	flagAge               int
	flagDistributionTable string
	flagOutput            bool
	flagFormat            string
)

var rootCmd = &cobra.Command{
	Use:   "vanrebal <vanguard-download.csv>",
	Short: "Compute rebalancing purchases for Vanguard accounts",
	Long: `vanrebal reads a Vanguard "Download center" CSV and prints how many
shares of each fund to buy or sell so the accounts land on the target
stock/bond/inflation mix. Account numbers, targets and cash additions come
from flags or from the config file.`,
	Args: cobra.ExactArgs(1),
	RunE: runRebalance,
}

// Execute runs the root command, exiting nonzero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to a config file (default "+config.ConfigPath()+")")
	registerRebalanceFlags(rootCmd)
}

func registerRebalanceFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&flagStockPercent, "stock-percent", 60, "percent of the portfolio in stocks")
	cmd.Flags().Float64Var(&flagBondPercent, "bond-percent", 40, "percent of the portfolio in bonds")
	cmd.Flags().Float64Var(&flagInflationPercent, "inflation-percent", 0, "percent in inflation-protected securities")
	cmd.Flags().IntVar(&flagRetirementYear, "retirement-year", 0, "derive the percentages from the glide path for this retirement year")
	cmd.Flags().StringVar(&flagBrokerageAcct, "brokerage-acct", "", "brokerage account number")
	cmd.Flags().StringVar(&flagTradAcct, "trad-acct", "", "traditional IRA account number")
	cmd.Flags().StringVar(&flagRothAcct, "roth-acct", "", "roth IRA account number")
	cmd.Flags().Float64Var(&flagBrokerageAdd, "brokerage-add", 0, "cash added to the brokerage account, negative to withdraw")
	cmd.Flags().Float64Var(&flagTradAdd, "trad-add", 0, "cash added to the traditional IRA, negative to withdraw")
	cmd.Flags().Float64Var(&flagRothAdd, "roth-add", 0, "cash added to the roth IRA, negative to withdraw")
	cmd.Flags().Float64Var(&flagOutsideUSStock, "outside-us-stock", 0, "US stock value held outside Vanguard")
	cmd.Flags().Float64Var(&flagOutsideUSBond, "outside-us-bond", 0, "US bond value held outside Vanguard")
	cmd.Flags().Float64Var(&flagOutsideIntlStock, "outside-intl-stock", 0, "international stock value held outside Vanguard")
	cmd.Flags().Float64Var(&flagOutsideIntlBond, "outside-intl-bond", 0, "international bond value held outside Vanguard")
	cmd.Flags().BoolVar(&flagIncludeBrokerage, "include-brokerage", false, "pool the brokerage account with the IRAs under one target")
	cmd.Flags().IntVar(&flagAge, "age", 0, "account holder's age, enables the required distribution lookup")
	cmd.Flags().StringVar(&flagDistributionTable, "distribution-table", "", "path to the IRS distribution divisor table")
	cmd.Flags().BoolVar(&flagOutput, "output", false, "also write the report to a timestamped file")
	cmd.Flags().StringVar(&flagFormat, "format", "text", "report format, text or json")
}

func runRebalance(cmd *cobra.Command, args []string) error {
	if flagFormat != "text" && flagFormat != "json" {
		return fmt.Errorf("unknown format %q, want text or json", flagFormat)
	}

	log := logger.New()
	ctx := context.WithValue(context.Background(), logger.ContextKey, log)

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	percentOverride := cmd.Flags().Changed("stock-percent") ||
		cmd.Flags().Changed("bond-percent") ||
		cmd.Flags().Changed("inflation-percent")
	cfg = applyFlags(cmd, cfg)

	input, err := buildInput(cfg, percentOverride, args[0])
	if err != nil {
		return err
	}

	deps := InitializeDependencies(cfg)

	response, err := deps.RebalanceService.Rebalance(ctx, input)
	if err != nil {
		return err
	}

	report, err := renderReport(ctx, deps, cfg, response)
	if err != nil {
		return err
	}

	fmt.Println(report)

	if flagOutput {
		path := time.Now().Format("2006-01-02_15:04") + "_vanguard_rebalance.txt"
		if err := os.WriteFile(path, []byte(report+"\n"), 0o644); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		log.Infof("report written to %s", path)
	}
	return nil
}

// applyFlags overlays every explicitly set flag onto the file config so the
// rest of the run reads one effective configuration.
func applyFlags(cmd *cobra.Command, cfg config.Config) config.Config {
	flags := cmd.Flags()
	if flags.Changed("stock-percent") {
		cfg.Allocation.StockPercent = flagStockPercent
	}
	if flags.Changed("bond-percent") {
		cfg.Allocation.BondPercent = flagBondPercent
	}
	if flags.Changed("inflation-percent") {
		cfg.Allocation.InflationPercent = flagInflationPercent
	}
	if flags.Changed("retirement-year") {
		cfg.Allocation.RetirementYear = flagRetirementYear
	}
	if flags.Changed("brokerage-acct") {
		cfg.Accounts.Brokerage = flagBrokerageAcct
	}
	if flags.Changed("trad-acct") {
		cfg.Accounts.Traditional = flagTradAcct
	}
	if flags.Changed("roth-acct") {
		cfg.Accounts.Roth = flagRothAcct
	}
	if flags.Changed("include-brokerage") {
		cfg.Accounts.IncludeBrokerage = flagIncludeBrokerage
	}
	if flags.Changed("brokerage-add") {
		cfg.Adds.Brokerage = flagBrokerageAdd
	}
	if flags.Changed("trad-add") {
		cfg.Adds.Traditional = flagTradAdd
	}
	if flags.Changed("roth-add") {
		cfg.Adds.Roth = flagRothAdd
	}
	if flags.Changed("outside-us-stock") {
		cfg.Outside.USStock = flagOutsideUSStock
	}
	if flags.Changed("outside-us-bond") {
		cfg.Outside.USBond = flagOutsideUSBond
	}
	if flags.Changed("outside-intl-stock") {
		cfg.Outside.IntlStock = flagOutsideIntlStock
	}
	if flags.Changed("outside-intl-bond") {
		cfg.Outside.IntlBond = flagOutsideIntlBond
	}
	if flags.Changed("age") {
		cfg.Distribution.Age = flagAge
	}
	if flags.Changed("distribution-table") {
		cfg.Distribution.TablePath = flagDistributionTable
	}
	return cfg
}

// buildInput turns the effective config into the rebalance input. Explicit
// percentages win over a retirement year, which wins over the configured
// percentages.
func buildInput(cfg config.Config, percentOverride bool, csvPath string) (service.RebalanceInput, error) {
	policy := allocation.Policy{
		Stock:     cfg.Allocation.StockPercent,
		Bond:      cfg.Allocation.BondPercent,
		Inflation: cfg.Allocation.InflationPercent,
	}
	if !percentOverride && cfg.Allocation.RetirementYear > 0 {
		glide, err := allocation.PolicyForRetirementYear(cfg.Allocation.RetirementYear, time.Now().Year())
		if err != nil {
			return service.RebalanceInput{}, err
		}
		policy = glide
	}

	return service.RebalanceInput{
		CSVPath:            csvPath,
		BrokerageAccount:   cfg.Accounts.Brokerage,
		TraditionalAccount: cfg.Accounts.Traditional,
		RothAccount:        cfg.Accounts.Roth,
		Policy:             policy,
		BrokerageAdd:       decimal.NewFromFloat(cfg.Adds.Brokerage),
		TraditionalAdd:     decimal.NewFromFloat(cfg.Adds.Traditional),
		RothAdd:            decimal.NewFromFloat(cfg.Adds.Roth),
		Outside: allocation.OutsideAssets{
			USStock:   decimal.NewFromFloat(cfg.Outside.USStock),
			USBond:    decimal.NewFromFloat(cfg.Outside.USBond),
			IntlStock: decimal.NewFromFloat(cfg.Outside.IntlStock),
			IntlBond:  decimal.NewFromFloat(cfg.Outside.IntlBond),
		},
		IncludeBrokerage: cfg.Accounts.IncludeBrokerage,
	}, nil
}

// renderReport formats the response, appending the required distribution
// line when an age and divisor table are configured. The json format carries
// the rebalance alone.
func renderReport(ctx context.Context, deps Dependencies, cfg config.Config, response *service.RebalanceResponse) (string, error) {
	if flagFormat == "json" {
		payload, err := json.MarshalIndent(response.Rebalance, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to marshal rebalance: %w", err)
		}
		return string(payload), nil
	}

	report := renderer.Text(response.Rebalance)

	if cfg.Distribution.Age > 0 && cfg.Distribution.TablePath != "" {
		amount, err := deps.DistributionService.GetRequiredDistribution(ctx, service.DistributionInput{
			Age:       cfg.Distribution.Age,
			TablePath: cfg.Distribution.TablePath,
			Holdings:  response.Holdings,
			Now:       time.Now(),
		})
		if err != nil {
			return "", err
		}
		report += "\n\n" + renderer.Distribution(amount)
	}
	return report, nil
}
