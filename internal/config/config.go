package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds everything a rebalance run needs that is not in the download
// itself. All of it can also arrive as flags, which win over the file.
type Config struct {
	Accounts     AccountsConfig     `toml:"accounts"`
	Allocation   AllocationConfig   `toml:"allocation"`
	Adds         AddsConfig         `toml:"adds"`
	Outside      OutsideConfig      `toml:"outside"`
	Alpaca       AlpacaConfig       `toml:"alpaca"`
	Distribution DistributionConfig `toml:"distribution"`
}

// AccountsConfig names the Vanguard accounts to rebalance. An empty number
// leaves that account out of the run.
type AccountsConfig struct {
	Brokerage        string `toml:"brokerage,omitempty"`
	Traditional      string `toml:"traditional,omitempty"`
	Roth             string `toml:"roth,omitempty"`
	IncludeBrokerage bool   `toml:"include_brokerage"`
}

// AllocationConfig sets the stock, bond and inflation-protected percentages.
// A retirement year derives all three from the glide path instead, unless
// explicit percentages are also given.
type AllocationConfig struct {
	StockPercent     float64 `toml:"stock_percent"`
	BondPercent      float64 `toml:"bond_percent"`
	InflationPercent float64 `toml:"inflation_percent"`
	RetirementYear   int     `toml:"retirement_year,omitempty"`
}

// AddsConfig holds cash moving into each account before rebalancing,
// negative for withdrawals.
type AddsConfig struct {
	Brokerage   float64 `toml:"brokerage"`
	Traditional float64 `toml:"traditional"`
	Roth        float64 `toml:"roth"`
}

// OutsideConfig holds balances at other institutions that count toward the
// allocation without being purchased at Vanguard.
type OutsideConfig struct {
	USStock   float64 `toml:"us_stock"`
	USBond    float64 `toml:"us_bond"`
	IntlStock float64 `toml:"intl_stock"`
	IntlBond  float64 `toml:"intl_bond"`
}

// AlpacaConfig holds credentials for a linked Alpaca brokerage account whose
// equity counts as outside US stock. Leaving the key empty skips the lookup.
type AlpacaConfig struct {
	APIKey    string `toml:"api_key,omitempty"`
	APISecret string `toml:"api_secret,omitempty"`
	Endpoint  string `toml:"endpoint,omitempty"`
}

// DistributionConfig configures the required minimum distribution lookup.
type DistributionConfig struct {
	Age       int    `toml:"age,omitempty"`
	TablePath string `toml:"table_path,omitempty"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() Config {
	return Config{
		Allocation: AllocationConfig{
			StockPercent: 60,
			BondPercent:  40,
		},
		Alpaca: AlpacaConfig{
			Endpoint: "https://paper-api.alpaca.markets",
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "vanrebal")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "vanrebal")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// Load reads the config file at path, or the default location when path is
// empty. A missing file at the default location just means defaults; a
// missing file the user named explicitly is an error.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		path = ConfigPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to the default location.
func Save(cfg Config) error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(ConfigPath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists at the default location.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}

// GetAlpacaKey returns the Alpaca API key from the standard env var or the
// config, in that order.
func GetAlpacaKey(cfg Config) string {
	if key := os.Getenv("APCA_API_KEY_ID"); key != "" {
		return key
	}
	return cfg.Alpaca.APIKey
}

// GetAlpacaSecret returns the Alpaca API secret from the standard env var or
// the config, in that order.
func GetAlpacaSecret(cfg Config) string {
	if secret := os.Getenv("APCA_API_SECRET_KEY"); secret != "" {
		return secret
	}
	return cfg.Alpaca.APISecret
}
