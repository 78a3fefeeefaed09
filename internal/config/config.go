package config

import (
	"path/filepath"
	"time"
)

type Config struct {
	Storage    StorageConfig  `mapstructure:"storage"`
	Rates      RatesConfig    `mapstructure:"rates"`
	UI         UIConfig       `mapstructure:"ui"`
	Defaults   DefaultsConfig `mapstructure:"defaults"`
	Log        LogConfig      `mapstructure:"log"`
	ConfigPath string         `mapstructure:"-"`
}

type StorageConfig struct {
	// Driver is "csv" or "sqlite".
	Driver       string `mapstructure:"driver"`
	Dir          string `mapstructure:"dir"`
	AccountsFile string `mapstructure:"accounts_file"`
	RatesFile    string `mapstructure:"rates_file"`
	DBFile       string `mapstructure:"db_file"`
}

type RatesConfig struct {
	BTCURL   string        `mapstructure:"btc_url"`
	BTCPath  string        `mapstructure:"btc_path"`
	FiatURL  string        `mapstructure:"fiat_url"`
	FiatPath string        `mapstructure:"fiat_path"`
	MaxAge   time.Duration `mapstructure:"max_age"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

type UIConfig struct {
	DashWidth   int    `mapstructure:"dash_width"`
	QuitMessage string `mapstructure:"quit_message"`
}

type DefaultsConfig struct {
	Currency string `mapstructure:"currency"`
}

type LogConfig struct {
	// Level is a zap level name, or "off".
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

const (
	DriverCSV    = "csv"
	DriverSQLite = "sqlite"
)

func NewDefault() *Config {
	return &Config{
		Storage: StorageConfig{
			Driver:       DriverCSV,
			Dir:          "",
			AccountsFile: "accounts.csv",
			RatesFile:    "rates.csv",
			DBFile:       "sats.db",
		},
		Rates: RatesConfig{
			BTCURL:   "https://api.coingecko.com/api/v3/simple/price?ids=bitcoin&vs_currencies=usd",
			BTCPath:  "$.bitcoin.usd",
			FiatURL:  "https://open.er-api.com/v6/latest/USD",
			FiatPath: "$.rates",
			MaxAge:   30 * time.Minute,
			Timeout:  10 * time.Second,
		},
		UI: UIConfig{
			DashWidth:   69,
			QuitMessage: "Thank you for using SATStracker. Enjoy your day ☀️",
		},
		Defaults: DefaultsConfig{Currency: "USD"},
		Log:      LogConfig{Level: "warn", File: ""},
	}
}

// Resolve joins relative storage and log paths onto dir and fills empty ones.
func (c *Config) Resolve(dir string) {
	if c.Storage.Dir == "" {
		c.Storage.Dir = dir
	}
	c.Storage.AccountsFile = under(c.Storage.Dir, c.Storage.AccountsFile)
	c.Storage.RatesFile = under(c.Storage.Dir, c.Storage.RatesFile)
	c.Storage.DBFile = under(c.Storage.Dir, c.Storage.DBFile)

	if c.Log.File == "" {
		c.Log.File = "sats.log"
	}
	c.Log.File = under(dir, c.Log.File)
}

func under(dir, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}
