package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/hance08/sats/cmd/account"
	"github.com/hance08/sats/internal/app"
	"github.com/hance08/sats/internal/config"
	"github.com/hance08/sats/internal/errhandler"
	"github.com/hance08/sats/internal/service"
	"github.com/joho/godotenv"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// runtime is filled by the root command's PersistentPreRunE, once flags such
// as --config have been parsed.
type runtime struct {
	app     *app.App
	cfg     *config.Config
	appDir  string
	cleanup func()
}

func (rt *runtime) Service() *service.Service {
	return rt.app.Service
}

func (rt *runtime) init(migrations fs.FS) error {
	cfg, appDir, err := initConfig()
	if err != nil {
		return err
	}

	application, cleanup, err := app.NewApp(cfg, migrations)
	if err != nil {
		return err
	}

	rt.app = application
	rt.cfg = cfg
	rt.appDir = appDir
	rt.cleanup = cleanup
	return nil
}

func Execute(migrations fs.FS) {
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " ERROR ",
		Style: pterm.NewStyle(pterm.BgLightRed, pterm.FgBlack),
	}

	rt := &runtime{}
	rootCmd := NewRootCmd(rt, migrations)

	err := rootCmd.Execute()
	if rt.cleanup != nil {
		rt.cleanup()
	}

	if err != nil {
		errhandler.HandleError(err)
		os.Exit(1)
	}
}

func NewRootCmd(rt *runtime, migrations fs.FS) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sats",
		Short: "sats keeps track of your bitcoin balance in satoshis",
		Long: `SATStracker: track your bitcoin balance, be on top of your sats.

Run without a subcommand to start an interactive session: pick or create an
account, then log deposits and withdrawals, view the balance or convert it to
a local currency.`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return rt.init(migrations)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &sessionRunner{
				svc: rt.Service(),
				cfg: rt.cfg,
			}
			return runner.Run(cmd.Context())
		},
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "set the config file path")

	rootCmd.AddCommand(account.NewAccountCmd(rt.Service))

	rootCmd.AddCommand(NewBalanceCmd(rt))
	rootCmd.AddCommand(NewDepositCmd(rt))
	rootCmd.AddCommand(NewWithdrawCmd(rt))
	rootCmd.AddCommand(NewConvertCmd(rt))
	rootCmd.AddCommand(NewInfoCmd(rt))

	return rootCmd
}

func initConfig() (*config.Config, string, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, "", fmt.Errorf("failed to load .env file: %w", err)
	}

	appDir, err := app.DataDir()
	if err != nil {
		return nil, "", fmt.Errorf("error getting app dir: %w", err)
	}

	setDefaults(config.NewDefault())

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(appDir)
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")

		if err := createDefaultConfig(appDir); err != nil {
			return nil, "", fmt.Errorf("failed to ensure config file: %w", err)
		}
	}

	viper.SetEnvPrefix("SATS")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // allow using environment variables to override

	if err := viper.ReadInConfig(); err != nil {
		if cfgFile != "" {
			return nil, "", fmt.Errorf("failed to read config file: %w", err)
		}

		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, "", fmt.Errorf("config file error: %w", err)
		}
	}

	cfg := config.NewDefault()
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, "", fmt.Errorf("unable to decode into struct, %v", err)
	}

	cfg.ConfigPath = viper.ConfigFileUsed()

	cfg.Storage.Dir, err = expandPath(cfg.Storage.Dir)
	if err != nil {
		return nil, "", fmt.Errorf("failed to expand storage dir: %w", err)
	}
	cfg.Resolve(appDir)

	return cfg, appDir, nil
}

// setDefaults registers every key so that env overrides apply to keys missing
// from the config file, and so that the first-run config file lists them all.
func setDefaults(d *config.Config) {
	viper.SetDefault("storage.driver", d.Storage.Driver)
	viper.SetDefault("storage.dir", d.Storage.Dir)
	viper.SetDefault("storage.accounts_file", d.Storage.AccountsFile)
	viper.SetDefault("storage.rates_file", d.Storage.RatesFile)
	viper.SetDefault("storage.db_file", d.Storage.DBFile)

	viper.SetDefault("rates.btc_url", d.Rates.BTCURL)
	viper.SetDefault("rates.btc_path", d.Rates.BTCPath)
	viper.SetDefault("rates.fiat_url", d.Rates.FiatURL)
	viper.SetDefault("rates.fiat_path", d.Rates.FiatPath)
	viper.SetDefault("rates.max_age", d.Rates.MaxAge.String())
	viper.SetDefault("rates.timeout", d.Rates.Timeout.String())

	viper.SetDefault("ui.dash_width", d.UI.DashWidth)
	viper.SetDefault("ui.quit_message", d.UI.QuitMessage)

	viper.SetDefault("defaults.currency", d.Defaults.Currency)

	viper.SetDefault("log.level", d.Log.Level)
	viper.SetDefault("log.file", d.Log.File)
}

func expandPath(path string) (string, error) {
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		if path == "~" {
			return home, nil
		}
		if strings.HasPrefix(path, "~/") || strings.HasPrefix(path, "~\\") {
			return filepath.Join(home, path[2:]), nil
		}
	}
	return path, nil
}

func createDefaultConfig(appDir string) error {
	if err := os.MkdirAll(appDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath := filepath.Join(appDir, "config.yaml")

	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	if err := viper.WriteConfigAs(configPath); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
