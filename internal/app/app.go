package app

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/hance08/sats/internal/config"
	"github.com/hance08/sats/internal/logging"
	"github.com/hance08/sats/internal/rates"
	"github.com/hance08/sats/internal/service"
	"github.com/hance08/sats/internal/store"
	"go.uber.org/zap"
)

type App struct {
	Service *service.Service
	Logger  *zap.Logger
}

// NewApp initialize logger, storage backend and rate resolver, then return App entity
func NewApp(cfg *config.Config, migrationFS fs.FS) (*App, func(), error) {
	logger, err := logging.New(cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	accounts, rateCache, closeStore, err := openStorage(cfg.Storage, migrationFS, logger)
	if err != nil {
		_ = logger.Sync()
		return nil, nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	provider := rates.NewHTTPProvider(cfg.Rates, logger)
	resolver := rates.NewResolver(rateCache, provider, cfg.Rates.MaxAge, logger)
	svc := service.NewService(accounts, resolver, cfg, logger)

	logger.Debug("application ready",
		zap.String("driver", cfg.Storage.Driver),
		zap.String("config", cfg.ConfigPath),
	)

	cleanup := func() {
		if err := closeStore(); err != nil {
			fmt.Printf("Error closing storage: %v\n", err)
		}
		_ = logger.Sync()
	}

	return &App{
		Service: svc,
		Logger:  logger,
	}, cleanup, nil
}

func openStorage(cfg config.StorageConfig, migrationFS fs.FS, logger *zap.Logger) (store.AccountRepository, store.RateRepository, func() error, error) {
	switch cfg.Driver {
	case config.DriverCSV, "":
		accounts, err := store.NewCSVAccountStore(cfg.AccountsFile, logger)
		if err != nil {
			return nil, nil, nil, err
		}
		rateCache, err := store.NewCSVRateStore(cfg.RatesFile, logger)
		if err != nil {
			return nil, nil, nil, err
		}
		return accounts, rateCache, func() error { return nil }, nil

	case config.DriverSQLite:
		dbStore, err := store.NewStore(cfg.DBFile, migrationFS, logger)
		if err != nil {
			return nil, nil, nil, err
		}
		return dbStore, dbStore, dbStore.Close, nil

	default:
		return nil, nil, nil, fmt.Errorf("unknown storage driver '%s' (must be %s or %s)", cfg.Driver, config.DriverCSV, config.DriverSQLite)
	}
}

// DataDir is the per-user directory holding the config file, data files and log.
func DataDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("unable to determine user home directory: %w", err)
		}
		return filepath.Join(home, ".sats"), nil
	}

	return filepath.Join(configDir, "sats"), nil
}
