package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/hance08/sats/internal/config"
	"github.com/hance08/sats/internal/service"
	"github.com/hance08/sats/internal/store"
	"github.com/hance08/sats/internal/ui/views"
	"github.com/spf13/cobra"
)

type infoRunner struct {
	svc    *service.Service
	appDir string
}

func NewInfoCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Display application information",
		Long:  `Display current configuration, data file paths, rate cache state and system details.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &infoRunner{
				svc:    rt.Service(),
				appDir: rt.appDir,
			}

			return runner.Run()
		},
	}
}

func (r *infoRunner) Run() error {
	cfg := r.svc.Config

	configPath := cfg.ConfigPath
	if configPath == "" {
		configPath = "(None, using defaults)"
	}

	dataPaths := storagePaths(cfg.Storage)
	dataExists := true
	for _, p := range dataPaths {
		if _, err := os.Stat(p); err != nil {
			dataExists = false
		}
	}

	rateCache, err := r.rateCacheStatus()
	if err != nil {
		return err
	}

	items := views.SystemInfoItem{
		ConfigPath:      configPath,
		Driver:          cfg.Storage.Driver,
		DataPaths:       dataPaths,
		DataExists:      dataExists,
		DefaultCurrency: cfg.Defaults.Currency,
		RateCache:       rateCache,
		LogFile:         cfg.Log.File,
		AppDataDir:      r.appDir,
	}

	return views.RenderSystemInfo(items)
}

func (r *infoRunner) rateCacheStatus() (string, error) {
	rec, fresh, err := r.svc.Rates.Cached()
	if errors.Is(err, store.ErrMalformedRecord) {
		return "Unreadable (refetched on next conversion)", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read rate cache: %w", err)
	}
	if rec == nil {
		return "Empty", nil
	}

	state := "stale"
	if fresh {
		state = "fresh"
	}
	return fmt.Sprintf("%s, written %s (%s)", rec.Currency, humanize.Time(rec.WrittenAt), state), nil
}

func storagePaths(s config.StorageConfig) []string {
	if s.Driver == config.DriverSQLite {
		return []string{s.DBFile}
	}
	return []string{s.AccountsFile, s.RatesFile}
}
