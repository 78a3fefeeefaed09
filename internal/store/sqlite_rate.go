package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/hance08/sats/internal/model"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

func (s *Store) LoadRates() (*model.RateRecord, error) {
	row := s.db.QueryRow("SELECT currency, sats_rate, target_rate, written_at FROM rate_cache WHERE slot = 1")

	var (
		currency, satsRate, targetRate string
		writtenAt                      int64
	)
	if err := row.Scan(&currency, &satsRate, &targetRate, &writtenAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("rate cache: %w", ErrRecordNotFound)
		}
		return nil, fmt.Errorf("failed to query rate cache: %w", err)
	}

	rec := &model.RateRecord{Currency: currency, WrittenAt: time.Unix(writtenAt, 0)}

	var err error
	if rec.SatsRate, err = decimal.NewFromString(satsRate); err != nil {
		return nil, fmt.Errorf("sats rate %q: %w", satsRate, ErrMalformedRecord)
	}
	if rec.TargetRate, err = decimal.NewFromString(targetRate); err != nil {
		return nil, fmt.Errorf("target rate %q: %w", targetRate, ErrMalformedRecord)
	}

	return rec, nil
}

func (s *Store) SaveRates(rec *model.RateRecord) error {
	_, err := s.db.Exec(`
        INSERT OR REPLACE INTO rate_cache (slot, currency, sats_rate, target_rate, written_at)
        VALUES (1, ?, ?, ?, ?)
    `, rec.Currency, rec.SatsRate.String(), rec.TargetRate.String(), rec.WrittenAt.Unix())
	if err != nil {
		return fmt.Errorf("failed to save rate cache: %w", err)
	}

	s.logger.Debug("rate cache written", zap.String("currency", rec.Currency))
	return nil
}

func (s *Store) DeleteRates() error {
	if _, err := s.db.Exec("DELETE FROM rate_cache"); err != nil {
		return fmt.Errorf("failed to delete rate cache: %w", err)
	}
	s.logger.Debug("rate cache deleted")
	return nil
}
