package store

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/hance08/sats/internal/model"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const rateHeaderTag = "sats"

// CSVRateStore keeps the cached rate as a header row
// (sats, CODE, unix written_at) followed by one (sats_rate, target_rate) row.
type CSVRateStore struct {
	path   string
	logger *zap.Logger
}

func NewCSVRateStore(path string, logger *zap.Logger) (*CSVRateStore, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("can not create data directory %s: %w", dir, err)
	}

	return &CSVRateStore{path: path, logger: logger}, nil
}

func (s *CSVRateStore) LoadRates() (*model.RateRecord, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("rate cache: %w", ErrRecordNotFound)
		}
		return nil, fmt.Errorf("failed to open rates file: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("rates header: %w", ErrMalformedRecord)
	}
	if len(header) < 2 || header[0] != rateHeaderTag {
		return nil, fmt.Errorf("rates header %v: %w", header, ErrMalformedRecord)
	}

	row, err := r.Read()
	if err != nil || len(row) != 2 {
		return nil, fmt.Errorf("rates row: %w", ErrMalformedRecord)
	}

	satsRate, err := decimal.NewFromString(row[0])
	if err != nil {
		return nil, fmt.Errorf("sats rate %q: %w", row[0], ErrMalformedRecord)
	}
	targetRate, err := decimal.NewFromString(row[1])
	if err != nil {
		return nil, fmt.Errorf("target rate %q: %w", row[1], ErrMalformedRecord)
	}

	writtenAt, err := s.writtenAt(header, f)
	if err != nil {
		return nil, err
	}

	return &model.RateRecord{
		Currency:   strings.ToUpper(header[1]),
		SatsRate:   satsRate,
		TargetRate: targetRate,
		WrittenAt:  writtenAt,
	}, nil
}

// writtenAt reads the timestamp column. Files written before the column existed
// carry only (sats, CODE) and fall back to the modification time.
func (s *CSVRateStore) writtenAt(header []string, f *os.File) (time.Time, error) {
	if len(header) >= 3 {
		sec, err := strconv.ParseInt(header[2], 10, 64)
		if err != nil {
			return time.Time{}, fmt.Errorf("rates timestamp %q: %w", header[2], ErrMalformedRecord)
		}
		return time.Unix(sec, 0), nil
	}

	info, err := f.Stat()
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to stat rates file: %w", err)
	}
	return info.ModTime(), nil
}

func (s *CSVRateStore) SaveRates(rec *model.RateRecord) error {
	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("failed to write rates file: %w", err)
	}

	w := csv.NewWriter(f)
	rows := [][]string{
		{rateHeaderTag, rec.Currency, strconv.FormatInt(rec.WrittenAt.Unix(), 10)},
		{rec.SatsRate.String(), rec.TargetRate.String()},
	}
	if err := w.WriteAll(rows); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write rates file: %w", err)
	}

	s.logger.Debug("rate cache written", zap.String("currency", rec.Currency))

	return f.Close()
}

func (s *CSVRateStore) DeleteRates() error {
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to delete rates file: %w", err)
	}
	s.logger.Debug("rate cache deleted")
	return nil
}
