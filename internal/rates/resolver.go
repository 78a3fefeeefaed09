package rates

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hance08/sats/internal/constants"
	"github.com/hance08/sats/internal/model"
	"github.com/hance08/sats/internal/store"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// satsToBTC is the BTC value of one satoshi.
var satsToBTC = decimal.NewFromInt(1).Div(decimal.NewFromInt(constants.SatsPerBTC))

// Resolver converts a satoshi balance using a single cached rate record,
// refreshing it from the providers when it is missing, stale or for another currency.
type Resolver struct {
	cache    store.RateRepository
	provider Provider
	maxAge   time.Duration
	now      func() time.Time
	logger   *zap.Logger
}

func NewResolver(cache store.RateRepository, provider Provider, maxAge time.Duration, logger *zap.Logger) *Resolver {
	return &Resolver{
		cache:    cache,
		provider: provider,
		maxAge:   maxAge,
		now:      time.Now,
		logger:   logger,
	}
}

// IsStale reports whether a record written at writtenAt has outlived maxAge at now.
func IsStale(writtenAt, now time.Time, maxAge time.Duration) bool {
	return now.Sub(writtenAt) > maxAge
}

func (r *Resolver) Convert(ctx context.Context, sats int64, code string) (model.Conversion, error) {
	code = strings.ToUpper(strings.TrimSpace(code))

	rec, err := r.lookup(code)
	if err != nil {
		return model.Conversion{}, err
	}

	cached := rec != nil
	if !cached {
		rec, err = r.refresh(ctx, code)
		if err != nil {
			return model.Conversion{}, err
		}
	}

	value := decimal.NewFromInt(sats).Mul(rec.SatsRate).Mul(rec.TargetRate)

	return model.Conversion{
		Currency: code,
		Sats:     sats,
		Value:    value,
		Cached:   cached,
	}, nil
}

// lookup returns the cached record when it is usable for code. Any other record
// is deleted so that the next fetch starts from an empty slot.
func (r *Resolver) lookup(code string) (*model.RateRecord, error) {
	rec, err := r.cache.LoadRates()
	switch {
	case errors.Is(err, store.ErrRecordNotFound):
		r.logger.Debug("rate cache miss", zap.String("currency", code))
		return nil, nil
	case errors.Is(err, store.ErrMalformedRecord):
		r.logger.Warn("discarding unreadable rate cache", zap.Error(err))
		return nil, r.cache.DeleteRates()
	case err != nil:
		return nil, fmt.Errorf("failed to read rate cache: %w", err)
	}

	if rec.Currency != code || IsStale(rec.WrittenAt, r.now(), r.maxAge) {
		r.logger.Debug("rate cache discarded",
			zap.String("cached", rec.Currency),
			zap.String("requested", code),
			zap.Time("written_at", rec.WrittenAt),
		)
		if err := r.cache.DeleteRates(); err != nil {
			return nil, err
		}
		return nil, nil
	}

	r.logger.Debug("rate cache hit", zap.String("currency", code))
	return rec, nil
}

func (r *Resolver) refresh(ctx context.Context, code string) (*model.RateRecord, error) {
	price, err := r.provider.BTCPrice(ctx)
	if err != nil {
		return nil, err
	}

	table, err := r.provider.FiatRates(ctx)
	if err != nil {
		return nil, err
	}

	target, ok := table[code]
	if !ok {
		return nil, fmt.Errorf("%w: '%s'", ErrUnknownCurrency, code)
	}

	rec := &model.RateRecord{
		Currency:   code,
		SatsRate:   price.Mul(satsToBTC),
		TargetRate: target,
		WrittenAt:  r.now(),
	}
	if err := r.cache.SaveRates(rec); err != nil {
		return nil, err
	}

	r.logger.Info("exchange rate refreshed",
		zap.String("currency", code),
		zap.String("sats_rate", rec.SatsRate.String()),
		zap.String("target_rate", rec.TargetRate.String()),
	)
	return rec, nil
}

// Cached returns the stored record and whether it is still fresh, without
// fetching or deleting anything.
func (r *Resolver) Cached() (*model.RateRecord, bool, error) {
	rec, err := r.cache.LoadRates()
	if errors.Is(err, store.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return rec, !IsStale(rec.WrittenAt, r.now(), r.maxAge), nil
}
