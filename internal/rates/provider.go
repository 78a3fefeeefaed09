package rates

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/PaesslerAG/jsonpath"
	"github.com/hance08/sats/internal/config"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Provider returns the price of one bitcoin in the base currency and the table
// of base-to-code exchange rates.
type Provider interface {
	BTCPrice(ctx context.Context) (decimal.Decimal, error)
	FiatRates(ctx context.Context) (map[string]decimal.Decimal, error)
}

// HTTPProvider reads both values from JSON endpoints using JSONPath expressions.
type HTTPProvider struct {
	client *http.Client
	cfg    config.RatesConfig
	logger *zap.Logger
}

func NewHTTPProvider(cfg config.RatesConfig, logger *zap.Logger) *HTTPProvider {
	return &HTTPProvider{
		client: &http.Client{Timeout: cfg.Timeout},
		cfg:    cfg,
		logger: logger,
	}
}

func (p *HTTPProvider) BTCPrice(ctx context.Context) (decimal.Decimal, error) {
	doc, err := p.jwget(ctx, p.cfg.BTCURL)
	if err != nil {
		return decimal.Zero, err
	}

	jval, err := jsonpath.Get(p.cfg.BTCPath, doc)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: bitcoin price at %q: %v", ErrNetwork, p.cfg.BTCPath, err)
	}
	// a filter expression yields a list, keep the first answer
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}

	price, err := toDecimal(jval)
	if err != nil || !price.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: bitcoin price at %q is not a positive number: %v", ErrNetwork, p.cfg.BTCPath, jval)
	}
	return price, nil
}

func (p *HTTPProvider) FiatRates(ctx context.Context) (map[string]decimal.Decimal, error) {
	doc, err := p.jwget(ctx, p.cfg.FiatURL)
	if err != nil {
		return nil, err
	}

	jval, err := jsonpath.Get(p.cfg.FiatPath, doc)
	if err != nil {
		return nil, fmt.Errorf("%w: rates table at %q: %v", ErrNetwork, p.cfg.FiatPath, err)
	}

	table, ok := jval.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: rates table at %q is not an object", ErrNetwork, p.cfg.FiatPath)
	}

	out := make(map[string]decimal.Decimal, len(table))
	for code, v := range table {
		rate, err := toDecimal(v)
		if err != nil {
			p.logger.Debug("skipping non numeric rate", zap.String("code", code), zap.Any("value", v))
			continue
		}
		out[code] = rate
	}
	return out, nil
}

// jwget performs an HTTP GET and decodes the JSON body, keeping numbers exact.
func (p *HTTPProvider) jwget(ctx context.Context, addr string) (any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	p.logger.Debug("provider call",
		zap.String("host", req.URL.Host),
		zap.String("path", req.URL.Path),
		zap.Int("status", resp.StatusCode),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: cannot http GET %v%v: %v", ErrNetwork, req.URL.Host, req.URL.Path, resp.Status)
	}

	var doc any
	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: decoding %v%v: %v", ErrNetwork, req.URL.Host, req.URL.Path, err)
	}
	return doc, nil
}

func toDecimal(v any) (decimal.Decimal, error) {
	switch n := v.(type) {
	case json.Number:
		return decimal.NewFromString(n.String())
	case float64:
		return decimal.NewFromFloat(n), nil
	case string:
		return decimal.NewFromString(n)
	default:
		return decimal.Zero, fmt.Errorf("not a number: %v", v)
	}
}
