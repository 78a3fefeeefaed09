package rates

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/hance08/sats/internal/config"
	"github.com/shopspring/decimal"
	"go.uber.org/zap/zaptest"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/price", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"bitcoin":{"usd":65000.12345678}}`))
	})
	mux.HandleFunc("/latest", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"result":"success","base_code":"USD","rates":{"USD":1,"EUR":0.9213,"JPY":151.2,"XXX":"n/a"}}`))
	})
	mux.HandleFunc("/broken", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	})
	mux.HandleFunc("/garbage", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func testRatesConfig(base string) config.RatesConfig {
	cfg := config.NewDefault().Rates
	cfg.BTCURL = base + "/price"
	cfg.FiatURL = base + "/latest"
	cfg.Timeout = 2 * time.Second
	return cfg
}

func TestHTTPProvider_BTCPrice(t *testing.T) {
	srv := newTestServer(t)
	p := NewHTTPProvider(testRatesConfig(srv.URL), zaptest.NewLogger(t))

	price, err := p.BTCPrice(context.Background())
	if err != nil {
		t.Fatalf("BTCPrice err=%v", err)
	}
	if want := decimal.RequireFromString("65000.12345678"); !price.Equal(want) {
		t.Fatalf("price=%s want=%s", price, want)
	}
}

func TestHTTPProvider_FiatRates(t *testing.T) {
	srv := newTestServer(t)
	p := NewHTTPProvider(testRatesConfig(srv.URL), zaptest.NewLogger(t))

	table, err := p.FiatRates(context.Background())
	if err != nil {
		t.Fatalf("FiatRates err=%v", err)
	}
	if got := table["EUR"]; !got.Equal(decimal.RequireFromString("0.9213")) {
		t.Fatalf("EUR=%s want=0.9213", got)
	}
	if _, ok := table["XXX"]; ok {
		t.Fatal("non numeric rate should be skipped")
	}
	if len(table) != 3 {
		t.Fatalf("len=%d want=3", len(table))
	}
}

func TestHTTPProvider_Errors(t *testing.T) {
	srv := newTestServer(t)

	tests := map[string]func(cfg *config.RatesConfig){
		"non 2xx":      func(cfg *config.RatesConfig) { cfg.BTCURL = srv.URL + "/broken" },
		"not json":     func(cfg *config.RatesConfig) { cfg.BTCURL = srv.URL + "/garbage" },
		"missing path": func(cfg *config.RatesConfig) { cfg.BTCPath = "$.bitcoin.eur" },
		"unreachable":  func(cfg *config.RatesConfig) { cfg.BTCURL = "http://127.0.0.1:1/price" },
	}

	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := testRatesConfig(srv.URL)
			mutate(&cfg)
			p := NewHTTPProvider(cfg, zaptest.NewLogger(t))

			if _, err := p.BTCPrice(context.Background()); !errors.Is(err, ErrNetwork) {
				t.Fatalf("want ErrNetwork, got %v", err)
			}
		})
	}
}

func TestHTTPProvider_RatesTableNotObject(t *testing.T) {
	srv := newTestServer(t)
	cfg := testRatesConfig(srv.URL)
	cfg.FiatPath = "$.base_code"
	p := NewHTTPProvider(cfg, zaptest.NewLogger(t))

	if _, err := p.FiatRates(context.Background()); !errors.Is(err, ErrNetwork) {
		t.Fatalf("want ErrNetwork, got %v", err)
	}
}
