package rates

import "errors"

var (
	// ErrNetwork covers connectivity failures, timeouts, non-2xx responses and
	// payloads that can't be read.
	ErrNetwork = errors.New("problem fetching exchange data")

	ErrUnknownCurrency = errors.New("unknown currency")
)
