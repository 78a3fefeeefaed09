package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// RateRecord is the single cached exchange rate.
// SatsRate is the base currency value of one satoshi, TargetRate the value of one
// unit of base currency in Currency.
type RateRecord struct {
	Currency   string
	SatsRate   decimal.Decimal
	TargetRate decimal.Decimal
	WrittenAt  time.Time
}

type Conversion struct {
	Currency string
	Sats     int64
	Value    decimal.Decimal
	Cached   bool
}
