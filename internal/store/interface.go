package store

import "github.com/hance08/sats/internal/model"

type AccountRepository interface {
	HasAccounts() (bool, error)
	FindAccount(name string) (*model.Account, error)
	GetAllAccounts() ([]*model.Account, error)
	AppendAccount(name string, balance int64) (*model.Account, error)

	// ApplyDelta adds delta to the named account and returns the new balance.
	// The whole table is read before the change is written back.
	ApplyDelta(name string, delta int64) (int64, error)
}

// RateRepository holds at most one cached rate record.
type RateRepository interface {
	LoadRates() (*model.RateRecord, error)
	SaveRates(rec *model.RateRecord) error
	DeleteRates() error
}
