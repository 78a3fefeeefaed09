package model

// Account is one row of the account store. Balance is in satoshis.
type Account struct {
	Name    string
	Balance int64
}
