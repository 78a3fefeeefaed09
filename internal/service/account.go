package service

import (
	"errors"
	"fmt"
	"math"

	"github.com/hance08/sats/internal/store"
	"github.com/hance08/sats/internal/validation"
	"go.uber.org/zap"
)

// Account is the session's view of one account row. Every mutation is written
// to the store before the in-memory balance changes.
type Account struct {
	name    string
	balance int64
	repo    store.AccountRepository
	logger  *zap.Logger
}

func (a *Account) Name() string {
	return a.name
}

func (a *Account) Balance() int64 {
	return a.balance
}

// Deposit adds a positive amount typed by the user.
func (a *Account) Deposit(amountText string) (string, error) {
	amount, err := validation.ParsePositiveAmount(amountText)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidAmount, err)
	}
	if amount > math.MaxInt64-a.balance {
		return "", fmt.Errorf("%w: %w", ErrInvalidAmount, validation.ErrOutOfRange)
	}

	if err := a.update(amount); err != nil {
		return "", err
	}
	return balanceUpdatedMessage(a.balance), nil
}

// Withdraw removes a positive amount typed by the user. A withdrawal larger than
// the balance is not an error: it returns InsufficientBalanceMessage and leaves
// the balance as it was.
func (a *Account) Withdraw(amountText string) (string, error) {
	amount, err := validation.ParsePositiveAmount(amountText)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidAmount, err)
	}

	if err := checkWithdrawal(a.balance, amount); err != nil {
		a.logger.Info("withdrawal refused",
			zap.String("name", a.name),
			zap.Int64("balance", a.balance),
			zap.Int64("amount", amount),
		)
		return InsufficientBalanceMessage, nil
	}

	if err := a.update(-amount); err != nil {
		return "", err
	}
	return balanceUpdatedMessage(a.balance), nil
}

// Refresh reloads the balance from the store.
func (a *Account) Refresh() error {
	acc, err := a.repo.FindAccount(a.name)
	if err != nil {
		return fmt.Errorf("failed to reload account '%s': %w", a.name, err)
	}
	a.balance = acc.Balance
	return nil
}

// update always targets the account's own row.
func (a *Account) update(delta int64) error {
	newBalance, err := a.repo.ApplyDelta(a.name, delta)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return fmt.Errorf("%w: '%s' disappeared from the store: %w", ErrAccountNotFound, a.name, err)
		}
		return fmt.Errorf("failed to update balance: %w", err)
	}
	a.balance = newBalance
	return nil
}

func checkWithdrawal(balance, amount int64) error {
	if balance-amount < 0 {
		return ErrInsufficientBalance
	}
	return nil
}
