package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hance08/sats/internal/constants"
	"github.com/hance08/sats/internal/model"
	"github.com/hance08/sats/internal/store"
	"github.com/hance08/sats/internal/validation"
	"go.uber.org/zap"
)

// SessionPrompter is the interactive side of GetOrCreate.
type SessionPrompter interface {
	// ExistingAccountName asks for an account name, or constants.NewAccountKey.
	ExistingAccountName() (string, error)
	NewAccountName(validate func(string) error) (string, error)
	OpeningBalance() (string, error)

	AccountNotFound(name string)
	InvalidOpeningBalance(err error)
}

type AccountService struct {
	repo   store.AccountRepository
	logger *zap.Logger
}

func NewAccountService(repo store.AccountRepository, logger *zap.Logger) *AccountService {
	return &AccountService{repo: repo, logger: logger}
}

// NormalizeName is the stored form of an account name.
func NormalizeName(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}

func (as *AccountService) Open(name string) (*Account, error) {
	name = NormalizeName(name)

	acc, err := as.repo.FindAccount(name)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: '%s'", ErrAccountNotFound, name)
		}
		return nil, err
	}
	return as.bind(acc), nil
}

// Create appends a new account. The opening balance must be digits only; zero is allowed.
func (as *AccountService) Create(name, balanceText string) (*Account, error) {
	name = NormalizeName(name)
	if err := validation.ValidateAccountName(name); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidName, err)
	}

	balance, err := validation.ParseAmount(balanceText)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAmount, err)
	}

	acc, err := as.repo.AppendAccount(name, balance)
	if err != nil {
		return nil, err
	}
	return as.bind(acc), nil
}

func (as *AccountService) List() ([]*model.Account, error) {
	return as.repo.GetAllAccounts()
}

// ValidateNewName checks format and uniqueness of a name typed for a new account.
func (as *AccountService) ValidateNewName(name string) error {
	name = NormalizeName(name)
	if err := validation.ValidateAccountName(name); err != nil {
		return err
	}

	_, err := as.repo.FindAccount(name)
	if err == nil {
		return fmt.Errorf("account '%s' already exists", name)
	}
	if !errors.Is(err, store.ErrRecordNotFound) {
		return fmt.Errorf("failed to check account: %w", err)
	}
	return nil
}

// GetOrCreate selects the session account. With an empty store it goes straight
// to creation. Otherwise the user gets constants.MaxLookupAttempts tries to name
// an existing account, or types constants.NewAccountKey to create one. A warning
// follows every miss except the last; the last miss returns ErrAttemptsExhausted.
func (as *AccountService) GetOrCreate(p SessionPrompter) (*Account, error) {
	has, err := as.repo.HasAccounts()
	if err != nil {
		return nil, err
	}
	if !has {
		return as.CreateInteractive(p)
	}

	for attempts := constants.MaxLookupAttempts; attempts > 0; attempts-- {
		input, err := p.ExistingAccountName()
		if err != nil {
			return nil, err
		}

		name := NormalizeName(input)
		if name == constants.NewAccountKey {
			return as.CreateInteractive(p)
		}

		acc, err := as.Open(name)
		if err == nil {
			return acc, nil
		}
		if !errors.Is(err, ErrAccountNotFound) {
			return nil, err
		}

		as.logger.Info("account lookup missed", zap.String("name", name), zap.Int("remaining", attempts-1))
		if attempts != 1 {
			p.AccountNotFound(name)
		}
	}

	return nil, ErrAttemptsExhausted
}

// CreateInteractive asks for a new unique name, then for an opening balance until it parses.
func (as *AccountService) CreateInteractive(p SessionPrompter) (*Account, error) {
	name, err := p.NewAccountName(as.ValidateNewName)
	if err != nil {
		return nil, err
	}

	for {
		balanceText, err := p.OpeningBalance()
		if err != nil {
			return nil, err
		}

		acc, err := as.Create(name, balanceText)
		if errors.Is(err, ErrInvalidAmount) {
			p.InvalidOpeningBalance(err)
			continue
		}
		return acc, err
	}
}

func (as *AccountService) bind(acc *model.Account) *Account {
	return &Account{
		name:    acc.Name,
		balance: acc.Balance,
		repo:    as.repo,
		logger:  as.logger,
	}
}
