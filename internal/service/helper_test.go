package service

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/hance08/sats/internal/store"
	"go.uber.org/zap/zaptest"
)

func setupAccountService(t *testing.T) (*AccountService, *store.CSVAccountStore) {
	t.Helper()
	repo, err := store.NewCSVAccountStore(filepath.Join(t.TempDir(), "accounts.csv"), zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("NewCSVAccountStore err=%v", err)
	}
	return NewAccountService(repo, zaptest.NewLogger(t)), repo
}

func mustCreate(t *testing.T, as *AccountService, name, balance string) *Account {
	t.Helper()
	acc, err := as.Create(name, balance)
	if err != nil {
		t.Fatalf("Create(%q, %q) err=%v", name, balance, err)
	}
	return acc
}

func storedBalance(t *testing.T, repo store.AccountRepository, name string) int64 {
	t.Helper()
	acc, err := repo.FindAccount(name)
	if err != nil {
		t.Fatalf("FindAccount(%q) err=%v", name, err)
	}
	return acc.Balance
}

var errScriptEnded = errors.New("prompt script ended")

// scriptedPrompter replays canned answers and records warnings.
type scriptedPrompter struct {
	existing []string
	names    []string
	balances []string

	notFound        []string
	invalidBalances int
	nameValidations []error
}

func (p *scriptedPrompter) ExistingAccountName() (string, error) {
	return pop(&p.existing)
}

func (p *scriptedPrompter) NewAccountName(validate func(string) error) (string, error) {
	name, err := pop(&p.names)
	if err != nil {
		return "", err
	}
	p.nameValidations = append(p.nameValidations, validate(name))
	return name, nil
}

func (p *scriptedPrompter) OpeningBalance() (string, error) {
	return pop(&p.balances)
}

func (p *scriptedPrompter) AccountNotFound(name string) {
	p.notFound = append(p.notFound, name)
}

func (p *scriptedPrompter) InvalidOpeningBalance(err error) {
	p.invalidBalances++
}

func pop(queue *[]string) (string, error) {
	if len(*queue) == 0 {
		return "", errScriptEnded
	}
	v := (*queue)[0]
	*queue = (*queue)[1:]
	return v, nil
}
