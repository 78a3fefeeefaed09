package store

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/hance08/sats/internal/model"
	"go.uber.org/zap"
)

// CSVAccountStore keeps accounts as NAME,BALANCE rows without a header.
// It assumes a single writer for the lifetime of the process.
type CSVAccountStore struct {
	path   string
	logger *zap.Logger
}

func NewCSVAccountStore(path string, logger *zap.Logger) (*CSVAccountStore, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("can not create data directory %s: %w", dir, err)
	}

	return &CSVAccountStore{path: path, logger: logger}, nil
}

func (s *CSVAccountStore) Path() string {
	return s.path
}

func (s *CSVAccountStore) HasAccounts() (bool, error) {
	accounts, err := s.loadAll()
	if err != nil {
		return false, err
	}
	return len(accounts) > 0, nil
}

func (s *CSVAccountStore) FindAccount(name string) (*model.Account, error) {
	accounts, err := s.loadAll()
	if err != nil {
		return nil, err
	}

	for _, acc := range accounts {
		if acc.Name == name {
			return acc, nil
		}
	}

	return nil, fmt.Errorf("account '%s': %w", name, ErrRecordNotFound)
}

func (s *CSVAccountStore) GetAllAccounts() ([]*model.Account, error) {
	return s.loadAll()
}

func (s *CSVAccountStore) AppendAccount(name string, balance int64) (*model.Account, error) {
	if balance < 0 {
		return nil, fmt.Errorf("failed to create account '%s': %w", name, ErrNegativeBalance)
	}

	accounts, err := s.loadAll()
	if err != nil {
		return nil, err
	}
	for _, acc := range accounts {
		if acc.Name == name {
			return nil, fmt.Errorf("failed to create account '%s': %w", name, ErrAccountExists)
		}
	}

	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open accounts file: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	w := csv.NewWriter(f)
	if err := w.Write([]string{name, strconv.FormatInt(balance, 10)}); err != nil {
		return nil, fmt.Errorf("failed to append account '%s': %w", name, err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to append account '%s': %w", name, err)
	}

	s.logger.Info("account appended", zap.String("name", name), zap.Int64("balance", balance))

	return &model.Account{Name: name, Balance: balance}, nil
}

func (s *CSVAccountStore) ApplyDelta(name string, delta int64) (int64, error) {
	accounts, err := s.loadAll()
	if err != nil {
		return 0, err
	}

	index := make(map[string]int, len(accounts))
	for i, acc := range accounts {
		index[acc.Name] = i
	}

	i, ok := index[name]
	if !ok {
		return 0, fmt.Errorf("failed to update account '%s': %w", name, ErrRecordNotFound)
	}

	newBalance := accounts[i].Balance + delta
	if newBalance < 0 {
		return 0, fmt.Errorf("failed to update account '%s': %w", name, ErrNegativeBalance)
	}
	accounts[i].Balance = newBalance

	if err := s.storeAll(accounts); err != nil {
		return 0, err
	}

	s.logger.Info("balance updated",
		zap.String("name", name),
		zap.Int64("delta", delta),
		zap.Int64("balance", newBalance),
	)

	return newBalance, nil
}

// loadAll reads every row. A missing file is an empty table.
func (s *CSVAccountStore) loadAll() ([]*model.Account, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open accounts file: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	r := csv.NewReader(f)
	r.FieldsPerRecord = 2

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read accounts file: %w", err)
	}

	accounts := make([]*model.Account, 0, len(rows))
	for i, row := range rows {
		balance, err := strconv.ParseInt(row[1], 10, 64)
		if err != nil || balance < 0 {
			return nil, fmt.Errorf("row %d balance %q: %w", i+1, row[1], ErrMalformedRecord)
		}
		accounts = append(accounts, &model.Account{Name: row[0], Balance: balance})
	}

	return accounts, nil
}

func (s *CSVAccountStore) storeAll(accounts []*model.Account) error {
	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("failed to rewrite accounts file: %w", err)
	}

	w := csv.NewWriter(f)
	for _, acc := range accounts {
		if err := w.Write([]string{acc.Name, strconv.FormatInt(acc.Balance, 10)}); err != nil {
			_ = f.Close()
			return fmt.Errorf("failed to write account '%s': %w", acc.Name, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to flush accounts file: %w", err)
	}

	return f.Close()
}
