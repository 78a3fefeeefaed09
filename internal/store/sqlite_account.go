package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/hance08/sats/internal/model"
	sqlite "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
)

func (s *Store) HasAccounts() (bool, error) {
	var exists bool
	row := s.db.QueryRow("SELECT EXISTS(SELECT 1 FROM accounts)")
	if err := row.Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check accounts: %w", err)
	}
	return exists, nil
}

func (s *Store) FindAccount(name string) (*model.Account, error) {
	row := s.db.QueryRow("SELECT name, balance FROM accounts WHERE name = ?", name)

	acc := &model.Account{}
	if err := row.Scan(&acc.Name, &acc.Balance); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("account '%s': %w", name, ErrRecordNotFound)
		}
		return nil, fmt.Errorf("failed to query account '%s' : %w", name, err)
	}

	return acc, nil
}

func (s *Store) GetAllAccounts() ([]*model.Account, error) {
	rows, err := s.db.Query(`
        SELECT name, balance
        FROM accounts
        ORDER BY id
    `)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var accounts []*model.Account
	for rows.Next() {
		acc := &model.Account{}
		if err := rows.Scan(&acc.Name, &acc.Balance); err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		accounts = append(accounts, acc)
	}

	return accounts, rows.Err()
}

func (s *Store) AppendAccount(name string, balance int64) (*model.Account, error) {
	if balance < 0 {
		return nil, fmt.Errorf("failed to create account '%s': %w", name, ErrNegativeBalance)
	}

	_, err := s.db.Exec("INSERT INTO accounts (name, balance) VALUES (?, ?)", name, balance)
	if err != nil {
		var sqliteErr sqlite.Error
		if errors.As(err, &sqliteErr) {
			if errors.Is(sqliteErr.ExtendedCode, sqlite.ErrConstraintUnique) {
				return nil, fmt.Errorf("failed to create account '%s': %w", name, ErrAccountExists)
			}
			if errors.Is(sqliteErr.Code, sqlite.ErrConstraint) {
				return nil, fmt.Errorf("failed to create account '%s': %w", name, ErrConstraintViolation)
			}
		}
		return nil, fmt.Errorf("failed to executing SQL insertion : %w", err)
	}

	s.logger.Info("account appended", zap.String("name", name), zap.Int64("balance", balance))

	return &model.Account{Name: name, Balance: balance}, nil
}

// ApplyDelta loads the table inside one transaction, indexes it by name and
// writes back the changed row.
func (s *Store) ApplyDelta(name string, delta int64) (int64, error) {
	var newBalance int64

	err := s.ExecTx(func(tx *Store) error {
		accounts, err := tx.GetAllAccounts()
		if err != nil {
			return err
		}

		index := make(map[string]*model.Account, len(accounts))
		for _, acc := range accounts {
			index[acc.Name] = acc
		}

		acc, ok := index[name]
		if !ok {
			return fmt.Errorf("failed to update account '%s': %w", name, ErrRecordNotFound)
		}

		newBalance = acc.Balance + delta
		if newBalance < 0 {
			return fmt.Errorf("failed to update account '%s': %w", name, ErrNegativeBalance)
		}

		if _, err := tx.db.Exec("UPDATE accounts SET balance = ? WHERE name = ?", newBalance, name); err != nil {
			return fmt.Errorf("failed to update account '%s': %w", name, err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.logger.Info("balance updated",
		zap.String("name", name),
		zap.Int64("delta", delta),
		zap.Int64("balance", newBalance),
	)

	return newBalance, nil
}
