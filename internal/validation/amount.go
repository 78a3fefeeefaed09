package validation

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

var (
	ErrNotDigits   = errors.New("amount must contain digits only")
	ErrNotPositive = errors.New("amount must be greater than zero")
	ErrOutOfRange  = errors.New("amount too large")
)

var digitsPattern = regexp.MustCompile(`^\d+$`)

// IsDigits reports whether s is a non-empty run of ASCII decimal digits.
func IsDigits(s string) bool {
	return digitsPattern.MatchString(s)
}

// ParseAmount parses a satoshi amount. Zero is accepted.
func ParseAmount(s string) (int64, error) {
	if !IsDigits(s) {
		return 0, fmt.Errorf("%q: %w", s, ErrNotDigits)
	}

	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", s, ErrOutOfRange)
	}

	return n, nil
}

// ParsePositiveAmount is ParseAmount with zero rejected.
func ParsePositiveAmount(s string) (int64, error) {
	n, err := ParseAmount(s)
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, fmt.Errorf("%q: %w", s, ErrNotPositive)
	}
	return n, nil
}

// ValidateOpeningBalance validates the opening balance typed when creating an account.
func ValidateOpeningBalance(s string) error {
	_, err := ParseAmount(s)
	return err
}
