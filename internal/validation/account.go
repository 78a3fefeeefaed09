package validation

import (
	"fmt"
	"strings"

	"github.com/hance08/sats/internal/constants"
)

// ValidateAccountName validates a new account name. Names are stored as one
// field of a comma separated row.
func ValidateAccountName(name string) error {
	name = strings.TrimSpace(name)

	if name == "" {
		return fmt.Errorf("account name can't be empty")
	}

	if strings.ContainsAny(name, ",\"\r\n") {
		return fmt.Errorf("account name cannot contain commas, quotes or line breaks")
	}

	if strings.EqualFold(name, constants.NewAccountKey) {
		return fmt.Errorf("'%s' is reserved for creating a new account", name)
	}

	if len(name) > constants.MaxNameLen {
		return fmt.Errorf("account name too long (max %d characters)", constants.MaxNameLen)
	}
	return nil
}

// ValidateCurrency validates a currency code format
func ValidateCurrency(currency string) error {
	currency = strings.TrimSpace(strings.ToUpper(currency))

	if len(currency) != 3 {
		return fmt.Errorf("currency code must be 3 characters (e.g. USD)")
	}

	for _, c := range currency {
		if c < 'A' || c > 'Z' {
			return fmt.Errorf("currency code must contain only letters")
		}
	}

	return nil
}
