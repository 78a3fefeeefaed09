package service

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

const InsufficientBalanceMessage = "Not enough balance in your account."

// FormatSats renders a satoshi amount with thousands separators, e.g. "SATS 1,500".
func FormatSats(sats int64) string {
	return "SATS " + humanize.Comma(sats)
}

func balanceUpdatedMessage(balance int64) string {
	return fmt.Sprintf("Successfully updated your balance.\nNew account balance: %s", FormatSats(balance))
}
