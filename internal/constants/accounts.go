package constants

const (
	MaxNameLen = 100

	// NewAccountKey is typed at the account lookup prompt to create an account instead.
	NewAccountKey = "N"

	// MaxLookupAttempts bounds the existing-account lookup before the session ends.
	MaxLookupAttempts = 3
)

const SatsPerBTC = 100_000_000
