package constants

import "github.com/shopspring/decimal"

const (
	MaxNameLen = 100
	CentsExp   = 2
)

const (
	// IDLength is the number of decimal digits in an account ID.
	IDLength = 8

	// MaxIDAttempts bounds the collision-retry loop in account creation.
	MaxIDAttempts = 1000
)

// MaxBalanceCents bounds every balance and amount, in minor units. Stores
// keep major units, so the bound sits below int64 to round-trip exactly.
const MaxBalanceCents int64 = 922337203685477500

// MaxSafeBalance is MaxBalanceCents in major units.
var MaxSafeBalance = decimal.New(MaxBalanceCents, -CentsExp)

const (
	DefaultStorePath    = "accounts.json"
	DefaultStoreBackend = "file"
	DefaultCurrency     = "USD"
	DefaultServerAddr   = "127.0.0.1:8080"
)
