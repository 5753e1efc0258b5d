package market

import "github.com/pkg/errors"

// Input violations are preconditions of the engine. All are fatal: resting
// orders and ledger entries cannot be rolled back, so a bad record aborts
// the whole run.
var (
	ErrMalformedInput      = errors.New("malformed input record")
	ErrOutOfOrderTimestamp = errors.New("timestamps must be non-decreasing")
	ErrInvalidReference    = errors.New("trader or stock id out of range")
	ErrNonPositiveValue    = errors.New("price and quantity must be positive")
)
