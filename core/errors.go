package core

import "strconv"

// ErrorCode int
type ErrorCode int

const (
	// ErrUnknown unknown
	ErrUnknown ErrorCode = 100000
	// ErrUnauthorized caller lacks the required privilege
	ErrUnauthorized ErrorCode = 100001

	// ErrInvalidAmount invalid amount
	ErrInvalidAmount ErrorCode = 100101
	// ErrVaultNotFound no vault
	ErrVaultNotFound ErrorCode = 100102
	// ErrRateConfigNotFound rate config not provisioned
	ErrRateConfigNotFound ErrorCode = 100103
	// ErrInsufficientCollateral insufficient collateral in custody
	ErrInsufficientCollateral ErrorCode = 100104
	// ErrArithmeticOverflow intermediate computation exceeds the safe integer range
	ErrArithmeticOverflow ErrorCode = 100105
	// ErrInvalidClockOrdering clock source returned a reading earlier than the stored timestamp
	ErrInvalidClockOrdering ErrorCode = 100106
	// ErrOptimisticLock record version moved under a concurrent writer, retry
	ErrOptimisticLock ErrorCode = 100107

	// ErrInvalidIdentifierLength isin longer than 12 characters
	ErrInvalidIdentifierLength ErrorCode = 100110
	// ErrInvalidIdentifier isin empty or not alphanumeric
	ErrInvalidIdentifier ErrorCode = 100111
	// ErrBondExists isin already registered
	ErrBondExists ErrorCode = 100112
)

func (e ErrorCode) String() string {
	return strconv.Itoa(int(e))
}

func (e ErrorCode) Error() string {
	return e.String()
}
