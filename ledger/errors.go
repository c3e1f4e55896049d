package ledger

import "errors"

var (
	// ErrInvalidVersion is returned when the version byte of an encoded
	// transaction is not TransactionVersion.
	ErrInvalidVersion = errors.New("invalid transaction version")
	// ErrInvalidVariant is returned when the variant byte of an encoded
	// transaction selects none of the known shapes.
	ErrInvalidVariant = errors.New("invalid transaction variant")
	// ErrInvalidFeeVariant is returned when the fee-presence byte of an
	// Execute transaction is neither 0 nor 1.
	ErrInvalidFeeVariant = errors.New("invalid fee variant")
	// ErrIDMismatch is returned when the identifier recomputed from a decoded
	// transaction disagrees with the identifier carried by the stream. It
	// signals corruption or tampering; the decoded value is discarded.
	ErrIDMismatch = errors.New("transaction id mismatch")
)
