package system

import "errors"

var (
	ErrInvalidInstructionData   = errors.New("invalid instruction data")
	ErrNotEnoughAccountKeys     = errors.New("not enough account keys")
	ErrMissingRequiredSignature = errors.New("missing required signature")
	ErrAccountAlreadyInUse      = errors.New("account already in use")
	ErrInsufficientFunds        = errors.New("insufficient funds")
	ErrAccountDataTooLarge      = errors.New("account data too large")
	ErrInvalidAccountOwner      = errors.New("invalid account owner")
)

// MaxAccountDataSize is the largest data buffer the system program allocates.
const MaxAccountDataSize = uint64(10 * 1024 * 1024)
