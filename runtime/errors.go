package runtime

import "errors"

var (
	ErrUnknownProgram          = errors.New("unknown program id")
	ErrMissingSignature        = errors.New("missing required signature")
	ErrCallDepthExceeded       = errors.New("max invoke depth exceeded")
	ErrComputeBudgetExceeded   = errors.New("compute budget exceeded")
	ErrInsufficientFundsForFee = errors.New("insufficient funds for fee")
	ErrPayerNotSigner          = errors.New("fee payer did not sign transaction")
	ErrEmptyTransaction        = errors.New("transaction has no instructions")
)
