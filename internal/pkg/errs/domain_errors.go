package errs

import "errors"

// Sentinels shared across domain packages. Use-case layers mark their own
// sentinels on top of these.
var (
	ErrDomainValidation = errors.New("domain validation error")
	ErrCreditExhausted  = errors.New("session credit exhausted")
)
