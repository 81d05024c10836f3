package bootstrap

import (
	"errors"
	"fmt"
)

var (
	ErrResponseDecode  = errors.New("bootstrap: failed to decode Vault response whilst generating a secret-id")
	ErrSecretIDMissing = errors.New("bootstrap: Vault response missing secret_id field")
)

// DecodeError reports a Vault response payload that was not valid JSON. The
// underlying parse failure stays reachable through the error chain.
type DecodeError struct {
	Cause error
}

func (e *DecodeError) Error() string {
	if e == nil || e.Cause == nil {
		return ErrResponseDecode.Error()
	}
	return fmt.Sprintf("%s: %v", ErrResponseDecode.Error(), e.Cause)
}

func (e *DecodeError) Unwrap() []error {
	return []error{ErrResponseDecode, e.Cause}
}

// IsBootstrapError reports whether the error originated from secret-id
// extraction, regardless of which failure branch produced it.
func IsBootstrapError(err error) bool {
	return errors.Is(err, ErrResponseDecode) || errors.Is(err, ErrSecretIDMissing)
}
