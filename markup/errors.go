package markup

import (
	"errors"
	"fmt"
)

var (
	ErrControlCharacter = errors.New("markup: content contains a control character")
	ErrMalformed        = errors.New("markup: malformed TEI source")
	ErrMissingHeader    = errors.New("markup: teiHeader element missing")
	ErrMissingTitle     = errors.New("markup: title element missing")
)

// ParseError wraps the underlying decoder failure encountered while reading
// TEI source.
type ParseError struct {
	Cause error
}

func (e *ParseError) Error() string {
	if e == nil || e.Cause == nil {
		return ErrMalformed.Error()
	}
	return fmt.Sprintf("%s: %v", ErrMalformed.Error(), e.Cause)
}

func (e *ParseError) Unwrap() []error {
	return []error{ErrMalformed, e.Cause}
}

// ControlCharacterError identifies the offending rune rejected during emission.
type ControlCharacterError struct {
	Rune rune
}

func (e *ControlCharacterError) Error() string {
	if e == nil {
		return ErrControlCharacter.Error()
	}
	return fmt.Sprintf("%s: %U", ErrControlCharacter.Error(), e.Rune)
}

func (e *ControlCharacterError) Unwrap() error {
	return ErrControlCharacter
}
