package document

import (
	"errors"
	"fmt"
)

var (
	ErrTitleEmpty             = errors.New("document: title may not be empty")
	ErrSpeakerEmpty           = errors.New("document: speaker references must not be empty")
	ErrLanguageEmpty          = errors.New("document: language tags must not be empty")
	ErrAnnotationIDEmpty      = errors.New("document: annotation system identifiers must not be empty")
	ErrRevisionNoteEmpty      = errors.New("document: revision notes must not be empty")
	ErrResponsiblePartyEmpty  = errors.New("document: revision responsibility must not be empty")
	ErrIdentifierEmpty        = errors.New("document: identifiers must not be empty")
	ErrIdentifierWhitespace   = errors.New("document: identifiers must not contain whitespace")
	ErrContentEmpty           = errors.New("document: content must include at least one non-empty segment")
	ErrSegmentEmpty           = errors.New("document: segments may not be empty")
)

// EmptyContentError reports a paragraph or utterance left without visible content.
type EmptyContentError struct {
	Container string
}

func (e *EmptyContentError) Error() string {
	if e == nil || e.Container == "" {
		return ErrContentEmpty.Error()
	}
	return fmt.Sprintf("document: %s content must include at least one non-empty segment", e.Container)
}

func (e *EmptyContentError) Unwrap() error {
	return ErrContentEmpty
}

// EmptySegmentError reports a text segment without visible characters.
type EmptySegmentError struct {
	Container string
}

func (e *EmptySegmentError) Error() string {
	if e == nil || e.Container == "" {
		return ErrSegmentEmpty.Error()
	}
	return fmt.Sprintf("document: %s segments may not be empty", e.Container)
}

func (e *EmptySegmentError) Unwrap() error {
	return ErrSegmentEmpty
}

// InvalidIdentifierError reports an xml:id rejected during validation.
type InvalidIdentifierError struct {
	Container string
	Cause     error
}

func (e *InvalidIdentifierError) Error() string {
	if e == nil {
		return ErrIdentifierEmpty.Error()
	}
	if e.Container != "" {
		return fmt.Sprintf("document: %s identifier invalid: %v", e.Container, e.Cause)
	}
	return e.Cause.Error()
}

func (e *InvalidIdentifierError) Unwrap() error {
	return e.Cause
}
