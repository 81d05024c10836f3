package document

import "strings"

// XMLID is a validated wrapper for TEI xml:id attributes. Identifiers are
// trimmed, must be non-empty, and may not contain interior whitespace.
type XMLID struct {
	value string
}

// NewXMLID validates and normalizes an identifier.
func NewXMLID(value string) (XMLID, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return XMLID{}, ErrIdentifierEmpty
	}
	if strings.ContainsFunc(trimmed, func(r rune) bool { return r == ' ' || r == '\t' || r == '\n' || r == '\r' }) {
		return XMLID{}, ErrIdentifierWhitespace
	}
	return XMLID{value: trimmed}, nil
}

// String returns the identifier text.
func (id XMLID) String() string {
	return id.value
}

// IsZero reports whether no identifier was assigned.
func (id XMLID) IsZero() bool {
	return id.value == ""
}

// Speaker is a validated who= reference attached to utterances.
type Speaker struct {
	value string
}

// NewSpeaker trims the input and rejects references without visible characters.
func NewSpeaker(value string) (Speaker, error) {
	text, err := requiredText(value, ErrSpeakerEmpty)
	if err != nil {
		return Speaker{}, err
	}
	return Speaker{value: text}, nil
}

// String returns the normalized speaker reference.
func (s Speaker) String() string {
	return s.value
}

// IsZero reports whether no speaker was assigned.
func (s Speaker) IsZero() bool {
	return s.value == ""
}
