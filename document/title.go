package document

import "strings"

// Title is the validated document title carried by the TEI header. Titles are
// trimmed on construction and are guaranteed to be non-empty so downstream
// serializers can always emit a populated <title> element.
type Title struct {
	value string
}

// NewTitle validates and normalizes a raw title. The input is trimmed;
// passing only whitespace returns ErrTitleEmpty.
func NewTitle(value string) (Title, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return Title{}, ErrTitleEmpty
	}
	return Title{value: trimmed}, nil
}

// String returns the normalized title text.
func (t Title) String() string {
	return t.value
}

// IsZero reports whether the title was never constructed through NewTitle.
func (t Title) IsZero() bool {
	return t.value == ""
}

// normalizeOptionalText trims free-form metadata, mapping whitespace-only
// input to the empty string so optional fields read as absent.
func normalizeOptionalText(value string) string {
	return strings.TrimSpace(value)
}

// requiredText trims the input and substitutes the supplied error when
// nothing visible remains.
func requiredText(value string, missing error) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", missing
	}
	return trimmed, nil
}
