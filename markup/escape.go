// Package markup serializes the document model into TEI XML and parses the
// canonical form back. Emission produces compact markup with no inter-element
// whitespace; parsing tolerates pretty-printed sources so a parse/emit cycle
// yields the canonical byte form.
package markup

import "strings"

// EscapeText encodes text for inclusion in XML content. It escapes the five
// markup-significant characters; the helper targets text nodes and attribute
// values alike since both sets overlap in the profiled output.
func EscapeText(input string) string {
	var escaped strings.Builder
	escaped.Grow(len(input))

	for _, character := range input {
		switch character {
		case '&':
			escaped.WriteString("&amp;")
		case '<':
			escaped.WriteString("&lt;")
		case '>':
			escaped.WriteString("&gt;")
		case '"':
			escaped.WriteString("&quot;")
		case '\'':
			escaped.WriteString("&apos;")
		default:
			escaped.WriteRune(character)
		}
	}

	return escaped.String()
}

// checkControlCharacters rejects runes that cannot appear in well-formed XML
// text. Tab, newline, and carriage return remain legal.
func checkControlCharacters(input string) error {
	for _, character := range input {
		if character == '\t' || character == '\n' || character == '\r' {
			continue
		}
		if character < 0x20 || character == 0x7f {
			return &ControlCharacterError{Rune: character}
		}
	}
	return nil
}
