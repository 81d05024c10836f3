package markup

import (
	"fmt"

	"github.com/goliatone/go-tei/document"
)

// EmitTitle serializes the document title into a minimal TEI snippet.
func EmitTitle(doc *document.Document) string {
	return fmt.Sprintf("<title>%s</title>", EscapeText(doc.Title()))
}

// EmitTitleMarkup validates a raw title and returns the serialized markup.
// It returns document.ErrTitleEmpty when the title trims to an empty string.
func EmitTitleMarkup(rawTitle string) (string, error) {
	doc, err := document.New(rawTitle)
	if err != nil {
		return "", err
	}
	return EmitTitle(doc), nil
}
