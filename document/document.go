// Package document models the profiled TEI subset used by go-tei: a document
// shell combining header metadata (file, profile, encoding, and revision
// descriptions) with a structured body of paragraphs and utterances. Every
// constructor validates its input so serializers can rely on trimmed,
// non-empty content throughout the tree.
package document

// Document is the root TEI value combining header metadata and body content.
type Document struct {
	header Header
	body   Body
}

// New validates the raw title and constructs a skeletal document with an
// empty body.
func New(title string) (*Document, error) {
	file, err := FileDescFromTitle(title)
	if err != nil {
		return nil, err
	}
	return &Document{header: NewHeader(file)}, nil
}

// FromParts builds a document from fully formed components.
func FromParts(header Header, body Body) *Document {
	return &Document{header: header, body: body}
}

// Header returns the TEI header.
func (d *Document) Header() Header {
	return d.header
}

// Body returns the textual body for reading and appending.
func (d *Document) Body() *Body {
	return &d.body
}

// Title returns the validated title text.
func (d *Document) Title() string {
	return d.header.file.title.String()
}
