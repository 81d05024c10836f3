package document

import "strings"

// Block is a block-level body element: a paragraph or an utterance.
type Block interface {
	isBlock()
}

// Paragraph is the TEI <p> element containing validated inline content.
type Paragraph struct {
	id      XMLID
	content []Inline
}

func (Paragraph) isBlock() {}

// NewParagraph builds a paragraph from plain text segments. Every segment
// must contain visible characters and at least one segment is required.
func NewParagraph(segments ...string) (Paragraph, error) {
	content := make([]Inline, 0, len(segments))
	for _, segment := range segments {
		if err := validateInline(Text(segment), "paragraph"); err != nil {
			return Paragraph{}, err
		}
		content = append(content, Text(segment))
	}
	if err := ensureContent(content, "paragraph"); err != nil {
		return Paragraph{}, err
	}
	return Paragraph{content: content}, nil
}

// ParagraphFromInline builds a paragraph from pre-constructed inline content.
func ParagraphFromInline(content ...Inline) (Paragraph, error) {
	if err := ensureContent(content, "paragraph"); err != nil {
		return Paragraph{}, err
	}
	return Paragraph{content: content}, nil
}

// WithID returns a copy carrying a validated xml:id attribute.
func (p Paragraph) WithID(id string) (Paragraph, error) {
	parsed, err := NewXMLID(id)
	if err != nil {
		return Paragraph{}, &InvalidIdentifierError{Container: "paragraph", Cause: err}
	}
	p.id = parsed
	return p, nil
}

// ID returns the xml:id attribute, zero when unset.
func (p Paragraph) ID() XMLID {
	return p.id
}

// Content returns the inline children.
func (p Paragraph) Content() []Inline {
	return p.content
}

// Utterance is the TEI <u> element: a spoken turn with an optional speaker
// reference and validated inline content.
type Utterance struct {
	id      XMLID
	who     Speaker
	content []Inline
}

func (Utterance) isBlock() {}

// NewUtterance builds an utterance from plain text segments. The speaker
// reference is optional; pass the empty string to omit it.
func NewUtterance(who string, segments ...string) (Utterance, error) {
	utterance := Utterance{}
	if who != "" {
		speaker, err := NewSpeaker(who)
		if err != nil {
			return Utterance{}, err
		}
		utterance.who = speaker
	}
	content := make([]Inline, 0, len(segments))
	for _, segment := range segments {
		if err := validateInline(Text(segment), "utterance"); err != nil {
			return Utterance{}, err
		}
		content = append(content, Text(segment))
	}
	if err := ensureContent(content, "utterance"); err != nil {
		return Utterance{}, err
	}
	utterance.content = content
	return utterance, nil
}

// UtteranceFromInline builds an utterance from pre-constructed inline content.
func UtteranceFromInline(who string, content ...Inline) (Utterance, error) {
	utterance := Utterance{}
	if who != "" {
		speaker, err := NewSpeaker(who)
		if err != nil {
			return Utterance{}, err
		}
		utterance.who = speaker
	}
	if err := ensureContent(content, "utterance"); err != nil {
		return Utterance{}, err
	}
	utterance.content = content
	return utterance, nil
}

// WithID returns a copy carrying a validated xml:id attribute.
func (u Utterance) WithID(id string) (Utterance, error) {
	parsed, err := NewXMLID(id)
	if err != nil {
		return Utterance{}, &InvalidIdentifierError{Container: "utterance", Cause: err}
	}
	u.id = parsed
	return u, nil
}

// ID returns the xml:id attribute, zero when unset.
func (u Utterance) ID() XMLID {
	return u.id
}

// Who returns the speaker reference, zero when unset.
func (u Utterance) Who() Speaker {
	return u.who
}

// Content returns the inline children.
func (u Utterance) Content() []Inline {
	return u.content
}

// Body is the ordered collection of block-level elements inside <text>.
type Body struct {
	blocks []Block
}

// NewBody constructs a body from pre-existing blocks.
func NewBody(blocks ...Block) Body {
	return Body{blocks: blocks}
}

// AppendParagraph appends a paragraph block.
func (b *Body) AppendParagraph(paragraph Paragraph) *Body {
	b.blocks = append(b.blocks, paragraph)
	return b
}

// AppendUtterance appends an utterance block.
func (b *Body) AppendUtterance(utterance Utterance) *Body {
	b.blocks = append(b.blocks, utterance)
	return b
}

// Blocks returns the recorded blocks in insertion order.
func (b Body) Blocks() []Block {
	return b.blocks
}

// Paragraphs returns the paragraph blocks in insertion order.
func (b Body) Paragraphs() []Paragraph {
	var out []Paragraph
	for _, block := range b.blocks {
		if paragraph, ok := block.(Paragraph); ok {
			out = append(out, paragraph)
		}
	}
	return out
}

// Utterances returns the utterance blocks in insertion order.
func (b Body) Utterances() []Utterance {
	var out []Utterance
	for _, block := range b.blocks {
		if utterance, ok := block.(Utterance); ok {
			out = append(out, utterance)
		}
	}
	return out
}

// IsEmpty reports whether the body contains any blocks.
func (b Body) IsEmpty() bool {
	return len(b.blocks) == 0
}

func ensureContent(content []Inline, container string) error {
	if len(content) == 0 {
		return &EmptyContentError{Container: container}
	}
	for _, inline := range content {
		if err := validateInline(inline, container); err != nil {
			return err
		}
	}
	return nil
}

func validateInline(inline Inline, container string) error {
	switch node := inline.(type) {
	case Text:
		if strings.TrimSpace(string(node)) == "" {
			return &EmptySegmentError{Container: container}
		}
		return nil
	case Hi:
		return ensureContent(node.Content(), container)
	case Pause:
		return nil
	default:
		return nil
	}
}
