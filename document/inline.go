package document

// Inline is mixed content occurring inside paragraphs and utterances: plain
// text, emphasized runs (<hi>), or pause markers (<pause/>).
type Inline interface {
	isInline()
}

// Text is a plain text segment.
type Text string

func (Text) isInline() {}

// String returns the segment content.
func (t Text) String() string {
	return string(t)
}

// Hi is an emphasized inline element corresponding to <hi>.
type Hi struct {
	rend    string
	content []Inline
}

func (Hi) isInline() {}

// NewHi builds an emphasized inline element from its children.
func NewHi(content ...Inline) Hi {
	return Hi{content: content}
}

// WithRend returns a copy carrying a rendering hint (e.g. "italic").
func (h Hi) WithRend(rend string) Hi {
	h.rend = rend
	return h
}

// Rend returns the rendering hint, empty when absent.
func (h Hi) Rend() string {
	return h.rend
}

// Content returns the inline children.
func (h Hi) Content() []Inline {
	return h.content
}

// Pause is a pause marker rendered as <pause/>.
type Pause struct {
	duration string
	kind     string
}

func (Pause) isInline() {}

// NewPause creates an empty pause marker.
func NewPause() Pause {
	return Pause{}
}

// WithDuration returns a copy carrying an ISO-8601 duration (e.g. "PT1S").
func (p Pause) WithDuration(duration string) Pause {
	p.duration = duration
	return p
}

// WithKind returns a copy carrying a pause classification (e.g. "breath").
func (p Pause) WithKind(kind string) Pause {
	p.kind = kind
	return p
}

// Duration returns the recorded duration, empty when absent.
func (p Pause) Duration() string {
	return p.duration
}

// Kind returns the pause classification, empty when absent.
func (p Pause) Kind() string {
	return p.kind
}
