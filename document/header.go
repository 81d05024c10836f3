package document

// FileDesc carries the bibliographic metadata recorded in <fileDesc>. The
// title is mandatory and validated; series and synopsis are optional and
// normalized (trimmed, whitespace-only input reads as absent).
type FileDesc struct {
	title    Title
	series   string
	synopsis string
}

// NewFileDesc builds a file description from an already validated title.
func NewFileDesc(title Title) FileDesc {
	return FileDesc{title: title}
}

// FileDescFromTitle validates a raw title before creating the file description.
func FileDescFromTitle(raw string) (FileDesc, error) {
	title, err := NewTitle(raw)
	if err != nil {
		return FileDesc{}, err
	}
	return NewFileDesc(title), nil
}

// WithSeries returns a copy carrying the normalized series label.
func (f FileDesc) WithSeries(series string) FileDesc {
	f.series = normalizeOptionalText(series)
	return f
}

// WithSynopsis returns a copy carrying the normalized synopsis.
func (f FileDesc) WithSynopsis(synopsis string) FileDesc {
	f.synopsis = normalizeOptionalText(synopsis)
	return f
}

// Title returns the validated document title.
func (f FileDesc) Title() Title {
	return f.title
}

// Series returns the series label, empty when absent.
func (f FileDesc) Series() string {
	return f.series
}

// Synopsis returns the synopsis, empty when absent.
func (f FileDesc) Synopsis() string {
	return f.synopsis
}

// Header aggregates TEI header metadata. The file description is mandatory;
// profile, encoding, and revision sections are attached on demand.
type Header struct {
	file     FileDesc
	profile  *ProfileDesc
	encoding *EncodingDesc
	revision *RevisionDesc
}

// NewHeader creates a header from its mandatory file description.
func NewHeader(file FileDesc) Header {
	return Header{file: file}
}

// FileDesc returns the bibliographic metadata.
func (h Header) FileDesc() FileDesc {
	return h.file
}

// ProfileDesc returns the profile section, nil when absent.
func (h Header) ProfileDesc() *ProfileDesc {
	return h.profile
}

// EncodingDesc returns the encoding section, nil when absent.
func (h Header) EncodingDesc() *EncodingDesc {
	return h.encoding
}

// RevisionDesc returns the revision log, nil when absent.
func (h Header) RevisionDesc() *RevisionDesc {
	return h.revision
}

// WithProfileDesc returns a copy with the profile section attached.
func (h Header) WithProfileDesc(profile ProfileDesc) Header {
	h.profile = &profile
	return h
}

// WithEncodingDesc returns a copy with the encoding section attached.
func (h Header) WithEncodingDesc(encoding EncodingDesc) Header {
	h.encoding = &encoding
	return h
}

// WithRevisionDesc returns a copy with the revision log attached.
func (h Header) WithRevisionDesc(revision RevisionDesc) Header {
	h.revision = &revision
	return h
}
