package transcript

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"

	"github.com/goliatone/go-tei/document"
)

// Speaker cues follow the transcript convention of an upper-case name before
// a colon, e.g. "MINKOWSKI: This is Commander Minkowski." The cue becomes the
// utterance's who reference.
const maxSpeakerCueLength = 40

// BuildDocument assembles a TEI document from frontmatter metadata and a
// Markdown body. Paragraphs with a speaker cue become utterances; everything
// else becomes plain paragraphs. Headings are skipped since the title comes
// from the frontmatter.
func BuildDocument(source []byte, meta Meta) (*document.Document, error) {
	file, err := document.FileDescFromTitle(meta.Title)
	if err != nil {
		return nil, fmt.Errorf("transcript: %w", err)
	}
	file = file.WithSeries(meta.Series).WithSynopsis(meta.Synopsis)
	header := document.NewHeader(file)

	if len(meta.Speakers) > 0 || len(meta.Languages) > 0 {
		profile := document.NewProfileDesc()
		for _, speaker := range meta.Speakers {
			if err := profile.AddSpeaker(speaker); err != nil {
				return nil, fmt.Errorf("transcript: speaker %q: %w", speaker, err)
			}
		}
		for _, language := range meta.Languages {
			if err := profile.AddLanguage(language); err != nil {
				return nil, fmt.Errorf("transcript: language %q: %w", language, err)
			}
		}
		header = header.WithProfileDesc(profile)
	}

	body, err := buildBody(source)
	if err != nil {
		return nil, err
	}

	return document.FromParts(header, body), nil
}

func buildBody(source []byte) (document.Body, error) {
	engine := goldmark.New(goldmark.WithExtensions(extension.GFM))
	root := engine.Parser().Parse(text.NewReader(source))

	body := document.NewBody()
	for node := root.FirstChild(); node != nil; node = node.NextSibling() {
		paragraph, ok := node.(*ast.Paragraph)
		if !ok {
			continue
		}

		who, content, err := collectParagraph(paragraph, source)
		if err != nil {
			return document.Body{}, err
		}
		if len(content) == 0 {
			continue
		}

		if who != "" {
			utterance, err := document.UtteranceFromInline(who, content...)
			if err != nil {
				return document.Body{}, fmt.Errorf("transcript: utterance: %w", err)
			}
			body.AppendUtterance(utterance)
			continue
		}

		block, err := document.ParagraphFromInline(content...)
		if err != nil {
			return document.Body{}, fmt.Errorf("transcript: paragraph: %w", err)
		}
		body.AppendParagraph(block)
	}

	return body, nil
}

// collectParagraph flattens a Markdown paragraph into TEI inline content and
// returns the speaker reference when the paragraph opens with a speaker cue.
func collectParagraph(paragraph *ast.Paragraph, source []byte) (string, []document.Inline, error) {
	collector := &inlineCollector{}
	who := ""

	first := true
	for child := paragraph.FirstChild(); child != nil; child = child.NextSibling() {
		switch n := child.(type) {
		case *ast.Text:
			raw := string(n.Segment.Value(source))
			if first {
				if cue, rest, ok := splitSpeakerCue(raw); ok {
					reference, err := speakerReference(cue)
					if err != nil {
						return "", nil, err
					}
					who = reference
					raw = rest
				}
			}
			collector.text(raw)
			if n.SoftLineBreak() || n.HardLineBreak() {
				collector.space()
			}
		case *ast.String:
			collector.text(string(n.Value))
		case *ast.Emphasis:
			if err := collector.emphasis(n, source); err != nil {
				return "", nil, err
			}
		}
		first = false
	}

	return who, collector.result(), nil
}

// inlineCollector accumulates contiguous text runs so pause cues survive the
// Markdown parser splitting brackets into separate text nodes.
type inlineCollector struct {
	content []document.Inline
	run     strings.Builder
}

func (c *inlineCollector) text(raw string) {
	c.run.WriteString(raw)
}

func (c *inlineCollector) space() {
	if c.run.Len() > 0 && !strings.HasSuffix(c.run.String(), " ") {
		c.run.WriteByte(' ')
	}
}

func (c *inlineCollector) flush() {
	if c.run.Len() == 0 {
		return
	}
	c.content = appendTextWithPauses(c.content, c.run.String())
	c.run.Reset()
}

func (c *inlineCollector) emphasis(node *ast.Emphasis, source []byte) error {
	c.flush()

	inner := &inlineCollector{}
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		switch n := child.(type) {
		case *ast.Text:
			inner.text(string(n.Segment.Value(source)))
			if n.SoftLineBreak() || n.HardLineBreak() {
				inner.space()
			}
		case *ast.String:
			inner.text(string(n.Value))
		case *ast.Emphasis:
			if err := inner.emphasis(n, source); err != nil {
				return err
			}
		}
	}

	nested := inner.result()
	if len(nested) == 0 {
		return nil
	}

	rend := "italic"
	if node.Level >= 2 {
		rend = "bold"
	}
	c.content = append(c.content, document.NewHi(nested...).WithRend(rend))
	return nil
}

func (c *inlineCollector) result() []document.Inline {
	c.flush()
	return c.content
}

var pauseMarkers = []struct {
	token string
	kind  string
}{
	{token: "[long pause]", kind: "long"},
	{token: "[pause]", kind: ""},
}

// appendTextWithPauses splits bracketed pause cues out of the raw text and
// appends the surrounding runs as plain text.
func appendTextWithPauses(content []document.Inline, raw string) []document.Inline {
	for raw != "" {
		index := -1
		marker := pauseMarkers[0]
		for _, candidate := range pauseMarkers {
			at := strings.Index(raw, candidate.token)
			if at < 0 {
				continue
			}
			if index < 0 || at < index {
				index = at
				marker = candidate
			}
		}

		if index < 0 {
			return appendText(content, raw)
		}

		content = appendText(content, raw[:index])
		pause := document.NewPause()
		if marker.kind != "" {
			pause = pause.WithKind(marker.kind)
		}
		content = append(content, pause)
		raw = raw[index+len(marker.token):]
	}
	return content
}

func appendText(content []document.Inline, raw string) []document.Inline {
	if strings.TrimSpace(raw) == "" {
		return content
	}
	return append(content, document.Text(raw))
}

// splitSpeakerCue recognises an upper-case speaker name followed by a colon
// at the start of a paragraph.
func splitSpeakerCue(raw string) (cue, rest string, ok bool) {
	colon := strings.Index(raw, ":")
	if colon <= 0 || colon > maxSpeakerCueLength {
		return "", "", false
	}

	cue = strings.TrimSpace(raw[:colon])
	if cue == "" {
		return "", "", false
	}

	hasLetter := false
	for _, r := range cue {
		switch {
		case unicode.IsUpper(r):
			hasLetter = true
		case r == ' ' || r == '.' || r == '\'' || r == '-' || unicode.IsDigit(r):
		default:
			return "", "", false
		}
	}
	if !hasLetter {
		return "", "", false
	}

	return cue, strings.TrimLeft(raw[colon+1:], " \t"), true
}

func speakerReference(cue string) (string, error) {
	slug, err := document.NormalizeSlug(cue)
	if err != nil {
		return "", fmt.Errorf("transcript: speaker cue %q: %w", cue, err)
	}
	return "#" + slug, nil
}
