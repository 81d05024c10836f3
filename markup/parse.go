package markup

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/goliatone/go-tei/document"
)

// ParseDocument reads TEI source into the document model. The parser accepts
// pretty-printed input: whitespace between elements is ignored and the title
// is trimmed, so parse followed by EmitDocument yields the canonical compact
// form. Sources without a teiHeader or title, and sources that fail to
// tokenize, produce typed errors.
func ParseDocument(source string) (*document.Document, error) {
	decoder := xml.NewDecoder(strings.NewReader(source))

	root, err := nextStartElement(decoder)
	if err != nil {
		return nil, err
	}
	if root.Name.Local != "TEI" {
		return nil, &ParseError{Cause: fmt.Errorf("expected TEI root element, found %s", root.Name.Local)}
	}

	var (
		header    *document.Header
		body      document.Body
		seenTitle bool
	)

	for {
		token, err := decoder.Token()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, &ParseError{Cause: err}
		}

		switch element := token.(type) {
		case xml.StartElement:
			switch element.Name.Local {
			case "teiHeader":
				parsed, hasTitle, err := parseHeader(decoder)
				if err != nil {
					return nil, err
				}
				header = parsed
				seenTitle = hasTitle
			case "text":
				parsed, err := parseText(decoder)
				if err != nil {
					return nil, err
				}
				body = parsed
			default:
				if err := decoder.Skip(); err != nil {
					return nil, &ParseError{Cause: err}
				}
			}
		case xml.EndElement:
			if element.Name.Local == "TEI" {
				if header == nil {
					return nil, ErrMissingHeader
				}
				if !seenTitle {
					return nil, ErrMissingTitle
				}
				return document.FromParts(*header, body), nil
			}
		}
	}

	return nil, &ParseError{Cause: io.ErrUnexpectedEOF}
}

func nextStartElement(decoder *xml.Decoder) (*xml.StartElement, error) {
	for {
		token, err := decoder.Token()
		if err != nil {
			return nil, &ParseError{Cause: err}
		}
		if start, ok := token.(xml.StartElement); ok {
			return &start, nil
		}
	}
}

func parseHeader(decoder *xml.Decoder) (*document.Header, bool, error) {
	var (
		title    string
		series   string
		synopsis string
		hasTitle bool
	)

	for {
		token, err := decoder.Token()
		if err != nil {
			return nil, false, &ParseError{Cause: err}
		}

		switch element := token.(type) {
		case xml.StartElement:
			switch element.Name.Local {
			case "fileDesc":
				// fileDesc children are read in the same loop.
			case "title":
				text, err := collectText(decoder)
				if err != nil {
					return nil, false, err
				}
				title = text
				hasTitle = true
			case "series":
				text, err := collectText(decoder)
				if err != nil {
					return nil, false, err
				}
				series = text
			case "synopsis":
				text, err := collectText(decoder)
				if err != nil {
					return nil, false, err
				}
				synopsis = text
			default:
				if err := decoder.Skip(); err != nil {
					return nil, false, &ParseError{Cause: err}
				}
			}
		case xml.EndElement:
			if element.Name.Local == "teiHeader" {
				if !hasTitle {
					return nil, false, ErrMissingTitle
				}
				file, err := document.FileDescFromTitle(title)
				if err != nil {
					return nil, false, err
				}
				file = file.WithSeries(series).WithSynopsis(synopsis)
				header := document.NewHeader(file)
				return &header, true, nil
			}
		}
	}
}

func parseText(decoder *xml.Decoder) (document.Body, error) {
	var body document.Body

	for {
		token, err := decoder.Token()
		if err != nil {
			return document.Body{}, &ParseError{Cause: err}
		}

		switch element := token.(type) {
		case xml.StartElement:
			switch element.Name.Local {
			case "body":
				// body children are read in the same loop.
			case "p":
				paragraph, err := parseParagraph(decoder, element)
				if err != nil {
					return document.Body{}, err
				}
				body.AppendParagraph(paragraph)
			case "u":
				utterance, err := parseUtterance(decoder, element)
				if err != nil {
					return document.Body{}, err
				}
				body.AppendUtterance(utterance)
			default:
				if err := decoder.Skip(); err != nil {
					return document.Body{}, &ParseError{Cause: err}
				}
			}
		case xml.EndElement:
			if element.Name.Local == "text" {
				return body, nil
			}
		}
	}
}

func parseParagraph(decoder *xml.Decoder, start xml.StartElement) (document.Paragraph, error) {
	content, err := parseInlines(decoder, start.Name)
	if err != nil {
		return document.Paragraph{}, err
	}
	paragraph, err := document.ParagraphFromInline(content...)
	if err != nil {
		return document.Paragraph{}, err
	}
	if id := findAttr(start, "id"); id != "" {
		paragraph, err = paragraph.WithID(id)
		if err != nil {
			return document.Paragraph{}, err
		}
	}
	return paragraph, nil
}

func parseUtterance(decoder *xml.Decoder, start xml.StartElement) (document.Utterance, error) {
	content, err := parseInlines(decoder, start.Name)
	if err != nil {
		return document.Utterance{}, err
	}
	utterance, err := document.UtteranceFromInline(findAttr(start, "who"), content...)
	if err != nil {
		return document.Utterance{}, err
	}
	if id := findAttr(start, "id"); id != "" {
		utterance, err = utterance.WithID(id)
		if err != nil {
			return document.Utterance{}, err
		}
	}
	return utterance, nil
}

func parseInlines(decoder *xml.Decoder, parent xml.Name) ([]document.Inline, error) {
	var content []document.Inline

	for {
		token, err := decoder.Token()
		if err != nil {
			return nil, &ParseError{Cause: err}
		}

		switch element := token.(type) {
		case xml.CharData:
			text := string(element)
			if strings.TrimSpace(text) == "" {
				continue
			}
			content = append(content, document.Text(text))
		case xml.StartElement:
			switch element.Name.Local {
			case "hi":
				children, err := parseInlines(decoder, element.Name)
				if err != nil {
					return nil, err
				}
				hi := document.NewHi(children...)
				if rend := findAttr(element, "rend"); rend != "" {
					hi = hi.WithRend(rend)
				}
				content = append(content, hi)
			case "pause":
				pause := document.NewPause()
				if dur := findAttr(element, "dur"); dur != "" {
					pause = pause.WithDuration(dur)
				}
				if kind := findAttr(element, "type"); kind != "" {
					pause = pause.WithKind(kind)
				}
				if err := decoder.Skip(); err != nil {
					return nil, &ParseError{Cause: err}
				}
				content = append(content, pause)
			default:
				if err := decoder.Skip(); err != nil {
					return nil, &ParseError{Cause: err}
				}
			}
		case xml.EndElement:
			if element.Name.Local == parent.Local {
				return content, nil
			}
		}
	}
}

func findAttr(start xml.StartElement, local string) string {
	for _, attr := range start.Attr {
		if attr.Name.Local == local {
			return attr.Value
		}
	}
	return ""
}

func collectText(decoder *xml.Decoder) (string, error) {
	var text strings.Builder
	for {
		token, err := decoder.Token()
		if err != nil {
			return "", &ParseError{Cause: err}
		}
		switch element := token.(type) {
		case xml.CharData:
			text.Write(element)
		case xml.EndElement:
			return strings.TrimSpace(text.String()), nil
		case xml.StartElement:
			if err := decoder.Skip(); err != nil {
				return "", &ParseError{Cause: err}
			}
		}
	}
}
