package markup

import (
	"strings"

	"github.com/goliatone/go-tei/document"
)

// EmitDocument serializes a document into canonical compact TEI XML:
// <TEI><teiHeader><fileDesc><title>…</title></fileDesc></teiHeader>
// <text><body>…</body></text></TEI> with no inter-element whitespace.
// Control characters outside tab/newline/CR are rejected.
func EmitDocument(doc *document.Document) (string, error) {
	var out strings.Builder
	out.WriteString("<TEI>")

	if err := emitHeader(&out, doc.Header()); err != nil {
		return "", err
	}

	out.WriteString("<text>")
	if err := emitBody(&out, doc.Body()); err != nil {
		return "", err
	}
	out.WriteString("</text>")

	out.WriteString("</TEI>")
	return out.String(), nil
}

func emitHeader(out *strings.Builder, header document.Header) error {
	out.WriteString("<teiHeader>")
	out.WriteString("<fileDesc>")
	if err := emitTextElement(out, "title", header.FileDesc().Title().String()); err != nil {
		return err
	}
	if series := header.FileDesc().Series(); series != "" {
		if err := emitTextElement(out, "series", series); err != nil {
			return err
		}
	}
	if synopsis := header.FileDesc().Synopsis(); synopsis != "" {
		if err := emitTextElement(out, "synopsis", synopsis); err != nil {
			return err
		}
	}
	out.WriteString("</fileDesc>")
	out.WriteString("</teiHeader>")
	return nil
}

func emitBody(out *strings.Builder, body *document.Body) error {
	if body.IsEmpty() {
		out.WriteString("<body/>")
		return nil
	}

	out.WriteString("<body>")
	for _, block := range body.Blocks() {
		switch node := block.(type) {
		case document.Paragraph:
			if err := emitParagraph(out, node); err != nil {
				return err
			}
		case document.Utterance:
			if err := emitUtterance(out, node); err != nil {
				return err
			}
		}
	}
	out.WriteString("</body>")
	return nil
}

func emitParagraph(out *strings.Builder, paragraph document.Paragraph) error {
	out.WriteString("<p")
	if err := emitAttr(out, "xml:id", paragraph.ID().String()); err != nil {
		return err
	}
	out.WriteString(">")
	if err := emitInlines(out, paragraph.Content()); err != nil {
		return err
	}
	out.WriteString("</p>")
	return nil
}

func emitUtterance(out *strings.Builder, utterance document.Utterance) error {
	out.WriteString("<u")
	if err := emitAttr(out, "xml:id", utterance.ID().String()); err != nil {
		return err
	}
	if err := emitAttr(out, "who", utterance.Who().String()); err != nil {
		return err
	}
	out.WriteString(">")
	if err := emitInlines(out, utterance.Content()); err != nil {
		return err
	}
	out.WriteString("</u>")
	return nil
}

func emitInlines(out *strings.Builder, content []document.Inline) error {
	for _, inline := range content {
		switch node := inline.(type) {
		case document.Text:
			if err := checkControlCharacters(string(node)); err != nil {
				return err
			}
			out.WriteString(EscapeText(string(node)))
		case document.Hi:
			out.WriteString("<hi")
			if err := emitAttr(out, "rend", node.Rend()); err != nil {
				return err
			}
			out.WriteString(">")
			if err := emitInlines(out, node.Content()); err != nil {
				return err
			}
			out.WriteString("</hi>")
		case document.Pause:
			out.WriteString("<pause")
			if err := emitAttr(out, "dur", node.Duration()); err != nil {
				return err
			}
			if err := emitAttr(out, "type", node.Kind()); err != nil {
				return err
			}
			out.WriteString("/>")
		}
	}
	return nil
}

func emitTextElement(out *strings.Builder, name, text string) error {
	if err := checkControlCharacters(text); err != nil {
		return err
	}
	out.WriteString("<")
	out.WriteString(name)
	out.WriteString(">")
	out.WriteString(EscapeText(text))
	out.WriteString("</")
	out.WriteString(name)
	out.WriteString(">")
	return nil
}

func emitAttr(out *strings.Builder, name, value string) error {
	if value == "" {
		return nil
	}
	if err := checkControlCharacters(value); err != nil {
		return err
	}
	out.WriteString(" ")
	out.WriteString(name)
	out.WriteString("=\"")
	out.WriteString(EscapeText(value))
	out.WriteString("\"")
	return nil
}
