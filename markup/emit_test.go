package markup

import (
	"errors"
	"strings"
	"testing"

	"github.com/goliatone/go-tei/document"
)

const minimalFixture = "<TEI>" +
	"<teiHeader>" +
	"<fileDesc>" +
	"<title>Wolf 359</title>" +
	"</fileDesc>" +
	"</teiHeader>" +
	"<text>" +
	"<body/>" +
	"</text>" +
	"</TEI>"

func TestEmitDocumentMinimal(t *testing.T) {
	doc, err := document.New("Wolf 359")
	if err != nil {
		t.Fatalf("document.New: %v", err)
	}

	xml, err := EmitDocument(doc)
	if err != nil {
		t.Fatalf("EmitDocument: %v", err)
	}
	if xml != minimalFixture {
		t.Fatalf("EmitDocument = %q, want %q", xml, minimalFixture)
	}
}

func TestEmitDocumentRejectsControlCharacters(t *testing.T) {
	doc, err := document.New("\x00")
	if err != nil {
		t.Fatalf("document.New: %v", err)
	}

	_, err = EmitDocument(doc)
	if !errors.Is(err, ErrControlCharacter) {
		t.Fatalf("EmitDocument error = %v, want ErrControlCharacter", err)
	}

	var controlErr *ControlCharacterError
	if !errors.As(err, &controlErr) || controlErr.Rune != 0 {
		t.Fatalf("error should identify the offending rune, got %v", err)
	}
}

func TestEmitDocumentWithBodyBlocks(t *testing.T) {
	doc, err := document.New("Wolf 359")
	if err != nil {
		t.Fatalf("document.New: %v", err)
	}

	utterance, err := document.NewUtterance("host", "Hello")
	if err != nil {
		t.Fatalf("NewUtterance: %v", err)
	}
	utterance, err = utterance.WithID("u1")
	if err != nil {
		t.Fatalf("WithID: %v", err)
	}
	doc.Body().AppendUtterance(utterance)

	xml, err := EmitDocument(doc)
	if err != nil {
		t.Fatalf("EmitDocument: %v", err)
	}

	expected := "<TEI>" +
		"<teiHeader>" +
		"<fileDesc>" +
		"<title>Wolf 359</title>" +
		"</fileDesc>" +
		"</teiHeader>" +
		"<text>" +
		"<body>" +
		`<u xml:id="u1" who="host">Hello</u>` +
		"</body>" +
		"</text>" +
		"</TEI>"
	if xml != expected {
		t.Fatalf("EmitDocument = %q, want %q", xml, expected)
	}
}

func TestEmitDocumentEscapesInlineContent(t *testing.T) {
	doc, err := document.New("R&D")
	if err != nil {
		t.Fatalf("document.New: %v", err)
	}

	paragraph, err := document.ParagraphFromInline(
		document.Text("Fish & Chips "),
		document.NewHi(document.Text("5 < 7")).WithRend("italic"),
		document.NewPause().WithDuration("PT1S"),
	)
	if err != nil {
		t.Fatalf("ParagraphFromInline: %v", err)
	}
	doc.Body().AppendParagraph(paragraph)

	xml, err := EmitDocument(doc)
	if err != nil {
		t.Fatalf("EmitDocument: %v", err)
	}

	expectedBody := "<body>" +
		`<p>Fish &amp; Chips <hi rend="italic">5 &lt; 7</hi><pause dur="PT1S"/></p>` +
		"</body>"
	if !contains(xml, expectedBody) {
		t.Fatalf("EmitDocument = %q, want body %q", xml, expectedBody)
	}
	if !contains(xml, "<title>R&amp;D</title>") {
		t.Fatalf("title not escaped: %q", xml)
	}
}

func TestEmitDocumentIncludesHeaderMetadata(t *testing.T) {
	file, err := document.FileDescFromTitle("Wolf 359")
	if err != nil {
		t.Fatalf("FileDescFromTitle: %v", err)
	}
	file = file.WithSeries("Kakos Industries").WithSynopsis("Drama podcast")
	doc := document.FromParts(document.NewHeader(file), document.Body{})

	xml, err := EmitDocument(doc)
	if err != nil {
		t.Fatalf("EmitDocument: %v", err)
	}
	if !contains(xml, "<series>Kakos Industries</series>") {
		t.Fatalf("series missing from %q", xml)
	}
	if !contains(xml, "<synopsis>Drama podcast</synopsis>") {
		t.Fatalf("synopsis missing from %q", xml)
	}
}

func contains(haystack, needle string) bool {
	return strings.Contains(haystack, needle)
}
