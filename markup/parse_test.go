package markup

import (
	"errors"
	"testing"
)

const prettyMinimal = "<TEI>\n" +
	"  <teiHeader>\n" +
	"    <fileDesc>\n" +
	"      <title>  Wolf 359  </title>\n" +
	"    </fileDesc>\n" +
	"  </teiHeader>\n" +
	"  <text>\n" +
	"    <body/>\n" +
	"  </text>\n" +
	"</TEI>\n"

const missingHeaderFixture = "<TEI><text><body/></text></TEI>"

const unterminatedFixture = "<TEI><teiHeader><fileDesc><title>Broken</title></fileDesc>"

func TestParseDocumentMinimal(t *testing.T) {
	doc, err := ParseDocument(minimalFixture)
	if err != nil {
		t.Fatalf("ParseDocument: %v", err)
	}
	if doc.Title() != "Wolf 359" {
		t.Fatalf("Title() = %q, want %q", doc.Title(), "Wolf 359")
	}
	if !doc.Body().IsEmpty() {
		t.Fatalf("expected empty body")
	}
}

func TestParseDocumentNormalizesPrettySource(t *testing.T) {
	doc, err := ParseDocument(prettyMinimal)
	if err != nil {
		t.Fatalf("ParseDocument: %v", err)
	}
	if doc.Title() != "Wolf 359" {
		t.Fatalf("Title() = %q, want trimmed title", doc.Title())
	}

	emitted, err := EmitDocument(doc)
	if err != nil {
		t.Fatalf("EmitDocument: %v", err)
	}
	if emitted != minimalFixture {
		t.Fatalf("round trip = %q, want %q", emitted, minimalFixture)
	}
}

func TestParseDocumentMissingHeader(t *testing.T) {
	if _, err := ParseDocument(missingHeaderFixture); !errors.Is(err, ErrMissingHeader) {
		t.Fatalf("error = %v, want ErrMissingHeader", err)
	}
}

func TestParseDocumentUnterminatedSource(t *testing.T) {
	_, err := ParseDocument(unterminatedFixture)
	if !errors.Is(err, ErrMalformed) {
		t.Fatalf("error = %v, want ErrMalformed", err)
	}

	var parseErr *ParseError
	if !errors.As(err, &parseErr) || parseErr.Cause == nil {
		t.Fatalf("expected wrapped decoder cause, got %v", err)
	}
}

func TestParseDocumentRejectsNonTEIInput(t *testing.T) {
	for _, source := range []string{"", "not xml", "<other/>"} {
		if _, err := ParseDocument(source); !errors.Is(err, ErrMalformed) {
			t.Fatalf("ParseDocument(%q) error = %v, want ErrMalformed", source, err)
		}
	}
}

func TestParseDocumentRoundTripsBodyBlocks(t *testing.T) {
	source := "<TEI>" +
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

	doc, err := ParseDocument(source)
	if err != nil {
		t.Fatalf("ParseDocument: %v", err)
	}

	utterances := doc.Body().Utterances()
	if len(utterances) != 1 {
		t.Fatalf("expected one utterance, got %d", len(utterances))
	}
	if utterances[0].Who().String() != "host" || utterances[0].ID().String() != "u1" {
		t.Fatalf("utterance attributes = who %q id %q", utterances[0].Who().String(), utterances[0].ID().String())
	}

	emitted, err := EmitDocument(doc)
	if err != nil {
		t.Fatalf("EmitDocument: %v", err)
	}
	if emitted != source {
		t.Fatalf("round trip = %q, want %q", emitted, source)
	}
}

func TestParseDocumentUnescapesEntities(t *testing.T) {
	source := "<TEI>" +
		"<teiHeader>" +
		"<fileDesc>" +
		"<title>R&amp;D &lt;Test&gt;</title>" +
		"</fileDesc>" +
		"</teiHeader>" +
		"<text><body/></text>" +
		"</TEI>"

	doc, err := ParseDocument(source)
	if err != nil {
		t.Fatalf("ParseDocument: %v", err)
	}
	if doc.Title() != "R&D <Test>" {
		t.Fatalf("Title() = %q, want unescaped text", doc.Title())
	}

	emitted, err := EmitDocument(doc)
	if err != nil {
		t.Fatalf("EmitDocument: %v", err)
	}
	if emitted != source {
		t.Fatalf("round trip = %q, want %q", emitted, source)
	}
}

func TestParseDocumentParsesNestedInlineContent(t *testing.T) {
	source := "<TEI>" +
		"<teiHeader><fileDesc><title>Wolf 359</title></fileDesc></teiHeader>" +
		"<text><body>" +
		`<p xml:id="p1">An <hi rend="italic">important</hi> point<pause dur="PT1S" type="breath"/></p>` +
		"</body></text>" +
		"</TEI>"

	doc, err := ParseDocument(source)
	if err != nil {
		t.Fatalf("ParseDocument: %v", err)
	}

	paragraphs := doc.Body().Paragraphs()
	if len(paragraphs) != 1 {
		t.Fatalf("expected one paragraph, got %d", len(paragraphs))
	}
	content := paragraphs[0].Content()
	if len(content) != 4 {
		t.Fatalf("expected 4 inline nodes, got %d", len(content))
	}

	emitted, err := EmitDocument(doc)
	if err != nil {
		t.Fatalf("EmitDocument: %v", err)
	}
	if emitted != source {
		t.Fatalf("round trip = %q, want %q", emitted, source)
	}
}
