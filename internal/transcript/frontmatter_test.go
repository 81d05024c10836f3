package transcript

import (
	"strings"
	"testing"
)

func TestParseFrontMatterExtractsMetadata(t *testing.T) {
	source := []byte(`---
title: Wolf 359
slug: ep1-succulent
series: Season One
synopsis: Doug Eiffel avoids his duties.
speakers:
  - Doug Eiffel
  - "Renée Minkowski"
languages:
  - en
episode: 1
---

EIFFEL: This is Doug Eiffel.
`)

	meta, body, err := ParseFrontMatter(source)
	if err != nil {
		t.Fatalf("ParseFrontMatter: %v", err)
	}

	if meta.Title != "Wolf 359" {
		t.Fatalf("Title = %q", meta.Title)
	}
	if meta.Slug != "ep1-succulent" {
		t.Fatalf("Slug = %q", meta.Slug)
	}
	if meta.Series != "Season One" {
		t.Fatalf("Series = %q", meta.Series)
	}
	if len(meta.Speakers) != 2 || meta.Speakers[0] != "Doug Eiffel" {
		t.Fatalf("Speakers = %v", meta.Speakers)
	}
	if len(meta.Languages) != 1 || meta.Languages[0] != "en" {
		t.Fatalf("Languages = %v", meta.Languages)
	}
	if meta.Custom["episode"] != 1 {
		t.Fatalf("Custom = %v", meta.Custom)
	}
	if !strings.Contains(string(body), "EIFFEL: This is Doug Eiffel.") {
		t.Fatalf("body = %q", string(body))
	}
	if strings.Contains(string(body), "title:") {
		t.Fatalf("body should not contain frontmatter, got %q", string(body))
	}
}

func TestParseFrontMatterWithoutDelimiters(t *testing.T) {
	source := []byte("Just a transcript line.\n")

	meta, body, err := ParseFrontMatter(source)
	if err != nil {
		t.Fatalf("ParseFrontMatter: %v", err)
	}
	if meta.Title != "" {
		t.Fatalf("expected empty metadata, got %+v", meta)
	}
	if string(body) != "Just a transcript line.\n" {
		t.Fatalf("body = %q", string(body))
	}
}

func TestParseFrontMatterRejectsMalformedYAML(t *testing.T) {
	source := []byte("---\ntitle: [unclosed\n---\nbody\n")

	if _, _, err := ParseFrontMatter(source); err == nil {
		t.Fatal("expected error for malformed frontmatter")
	}
}
