package transcript

import (
	"bytes"
	"fmt"

	"github.com/adrg/frontmatter"
)

// Meta is the structured frontmatter of a transcript file. Unknown keys are
// preserved in Custom so downstream tooling can inspect them.
type Meta struct {
	Title     string         `yaml:"title"`
	Slug      string         `yaml:"slug"`
	Series    string         `yaml:"series"`
	Synopsis  string         `yaml:"synopsis"`
	Speakers  []string       `yaml:"speakers"`
	Languages []string       `yaml:"languages"`
	Custom    map[string]any `yaml:",inline"`
}

// ParseFrontMatter extracts metadata and the Markdown body from the provided
// source bytes. It returns the structured frontmatter, the body without
// delimiters, and any error encountered.
func ParseFrontMatter(source []byte) (Meta, []byte, error) {
	var meta Meta

	body, err := frontmatter.Parse(bytes.NewReader(source), &meta)
	if err != nil {
		return Meta{}, nil, fmt.Errorf("transcript: parse frontmatter: %w", err)
	}

	if meta.Custom == nil {
		meta.Custom = map[string]any{}
	}
	return meta, body, nil
}
