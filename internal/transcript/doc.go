// Package transcript ingests Markdown transcript files and turns them into
// TEI documents. Frontmatter supplies the header metadata, the Markdown body
// supplies paragraphs and speaker utterances, and the importer persists the
// emitted markup into the archive.
package transcript
