package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunSecretReadsStdin(t *testing.T) {
	var out bytes.Buffer
	stdin := strings.NewReader(`{"data": {"secret_id": "abc123"}}`)

	if err := runSecret(nil, stdin, &out); err != nil {
		t.Fatalf("runSecret: %v", err)
	}
	if out.String() != "abc123\n" {
		t.Fatalf("output = %q", out.String())
	}
}

func TestRunSecretReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "payload.json")
	if err := os.WriteFile(path, []byte(`{"data": {"secret_id": "s3cr3t"}}`), 0o600); err != nil {
		t.Fatalf("write payload: %v", err)
	}

	var out bytes.Buffer
	if err := runSecret([]string{"-file", path}, strings.NewReader(""), &out); err != nil {
		t.Fatalf("runSecret: %v", err)
	}
	if out.String() != "s3cr3t\n" {
		t.Fatalf("output = %q", out.String())
	}
}

func TestRunSecretSurfacesExtractionErrors(t *testing.T) {
	var out bytes.Buffer

	err := runSecret(nil, strings.NewReader("not json"), &out)
	if err == nil || !strings.Contains(err.Error(), "failed to decode Vault response") {
		t.Fatalf("expected decode error, got %v", err)
	}

	err = runSecret(nil, strings.NewReader(`{"data": {"secret_id": ""}}`), &out)
	if err == nil || !strings.Contains(err.Error(), "missing secret_id field") {
		t.Fatalf("expected missing field error, got %v", err)
	}
}
