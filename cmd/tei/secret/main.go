package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/goliatone/go-tei/bootstrap"
)

func main() {
	if err := runSecret(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		log.Fatalf("tei secret: %v", err)
	}
}

// runSecret reads a Vault approle response (from a file or stdin) and prints
// the contained secret id.
func runSecret(args []string, stdin io.Reader, out io.Writer) error {
	fs := flag.NewFlagSet("tei-secret", flag.ExitOnError)
	file := fs.String("file", "", "Path to a Vault response payload (defaults to stdin)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	var payload []byte
	var err error
	if *file != "" {
		payload, err = os.ReadFile(*file)
		if err != nil {
			return fmt.Errorf("read payload: %w", err)
		}
	} else {
		payload, err = io.ReadAll(stdin)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
	}

	secret, err := bootstrap.ExtractSecretID(string(payload))
	if err != nil {
		return err
	}

	fmt.Fprintln(out, secret)
	return nil
}
