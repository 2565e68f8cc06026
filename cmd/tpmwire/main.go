// Command tpmwire decodes and inspects TPM 2.0 wire structures.
package main

import (
	"fmt"
	"os"

	"github.com/google/go-tpm-wire/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "tpmwire: %v\n", err)
		os.Exit(1)
	}
}
