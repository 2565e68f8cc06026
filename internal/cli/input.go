package cli

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// readInput reads the encoded structure from the named file, or from standard
// input when the name is empty or "-".
func (a *app) readInput(cmd *cobra.Command, name string) ([]byte, error) {
	var (
		raw []byte
		err error
	)
	if name == "" || name == "-" {
		raw, err = io.ReadAll(cmd.InOrStdin())
	} else {
		raw, err = os.ReadFile(name)
	}
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	a.log.WithField("bytes", len(raw)).Debug("read input")

	if a.cfg.InputEncoding == "binary" {
		return raw, nil
	}
	// Whitespace and line breaks are allowed between hex digits.
	text := strings.Join(strings.Fields(string(raw)), "")
	text = strings.TrimPrefix(strings.TrimPrefix(text, "0x"), "0X")
	data, err := hex.DecodeString(text)
	if err != nil {
		return nil, fmt.Errorf("decoding hex input: %w", err)
	}
	return data, nil
}

func inputName(args []string) string {
	if len(args) > 1 {
		return args[1]
	}
	return ""
}
