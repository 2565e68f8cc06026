package cli

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/google/go-tpm-wire/internal/dump"
)

// Printer writes decoded values in the configured format.
type Printer struct {
	format string
	writer io.Writer
}

// NewPrinter creates a Printer for format, which is "yaml" or "text".
func NewPrinter(format string, writer io.Writer) *Printer {
	return &Printer{format: format, writer: writer}
}

// PrintStructure prints a decoded TPM structure.
func (p *Printer) PrintStructure(v interface{}) error {
	switch p.format {
	case "yaml":
		return dump.YAML(p.writer, v)
	case "text":
		return dump.Text(p.writer, v)
	default:
		return fmt.Errorf("unknown output format: %s", p.format)
	}
}

// PrintConfig prints the effective configuration. It is always YAML, so that
// the output can be saved as a config file.
func (p *Printer) PrintConfig(cfg *Config) error {
	enc := yaml.NewEncoder(p.writer)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return err
	}
	return enc.Close()
}

// PrintPairs prints name/value rows, aligned.
func (p *Printer) PrintPairs(rows [][2]string) {
	width := 0
	for _, r := range rows {
		if len(r[0]) > width {
			width = len(r[0])
		}
	}
	for _, r := range rows {
		fmt.Fprintf(p.writer, "%-*s  %s\n", width, r[0], r[1])
	}
}

func (a *app) printer(w io.Writer) *Printer {
	return NewPrinter(a.cfg.Format, w)
}
