package cli

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/google/go-tpm-wire/tpm2"
)

func (a *app) decodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode TYPE [FILE|-]",
		Short: "Decode a structure and print it",
		Long: `Decode reads the wire encoding of the named structure and prints its
fields. TYPE may be spelled TPMT_PUBLIC or TPMTPublic. The input must hold
exactly one structure.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, _, err := a.decode(cmd, args)
			if err != nil {
				return err
			}
			return a.printer(cmd.OutOrStdout()).PrintStructure(v)
		},
	}
}

func (a *app) roundtripCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "roundtrip TYPE [FILE|-]",
		Short: "Check that a structure re-encodes to the same bytes",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, data, err := a.decode(cmd, args)
			if err != nil {
				return err
			}
			again, err := tpm2.Marshal(v)
			if err != nil {
				return fmt.Errorf("re-encoding: %w", err)
			}
			if off := firstDifference(data, again); off >= 0 {
				a.log.WithFields(logrus.Fields{
					"input":  len(data),
					"output": len(again),
				}).Debug("round trip mismatch")
				return fmt.Errorf("re-encoding differs from the input at offset %d", off)
			}
			a.log.Debug("round trip matched")
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %d bytes\n", len(data))
			return nil
		},
	}
}

// decode resolves the type named by args[0] and decodes the input as it.
func (a *app) decode(cmd *cobra.Command, args []string) (interface{}, []byte, error) {
	_, canonical, ok := tpm2.LookupType(args[0])
	if !ok {
		return nil, nil, fmt.Errorf("unknown structure %q (see \"tpmwire types\")", args[0])
	}
	data, err := a.readInput(cmd, inputName(args))
	if err != nil {
		return nil, nil, err
	}
	a.log.WithField("type", canonical).Debug("decoding")
	v, err := tpm2.UnmarshalNamed(canonical, data)
	if err != nil {
		return nil, nil, fmt.Errorf("decoding %s: %w", canonical, err)
	}
	return v, data, nil
}

// firstDifference returns the first offset at which a and b differ, or -1.
func firstDifference(a, b []byte) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return i
		}
	}
	if len(a) != len(b) {
		return min(len(a), len(b))
	}
	return -1
}
