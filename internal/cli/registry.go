package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/google/go-tpm-wire/tpm2"
)

func (a *app) typesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List the structures that can be decoded",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, n := range tpm2.TypeNames() {
				fmt.Fprintln(cmd.OutOrStdout(), n)
			}
			return nil
		},
	}
}

func (a *app) constCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "const FAMILY [NAME|VALUE]",
		Short: "Look up TPM constants by name or by value",
		Long: `Const lists the members of a constant family such as TPM_ALG_ID, or
converts one member between its name and its value. Values may be given
in decimal or with a 0x prefix.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, ok := tpm2.LookupConstants(strings.ToUpper(args[0]))
			if !ok {
				return fmt.Errorf("unknown constant family %q (known: %s)",
					args[0], strings.Join(tpm2.ConstantFamilies(), ", "))
			}
			p := a.printer(cmd.OutOrStdout())
			if len(args) == 1 {
				var rows [][2]string
				for _, n := range c.Names() {
					v, err := c.FromName(n)
					if err != nil {
						return err
					}
					rows = append(rows, [2]string{n, hexValue(v, c.Width())})
				}
				p.PrintPairs(rows)
				return nil
			}

			if v, err := strconv.ParseUint(args[1], 0, 64); err == nil {
				name, err := c.FromValue(v)
				if err != nil {
					if reserved, ok := c.Reserved(v); ok {
						return fmt.Errorf("%s is reserved in %s: %w", reserved, c.Name(), err)
					}
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), name)
				return nil
			}
			v, err := c.FromName(args[1])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hexValue(v, c.Width()))
			return nil
		},
	}
}

func (a *app) attrsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "attrs FAMILY [VALUE|BITS]",
		Short: "Decode or build attribute values",
		Long: `Attrs lists the bits of an attribute family such as TPMA_OBJECT.
Given a number it prints the set bits. Given bit names joined by "|" it
prints the value they make up.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, ok := tpm2.LookupBitfield(strings.ToUpper(args[0]))
			if !ok {
				return fmt.Errorf("unknown attribute family %q (known: %s)",
					args[0], strings.Join(tpm2.AttributeFamilies(), ", "))
			}
			out := cmd.OutOrStdout()
			if len(args) == 1 {
				for _, n := range b.BitNames() {
					fmt.Fprintln(out, n)
				}
				for _, n := range b.FieldNames() {
					fmt.Fprintf(out, "%s=N\n", n)
				}
				return nil
			}

			if v, err := strconv.ParseUint(args[1], 0, 64); err == nil {
				if v > 1<<(8*uint(b.Width()))-1 {
					return fmt.Errorf("%s is %d bytes wide, 0x%x does not fit", b.Name(), b.Width(), v)
				}
				fmt.Fprintln(out, b.Format(v))
				return nil
			}
			v, err := b.Parse(strings.Split(args[1], "|"))
			if err != nil {
				return err
			}
			fmt.Fprintln(out, hexValue(v, b.Width()))
			return nil
		},
	}
}

func (a *app) configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.printer(cmd.OutOrStdout()).PrintConfig(a.cfg)
		},
	}
}

func hexValue(v uint64, width int) string {
	return fmt.Sprintf("0x%0*x", 2*width, v)
}
