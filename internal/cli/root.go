// Package cli implements the tpmwire command line tool.
package cli

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// app holds the state shared by every command of one command tree.
type app struct {
	v       *viper.Viper
	log     *logrus.Logger
	cfgFile string
	cfg     *Config
}

// NewRootCmd returns the tpmwire command tree.
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New(), log: logrus.New(), cfg: NewConfig()}

	root := &cobra.Command{
		Use:   "tpmwire",
		Short: "Decode and inspect TPM 2.0 wire structures",
		Long: `tpmwire decodes TPM 2.0 structures from their wire encoding and
prints them by name, checks that encodings survive a round trip, and
looks up constants and attribute bits.

Input is read from a file or from standard input, as hex by default.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.initConfig(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default is $HOME/.tpmwire.yaml)")
	pf.StringP(keyFormat, "f", defaultFormat, "output format (yaml, text)")
	pf.String(keyLogLevel, defaultLogLevel, "log level (panic, fatal, error, warning, info, debug, trace)")
	pf.StringP(keyInputEncoding, "e", defaultInputEncoding, "input encoding (hex, binary)")
	for _, k := range []string{keyFormat, keyLogLevel, keyInputEncoding} {
		if err := a.v.BindPFlag(k, pf.Lookup(k)); err != nil {
			panic(err)
		}
	}

	root.AddCommand(
		a.decodeCmd(),
		a.roundtripCmd(),
		a.typesCmd(),
		a.constCmd(),
		a.attrsCmd(),
		a.configCmd(),
	)
	return root
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}
