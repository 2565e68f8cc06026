package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	keyFormat        = "format"
	keyLogLevel      = "log-level"
	keyInputEncoding = "input-encoding"

	defaultFormat        = "yaml"
	defaultLogLevel      = "warning"
	defaultInputEncoding = "hex"

	envPrefix  = "TPMWIRE"
	configName = ".tpmwire"
)

// Config is the effective configuration, merged from flags, environment
// variables and the config file in that order of precedence.
type Config struct {
	Format        string `yaml:"format"`
	LogLevel      string `yaml:"log-level"`
	InputEncoding string `yaml:"input-encoding"`
}

// NewConfig returns the default configuration.
func NewConfig() *Config {
	return &Config{
		Format:        defaultFormat,
		LogLevel:      defaultLogLevel,
		InputEncoding: defaultInputEncoding,
	}
}

// Validate checks that every setting has a known value.
func (c *Config) Validate() error {
	switch c.Format {
	case "yaml", "text":
	default:
		return fmt.Errorf("unknown output format %q (want yaml or text)", c.Format)
	}
	switch c.InputEncoding {
	case "hex", "binary":
	default:
		return fmt.Errorf("unknown input encoding %q (want hex or binary)", c.InputEncoding)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// initConfig reads the config file and environment, then sets up logging.
func (a *app) initConfig(cmd *cobra.Command) error {
	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			a.v.AddConfigPath(home)
		}
		a.v.SetConfigName(configName)
		a.v.SetConfigType("yaml")
	}
	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if a.cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("reading config: %w", err)
		}
	}

	cfg := &Config{
		Format:        strings.ToLower(a.v.GetString(keyFormat)),
		LogLevel:      a.v.GetString(keyLogLevel),
		InputEncoding: strings.ToLower(a.v.GetString(keyInputEncoding)),
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg
	a.setupLogger(cmd.ErrOrStderr(), cfg.LogLevel)
	if used := a.v.ConfigFileUsed(); used != "" {
		a.log.WithField("file", used).Debug("using config file")
	}
	return nil
}
