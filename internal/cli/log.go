package cli

import (
	"io"

	"github.com/sirupsen/logrus"
)

// setupLogger points the logger at w. The level has already been validated.
func (a *app) setupLogger(w io.Writer, level string) {
	a.log.SetOutput(w)
	a.log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		DisableColors:    true,
	})
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.WarnLevel
	}
	a.log.SetLevel(lvl)
}
