package cmdutil

import (
	"io"

	"github.com/sirupsen/logrus"
)

// SetupLogging points logrus at dst (normally stderr) with a plain
// timestamp-less format. quiet raises the level so only errors get through.
func SetupLogging(dst io.Writer, quiet bool) {
	logrus.SetOutput(dst)
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		DisableColors:    true,
	})
	if quiet {
		logrus.SetLevel(logrus.ErrorLevel)
	} else {
		logrus.SetLevel(logrus.InfoLevel)
	}
}
