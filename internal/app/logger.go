package app

import (
	"io"

	"github.com/sirupsen/logrus"
)

// newLogger builds an isolated logrus logger; the global one is left alone.
// level and format are assumed validated by config.Validate.
func newLogger(level, format string, w io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logger.SetLevel(lvl)

	if format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{DisableColors: true})
	}

	return logger
}
