package config

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// NewLogger builds the logger described by lc. Logs go to stderr so that
// command output on stdout stays machine readable.
func NewLogger(lc LogConfig) (*logrus.Logger, error) {
	return newLogger(lc, os.Stderr)
}

func newLogger(lc LogConfig, w io.Writer) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(lc.Level)
	if err != nil {
		return nil, err
	}

	log := logrus.New()
	log.SetOutput(w)
	log.SetLevel(level)
	if lc.Format == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return log, nil
}
