package gamewatch

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// NewLogger builds the process logger from cfg. Output defaults to stderr so command
// output on stdout stays clean.
func NewLogger(cfg LogConfig, out io.Writer) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return nil, invalid("log.level: " + err.Error())
	}
	if out == nil {
		out = os.Stderr
	}

	log := logrus.New()
	log.SetOutput(out)
	log.SetLevel(level)
	if cfg.Format == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return log, nil
}
