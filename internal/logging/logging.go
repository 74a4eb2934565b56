package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/pageza/homechef/backend/config"
)

// New builds the process logger on stderr, leaving stdout to command output.
// Production and CI get JSON lines, everything else gets human readable text.
func New(cfg *config.Config) *logrus.Logger {
	return NewWithWriter(cfg, os.Stderr)
}

func NewWithWriter(cfg *config.Config, w io.Writer) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)

	if config.GetEnvironment().StructuredLogs() {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.WithField("level", cfg.LogLevel).Warn("unknown log level, using info")
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
	return log
}
