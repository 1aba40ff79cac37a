package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

var verbosity_levels = map[string]logrus.Level{
	"DEBUG":    logrus.DebugLevel,
	"INFO":     logrus.InfoLevel,
	"WARNING":  logrus.WarnLevel,
	"ERROR":    logrus.ErrorLevel,
	"CRITICAL": logrus.FatalLevel,
}

func makeLogger(verbosity string) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	level, pres := verbosity_levels[verbosity]
	if !pres {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	return logger
}
