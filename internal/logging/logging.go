package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

func SetupLogging(level string) *logrus.Logger {
	logLevel, err := logrus.ParseLevel(level)
	if err != nil {
		logLevel = logrus.InfoLevel
	}

	logger := logrus.Logger{
		Formatter: &logrus.JSONFormatter{
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyLevel: "loglevel",
			},
		},
		Out:   os.Stdout,
		Level: logLevel,
		Hooks: make(logrus.LevelHooks),
	}

	// Packages that log through the logrus package functions share the format.
	logrus.SetFormatter(logger.Formatter)
	logrus.SetLevel(logLevel)

	return &logger
}
