package helpers

import (
	"os"

	"github.com/sirupsen/logrus"
)

// NewLogger creates a configured Logrus logger. Every line passes through
// the redacting formatter so PII field values never land in logs.
func NewLogger(appName, env string) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	if env == "development" {
		logger.SetLevel(logrus.DebugLevel)
		logger.SetFormatter(NewRedactingFormatter(&logrus.TextFormatter{FullTimestamp: true}, PIIFields))
	} else {
		logger.SetLevel(logrus.InfoLevel)
		logger.SetFormatter(NewRedactingFormatter(&logrus.JSONFormatter{}, PIIFields))
	}
	logger.WithFields(logrus.Fields{"app": appName, "env": env}).Info("logger initialized")
	return logger
}
