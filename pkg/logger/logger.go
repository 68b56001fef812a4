package logger

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

// New настраивает корневой логгер сервиса: JSON в stdout с метками
// времени в RFC3339, уровень берется из конфигурации (LOG_LEVEL).
func New(logLevel string) *logrus.Logger {
	log := logrus.New()

	log.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
	})
	log.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel // Уровень по умолчанию, если передан некорректный
	}
	log.SetLevel(level)
	return log
}
