package logger

import (
	"os"

	"go.uber.org/zap"
)

// New builds the process logger. APP_ENV=development switches to the
// human-readable development encoder.
func New() *zap.Logger {
	if os.Getenv("APP_ENV") == "development" {
		l, _ := zap.NewDevelopment()
		return l
	}

	l, _ := zap.NewProduction()
	return l
}
