package logger

import (
	"go.uber.org/zap"
)

// LoggerConfig configures the application logger
type LoggerConfig struct {
	Debug bool
}

// NewLogger builds a zap logger: production JSON output by default,
// human-readable debug output when Debug is set.
func NewLogger(config *LoggerConfig) (*zap.Logger, error) {
	if config != nil && config.Debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
