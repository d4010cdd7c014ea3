package session

import "github.com/rs/zerolog"

// ZerologAdapter bridges a zerolog.Logger into the Logger surface the store
// and transport expect
type ZerologAdapter struct {
	logger zerolog.Logger
}

var _ Logger = ZerologAdapter{}

// NewZerologAdapter wraps the given zerolog logger
func NewZerologAdapter(logger zerolog.Logger) ZerologAdapter {
	return ZerologAdapter{logger: logger}
}

// Debug implements Logger
func (z ZerologAdapter) Debug(format string, args ...any) {
	z.logger.Debug().Msgf(format, args...)
}

// Info implements Logger
func (z ZerologAdapter) Info(format string, args ...any) {
	z.logger.Info().Msgf(format, args...)
}

// Error implements Logger
func (z ZerologAdapter) Error(format string, args ...any) {
	z.logger.Error().Msgf(format, args...)
}
