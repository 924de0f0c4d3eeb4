package transport

import "github.com/rs/zerolog"

// leveledLogger adapts zerolog to retryablehttp.LeveledLogger.
type leveledLogger struct {
	logger *zerolog.Logger
}

func (l leveledLogger) Error(msg string, keysAndValues ...any) {
	l.logger.Error().Fields(keysAndValues).Msg(msg)
}

func (l leveledLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Info().Fields(keysAndValues).Msg(msg)
}

func (l leveledLogger) Debug(msg string, keysAndValues ...any) {
	l.logger.Debug().Fields(keysAndValues).Msg(msg)
}

func (l leveledLogger) Warn(msg string, keysAndValues ...any) {
	l.logger.Warn().Fields(keysAndValues).Msg(msg)
}
