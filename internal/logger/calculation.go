package logger

import (
	"github.com/rs/zerolog"
)

// CalculationLogger adapts a zerolog.Logger to the printf-style Logger
// interface of the calculation package.
type CalculationLogger struct {
	zl zerolog.Logger
}

// NewCalculationLogger wraps zl.
func NewCalculationLogger(zl zerolog.Logger) *CalculationLogger {
	return &CalculationLogger{zl: zl}
}

func (l *CalculationLogger) Debugf(format string, args ...any) { l.zl.Debug().Msgf(format, args...) }
func (l *CalculationLogger) Infof(format string, args ...any)  { l.zl.Info().Msgf(format, args...) }
func (l *CalculationLogger) Warnf(format string, args ...any)  { l.zl.Warn().Msgf(format, args...) }
func (l *CalculationLogger) Errorf(format string, args ...any) { l.zl.Error().Msgf(format, args...) }
