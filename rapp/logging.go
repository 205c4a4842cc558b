package rapp

import (
	"github.com/advdv/rhttp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger creates a zap logger configured from the environment. Uses JSON
// encoding, RA_LOG_LEVEL controls the level (debug, info, warn, error).
func NewLogger(env Environment) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(env.logLevel())
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return cfg.Build()
}

type zapLogger struct{ *zap.Logger }

func (l zapLogger) LogUnhandledServeError(err error) {
	l.Logger.Error("unhandled serve error", zap.Error(err))
}

func (l zapLogger) LogErrorResponse(code rhttp.Code, err error) {
	// 5xx kinds indicate programming or configuration defects and outrank
	// client-caused 4xx responses.
	if code >= rhttp.CodeInternalServerError {
		l.Logger.Error("server error response", zap.Int("code", int(code)), zap.Error(err))
		return
	}

	l.Logger.Debug("client error response", zap.Int("code", int(code)), zap.Error(err))
}

func (l zapLogger) LogImplicitFlushError(err error) {
	l.Logger.Error("error while flushing implicitly", zap.Error(err))
}

func newZapRHTTPLogger(l *zap.Logger) rhttp.Logger {
	return zapLogger{l.Named("rhttp")}
}
