package rapp

import (
	"testing"

	"github.com/advdv/rhttp"
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type testEnv struct {
	level   zapcore.Level
	otelExp string
}

func (e testEnv) port() int               { return 8080 }
func (e testEnv) serviceName() string     { return "test" }
func (e testEnv) healthCheckPath() string { return "/healthz" }
func (e testEnv) logLevel() zapcore.Level { return e.level }
func (e testEnv) otelExporter() string {
	if e.otelExp == "" {
		return "stdout"
	}
	return e.otelExp
}
func (e testEnv) defaultContentType() string { return "application/json" }

func TestNewLogger(t *testing.T) {
	for _, level := range []zapcore.Level{
		zapcore.DebugLevel, zapcore.InfoLevel, zapcore.WarnLevel, zapcore.ErrorLevel,
	} {
		t.Run(level.String(), func(t *testing.T) {
			logger, err := NewLogger(testEnv{level: level})
			if err != nil {
				t.Fatalf("NewLogger() error = %v", err)
			}
			if logger == nil {
				t.Fatal("NewLogger() returned nil logger")
			}
		})
	}
}

func TestZapLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := newZapRHTTPLogger(zap.New(core))

	t.Run("unhandled serve error", func(t *testing.T) {
		logger.LogUnhandledServeError(errors.New("test serve error"))

		entries := logs.TakeAll()
		if len(entries) != 1 {
			t.Fatalf("expected 1 log entry, got %d", len(entries))
		}
		if entries[0].Message != "unhandled serve error" {
			t.Errorf("unexpected message: %s", entries[0].Message)
		}
		if entries[0].LoggerName != "rhttp" {
			t.Errorf("unexpected logger name: %s", entries[0].LoggerName)
		}
		if entries[0].Level != zapcore.ErrorLevel {
			t.Errorf("unexpected level: %s", entries[0].Level)
		}
	})

	t.Run("server error response logs at error", func(t *testing.T) {
		logger.LogErrorResponse(rhttp.CodeInternalServerError, errors.New("boom"))

		entries := logs.TakeAll()
		if len(entries) != 1 {
			t.Fatalf("expected 1 log entry, got %d", len(entries))
		}
		if entries[0].Level != zapcore.ErrorLevel {
			t.Errorf("unexpected level: %s", entries[0].Level)
		}
	})

	t.Run("client error response logs at debug", func(t *testing.T) {
		logger.LogErrorResponse(rhttp.CodeBadRequest, errors.New("bad input"))

		entries := logs.TakeAll()
		if len(entries) != 1 {
			t.Fatalf("expected 1 log entry, got %d", len(entries))
		}
		if entries[0].Level != zapcore.DebugLevel {
			t.Errorf("unexpected level: %s", entries[0].Level)
		}
	})

	t.Run("implicit flush error", func(t *testing.T) {
		logger.LogImplicitFlushError(errors.New("flush failed"))

		entries := logs.TakeAll()
		if len(entries) != 1 {
			t.Fatalf("expected 1 log entry, got %d", len(entries))
		}
		if entries[0].Message != "error while flushing implicitly" {
			t.Errorf("unexpected message: %s", entries[0].Message)
		}
	})
}
