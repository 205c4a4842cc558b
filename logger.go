package rhttp

import (
	"log"
	"sync/atomic"
	"testing"
)

// Logger can be implemented to get informed about important states. Error
// responses with a 5xx code indicate programming or configuration defects and
// deserve a higher severity than client-caused 4xx responses.
type Logger interface {
	LogUnhandledServeError(err error)
	LogErrorResponse(code Code, err error)
	LogImplicitFlushError(err error)
}

type stdLogger struct{ *log.Logger }

func (l stdLogger) LogUnhandledServeError(err error) {
	l.Logger.Printf("rhttp: unhandled serve error: %s", err)
}

func (l stdLogger) LogErrorResponse(code Code, err error) {
	if code >= CodeInternalServerError {
		l.Logger.Printf("rhttp: server error response (%d): %s", code, err)
	}
}

func (l stdLogger) LogImplicitFlushError(err error) {
	l.Logger.Printf("rhttp: error while flushing implicitly: %s", err)
}

func NewStdLogger(l *log.Logger) Logger {
	return stdLogger{l}
}

// TestLogger counts log calls so tests can assert on them.
type TestLogger struct {
	tb testing.TB

	NumLogUnhandledServeError int64
	NumLogErrorResponse       int64
	NumLogImplicitFlushError  int64
}

func NewTestLogger(tb testing.TB) *TestLogger {
	return &TestLogger{tb: tb}
}

func (l *TestLogger) LogUnhandledServeError(err error) {
	atomic.AddInt64(&l.NumLogUnhandledServeError, 1)
	l.tb.Logf("rhttp: unhandled serve error: %s", err)
}

func (l *TestLogger) LogErrorResponse(code Code, err error) {
	atomic.AddInt64(&l.NumLogErrorResponse, 1)
	l.tb.Logf("rhttp: error response (%d): %s", code, err)
}

func (l *TestLogger) LogImplicitFlushError(err error) {
	atomic.AddInt64(&l.NumLogImplicitFlushError, 1)
	l.tb.Logf("rhttp: error while flushing implicitly: %s", err)
}

var _ Logger = &TestLogger{}
