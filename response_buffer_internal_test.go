package rhttp

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBufferHoldsUntilFlush(t *testing.T) {
	rec := httptest.NewRecorder()
	buf := newBufferResponse(rec, -1)
	defer buf.Free()

	buf.Header().Set("X-Test", "v")
	buf.WriteHeader(http.StatusTeapot)

	n, err := buf.Write([]byte("body"))
	require.NoError(t, err)
	require.Equal(t, 4, n)

	assert.Empty(t, rec.Body.String(), "nothing reaches the client before the flush")
	assert.Empty(t, rec.Header().Get("X-Test"))

	require.NoError(t, buf.FlushBuffer())

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, "body", rec.Body.String())
	assert.Equal(t, "v", rec.Header().Get("X-Test"))
}

func TestBufferFirstStatusWins(t *testing.T) {
	rec := httptest.NewRecorder()
	buf := newBufferResponse(rec, -1)
	defer buf.Free()

	buf.WriteHeader(http.StatusAccepted)
	buf.WriteHeader(http.StatusTeapot)

	require.NoError(t, buf.FlushBuffer())
	assert.Equal(t, http.StatusAccepted, rec.Code)
}

func TestBufferLimit(t *testing.T) {
	rec := httptest.NewRecorder()
	buf := newBufferResponse(rec, 8)
	defer buf.Free()

	_, err := buf.Write([]byte("12345678"))
	require.NoError(t, err)

	n, err := buf.Write([]byte("9"))
	require.ErrorIs(t, err, ErrBufferFull)
	require.Zero(t, n, "an overflowing write buffers nothing")

	require.NoError(t, buf.FlushBuffer())
	assert.Equal(t, "12345678", rec.Body.String())
}

func TestBufferReset(t *testing.T) {
	rec := httptest.NewRecorder()
	buf := newBufferResponse(rec, -1)
	defer buf.Free()

	buf.Header().Set("X-Stale", "v")
	buf.WriteHeader(http.StatusTeapot)
	_, _ = buf.Write([]byte("stale"))

	buf.Reset()
	_, _ = buf.Write([]byte("fresh"))

	require.NoError(t, buf.FlushBuffer())
	assert.Equal(t, http.StatusOK, rec.Code, "status resets to the implicit default")
	assert.Equal(t, "fresh", rec.Body.String())
	assert.Empty(t, rec.Header().Get("X-Stale"))
}

func TestBufferResetAfterFlushPanics(t *testing.T) {
	rec := httptest.NewRecorder()
	buf := newBufferResponse(rec, -1)
	defer buf.Free()

	require.NoError(t, buf.FlushBuffer())
	require.Panics(t, func() { buf.Reset() })
}

func TestBufferFlushTwice(t *testing.T) {
	rec := httptest.NewRecorder()
	buf := newBufferResponse(rec, -1)
	defer buf.Free()

	_, _ = buf.Write([]byte("once"))
	require.NoError(t, buf.FlushError())

	// a second flush writes any new bytes but not the status line again.
	_, _ = buf.Write([]byte(" twice"))
	require.NoError(t, buf.FlushError())

	assert.Equal(t, "once twice", rec.Body.String())
}

func TestBufferUnwrap(t *testing.T) {
	rec := httptest.NewRecorder()
	buf := newBufferResponse(rec, -1)
	defer buf.Free()

	assert.Same(t, http.ResponseWriter(rec), buf.Unwrap())
}
