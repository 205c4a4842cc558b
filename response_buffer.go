package rhttp

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"sync"
)

// ErrBufferFull is returned when a write would grow the buffered response
// beyond the configured limit.
var ErrBufferFull = errors.New("rhttp: response buffer is full")

var bufPool = sync.Pool{New: func() any { return bytes.NewBuffer(nil) }}

// ResponseBuffer is an http.ResponseWriter that keeps the status code, headers
// and body in memory until the buffer is flushed. Until then the response can
// be reset completely, which is what allows handlers to return errors that
// replace everything written so far.
type ResponseBuffer struct {
	resp   http.ResponseWriter
	buf    *bytes.Buffer
	limit  int
	header http.Header

	status    int
	statusSet bool

	// set once headers and status have reached the underlying writer, either
	// through an explicit flush or the implicit one. Resetting is no longer
	// possible after that.
	flushed bool
}

// NewResponseWriter inits a buffered response writer on top of 'resp'. A
// negative limit allows the buffer to grow without bound.
func NewResponseWriter(resp http.ResponseWriter, limit int) ResponseWriter {
	return newBufferResponse(resp, limit)
}

func newBufferResponse(resp http.ResponseWriter, limit int) *ResponseBuffer {
	buf, _ := bufPool.Get().(*bytes.Buffer)
	buf.Reset()

	return &ResponseBuffer{
		resp:   resp,
		buf:    buf,
		limit:  limit,
		header: make(http.Header),
		status: http.StatusOK,
	}
}

// Unwrap returns the underlying response writer, it also makes sure that the
// http.ResponseController works with our buffered writer.
func (b *ResponseBuffer) Unwrap() http.ResponseWriter { return b.resp }

// Header returns the buffered header map. Changes after the response has been
// flushed have no effect.
func (b *ResponseBuffer) Header() http.Header { return b.header }

// WriteHeader buffers the status code. Only the first call has an effect,
// mirroring the standard library behavior.
func (b *ResponseBuffer) WriteHeader(status int) {
	if b.statusSet || b.flushed {
		return
	}

	b.status = status
	b.statusSet = true
}

// Write buffers 'p' as part of the response body. It fails with [ErrBufferFull]
// when the write would exceed the configured limit, in which case nothing of
// 'p' is buffered.
func (b *ResponseBuffer) Write(p []byte) (int, error) {
	if b.limit >= 0 && b.buf.Len()+len(p) > b.limit {
		return 0, ErrBufferFull
	}

	return b.buf.Write(p)
}

// Reset discards the buffered body, headers and status code so a completely
// new response can be formulated. It panics when the response was already
// flushed since bytes have then reached the client.
func (b *ResponseBuffer) Reset() {
	if b.flushed {
		panic("rhttp: response buffer already flushed")
	}

	b.buf.Reset()
	b.header = make(http.Header)
	b.status = http.StatusOK
	b.statusSet = false
}

// FlushError flushes the buffered response to the underlying writer. The
// http.ResponseController picks this up for explicit flushes requested by the
// handler.
func (b *ResponseBuffer) FlushError() error {
	if !b.flushed {
		dst := b.resp.Header()
		for key, vals := range b.header {
			dst[key] = vals
		}

		b.resp.WriteHeader(b.status)
		b.flushed = true
	}

	if b.buf.Len() > 0 {
		if _, err := b.resp.Write(b.buf.Bytes()); err != nil {
			return fmt.Errorf("write buffered response: %w", err)
		}

		b.buf.Reset()
	}

	return nil
}

// FlushBuffer performs the implicit flush after the handler has returned
// without error.
func (b *ResponseBuffer) FlushBuffer() error {
	return b.FlushError()
}

// Free returns the underlying buffer to the pool. The response buffer must not
// be used afterwards.
func (b *ResponseBuffer) Free() {
	if b.buf == nil {
		return
	}

	bufPool.Put(b.buf)
	b.buf = nil
}

var _ ResponseWriter = &ResponseBuffer{}
