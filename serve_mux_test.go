package rhttp_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/advdv/rhttp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMux(tb testing.TB) *rhttp.ServeMux {
	return rhttp.NewServeMuxWith(-1, rhttp.NewTestLogger(tb), http.NewServeMux())
}

func TestServeMuxHandleFunc(t *testing.T) {
	mux := newTestMux(t)
	mux.HandleFunc("GET /ping", func(ctx context.Context, w rhttp.ResponseWriter, r *http.Request) error {
		_, err := w.Write([]byte("pong"))
		return err
	})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "pong", rec.Body.String())
}

func TestServeMuxMiddlewareOrder(t *testing.T) {
	var order []string

	mw := func(name string) rhttp.Middleware {
		return func(next rhttp.BareHandler) rhttp.BareHandler {
			return rhttp.BareHandlerFunc(func(w rhttp.ResponseWriter, r *http.Request) error {
				order = append(order, name)
				return next.ServeBareBHTTP(w, r)
			})
		}
	}

	mux := newTestMux(t)
	mux.Use(mw("outer"), mw("inner"))
	mux.HandleFunc("/x", func(ctx context.Context, w rhttp.ResponseWriter, r *http.Request) error {
		order = append(order, "handler")
		return nil
	})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))

	assert.Equal(t, []string{"outer", "inner", "handler"}, order)
}

func TestServeMuxMiddlewareShortCircuit(t *testing.T) {
	mux := newTestMux(t)
	mux.Use(func(next rhttp.BareHandler) rhttp.BareHandler {
		return rhttp.BareHandlerFunc(func(w rhttp.ResponseWriter, r *http.Request) error {
			return rhttp.NewError(rhttp.CodeUnauthorized, rhttp.ErrMethodNotAllowed)
		})
	})
	mux.HandleFunc("/x", func(ctx context.Context, w rhttp.ResponseWriter, r *http.Request) error {
		t.Fatal("handler must not run")
		return nil
	})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestServeMuxUseAfterHandlePanics(t *testing.T) {
	mux := newTestMux(t)
	mux.HandleFunc("/x", func(ctx context.Context, w rhttp.ResponseWriter, r *http.Request) error {
		return nil
	})

	require.PanicsWithValue(t, "rhttp: cannot call Use() after calling Handle", func() {
		mux.Use(func(next rhttp.BareHandler) rhttp.BareHandler { return next })
	})
}

func TestServeMuxHandleStd(t *testing.T) {
	mux := newTestMux(t)
	mux.HandleStd("/std", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/std", nil))

	require.Equal(t, http.StatusNoContent, rec.Code)
}

func TestServeMuxMountStripsPrefix(t *testing.T) {
	var seenPath string

	mux := newTestMux(t)
	mux.MountFunc("/api/v1", func(ctx context.Context, w rhttp.ResponseWriter, r *http.Request) error {
		seenPath = r.URL.Path
		return nil
	})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/items/1", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "/items/1", seenPath)

	// the mount root itself resolves to "/".
	mux.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1", nil))
	assert.Equal(t, "/", seenPath)
}

func TestServeMuxMountWithMethod(t *testing.T) {
	mux := newTestMux(t)
	mux.MountFunc("GET /sub", func(ctx context.Context, w rhttp.ResponseWriter, r *http.Request) error {
		_, err := w.Write([]byte(r.URL.Path))
		return err
	})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/sub/a", nil))
	require.Equal(t, "/a", rec.Body.String())

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/sub/a", nil))
	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
