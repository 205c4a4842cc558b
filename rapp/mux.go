package rapp

import (
	"net/http"

	"github.com/advdv/rhttp"
	"go.uber.org/zap"
)

// MaxResponsePayloadBytes bounds buffered response bodies so a misbehaving
// renderer cannot grow memory without limit.
const MaxResponsePayloadBytes = 6 * 1024 * 1024

// Mux is an alias for rhttp.ServeMux.
type Mux = rhttp.ServeMux

// NewMux creates a new Mux with zap-backed logging and a bounded buffer.
func NewMux(logger *zap.Logger) *Mux {
	return rhttp.NewServeMuxWith(
		MaxResponsePayloadBytes,
		newZapRHTTPLogger(logger),
		http.NewServeMux(),
	)
}

// NewResourceConfig returns a resource configuration pre-filled with the
// environment's negotiation fallback and the built-in registries. Callers set
// their handlers and overrides on the returned value.
func NewResourceConfig(env Environment) rhttp.ResourceConfig {
	return rhttp.ResourceConfig{
		DefaultContentType: env.defaultContentType(),
	}
}
