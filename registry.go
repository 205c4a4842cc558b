package rhttp

import (
	"sort"

	"github.com/samber/lo"
)

// RenderFunc converts plain data into a wire-ready body for one mime type.
type RenderFunc func(v any) ([]byte, error)

// ParseFunc converts a raw request body into plain data for one content type.
type ParseFunc func(data []byte) (any, error)

// RendererRegistry maps mime types to render functions. It is populated once
// at construction and read-only afterwards, so it is safe to share between
// concurrently handled requests.
type RendererRegistry struct {
	renderers map[string]RenderFunc
}

// NewRendererRegistry inits a registry from the given mapping. The mapping is
// copied, later mutation of the argument does not affect the registry.
func NewRendererRegistry(renderers map[string]RenderFunc) *RendererRegistry {
	return &RendererRegistry{renderers: lo.PickBy(renderers, func(_ string, fn RenderFunc) bool {
		return fn != nil
	})}
}

// Lookup returns the renderer for the mime type. Callers must check the
// second return before invoking, a miss is not an error.
func (r *RendererRegistry) Lookup(mimeType string) (RenderFunc, bool) {
	fn, ok := r.renderers[mimeType]
	return fn, ok
}

// Types returns the registered mime types sorted alphabetically.
func (r *RendererRegistry) Types() []string {
	types := lo.Keys(r.renderers)
	sort.Strings(types)

	return types
}

// ParserRegistry maps request content types to parse functions. Like the
// renderer registry it is immutable after construction.
type ParserRegistry struct {
	parsers map[string]ParseFunc
}

// NewParserRegistry inits a registry from the given mapping, copying it.
func NewParserRegistry(parsers map[string]ParseFunc) *ParserRegistry {
	return &ParserRegistry{parsers: lo.PickBy(parsers, func(_ string, fn ParseFunc) bool {
		return fn != nil
	})}
}

// Lookup returns the parser for the content type. Callers must check the
// second return before invoking, a miss is not an error.
func (r *ParserRegistry) Lookup(contentType string) (ParseFunc, bool) {
	fn, ok := r.parsers[contentType]
	return fn, ok
}

// Types returns the registered content types sorted alphabetically.
func (r *ParserRegistry) Types() []string {
	types := lo.Keys(r.parsers)
	sort.Strings(types)

	return types
}

// Mime types of the built-in renderers and parsers.
const (
	MimeJSON = "application/json"
	MimeYAML = "application/x-yaml"
	MimeForm = "application/x-www-form-urlencoded"
)

// DefaultRendererRegistry returns a registry with the built-in JSON and YAML
// renderers.
func DefaultRendererRegistry() *RendererRegistry {
	return NewRendererRegistry(map[string]RenderFunc{
		MimeJSON: RenderJSON,
		MimeYAML: RenderYAML,
	})
}

// DefaultParserRegistry returns a registry with the built-in JSON, YAML and
// url-encoded form parsers.
func DefaultParserRegistry() *ParserRegistry {
	return NewParserRegistry(map[string]ParseFunc{
		MimeJSON: ParseJSON,
		MimeYAML: ParseYAML,
		MimeForm: ParseForm,
	})
}
