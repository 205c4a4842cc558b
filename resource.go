package rhttp

import (
	"context"
	"io"
	"net/http"
	"slices"
	"strings"

	"github.com/cockroachdb/errors"
)

// ActionFunc handles one resolved action of a resource.
type ActionFunc func(ctx context.Context, ex *Exchange) error

// ResourceConfig configures a [Resource]. Zero values fall back to the
// built-in defaults.
type ResourceConfig struct {
	// Actions maps effective HTTP methods to action names. Defaults to
	// [DefaultActionMap].
	Actions ActionMap

	// Handlers maps action names to their handlers. A mapped action without a
	// handler fails the request with a 500 at dispatch time, not at
	// construction: the check is lazy per request.
	Handlers map[string]ActionFunc

	// Renderers and Parsers default to [DefaultRendererRegistry] and
	// [DefaultParserRegistry].
	Renderers *RendererRegistry
	Parsers   *ParserRegistry

	// DefaultContentType is the negotiation fallback for requests without
	// preferences, [MimeJSON] when empty.
	DefaultContentType string
}

// Resource mediates the request lifecycle for one RESTful resource: action
// dispatch, body validation, content negotiation and response rendering. The
// registries it holds are shared and read-only, all per-request state lives
// on the [Exchange].
type Resource struct {
	actions     ActionMap
	handlers    map[string]ActionFunc
	renderers   *RendererRegistry
	parsers     *ParserRegistry
	defaultType string
}

// NewResource inits a resource from the configuration.
func NewResource(cfg ResourceConfig) *Resource {
	rs := &Resource{
		actions:     cfg.Actions,
		handlers:    cfg.Handlers,
		renderers:   cfg.Renderers,
		parsers:     cfg.Parsers,
		defaultType: cfg.DefaultContentType,
	}

	if rs.actions == nil {
		rs.actions = DefaultActionMap()
	}
	if rs.renderers == nil {
		rs.renderers = DefaultRendererRegistry()
	}
	if rs.parsers == nil {
		rs.parsers = DefaultParserRegistry()
	}
	if rs.defaultType == "" {
		rs.defaultType = MimeJSON
	}

	return rs
}

// ServeBHTTP implements [Handler]. Taxonomy errors propagate to the transport
// boundary uncaught, the resource never writes an error body itself.
func (rs *Resource) ServeBHTTP(ctx context.Context, w ResponseWriter, r *http.Request) error {
	method := EffectiveMethod(r.Method, r.Header.Get(MethodOverrideHeader))

	action, ok := rs.actions[method]
	if !ok {
		return NewError(CodeMethodNotAllowed, errors.Wrapf(ErrMethodNotAllowed, "method %q", method)).
			WithHeader("Allow", strings.Join(rs.actions.Methods(), ", "))
	}

	handler, ok := rs.handlers[action]
	if !ok || handler == nil {
		return NewError(CodeInternalServerError,
			errors.Wrapf(ErrServerMisconfigured, "action %q", action))
	}

	ex := &Exchange{
		action:    action,
		method:    method,
		req:       r,
		w:         w,
		renderers: rs.renderers,
	}

	if method == http.MethodPost || method == http.MethodPut {
		if err := rs.parseBody(ex, r); err != nil {
			return err
		}
	}

	negotiated, err := Negotiate(method, ParseAccept(r.Header.Get("Accept")), rs.renderers, rs.defaultType)
	if err != nil {
		return err
	}
	ex.negotiated = negotiated

	if err := handler(ctx, ex); err != nil {
		return err
	}

	rs.afterAction(ex)

	if ex.rendered {
		w.Header().Set("Content-Type", ex.contentType)
		if _, err := io.WriteString(w, ex.response); err != nil {
			return errors.Wrap(err, "write rendered response")
		}
	}

	return nil
}

// parseBody validates and parses the request body for POST and PUT requests.
// The parsed structure replaces the raw body, action handlers observe it via
// [Exchange.Body].
func (rs *Resource) parseBody(ex *Exchange, r *http.Request) error {
	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		return NewError(CodeBadRequest,
			errors.Wrapf(ErrNoContentType, "%s requires a declared body type", ex.method))
	}

	mediaType := MediaType(contentType)
	parse, ok := rs.parsers.Lookup(mediaType)
	if !ok {
		return NewError(CodeUnsupportedMediaType,
			errors.Wrapf(ErrUnsupportedMediaType, "no parser registered for %q", mediaType))
	}

	raw, err := io.ReadAll(r.Body)
	if err != nil {
		return NewError(CodeBadRequest, errors.Wrap(err, "read request body"))
	}

	var parsed any
	if len(raw) > 0 {
		if parsed, err = parse(raw); err != nil {
			return NewError(CodeBadRequest, errors.Mark(err, ErrMalformedBody))
		}
	} else {
		// zero-length body: fall back to form fields the transport layer
		// already decoded.
		_ = r.ParseForm()
		parsed = formToPlain(r.PostForm)
	}

	if isEmptyValue(parsed) {
		return NewError(CodeBadRequest, errors.Wrap(ErrMalformedBody, "body parsed to nothing"))
	}

	ex.SetBody(parsed)

	return nil
}

// afterAction sets the post-action headers for state-changing methods.
func (rs *Resource) afterAction(ex *Exchange) {
	switch ex.method {
	case http.MethodPut, http.MethodPost, http.MethodDelete:
		ex.w.Header().Set("Cache-Control", "no-cache, no-store, max-age=0, must-revalidate")
	}
}

// Exchange is the per-request mediation state handed to action handlers. It
// is exclusively owned by one request and discarded afterwards, never pooled
// or shared.
type Exchange struct {
	action     string
	method     string
	req        *http.Request
	w          ResponseWriter
	body       any
	negotiated []string
	renderers  *RendererRegistry

	rendered    bool
	response    string
	contentType string
}

// Action returns the resolved action name.
func (ex *Exchange) Action() string { return ex.action }

// Method returns the effective method, override applied.
func (ex *Exchange) Method() string { return ex.method }

// Request returns the underlying transport request.
func (ex *Exchange) Request() *http.Request { return ex.req }

// Header returns the response header map.
func (ex *Exchange) Header() http.Header { return ex.w.Header() }

// Body returns the parsed request body, or whatever [Exchange.SetBody] stored
// last.
func (ex *Exchange) Body() any { return ex.body }

// SetBody replaces the request body with an already-parsed structure.
func (ex *Exchange) SetBody(v any) { ex.body = v }

// NegotiatedTypes returns the mime types acceptable for this request's
// response, most preferred first.
func (ex *Exchange) NegotiatedTypes() []string { return slices.Clone(ex.negotiated) }

// Response returns the currently rendered response body.
func (ex *Exchange) Response() string { return ex.response }

// Respond normalizes 'data' to plain data and renders it through the first
// negotiated renderer that succeeds. The rendered text becomes the response
// body and the winning type its Content-Type. Calling it again replaces the
// previous rendering.
//
// With an empty negotiated set (possible for non-GET methods only) Respond is
// a no-op: write-style operations are not required to return a body. A
// non-empty set where every renderer fails or is absent fails with
// [ErrRendererFailure].
func (ex *Exchange) Respond(data any) error {
	plain, err := normalizePlain(data)
	if err != nil {
		return NewError(CodeInternalServerError, err)
	}

	if len(ex.negotiated) == 0 {
		return nil
	}

	var renderErr error
	for _, mimeType := range ex.negotiated {
		render, ok := ex.renderers.Lookup(mimeType)
		if !ok {
			continue
		}

		out, err := render(plain)
		if err != nil {
			renderErr = errors.CombineErrors(renderErr, err)
			continue
		}

		ex.response = string(out)
		ex.contentType = mimeType
		ex.rendered = true

		return nil
	}

	return NewError(CodeInternalServerError, errors.CombineErrors(
		errors.Wrapf(ErrRendererFailure, "types: %s", strings.Join(ex.negotiated, ", ")),
		renderErr))
}

var _ Handler = &Resource{}
