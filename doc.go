// Package rhttp provides content-negotiated RESTful request mediation with
// error-returning action handlers.
//
// # Overview
//
// rhttp sits between an HTTP mux and application logic. Given an inbound
// request it resolves which logical action to invoke from the request method
// (honoring the X-HTTP-Method-Override header), validates and parses the
// request body against a registered content type, negotiates an acceptable
// response representation against the client's Accept header, and renders
// outgoing plain data through a mime-type-keyed renderer registry.
//
// A minimal example:
//
//	res := rhttp.NewResource(rhttp.ResourceConfig{
//	    Handlers: map[string]rhttp.ActionFunc{
//	        "index": func(ctx context.Context, ex *rhttp.Exchange) error {
//	            return ex.Respond(map[string]any{"items": []any{}})
//	        },
//	    },
//	})
//
//	mux := rhttp.NewServeMux()
//	mux.Resource("/items", res)
//
// # Actions
//
// Each [Resource] carries an [ActionMap] from HTTP method to a named action,
// and a handler per action name. [DefaultActionMap] maps GET to "index", POST
// to "create", PUT to "update" and DELETE to "delete". A request whose
// effective method is absent from the map is answered with 405 and an Allow
// header listing the mapped methods. A mapped action without a registered
// handler is a programming error and fails the request with a 500.
//
// The effective method is the uppercased X-HTTP-Method-Override header value
// when present, else the uppercased transport method.
//
// # Body parsing
//
// For POST and PUT requests the body is parsed by the [ParserRegistry] entry
// registered for the request's media type. A missing Content-Type header is a
// 400, an unregistered media type a 415, and an empty parse result a 400. The
// parsed structure replaces the raw body and is available to action handlers
// via [Exchange.Body]. GET and DELETE requests skip body handling entirely.
//
// # Content negotiation
//
// The Accept header is parsed into an ordered mime-to-quality view. An empty
// header, or a lone */* entry, negotiates to the configured default content
// type. Otherwise entries are filtered in preference order against the
// [RendererRegistry]; unsupported types are dropped silently. A GET request
// left with no acceptable type fails with 406 listing the supported types;
// other methods tolerate an empty set since they need not return a body.
//
// # Rendering
//
// [Exchange.Respond] normalizes its argument to plain data (nested maps,
// slices and scalars), then walks the negotiated types in order and uses the
// first renderer that succeeds. The rendered text becomes the response body
// and the winning type its Content-Type. If every renderer fails the request
// fails with 500.
//
// The built-in JSON renderer encodes compact JSON and then pretty-prints it
// with a string-literal-aware scanner using tab indentation, see
// [RenderJSON]. A YAML renderer and JSON, YAML and form parsers are included
// in the default registries.
//
// # Error Handling
//
// Handlers return errors instead of writing error responses. Taxonomy errors
// carry an HTTP status [Code] and propagate uncaught to the transport
// boundary where [ToStd] turns them into a status response:
//
//   - [*Error] (created with [NewError]): uses the error's code, and any
//     headers attached with [Error.WithHeader] (the 405 path attaches Allow)
//   - other errors: logged and converted to 500 Internal Server Error
//
// Sentinel errors such as [ErrUnsupportedMediaType] and [ErrNotAcceptable]
// identify kinds that share a status code; match them with errors.Is.
//
// # Buffered responses
//
// Handlers write to a [ResponseWriter] whose output is buffered until the
// handler returns successfully. A handler error discards everything written
// so far, so error responses are never mixed with partial bodies.
//
// # ServeMux
//
// [ServeMux] binds resources and plain handlers to path patterns on top of
// the standard library mux, with middleware applied in registration order:
//
//   - [ServeMux.Resource] registers a [Resource] for all methods of a path
//   - [ServeMux.Handle] and [ServeMux.HandleFunc] register plain handlers
//   - [ServeMux.Mount] registers a handler for a whole sub-tree with the
//     prefix stripped
//   - [ServeMux.Use] registers middleware (must be called before Handle)
//
// The rapp subpackage provides a batteries-included application kit wiring
// environment configuration, zap logging, OpenTelemetry tracing and an HTTP
// server around a ServeMux.
package rhttp
