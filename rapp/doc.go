// Package rapp provides a batteries-included application kit around rhttp.
//
// It wires the pieces a small RESTful service needs: environment-based
// configuration (caarlos0/env), structured logging (zap), OpenTelemetry
// tracing with an otelhttp server wrapper, a buffered rhttp mux and an HTTP
// server with lifecycle management through uber's fx.
//
// A minimal application:
//
//	type Env struct{ rapp.BaseEnvironment }
//
//	func main() {
//	    rapp.NewApp[Env](func(m *rapp.Mux) {
//	        m.Resource("/items", rhttp.NewResource(rhttp.ResourceConfig{
//	            Handlers: map[string]rhttp.ActionFunc{
//	                "index": func(ctx context.Context, ex *rhttp.Exchange) error {
//	                    return ex.Respond(map[string]any{"items": []any{}})
//	                },
//	            },
//	        }))
//	    }).Run()
//	}
//
// Required environment variables:
//
//	| Variable                | Required | Default          | Meaning                              |
//	|-------------------------|----------|------------------|--------------------------------------|
//	| RA_SERVICE_NAME         | Yes      |                  | Service name for logs and traces     |
//	| RA_PORT                 | No       | 8080             | HTTP listen port                     |
//	| RA_LOG_LEVEL            | No       | info             | zap log level                        |
//	| RA_OTEL_EXPORTER        | No       | stdout           | Trace exporter: "stdout" or "none"   |
//	| RA_DEFAULT_CONTENT_TYPE | No       | application/json | Content negotiation fallback type    |
//	| RA_HEALTH_CHECK_PATH    | No       | /healthz         | Liveness endpoint path               |
//
// The default content type feeds straight into the resources' negotiation
// fallback when they are built through [NewResourceConfig].
package rapp
