package rapp

import (
	"github.com/caarlos0/env/v11"
	"github.com/cockroachdb/errors"
	"go.uber.org/zap/zapcore"
)

// Environment defines the interface that all environment configurations must implement.
// Embed BaseEnvironment in your struct to satisfy this interface.
type Environment interface {
	port() int
	serviceName() string
	healthCheckPath() string
	logLevel() zapcore.Level
	otelExporter() string
	defaultContentType() string
}

// BaseEnvironment contains the required rapp environment variables.
// Embed this in your custom environment struct.
type BaseEnvironment struct {
	Port            int           `env:"RA_PORT" envDefault:"8080"`
	ServiceName     string        `env:"RA_SERVICE_NAME,required"`
	HealthCheckPath string        `env:"RA_HEALTH_CHECK_PATH" envDefault:"/healthz"`
	LogLevel        zapcore.Level `env:"RA_LOG_LEVEL" envDefault:"info"`
	OtelExporter    string        `env:"RA_OTEL_EXPORTER" envDefault:"stdout"`

	// DefaultContentType is the content negotiation fallback used for
	// requests that state no preference.
	DefaultContentType string `env:"RA_DEFAULT_CONTENT_TYPE" envDefault:"application/json"`
}

func (e BaseEnvironment) port() int {
	return e.Port
}

func (e BaseEnvironment) serviceName() string {
	return e.ServiceName
}

func (e BaseEnvironment) healthCheckPath() string {
	return e.HealthCheckPath
}

func (e BaseEnvironment) logLevel() zapcore.Level {
	return e.LogLevel
}

func (e BaseEnvironment) otelExporter() string {
	return e.OtelExporter
}

func (e BaseEnvironment) defaultContentType() string {
	return e.DefaultContentType
}

var _ Environment = BaseEnvironment{}

// ParseEnv parses environment variables into the given Environment type.
func ParseEnv[E Environment]() func() (E, error) {
	return func() (e E, err error) {
		if err := env.Parse(&e); err != nil {
			return e, errors.Wrap(err, "failed to parse environment")
		}
		return e, nil
	}
}
