package telemetry

import "time"

// Config holds telemetry configuration for a service
type Config struct {
	ServiceName    string
	ServiceVersion string
	Environment    string
	// OTLPEndpoint is host:port of an OTLP/HTTP collector; empty keeps
	// spans in-process and metrics on /metrics only
	OTLPEndpoint   string
	MetricInterval time.Duration
}

var (
	OrchestrationServiceConfig = Config{
		ServiceName:    "orchestration-service",
		ServiceVersion: "1.0.0",
		MetricInterval: 30 * time.Second,
	}

	// fallbackConfig names instruments recorded outside an instrumented request
	fallbackConfig = Config{
		ServiceName:    "unknown",
		ServiceVersion: "1.0.0",
	}
)

func (c Config) WithOTLPEndpoint(endpoint string) Config {
	c.OTLPEndpoint = endpoint
	return c
}

func (c Config) WithServiceName(name string) Config {
	c.ServiceName = name
	return c
}

func (c Config) WithEnvironment(env string) Config {
	c.Environment = env
	return c
}
