// Package observability wires OpenTelemetry tracing and metrics for the
// Gogs client.
//
// The HTTP client's tracing and metrics stages use the global providers, so
// an application only has to initialise them once:
//
//	shutdown, err := observability.Setup(ctx, cfg, log)
//	defer shutdown(ctx)
//
//	metrics, err := observability.NewClientMetrics(observability.Meter(observability.InstrumentationName))
package observability
