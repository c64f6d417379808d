package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/kbukum/gogskit/logger"
)

// InitMeter initializes the OpenTelemetry meter provider and installs it globally.
// The provider must be shut down on exit. log may be nil.
func InitMeter(ctx context.Context, cfg Config, log *logger.Logger) (*sdkmetric.MeterProvider, error) {
	opts := []otlpmetrichttp.Option{
		otlpmetrichttp.WithEndpoint(cfg.Endpoint),
	}
	if cfg.Insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}

	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	res, err := newResource(cfg)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	readerOpts := []sdkmetric.PeriodicReaderOption{}
	if cfg.MetricInterval > 0 {
		readerOpts = append(readerOpts, sdkmetric.WithInterval(cfg.MetricInterval))
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, readerOpts...)),
		sdkmetric.WithResource(res),
	)

	otel.SetMeterProvider(mp)

	orNop(log).Debug("meter initialized", logger.Fields(
		"service", cfg.ServiceName,
		"endpoint", cfg.Endpoint,
		"interval", cfg.MetricInterval.String(),
	))

	return mp, nil
}

// Meter returns a named meter from the global provider.
func Meter(name string) metric.Meter {
	return otel.Meter(name)
}

// ClientMetrics holds the instruments recorded for every Gogs API call.
type ClientMetrics struct {
	requests metric.Int64Counter
	duration metric.Float64Histogram
	active   metric.Int64UpDownCounter
	errors   metric.Int64Counter
}

// NewClientMetrics creates the client instruments on meter.
func NewClientMetrics(meter metric.Meter) (*ClientMetrics, error) {
	requests, err := meter.Int64Counter("gogs.client.requests",
		metric.WithDescription("Total number of Gogs API calls"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating gogs.client.requests counter: %w", err)
	}

	duration, err := meter.Float64Histogram("gogs.client.duration",
		metric.WithDescription("Duration of Gogs API calls in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating gogs.client.duration histogram: %w", err)
	}

	active, err := meter.Int64UpDownCounter("gogs.client.active",
		metric.WithDescription("Number of Gogs API calls in flight"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating gogs.client.active gauge: %w", err)
	}

	errorsTotal, err := meter.Int64Counter("gogs.client.errors",
		metric.WithDescription("Failed Gogs API calls by error code"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating gogs.client.errors counter: %w", err)
	}

	return &ClientMetrics{
		requests: requests,
		duration: duration,
		active:   active,
		errors:   errorsTotal,
	}, nil
}

// RecordStart increments the in-flight call count.
func (m *ClientMetrics) RecordStart(ctx context.Context) {
	m.active.Add(ctx, 1)
}

// RecordEnd decrements the in-flight count and records a completed call.
// status is the HTTP status, or 0 when no response was received.
func (m *ClientMetrics) RecordEnd(ctx context.Context, operation, method string, status int, duration time.Duration) {
	attrs := metric.WithAttributes(
		attribute.String("operation", operation),
		attribute.String("method", method),
		attribute.Int("status", status),
	)
	m.active.Add(ctx, -1)
	m.requests.Add(ctx, 1, attrs)
	m.duration.Record(ctx, duration.Seconds(), metric.WithAttributes(
		attribute.String("operation", operation),
		attribute.String("method", method),
	))
}

// RecordError records a failed call by error code.
func (m *ClientMetrics) RecordError(ctx context.Context, operation, code string) {
	m.errors.Add(ctx, 1, metric.WithAttributes(
		attribute.String("operation", operation),
		attribute.String("code", code),
	))
}
