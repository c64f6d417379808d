package observability

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/kbukum/gogskit/logger"
)

func collect(t *testing.T, reader *sdkmetric.ManualReader) map[string]metricdata.Metrics {
	t.Helper()
	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("collect: %v", err)
	}
	out := map[string]metricdata.Metrics{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			out[m.Name] = m
		}
	}
	return out
}

func TestConfigDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()
	if cfg.ServiceName != "gogskit" || cfg.Endpoint != "localhost:4318" || cfg.SampleRate != 1.0 {
		t.Errorf("unexpected defaults %+v", cfg)
	}
	if cfg.MetricInterval != 15*time.Second {
		t.Errorf("unexpected interval %v", cfg.MetricInterval)
	}
	bad := Config{SampleRate: 2}
	if err := bad.Validate(); err == nil {
		t.Error("expected error for sample rate above 1")
	}
}

func TestClientMetrics(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	defer func() { _ = mp.Shutdown(context.Background()) }()

	m, err := NewClientMetrics(mp.Meter("test"))
	if err != nil {
		t.Fatalf("NewClientMetrics: %v", err)
	}
	ctx := context.Background()
	m.RecordStart(ctx)
	m.RecordEnd(ctx, "users.get", "GET", 200, 20*time.Millisecond)
	m.RecordStart(ctx)
	m.RecordEnd(ctx, "users.get", "GET", 404, 10*time.Millisecond)
	m.RecordError(ctx, "users.get", "NOT_FOUND")

	got := collect(t, reader)

	requests, ok := got["gogs.client.requests"].Data.(metricdata.Sum[int64])
	if !ok {
		t.Fatalf("missing requests counter: %v", got)
	}
	var total int64
	for _, dp := range requests.DataPoints {
		total += dp.Value
	}
	if total != 2 {
		t.Errorf("expected 2 requests, got %d", total)
	}

	active, ok := got["gogs.client.active"].Data.(metricdata.Sum[int64])
	if !ok || len(active.DataPoints) != 1 || active.DataPoints[0].Value != 0 {
		t.Errorf("expected no calls in flight, got %+v", active)
	}

	errs, ok := got["gogs.client.errors"].Data.(metricdata.Sum[int64])
	if !ok || len(errs.DataPoints) != 1 || errs.DataPoints[0].Value != 1 {
		t.Errorf("expected one error, got %+v", errs)
	}

	hist, ok := got["gogs.client.duration"].Data.(metricdata.Histogram[float64])
	if !ok || len(hist.DataPoints) != 1 || hist.DataPoints[0].Count != 2 {
		t.Errorf("expected two duration samples, got %+v", hist)
	}
}

func TestSampler(t *testing.T) {
	tests := []struct {
		rate float64
		want string
	}{
		{1.0, sdktrace.AlwaysSample().Description()},
		{0, sdktrace.NeverSample().Description()},
		{0.5, sdktrace.TraceIDRatioBased(0.5).Description()},
	}
	for _, tc := range tests {
		if got := sampler(tc.rate).Description(); got != tc.want {
			t.Errorf("rate %v: expected %s, got %s", tc.rate, tc.want, got)
		}
	}
}

func TestNewResource(t *testing.T) {
	res, err := newResource(Config{ServiceName: "gogsctl", ServiceVersion: "1.0.0", Environment: "test"})
	if err != nil {
		t.Fatalf("newResource: %v", err)
	}
	found := map[string]string{}
	for _, kv := range res.Attributes() {
		found[string(kv.Key)] = kv.Value.Emit()
	}
	if found[AttrServiceName] != "gogsctl" || found["service.version"] != "1.0.0" {
		t.Errorf("unexpected attributes %v", found)
	}
}

func TestSetSpanError(t *testing.T) {
	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	_, span := tp.Tracer("test").Start(context.Background(), "op")
	SetSpanError(span, errors.New("boom"))
	span.End()

	ended := rec.Ended()
	if len(ended) != 1 {
		t.Fatalf("expected 1 span, got %d", len(ended))
	}
	if ended[0].Status().Code != codes.Error || ended[0].Status().Description != "boom" {
		t.Errorf("unexpected status %+v", ended[0].Status())
	}
	if len(ended[0].Events()) != 1 {
		t.Errorf("expected exception event, got %v", ended[0].Events())
	}
	SetSpanError(nil, errors.New("ignored"))
}

func TestStartSpan(t *testing.T) {
	ctx, span := StartSpan(context.Background(), "noop")
	defer span.End()
	if ctx == nil {
		t.Fatal("expected context")
	}
}

func TestSetup_Disabled(t *testing.T) {
	shutdown, err := Setup(context.Background(), Config{}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Errorf("unexpected shutdown error: %v", err)
	}
}

func TestSetup_InvalidConfig(t *testing.T) {
	if _, err := Setup(context.Background(), Config{Enabled: true, SampleRate: -1}, nil); err == nil {
		t.Error("expected validation error")
	}
}

func TestInitTracerAndMeter(t *testing.T) {
	ctx := context.Background()
	cfg := Config{ServiceName: "test", Endpoint: "localhost:4318", Insecure: true, SampleRate: 1, MetricInterval: time.Hour}

	prevTP, prevMP := otel.GetTracerProvider(), otel.GetMeterProvider()
	defer func() {
		otel.SetTracerProvider(prevTP)
		otel.SetMeterProvider(prevMP)
	}()

	var buf bytes.Buffer
	log := logger.NewWithWriter(&logger.Config{Level: "debug", Format: "json"}, "test", &buf)

	tp, err := InitTracer(ctx, cfg, log)
	if err != nil {
		t.Fatalf("InitTracer: %v", err)
	}
	mp, err := InitMeter(ctx, cfg, nil)
	if err != nil {
		t.Fatalf("InitMeter: %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	_ = tp.Shutdown(shutdownCtx)
	_ = mp.Shutdown(shutdownCtx)

	if !strings.Contains(buf.String(), "tracer initialized") {
		t.Errorf("expected tracer start-up to be logged, got %q", buf.String())
	}
}
