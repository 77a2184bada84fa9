package observability

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"go.opentelemetry.io/otel/attribute"
)

func TestSetupTracing_Stdout(t *testing.T) {
	ctx := context.Background()
	buf := &bytes.Buffer{}
	config := TracerConfig{
		ServiceName:    "vcproj-test",
		ServiceVersion: "1.0.0",
		Environment:    "test",
		ExporterType:   ExporterStdout,
		SamplingRate:   1.0,
		Writer:         buf,
	}

	tp, err := SetupTracing(ctx, config)
	if err != nil {
		t.Fatalf("SetupTracing() failed: %v", err)
	}

	_, span := Tracer("test").Start(ctx, "test-operation")
	span.SetAttributes(attribute.String("test.key", "test.value"))
	span.End()

	if err := ShutdownTracing(ctx, tp); err != nil {
		t.Fatalf("ShutdownTracing() failed: %v", err)
	}

	if !strings.Contains(buf.String(), "test-operation") {
		t.Errorf("stdout exporter output missing span name: %s", buf.String())
	}
}

func TestSetupTracing_None(t *testing.T) {
	ctx := context.Background()
	config := TracerConfig{
		ServiceName:  "vcproj-test",
		ExporterType: ExporterNone,
		SamplingRate: 0.0,
	}

	tp, err := SetupTracing(ctx, config)
	if err != nil {
		t.Fatalf("SetupTracing() with none exporter failed: %v", err)
	}
	defer func() {
		if err := ShutdownTracing(ctx, tp); err != nil {
			t.Errorf("ShutdownTracing() failed: %v", err)
		}
	}()
}

func TestSetupTracing_Unsupported(t *testing.T) {
	config := DefaultTracerConfig()
	config.ExporterType = "zipkin"

	if _, err := SetupTracing(context.Background(), config); err == nil {
		t.Error("expected an error for an unsupported exporter")
	}
}

func TestStartSpan(t *testing.T) {
	ctx := context.Background()

	tp, err := SetupTracing(ctx, DefaultTracerConfig())
	if err != nil {
		t.Fatalf("SetupTracing() failed: %v", err)
	}
	defer func() {
		if err := ShutdownTracing(ctx, tp); err != nil {
			t.Errorf("ShutdownTracing() failed: %v", err)
		}
	}()

	ctx, span := StartSpan(ctx, "vcproj", "test-span")
	defer span.End()

	if !span.SpanContext().IsValid() {
		t.Error("Span context should be valid")
	}

	AddEvent(ctx, "checkpoint", attribute.Int("step", 1))
	SetAttributes(ctx, attribute.Bool("ok", true))

	if SpanFromContext(ctx).SpanContext().SpanID() != span.SpanContext().SpanID() {
		t.Error("SpanFromContext should return the active span")
	}
}
