package observability

import (
	"context"
	"errors"
	"testing"
)

func setupTestTracing(t *testing.T) context.Context {
	t.Helper()
	ctx := context.Background()
	tp, err := SetupTracing(ctx, DefaultTracerConfig())
	if err != nil {
		t.Fatalf("SetupTracing() failed: %v", err)
	}
	t.Cleanup(func() {
		if err := ShutdownTracing(ctx, tp); err != nil {
			t.Errorf("ShutdownTracing() failed: %v", err)
		}
	})
	return ctx
}

func TestStartProjectLoadSpan(t *testing.T) {
	ctx := setupTestTracing(t)

	ctx, span := StartProjectLoadSpan(ctx, "/src/app/app.vcxproj")
	RecordSchema(ctx, "msbuild", "VS2013")
	RecordModelSize(ctx, 4, 27)
	defer span.End()

	if !span.SpanContext().IsValid() {
		t.Error("Span context should be valid")
	}
}

func TestStartFiltersParseSpan(t *testing.T) {
	ctx := setupTestTracing(t)

	_, span := StartFiltersParseSpan(ctx, "/src/app/app.vcxproj.filters")
	defer span.End()

	if !span.SpanContext().IsValid() {
		t.Error("Span context should be valid")
	}
}

func TestStartModelReloadSpan(t *testing.T) {
	ctx := setupTestTracing(t)

	_, span := StartModelReloadSpan(ctx, "/src/app/app.vcproj")
	defer span.End()

	if !span.SpanContext().IsValid() {
		t.Error("Span context should be valid")
	}
}

func TestEndSpanWithError(t *testing.T) {
	ctx := setupTestTracing(t)

	_, failed := StartProjectLoadSpan(ctx, "/missing.vcxproj")
	EndSpanWithError(failed, errors.New("file not found"))

	_, ok := StartProjectLoadSpan(ctx, "/ok.vcxproj")
	EndSpanWithError(ok, nil)
}
