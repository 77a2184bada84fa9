package observability

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	// TracerName is the tracer name for vcproj operations
	TracerName = "github.com/willibrandon/vcproj"
)

// Common attribute keys
const (
	AttrProjectPath   = attribute.Key("vcproj.project.path")
	AttrSchema        = attribute.Key("vcproj.schema")
	AttrToolchain     = attribute.Key("vcproj.toolchain")
	AttrConfiguration = attribute.Key("vcproj.configuration")
	AttrTargetCount   = attribute.Key("vcproj.target.count")
	AttrFileCount     = attribute.Key("vcproj.file.count")
	AttrOperation     = attribute.Key("vcproj.operation")
)

// StartProjectLoadSpan starts a span covering one project load.
func StartProjectLoadSpan(ctx context.Context, projectPath string) (context.Context, trace.Span) {
	return StartSpan(ctx, TracerName, "project.load",
		trace.WithAttributes(
			AttrProjectPath.String(projectPath),
			AttrOperation.String("load"),
		),
	)
}

// StartFiltersParseSpan starts a span for reading a .vcxproj.filters file.
func StartFiltersParseSpan(ctx context.Context, filtersPath string) (context.Context, trace.Span) {
	return StartSpan(ctx, TracerName, "filters.parse",
		trace.WithAttributes(
			attribute.String("vcproj.filters.path", filtersPath),
		),
	)
}

// StartModelReloadSpan starts a span for a Holder reload.
func StartModelReloadSpan(ctx context.Context, projectPath string) (context.Context, trace.Span) {
	return StartSpan(ctx, TracerName, "model.reload",
		trace.WithAttributes(
			AttrProjectPath.String(projectPath),
			AttrOperation.String("reload"),
		),
	)
}

// RecordSchema records the detected schema and toolchain on the current span.
func RecordSchema(ctx context.Context, schema, toolchain string) {
	SetAttributes(ctx, AttrSchema.String(schema), AttrToolchain.String(toolchain))
}

// RecordModelSize records target and file counts on the current span.
func RecordModelSize(ctx context.Context, targets, files int) {
	SetAttributes(ctx, AttrTargetCount.Int(targets), AttrFileCount.Int(files))
}

// EndSpanWithError ends a span with an error status
func EndSpanWithError(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}
