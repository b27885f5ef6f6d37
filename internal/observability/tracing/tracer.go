// Package tracing integrates OpenTelemetry tracing: a process-wide
// tracer plus HTTP middleware that opens a server span per request.
package tracing

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("inkwell")

// GetTracer returns the application tracer for creating spans.
//
//	ctx, span := tracing.GetTracer().Start(ctx, "store.search")
//	defer span.End()
func GetTracer() trace.Tracer {
	return tracer
}
