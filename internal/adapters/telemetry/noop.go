package telemetry

import (
	"context"

	"go.trai.ch/klse/internal/core/ports"
)

// NoOpTracer is a ports.Tracer whose spans record nothing.
type NoOpTracer struct{}

var _ ports.Tracer = NoOpTracer{}

// NewNoOpTracer returns a tracer that discards every span.
func NewNoOpTracer() NoOpTracer {
	return NoOpTracer{}
}

// Start returns ctx unchanged and a span that ignores every call.
func (NoOpTracer) Start(ctx context.Context, _ string) (context.Context, ports.Span) {
	return ctx, noOpSpan{}
}

type noOpSpan struct{}

func (noOpSpan) End()                     {}
func (noOpSpan) RecordError(error)        {}
func (noOpSpan) SetAttribute(string, any) {}
