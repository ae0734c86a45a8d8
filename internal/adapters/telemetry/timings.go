package telemetry

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/klse/internal/core/ports"
)

// InstrumentationName names the tracer used for every klse span.
const InstrumentationName = "klse"

// TimingReporter implements sdktrace.SpanProcessor and logs the duration of
// every finished span.
type TimingReporter struct {
	logger ports.Logger
}

var _ sdktrace.SpanProcessor = (*TimingReporter)(nil)

// NewTimingReporter returns a TimingReporter writing to logger.
func NewTimingReporter(logger ports.Logger) *TimingReporter {
	return &TimingReporter{logger: logger}
}

// OnStart is called when a span starts.
func (r *TimingReporter) OnStart(context.Context, sdktrace.ReadWriteSpan) {}

// OnEnd is called when a span ends.
func (r *TimingReporter) OnEnd(s sdktrace.ReadOnlySpan) {
	if !s.SpanContext().IsValid() {
		return
	}
	r.logger.Info(FormatTiming(s.Name(), s.EndTime().Sub(s.StartTime()), s.Status().Code == codes.Error))
}

// ForceFlush does nothing.
func (r *TimingReporter) ForceFlush(context.Context) error {
	return nil
}

// Shutdown does nothing.
func (r *TimingReporter) Shutdown(context.Context) error {
	return nil
}

// FormatTiming renders one line of the timing report.
func FormatTiming(name string, d time.Duration, failed bool) string {
	line := fmt.Sprintf("%s took %s", name, d.Round(time.Millisecond))
	if failed {
		line += " (failed)"
	}
	return line
}

// Setup returns the tracer for this run. With timings enabled, spans go to a
// tracer provider reporting through logger; otherwise they are discarded.
// The returned function shuts the provider down.
func Setup(logger ports.Logger, timings bool) (ports.Tracer, func(context.Context) error) {
	if !timings {
		return NewNoOpTracer(), func(context.Context) error { return nil }
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(NewTimingReporter(logger)),
	)
	return NewOTelTracer(tp), tp.Shutdown
}
