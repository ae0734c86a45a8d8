package ports

import "context"

//go:generate mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Tracer opens a span per klse step: a task, a folder walk, a compile unit.
type Tracer interface {
	// Start opens a child span of the span carried by ctx, if any.
	Start(ctx context.Context, name string) (context.Context, Span)
}

// Span times one step for the --timings report.
type Span interface {
	// End completes the span.
	End()
	// RecordError marks the step as failed.
	RecordError(err error)
	// SetAttribute records a klse.* attribute such as the source or language.
	SetAttribute(key string, value any)
}
