package cli

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var cliTracer = otel.Tracer("hoopstats/internal/interfaces/cli")

// startCommandSpan opens the root span of one command run; use-case spans
// only attach when one exists.
func startCommandSpan(ctx context.Context, path string) (context.Context, trace.Span) {
	if ctx == nil {
		ctx = context.Background()
	}
	return cliTracer.Start(ctx, "cli "+path,
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(attribute.String("cli.command", path)),
	)
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
