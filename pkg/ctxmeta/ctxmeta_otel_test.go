//go:build otel

package ctxmeta_test

import (
	"context"
	"testing"

	"github.com/Gunvolt24/myform/pkg/ctxmeta"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

func TestSpanIDs_FromActiveSpan(t *testing.T) {
	tp := sdktrace.NewTracerProvider()
	ctx, span := tp.Tracer("form").Start(context.Background(), "poll")
	defer span.End()

	sc := span.SpanContext()

	traceID, ok := ctxmeta.TraceIDFromContext(ctx)
	require.True(t, ok)
	require.Equal(t, sc.TraceID().String(), traceID)

	spanID, ok := ctxmeta.SpanIDFromContext(ctx)
	require.True(t, ok)
	require.Equal(t, sc.SpanID().String(), spanID)

	ctx = ctxmeta.WithAttemptID(ctx, "att-1")
	require.Equal(t,
		[]any{"attempt_id", "att-1", "trace_id", sc.TraceID().String(), "span_id", sc.SpanID().String()},
		ctxmeta.LogFields(ctx))
}

func TestSpanIDs_NoSpan(t *testing.T) {
	_, ok := ctxmeta.TraceIDFromContext(context.Background())
	require.False(t, ok)
	require.Empty(t, ctxmeta.LogFields(context.Background()))
}
