// Пакет ctxmeta - нейтральный слой для работы с метаданными, которые
// прокидываются через context.Context (request_id, attempt_id, trace_id).
// HTTP-слой, контроллер формы и логгер зависят от него, но не друг от друга.
package ctxmeta

import "context"

type ctxKey string

const (
	// Ключи контекста (неэкспортируемый тип, чтобы избежать коллизий).
	KeyRequestID ctxKey = "request_id"
	KeyAttemptID ctxKey = "attempt_id"
)

// WithRequestID кладёт request_id в контекст (если пусто - ничего не делает).
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return withString(ctx, KeyRequestID, requestID)
}

// RequestIDFromContext достаёт request_id из контекста.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	return stringFrom(ctx, KeyRequestID)
}

// WithAttemptID кладёт идентификатор попытки отправки формы.
func WithAttemptID(ctx context.Context, attemptID string) context.Context {
	return withString(ctx, KeyAttemptID, attemptID)
}

// AttemptIDFromContext достаёт идентификатор попытки отправки формы.
func AttemptIDFromContext(ctx context.Context) (string, bool) {
	return stringFrom(ctx, KeyAttemptID)
}

func withString(ctx context.Context, key ctxKey, v string) context.Context {
	if ctx == nil || v == "" {
		return ctx
	}
	return context.WithValue(ctx, key, v)
}

func stringFrom(ctx context.Context, key ctxKey) (string, bool) {
	if ctx == nil {
		return "", false
	}
	if v, ok := ctx.Value(key).(string); ok && v != "" {
		return v, true
	}
	return "", false
}

// TraceIDFromContext - trace_id активного спана; только в сборке с тегом otel.
func TraceIDFromContext(ctx context.Context) (string, bool) {
	id, _, ok := spanIDs(ctx)
	return id, ok
}

// SpanIDFromContext - span_id активного спана; только в сборке с тегом otel.
func SpanIDFromContext(ctx context.Context) (string, bool) {
	_, id, ok := spanIDs(ctx)
	return id, ok
}

// LogFields - пары ключ/значение всех метаданных контекста для структурного лога.
// Пустой результат, если метаданных нет.
func LogFields(ctx context.Context) []any {
	var kv []any
	if id, ok := RequestIDFromContext(ctx); ok {
		kv = append(kv, string(KeyRequestID), id)
	}
	if id, ok := AttemptIDFromContext(ctx); ok {
		kv = append(kv, string(KeyAttemptID), id)
	}
	if traceID, spanID, ok := spanIDs(ctx); ok {
		kv = append(kv, "trace_id", traceID, "span_id", spanID)
	}
	return kv
}
