//go:build !otel || gopls

package ctxmeta

import "context"

// Без тега otel спанов нет.
func spanIDs(context.Context) (traceID, spanID string, ok bool) { return "", "", false }
