package rest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Gunvolt24/myform/internal/domain"
	"github.com/Gunvolt24/myform/internal/ports"
	"github.com/Gunvolt24/myform/pkg/ctxmeta"
	"github.com/Gunvolt24/myform/pkg/httpx"
	"github.com/Gunvolt24/myform/pkg/telemetry"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

var _ ports.StatusPoller = (*StatusClient)(nil)

// ErrUnexpectedStatusCode - бэкенд ответил не 2xx.
var ErrUnexpectedStatusCode = errors.New("unexpected status code")

// maxStatusBody - ответ со статусом крошечный, всё сверх лимита отбрасываем.
const maxStatusBody = 64 * 1024

// StatusClient - HTTP-клиент опроса статуса отправки формы.
type StatusClient struct {
	baseURL string
	http    *http.Client
}

// NewStatusClient - timeout ограничивает один запрос опроса целиком.
func NewStatusClient(baseURL string, timeout time.Duration) *StatusClient {
	return NewStatusClientWithHTTP(baseURL, &http.Client{Timeout: timeout})
}

func NewStatusClientWithHTTP(baseURL string, hc *http.Client) *StatusClient {
	return &StatusClient{baseURL: strings.TrimRight(baseURL, "/"), http: hc}
}

// Poll - GET {baseURL}{endpoint}?{query}. Любая ошибка здесь - транспортный сбой.
func (c *StatusClient) Poll(ctx context.Context, endpoint, query string) (st domain.SubmissionStatus, err error) {
	ctx, span := telemetry.Tracer().Start(ctx, "form.poll",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("form.endpoint", endpoint)),
	)
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		} else {
			span.SetAttributes(attribute.String("form.status", string(st.Kind)))
		}
		span.End()
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url(endpoint, query), http.NoBody)
	if err != nil {
		return domain.SubmissionStatus{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if id, ok := ctxmeta.AttemptIDFromContext(ctx); ok {
		req.Header.Set(httpx.HeaderRequestID, id)
	}
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := c.http.Do(req)
	if err != nil {
		return domain.SubmissionStatus{}, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxStatusBody))
		return domain.SubmissionStatus{}, fmt.Errorf("%w: %d", ErrUnexpectedStatusCode, resp.StatusCode)
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxStatusBody))
	if err != nil {
		return domain.SubmissionStatus{}, fmt.Errorf("read body: %w", err)
	}
	return domain.ParseStatus(raw)
}

// url - абсолютный endpoint используется как есть, относительный склеивается с baseURL.
func (c *StatusClient) url(endpoint, query string) string {
	u := endpoint
	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		u = c.baseURL + "/" + strings.TrimLeft(strings.TrimPrefix(endpoint, "."), "/")
	}
	if query == "" {
		return u
	}
	sep := "?"
	if strings.Contains(u, "?") {
		sep = "&"
	}
	return u + sep + query
}
