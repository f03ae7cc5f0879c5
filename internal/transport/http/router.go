package rest

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/Gunvolt24/myform/internal/fixtures"
	"github.com/Gunvolt24/myform/internal/ports"
	"github.com/Gunvolt24/myform/pkg/httpx"
	"github.com/Gunvolt24/myform/pkg/metrics"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// fixtureReader - источник тел фикстур (fixtures.Store).
type fixtureReader interface {
	Get(ctx context.Context, name string) ([]byte, error)
}

// Handler - HTTP-обработчики имитируемого бэкенда: отдают статические статусы.
type Handler struct {
	fixtures fixtureReader
	log      ports.Logger
	timeout  time.Duration
}

// NewHandler - timeout <= 0 отключает ограничение на чтение фикстуры.
func NewHandler(fixtures fixtureReader, log ports.Logger, timeout time.Duration) *Handler {
	return &Handler{fixtures: fixtures, log: log, timeout: timeout}
}

// NewRouter - otelServiceName пустой, если трейсинг выключен.
func NewRouter(h *Handler, otelServiceName string) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true

	r.Use(gin.Recovery())
	if otelServiceName != "" {
		r.Use(otelgin.Middleware(otelServiceName))
	}
	r.Use(httpx.RequestIDMiddleware())
	r.Use(httpx.RequestLogger(h.log))

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "method not allowed"})
	})

	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.GET("/json/:fixture", h.getFixture)

	return r
}

func (h *Handler) getFixture(c *gin.Context) {
	name := c.Param("fixture")

	ctx := c.Request.Context()
	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}

	form := httpx.ParseFormQuery(c)
	h.log.Infof(ctx, "fixture requested name=%s form_fields=%v", name, httpx.FilledFields(form))

	body, err := h.fixtures.Get(ctx, name)
	switch {
	case err == nil:
		metrics.FixtureRequests.WithLabelValues(name, strconv.Itoa(http.StatusOK)).Inc()
		c.Data(http.StatusOK, "application/json; charset=utf-8", body)
	case errors.Is(err, fixtures.ErrFixtureNotFound):
		metrics.FixtureRequests.WithLabelValues("unknown", strconv.Itoa(http.StatusNotFound)).Inc()
		c.JSON(http.StatusNotFound, gin.H{"error": "fixture not found"})
	default:
		h.log.Errorf(ctx, "fixture read failed name=%s err=%v", name, err)
		metrics.FixtureRequests.WithLabelValues(name, strconv.Itoa(http.StatusInternalServerError)).Inc()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
