package httpx

import (
	"net/http"
	"time"

	"github.com/Gunvolt24/myform/internal/ports"
	"github.com/gin-gonic/gin"
)

// quietPaths - служебные маршруты, которые не пишем в лог.
var quietPaths = map[string]struct{}{
	"/metrics": {},
	"/ping":    {},
}

// RequestLogger - access-лог имитатора бэкенда.
// Ответы 5xx идут уровнем error, 4xx - warn, остальное - info.
func RequestLogger(log ports.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if _, ok := quietPaths[route]; ok {
			return
		}
		if route == "" {
			route = c.Request.URL.Path
		}

		ctx := c.Request.Context()
		status := c.Writer.Status()
		const format = "%s %s -> %d (%s, %d bytes, ip=%s)"
		args := []any{c.Request.Method, route, status, time.Since(start), c.Writer.Size(), c.ClientIP()}

		switch {
		case status >= http.StatusInternalServerError:
			log.Errorf(ctx, format, args...)
		case status >= http.StatusBadRequest:
			log.Warnf(ctx, format, args...)
		default:
			log.Infof(ctx, format, args...)
		}
	}
}
