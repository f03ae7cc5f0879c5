package httpx

import (
	"github.com/Gunvolt24/myform/pkg/ctxmeta"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// HeaderRequestID - заголовок, через который клиент статусов передаёт id попытки.
const HeaderRequestID = "X-Request-ID"

// maxRequestIDLen - более длинные значения от клиента не принимаем.
const maxRequestIDLen = 128

// acceptableRequestID - непустой, не длиннее maxRequestIDLen, только печатный ASCII без пробелов.
func acceptableRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLen {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] <= ' ' || id[i] > '~' {
			return false
		}
	}
	return true
}

// RequestIDMiddleware берёт id попытки из X-Request-ID или выдаёт новый UUID.
// Id попадает в контекст запроса и возвращается в ответном заголовке.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if !acceptableRequestID(id) {
			id = uuid.NewString()
		}
		c.Header(HeaderRequestID, id)
		c.Request = c.Request.WithContext(ctxmeta.WithRequestID(c.Request.Context(), id))
		c.Next()
	}
}
