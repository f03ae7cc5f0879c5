package httpx

import (
	"github.com/Gunvolt24/myform/internal/domain"
	"github.com/gin-gonic/gin"
)

// ParseFormQuery - читает поля формы из query (fio, phone, email).
// Отсутствующие параметры дают пустую строку, лишние игнорируются.
func ParseFormQuery(c *gin.Context) domain.FormData {
	values := make(map[string]string, len(domain.Fields))
	for _, f := range domain.Fields {
		values[string(f)] = c.Query(string(f))
	}
	return domain.FormDataFromMap(values)
}

// FilledFields - имена непустых полей; в логах не печатаем сами значения.
func FilledFields(d domain.FormData) []string {
	out := make([]string, 0, len(domain.Fields))
	for _, f := range domain.Fields {
		if d.Value(f) != "" {
			out = append(out, string(f))
		}
	}
	return out
}
