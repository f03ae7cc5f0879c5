package ports

import (
	"context"

	"github.com/Gunvolt24/myform/internal/domain"
)

// StatusPoller - один запрос статуса отправки к бэкенду.
// Ошибка означает транспортный сбой (запрос не выполнен или ответ не разобран).
type StatusPoller interface {
	Poll(ctx context.Context, endpoint, query string) (domain.SubmissionStatus, error)
}

// RandomSource - источник случайности для выбора endpoint'а.
// *math/rand.Rand удовлетворяет интерфейсу.
type RandomSource interface {
	Intn(n int) int
}
