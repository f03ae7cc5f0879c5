package ports

import "github.com/Gunvolt24/myform/internal/domain"

// FormValidator - проверка полей формы. Чистая функция: не паникует и не возвращает ошибок.
type FormValidator interface {
	ValidateAll(data domain.FormData) domain.ValidationResult
}
