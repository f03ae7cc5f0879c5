package domain

import (
	"net/url"
	"strings"
)

// Field - имя поля формы.
type Field string

const (
	FieldFio   Field = "fio"
	FieldPhone Field = "phone"
	FieldEmail Field = "email"
)

// Fields - поля формы в порядке валидации и сериализации.
var Fields = []Field{FieldFio, FieldPhone, FieldEmail}

// FormData - значения полей формы в том виде, в каком их ввёл пользователь (без trim).
type FormData struct {
	Fio   string `json:"fio"   validate:"fio"`
	Phone string `json:"phone" validate:"ru_phone"`
	Email string `json:"email" validate:"yandex_email"`
}

// FormDataFromMap собирает FormData из произвольного набора ключей.
// Ключи кроме fio, phone, email игнорируются, отсутствующие дают пустую строку.
func FormDataFromMap(m map[string]string) FormData {
	return FormData{
		Fio:   m[string(FieldFio)],
		Phone: m[string(FieldPhone)],
		Email: m[string(FieldEmail)],
	}
}

// Value возвращает значение поля по имени.
func (d FormData) Value(f Field) string {
	switch f {
	case FieldFio:
		return d.Fio
	case FieldPhone:
		return d.Phone
	case FieldEmail:
		return d.Email
	default:
		return ""
	}
}

// With возвращает копию данных с изменённым полем.
func (d FormData) With(f Field, value string) FormData {
	switch f {
	case FieldFio:
		d.Fio = value
	case FieldPhone:
		d.Phone = value
	case FieldEmail:
		d.Email = value
	}
	return d
}

// Encode сериализует данные в query-строку fio=...&phone=...&email=...
// Каждый компонент кодируется как encodeURIComponent: пробел -> %20, а не "+",
// символы !*'() и -_.~ не кодируются.
func (d FormData) Encode() string {
	parts := make([]string, 0, len(Fields))
	for _, f := range Fields {
		parts = append(parts, escapeComponent(string(f))+"="+escapeComponent(d.Value(f)))
	}
	return strings.Join(parts, "&")
}

// uriComponentUnescape - QueryEscape кодирует то, что encodeURIComponent оставляет как есть.
var uriComponentUnescape = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%2A", "*",
	"%27", "'",
	"%28", "(",
	"%29", ")",
)

func escapeComponent(s string) string {
	return uriComponentUnescape.Replace(url.QueryEscape(s))
}

// ValidationResult - итог валидации формы.
// ErrorFields содержит каждое не прошедшее проверку поле не более одного раза, в порядке Fields.
type ValidationResult struct {
	IsValid     bool    `json:"isValid"`
	ErrorFields []Field `json:"errorFields"`
}

// HasError сообщает, попало ли поле в список ошибок.
func (r ValidationResult) HasError(f Field) bool {
	for _, ef := range r.ErrorFields {
		if ef == f {
			return true
		}
	}
	return false
}
