package validate

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/Gunvolt24/myform/internal/domain"
	"github.com/Gunvolt24/myform/internal/ports"
	"github.com/go-playground/validator/v10"
)

// Проверка, что FormValidator удовлетворяет интерфейсу FormValidator.
var _ ports.FormValidator = (*FormValidator)(nil)

// ErrInvalidForm - базовая (sentinel error) ошибка валидации формы.
var ErrInvalidForm = errors.New("form validation failed")

var (
	// Локальная часть: сегменты через точку или строка в кавычках; домены только Яндекса.
	// Пробельные символы - полный юникодный набор (\s в RE2 только ASCII),
	// в кавычках запрещены переводы строк, включая U+2028 и U+2029.
	emailRe = regexp.MustCompile(`^(([^<>()\[\]\\.,;:\s\v\p{Z}\x{FEFF}@"]+(\.[^<>()\[\]\\.,;:\s\v\p{Z}\x{FEFF}@"]+)*)|("[^\n\r\x{2028}\x{2029}]+"))@(ya\.ru|yandex\.ru|yandex\.ua|yandex\.by|yandex\.kz|yandex\.com)$`)
	phoneRe = regexp.MustCompile(`^\+7\(\d{3}\)\d{3}-\d{2}-\d{2}$`)
)

// maxPhoneDigitSum - предельная сумма цифр телефона (включительно).
const maxPhoneDigitSum = 30

// ValidateEmail - email в доменах ya.ru, yandex.ru, yandex.ua, yandex.by, yandex.kz, yandex.com.
// Без нормализации: регистр учитывается, пробелы не обрезаются.
func ValidateEmail(value string) bool {
	return emailRe.MatchString(value)
}

// ValidateFio - ровно три непустых слова через одиночный пробел после trim.
func ValidateFio(value string) bool {
	parts := strings.Split(strings.TrimSpace(value), " ")
	if len(parts) != 3 {
		return false
	}
	for _, p := range parts {
		if p == "" {
			return false
		}
	}
	return true
}

// ValidatePhone - формат +7(999)999-99-99 и сумма всех цифр не больше 30.
// Например, для +7(111)222-33-11 сумма 24, для +7(222)444-55-66 - 47.
func ValidatePhone(value string) bool {
	if !phoneRe.MatchString(value) {
		return false
	}
	return digitSum(value) <= maxPhoneDigitSum
}

func digitSum(s string) int {
	sum := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			sum += int(r - '0')
		}
	}
	return sum
}

// FormValidator - валидация всей формы поверх go-playground/validator
// с собственными правилами fio, ru_phone, yandex_email (см. теги domain.FormData).
type FormValidator struct {
	v *validator.Validate
}

// NewFormValidator - конструктор FormValidator.
func NewFormValidator() *FormValidator {
	v := validator.New()
	// В ошибках используем имена из json-тегов: fio, phone, email.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	mustRegister(v, "fio", ValidateFio)
	mustRegister(v, "ru_phone", ValidatePhone)
	mustRegister(v, "yandex_email", ValidateEmail)

	return &FormValidator{v: v}
}

func mustRegister(v *validator.Validate, tag string, fn func(string) bool) {
	err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
		return fn(fl.Field().String())
	})
	if err != nil {
		panic(err)
	}
}

// ValidateAll - проверяет поля в порядке fio, phone, email.
// ErrorFields никогда не nil, порядок совпадает с domain.Fields.
func (fv *FormValidator) ValidateAll(data domain.FormData) domain.ValidationResult {
	failed := make(map[domain.Field]bool, len(domain.Fields))

	if err := fv.v.Struct(data); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				failed[domain.Field(fe.Field())] = true
			}
		}
	}

	res := domain.ValidationResult{IsValid: true, ErrorFields: []domain.Field{}}
	for _, f := range domain.Fields {
		if failed[f] {
			res.IsValid = false
			res.ErrorFields = append(res.ErrorFields, f)
		}
	}
	return res
}
