package validate_test

import (
	"testing"

	"github.com/Gunvolt24/myform/internal/domain"
	"github.com/Gunvolt24/myform/pkg/validate"
)

func TestValidatePhone(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{"sum_24", "+7(111)222-33-11", true},
		{"sum_47", "+7(222)444-55-66", false},
		{"sum_exactly_30", "+7(995)000-00-00", true},
		{"sum_31", "+7(996)000-00-00", false},
		{"empty", "", false},
		{"no_plus", "7(111)222-33-11", false},
		{"wrong_country", "+8(111)222-33-11", false},
		{"no_dashes", "+7(111)2223311", false},
		{"no_brackets", "+7111222-33-11", false},
		{"too_long", "+7(111)222-33-111", false},
		{"trailing_space", "+7(111)222-33-11 ", false},
		{"letters", "+7(abc)222-33-11", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := validate.ValidatePhone(tt.value); got != tt.want {
				t.Fatalf("ValidatePhone(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestValidateFio(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{"three_words", "Иван Иванов Иванович", true},
		{"two_words", "Иван Иванов", false},
		{"trimmed", "  Иван Иванов Иванович  ", true},
		{"four_words", "Иван Иванов Иванович Младший", false},
		{"double_space_inside", "Иван  Иванов Иванович", false},
		{"tab_is_not_separator", "Иван\tИванов Иванович", false},
		{"empty", "", false},
		{"spaces_only", "   ", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := validate.ValidateFio(tt.value); got != tt.want {
				t.Fatalf("ValidateFio(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestValidateEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{"ya_ru", "a@ya.ru", true},
		{"gmail", "a@gmail.com", false},
		{"yandex_com_dotted", "ivan.ivanov@yandex.com", true},
		{"yandex_kz", "user@yandex.kz", true},
		{"yandex_by", "user@yandex.by", true},
		{"yandex_ua", "user@yandex.ua", true},
		{"quoted_local", `"ivan ivanov"@yandex.ru`, true},
		{"upper_domain", "a@YA.RU", false},
		{"subdomain", "a@mail.ya.ru", false},
		{"domain_suffix", "a@ya.ru.com", false},
		{"double_dot", "a..b@ya.ru", false},
		{"leading_dot", ".a@ya.ru", false},
		{"leading_space", " a@ya.ru", false},
		{"empty_local", "@ya.ru", false},
		{"empty", "", false},
		{"nbsp_in_local", "a\u00a0b@ya.ru", false},
		{"vtab_in_local", "a\vb@ya.ru", false},
		{"line_separator_in_local", "a\u2028b@ya.ru", false},
		{"bom_in_local", "a\ufeffb@ya.ru", false},
		{"ideographic_space_in_local", "a\u3000b@ya.ru", false},
		{"cr_in_quoted", "\"a\rb\"@ya.ru", false},
		{"paragraph_separator_in_quoted", "\"a\u2029b\"@ya.ru", false},
		{"nbsp_in_quoted", "\"a\u00a0b\"@ya.ru", true},
		{"cyrillic_local", "иван@yandex.ru", true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := validate.ValidateEmail(tt.value); got != tt.want {
				t.Fatalf("ValidateEmail(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestFormValidator_ValidateAll(t *testing.T) {
	v := validate.NewFormValidator()

	t.Run("valid form", func(t *testing.T) {
		res := v.ValidateAll(domain.FormData{
			Fio:   "Иван Иванов Иванович",
			Phone: "+7(111)222-33-11",
			Email: "a@ya.ru",
		})
		if !res.IsValid || len(res.ErrorFields) != 0 {
			t.Fatalf("expected valid result, got %+v", res)
		}
		if res.ErrorFields == nil {
			t.Fatalf("ErrorFields must be empty, not nil")
		}
	})

	t.Run("all invalid keeps order", func(t *testing.T) {
		res := v.ValidateAll(domain.FormData{})
		if res.IsValid {
			t.Fatalf("expected invalid result")
		}
		want := []domain.Field{domain.FieldFio, domain.FieldPhone, domain.FieldEmail}
		if len(res.ErrorFields) != len(want) {
			t.Fatalf("errorFields: want %v, got %v", want, res.ErrorFields)
		}
		for i := range want {
			if res.ErrorFields[i] != want[i] {
				t.Fatalf("errorFields: want %v, got %v", want, res.ErrorFields)
			}
		}
	})

	t.Run("single field", func(t *testing.T) {
		res := v.ValidateAll(domain.FormData{
			Fio:   "Иван Иванов Иванович",
			Phone: "+7(222)444-55-66",
			Email: "a@ya.ru",
		})
		if res.IsValid || len(res.ErrorFields) != 1 || res.ErrorFields[0] != domain.FieldPhone {
			t.Fatalf("expected only phone error, got %+v", res)
		}
	})

	t.Run("phone and email", func(t *testing.T) {
		res := v.ValidateAll(domain.FormData{
			Fio:   "Иван Иванов Иванович",
			Phone: "bad",
			Email: "a@gmail.com",
		})
		if res.IsValid || len(res.ErrorFields) != 2 ||
			res.ErrorFields[0] != domain.FieldPhone || res.ErrorFields[1] != domain.FieldEmail {
			t.Fatalf("expected [phone email], got %+v", res)
		}
	})
}
