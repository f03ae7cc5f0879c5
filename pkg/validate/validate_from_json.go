package validate

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/Gunvolt24/myform/internal/domain"
	"github.com/Gunvolt24/myform/internal/ports"
)

// ValidateFormFromJSON - валидация формы из JSON.
func ValidateFormFromJSON(validator ports.FormValidator, raw []byte) (*domain.FormData, error) {
	var data domain.FormData
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&data); err != nil {
		return nil, fmt.Errorf("invalid json: %w", err)
	}
	// гарантируем отсутствие данных после объекта
	if err := dec.Decode(new(struct{})); err != io.EOF {
		return nil, fmt.Errorf("invalid json: trailing data")
	}

	res := validator.ValidateAll(data)
	if !res.IsValid {
		names := make([]string, 0, len(res.ErrorFields))
		for _, f := range res.ErrorFields {
			names = append(names, string(f))
		}
		return nil, fmt.Errorf("%w: %s", ErrInvalidForm, strings.Join(names, ", "))
	}
	return &data, nil
}
