package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// StatusKind - тип ответа бэкенда.
type StatusKind string

const (
	StatusSuccess  StatusKind = "success"
	StatusError    StatusKind = "error"
	StatusProgress StatusKind = "progress"
)

// ErrInvalidStatus - тело ответа не является корректным статусом.
var ErrInvalidStatus = errors.New("invalid submission status")

// SubmissionStatus - разобранный ответ бэкенда.
// Reason заполнен только для StatusError, Timeout - только для StatusProgress.
type SubmissionStatus struct {
	Kind    StatusKind
	Reason  string
	Timeout time.Duration
}

// statusPayload - формат ответа на проводе; timeout задаётся в миллисекундах.
type statusPayload struct {
	Status  StatusKind `json:"status"`
	Reason  string     `json:"reason,omitempty"`
	Timeout *float64   `json:"timeout,omitempty"`
}

// incomingPayload - разбор ответа: reason принимается любым JSON-значением.
type incomingPayload struct {
	Status  StatusKind      `json:"status"`
	Reason  json.RawMessage `json:"reason"`
	Timeout *float64        `json:"timeout"`
}

// ReasonMissing - текст ошибки, если бэкенд не прислал reason.
const ReasonMissing = "undefined"

// reasonText - строка как есть, отсутствие поля - ReasonMissing, null - пусто,
// прочие значения (числа, bool, объекты) - их JSON-запись.
func reasonText(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ReasonMissing
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	if string(raw) == "null" {
		return ""
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return string(raw)
	}
	return buf.String()
}

// ParseStatus разбирает JSON вида
// {"status":"success"} | {"status":"error","reason":"..."} | {"status":"progress","timeout":100}.
func ParseStatus(raw []byte) (SubmissionStatus, error) {
	var p incomingPayload
	if err := json.NewDecoder(bytes.NewReader(raw)).Decode(&p); err != nil {
		return SubmissionStatus{}, fmt.Errorf("%w: %v", ErrInvalidStatus, err)
	}

	switch p.Status {
	case StatusSuccess:
		return SubmissionStatus{Kind: StatusSuccess}, nil
	case StatusError:
		return SubmissionStatus{Kind: StatusError, Reason: reasonText(p.Reason)}, nil
	case StatusProgress:
		var ms float64
		if p.Timeout != nil && *p.Timeout > 0 {
			ms = *p.Timeout
		}
		return SubmissionStatus{Kind: StatusProgress, Timeout: time.Duration(ms * float64(time.Millisecond))}, nil
	default:
		return SubmissionStatus{}, fmt.Errorf("%w: unknown status %q", ErrInvalidStatus, p.Status)
	}
}

// MarshalJSON кодирует статус обратно в формат на проводе.
func (s SubmissionStatus) MarshalJSON() ([]byte, error) {
	p := statusPayload{Status: s.Kind}
	switch s.Kind {
	case StatusError:
		p.Reason = s.Reason
	case StatusProgress:
		ms := float64(s.Timeout) / float64(time.Millisecond)
		p.Timeout = &ms
	}
	return json.Marshal(p)
}
