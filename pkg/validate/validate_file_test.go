package validate

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestValidateFile_JSON_Auto_OK(t *testing.T) {
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "one.json")
	if err := os.WriteFile(path, []byte(validFormJSON("Иван Иванов Иванович")), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	var out bytes.Buffer
	summary, err := ValidateFile(ctx, NewFormValidator(), path, FormatAuto, &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.String() != "1 valid / 0 invalid" {
		t.Fatalf("unexpected summary: %s", summary)
	}
	if strings.TrimSpace(out.String()) == "" {
		t.Fatalf("expected non-empty output")
	}
}

func TestValidateFile_JSONL_Auto_Mixed(t *testing.T) {
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "list.jsonl")
	content := validFormJSON("Иван Иванов Иванович") + "\n" +
		validFormJSON("Иван Иванов") + "\n" + // два слова
		"\n" +
		validFormJSON("Пётр Петров Петрович") + "\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	var out bytes.Buffer
	summary, err := ValidateFile(ctx, NewFormValidator(), path, FormatAuto, &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.Valid != 2 || summary.Invalid != 1 {
		t.Fatalf("unexpected summary: %s", summary)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 output lines, got %d", len(lines))
	}
	if !strings.Contains(lines[1], "Пётр") {
		t.Fatalf("unexpected second line: %s", lines[1])
	}
}

func TestValidateFile_JSON_Invalid(t *testing.T) {
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte(`{"fio":"x"}`), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	var out bytes.Buffer
	summary, err := ValidateFile(ctx, NewFormValidator(), path, FormatJSON, &out)
	if err == nil {
		t.Fatalf("expected error for invalid form")
	}
	if summary.String() != "0 valid / 1 invalid" {
		t.Fatalf("unexpected summary: %s", summary)
	}
	if out.Len() != 0 {
		t.Fatalf("output must be empty for invalid single JSON")
	}
}

func TestValidateFile_ExplicitFormat_IgnoresExt(t *testing.T) {
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "data.txt")
	if err := os.WriteFile(path, []byte(validFormJSON("Иван Иванов Иванович")+"\n"), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	var out bytes.Buffer
	summary, err := ValidateFile(ctx, NewFormValidator(), path, FormatJSONL, &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.Valid != 1 {
		t.Fatalf("unexpected summary: %s", summary)
	}
}

func TestValidateFile_OpenError(t *testing.T) {
	var out bytes.Buffer
	if _, err := ValidateFile(context.Background(), NewFormValidator(), "no-such-file.json", FormatAuto, &out); err == nil {
		t.Fatalf("expected open error")
	}
}

func TestValidateReader_UnsupportedFormat(t *testing.T) {
	var out bytes.Buffer
	_, err := ValidateReader(context.Background(), NewFormValidator(), strings.NewReader("{}"), InputFormat("yaml"), &out)
	if err == nil || !strings.Contains(err.Error(), "unsupported format") {
		t.Fatalf("expected unsupported format error, got: %v", err)
	}
}

func TestValidateJSONLStream_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	_, err := ValidateJSONLStream(ctx, NewFormValidator(), strings.NewReader(validFormJSON("Иван Иванов Иванович")+"\n"), &out)
	if err == nil {
		t.Fatalf("expected context error")
	}
}
