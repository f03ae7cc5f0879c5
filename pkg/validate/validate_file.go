package validate

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Gunvolt24/myform/internal/ports"
)

// InputFormat допустимые значения.
type InputFormat string

const (
	FormatAuto  InputFormat = "auto"
	FormatJSON  InputFormat = "json"
	FormatJSONL InputFormat = "jsonl"
)

// Summary - итог пакетной валидации.
type Summary struct {
	Valid   int
	Invalid int
}

func (s Summary) String() string {
	return fmt.Sprintf("%d valid / %d invalid", s.Valid, s.Invalid)
}

// ValidateFile - валидирует файл с формами как JSON или JSONL и пишет валидные записи в writer.
func ValidateFile(ctx context.Context, validator ports.FormValidator, filePath string, format InputFormat, ow io.Writer) (Summary, error) {
	format = resolveFormat(format, filePath)

	file, err := os.Open(filePath)
	if err != nil {
		return Summary{}, fmt.Errorf("open file: %w", err)
	}
	defer file.Close()

	return ValidateReader(ctx, validator, file, format, ow)
}

// ValidateReader - то же, что ValidateFile, но для произвольного reader'а (например, stdin).
// FormatAuto здесь трактуется как JSONL.
func ValidateReader(ctx context.Context, validator ports.FormValidator, ir io.Reader, format InputFormat, ow io.Writer) (Summary, error) {
	switch format {
	case FormatJSON:
		raw, err := io.ReadAll(ir)
		if err != nil {
			return Summary{}, fmt.Errorf("read input: %w", err)
		}
		data, err := ValidateFormFromJSON(validator, raw)
		if err != nil {
			return Summary{Invalid: 1}, err
		}
		canonical, _ := json.Marshal(data)
		if _, err := ow.Write(append(canonical, '\n')); err != nil {
			return Summary{}, fmt.Errorf("write json: %w", err)
		}
		return Summary{Valid: 1}, nil

	case FormatJSONL, FormatAuto:
		return ValidateJSONLStream(ctx, validator, ir, ow)

	default:
		return Summary{}, fmt.Errorf("unsupported format: %s", format)
	}
}

// resolveFormat - auto по расширению файла, по умолчанию JSON.
func resolveFormat(format InputFormat, filePath string) InputFormat {
	if format != FormatAuto {
		return format
	}
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".jsonl":
		return FormatJSONL
	default:
		return FormatJSON
	}
}
