package validate

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/Gunvolt24/myform/internal/ports"
)

// ValidateJSONLStream - читает JSONL, валидирует каждую строку, валидные пишет в writer
// каноническим JSON одной строкой. Пустые строки пропускаются, невалидные считаются.
func ValidateJSONLStream(ctx context.Context, validator ports.FormValidator, ir io.Reader, ow io.Writer) (Summary, error) {
	var res Summary

	scanner := bufio.NewScanner(ir)
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		data, err := ValidateFormFromJSON(validator, line)
		if err != nil {
			res.Invalid++
			continue
		}

		marshal, _ := json.Marshal(data)
		if _, err := ow.Write(append(marshal, '\n')); err != nil {
			return res, fmt.Errorf("write valid line: %w", err)
		}
		res.Valid++
	}
	if err := scanner.Err(); err != nil {
		return res, fmt.Errorf("scan: %w", err)
	}
	return res, nil
}
