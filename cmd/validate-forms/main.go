package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Gunvolt24/myform/pkg/validate"
)

// CLI-приложение для пакетной валидации данных формы (JSON или JSONL).
func main() {
	inputPath := flag.String("in", "", "path to input (.json or .jsonl). If empty, reads from stdin.")
	formatStr := flag.String("format", "auto", "input format: auto|json|jsonl")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	formValidator := validate.NewFormValidator()
	format := validate.InputFormat(*formatStr)

	var (
		summary validate.Summary
		err     error
	)
	// stdin вариант: считаем, что jsonl
	if *inputPath == "" {
		summary, err = validate.ValidateReader(ctx, formValidator, os.Stdin, format, os.Stdout)
	} else {
		summary, err = validate.ValidateFile(ctx, formValidator, *inputPath, format, os.Stdout)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "validation: %v (%s)\n", err, summary)
		stop()
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "validation ok (%s)\n", summary)
}
