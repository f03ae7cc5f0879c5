package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/Gunvolt24/myform/config"
	"github.com/Gunvolt24/myform/internal/app"
	"github.com/Gunvolt24/myform/internal/domain"
	"github.com/Gunvolt24/myform/internal/ports"
	"github.com/Gunvolt24/myform/internal/usecase"
	"github.com/Gunvolt24/myform/internal/view/memory"
	"github.com/Gunvolt24/myform/pkg/logger"
	"github.com/joho/godotenv"
)

// Коды выхода.
const (
	exitOK      = 0
	exitFailed  = 1
	exitInvalid = 2
)

// Отправка формы без интерфейса: заполнить поля, отправить, дождаться терминального статуса.
func main() {
	os.Exit(run())
}

func run() int {
	_ = godotenv.Load(".env.local")

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		return exitFailed
	}

	fio := flag.String("fio", "", "ФИО, ровно три слова")
	phone := flag.String("phone", "", "телефон в формате +7(999)999-99-99")
	email := flag.String("email", "", "email в доменах Яндекса")
	baseURL := flag.String("base-url", cfg.Backend.BaseURL, "base URL of the backend")
	maxPolls := flag.Int("max-polls", cfg.Poll.MaxPolls, "poll limit per attempt, 0 - unlimited")
	timeout := flag.Duration("timeout", time.Minute, "overall deadline for the attempt")
	flag.Parse()

	cfg.Backend.BaseURL = *baseURL
	cfg.Poll.MaxPolls = *maxPolls

	logg, cleanup, err := logger.NewZapLogger(cfg.Logger.IsProd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		return exitFailed
	}
	defer func() { _ = cleanup() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, *timeout)
	defer cancel()

	view := memory.New()
	ctrl := app.NewFormController(ctx, &cfg, view, logg)
	defer ctrl.Close()

	ctrl.SetData(domain.FormData{Fio: *fio, Phone: *phone, Email: *email})
	ctrl.Submit(ctx)
	ctrl.Wait()

	snap := view.Snapshot()
	switch ctrl.State() {
	case usecase.StateIdle:
		var bad []string
		for _, f := range domain.Fields {
			if snap.InputHas(f, ports.ClassError) {
				bad = append(bad, string(f))
			}
		}
		fmt.Fprintf(os.Stderr, "invalid fields: %s\n", strings.Join(bad, ", "))
		return exitInvalid
	case usecase.StateDoneSuccess:
		fmt.Println(snap.Text)
		return exitOK
	case usecase.StateDoneError:
		fmt.Fprintf(os.Stderr, "error: %s\n", snap.Text)
		return exitFailed
	default:
		fmt.Fprintf(os.Stderr, "submission %s\n", ctrl.State())
		return exitFailed
	}
}
