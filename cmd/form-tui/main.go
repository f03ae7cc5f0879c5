package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/Gunvolt24/myform/config"
	"github.com/Gunvolt24/myform/internal/app"
	"github.com/Gunvolt24/myform/internal/view/memory"
	"github.com/Gunvolt24/myform/internal/view/tui"
	"github.com/Gunvolt24/myform/pkg/logger"
)

// Интерактивная форма в терминале.
func main() {
	_ = godotenv.Load(".env.local")

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	logPath := flag.String("log", "form-tui.log", "log file path")
	baseURL := flag.String("base-url", cfg.Backend.BaseURL, "base URL of the backend")
	flag.Parse()
	cfg.Backend.BaseURL = *baseURL

	logg, cleanup, err := logger.NewZapFileLogger(cfg.Logger.IsProd, *logPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())

	view := memory.New()
	ctrl := app.NewFormController(ctx, &cfg, view, logg)
	ctrl.Bind()

	p := tea.NewProgram(tui.New(view), tea.WithAltScreen())
	_, runErr := p.Run()

	cancel()
	ctrl.Close()
	_ = cleanup()

	if runErr != nil {
		fmt.Printf("Error running application: %v\n", runErr)
		os.Exit(1)
	}
}
