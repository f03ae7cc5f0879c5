package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Gunvolt24/myform/config"
	"github.com/Gunvolt24/myform/internal/app"
	"github.com/joho/godotenv"
)

// Имитатор бэкенда формы: отдаёт статические статусы из /json/*.json.
func main() {
	_ = godotenv.Load(".env.local")

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, cleanup, err := app.Bootstrap(ctx, &cfg)
	if err != nil {
		panic(err)
	}

	runErr := a.Run(ctx)
	cleanup()
	if runErr != nil {
		os.Exit(1)
	}
}
