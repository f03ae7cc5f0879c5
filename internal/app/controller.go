package app

import (
	"context"
	"math/rand"
	"time"

	"github.com/Gunvolt24/myform/config"
	"github.com/Gunvolt24/myform/internal/ports"
	rest "github.com/Gunvolt24/myform/internal/transport/http"
	"github.com/Gunvolt24/myform/internal/usecase"
	"github.com/Gunvolt24/myform/pkg/metrics"
	"github.com/Gunvolt24/myform/pkg/validate"
)

// NewFormController - контроллер формы поверх view с HTTP-опросом бэкенда из конфигурации.
// Общая сборка для CLI и TUI.
func NewFormController(ctx context.Context, cfg *config.Config, view ports.FormView, log ports.Logger) *usecase.FormController {
	metrics.MustRegister()

	seed := cfg.Poll.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	poller := rest.NewStatusClient(cfg.Backend.BaseURL, cfg.Backend.RequestTimeout)

	return usecase.NewFormController(
		view,
		validate.NewFormValidator(),
		poller,
		rand.New(rand.NewSource(seed)),
		log,
		usecase.WithEndpoints(cfg.Backend.Endpoints...),
		usecase.WithMaxPolls(cfg.Poll.MaxPolls),
		usecase.WithBaseContext(ctx),
	)
}
