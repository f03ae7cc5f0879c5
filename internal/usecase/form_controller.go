package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/Gunvolt24/myform/internal/domain"
	"github.com/Gunvolt24/myform/internal/ports"
	"github.com/Gunvolt24/myform/pkg/ctxmeta"
	"github.com/Gunvolt24/myform/pkg/metrics"
	"github.com/google/uuid"
)

// SuccessText - текст в области вывода после успешной отправки.
const SuccessText = "Success"

// ReasonPollLimit - текст ошибки, когда исчерпан лимит опросов в статусе progress.
const ReasonPollLimit = "Превышено число попыток опроса"

// DefaultEndpoints - фикстуры, между которыми случайно выбирается адрес опроса.
var DefaultEndpoints = []string{"/json/error.json", "/json/progress.json", "/json/success.json"}

// State - состояние попытки отправки.
type State int

const (
	StateIdle State = iota
	StateValidating
	StateRequesting
	StateDoneSuccess
	StateDoneError
	StateAbandoned
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateValidating:
		return "validating"
	case StateRequesting:
		return "requesting"
	case StateDoneSuccess:
		return "done_success"
	case StateDoneError:
		return "done_error"
	case StateAbandoned:
		return "abandoned"
	default:
		return "unknown"
	}
}

// busy - попытка ещё не завершена.
func (s State) busy() bool {
	return s == StateValidating || s == StateRequesting
}

// Option - необязательная настройка контроллера.
type Option func(*FormController)

// WithEndpoints - адреса опроса; пустой список игнорируется.
func WithEndpoints(endpoints ...string) Option {
	return func(c *FormController) {
		if len(endpoints) > 0 {
			c.endpoints = append([]string(nil), endpoints...)
		}
	}
}

// WithMaxPolls - предел опросов в рамках одной попытки (0 - без ограничения).
func WithMaxPolls(n int) Option {
	return func(c *FormController) {
		if n > 0 {
			c.maxPolls = n
		}
	}
}

// WithBaseContext - родительский контекст времени жизни контроллера.
func WithBaseContext(ctx context.Context) Option {
	return func(c *FormController) {
		if ctx != nil {
			c.base = ctx
		}
	}
}

// FormController - связывает форму с валидатором и опросом бэкенда.
// Одновременно выполняется не более одной попытки отправки.
type FormController struct {
	view      ports.FormView
	validator ports.FormValidator
	poller    ports.StatusPoller
	rnd       ports.RandomSource
	log       ports.Logger

	endpoints []string
	maxPolls  int
	base      context.Context

	lifetime context.Context
	cancel   context.CancelFunc

	mu     sync.Mutex // защищает state, closed, rnd и wg.Add
	state  State
	closed bool
	wg     sync.WaitGroup
}

// NewFormController - DI-конструктор.
func NewFormController(
	view ports.FormView,
	validator ports.FormValidator,
	poller ports.StatusPoller,
	rnd ports.RandomSource,
	log ports.Logger,
	opts ...Option,
) *FormController {
	c := &FormController{
		view:      view,
		validator: validator,
		poller:    poller,
		rnd:       rnd,
		log:       log,
		endpoints: DefaultEndpoints,
		base:      context.Background(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.lifetime, c.cancel = context.WithCancel(c.base)
	return c
}

// Bind - подписывает Submit на событие отправки формы.
func (c *FormController) Bind() {
	c.view.Trigger().OnSubmit(func() {
		c.Submit(c.lifetime)
	})
}

// State - текущее состояние попытки.
func (c *FormController) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// GetData - значения полей как есть, без trim.
// ValidateFio при этом обрезает пробелы, так что "  a b c  " пройдёт проверку и уйдёт на бэкенд с пробелами.
func (c *FormController) GetData() domain.FormData {
	var d domain.FormData
	for _, f := range domain.Fields {
		d = d.With(f, c.view.Input(f).Value())
	}
	return d
}

// SetData - записывает значения в поля; пустые значения очищают поле.
func (c *FormController) SetData(d domain.FormData) {
	for _, f := range domain.Fields {
		c.view.Input(f).SetValue(d.Value(f))
	}
}

// Validate - снимает отметки об ошибках, проверяет текущие данные и помечает невалидные поля.
func (c *FormController) Validate(ctx context.Context) domain.ValidationResult {
	return c.validate(ctx, c.GetData())
}

func (c *FormController) validate(ctx context.Context, d domain.FormData) domain.ValidationResult {
	for _, f := range domain.Fields {
		c.view.Input(f).RemoveClass(ports.ClassError)
	}

	res := c.validator.ValidateAll(d)
	for _, f := range res.ErrorFields {
		c.view.Input(f).AddClass(ports.ClassError)
		metrics.FormFieldErrors.WithLabelValues(string(f)).Inc()
	}

	if res.IsValid {
		metrics.FormValidations.WithLabelValues("valid").Inc()
	} else {
		metrics.FormValidations.WithLabelValues("invalid").Inc()
		c.log.Infof(ctx, "form validation failed fields=%v", res.ErrorFields)
	}
	return res
}

// Submit - очищает область вывода, валидирует форму и при успехе запускает опрос бэкенда.
// Опрос идёт в отдельной горутине; дождаться его можно через Wait.
func (c *FormController) Submit(ctx context.Context) {
	c.mu.Lock()
	if c.state.busy() {
		st := c.state
		c.mu.Unlock()
		c.log.Warnf(ctx, "submit ignored: attempt in progress state=%s", st)
		return
	}
	if c.closed || c.lifetime.Err() != nil {
		c.mu.Unlock()
		c.log.Warnf(ctx, "submit ignored: controller closed")
		return
	}
	c.state = StateValidating
	c.mu.Unlock()

	out := c.view.Output()
	out.SetText("")
	out.RemoveClass(ports.ClassError)
	out.RemoveClass(ports.ClassSuccess)

	data := c.GetData()
	if res := c.validate(ctx, data); !res.IsValid {
		c.setState(StateIdle)
		return
	}

	c.request(ctx, data)
}

// Wait - блокирует до завершения горутины опроса.
func (c *FormController) Wait() {
	c.wg.Wait()
}

// Close - отменяет контекст жизни контроллера и ждёт остановки опроса.
func (c *FormController) Close() {
	c.mu.Lock()
	c.closed = true
	c.mu.Unlock()

	c.cancel()
	c.wg.Wait()
}

func (c *FormController) setState(s State) {
	c.mu.Lock()
	c.state = s
	c.mu.Unlock()
}

// request - переводит форму в Requesting и запускает цикл опроса.
func (c *FormController) request(ctx context.Context, data domain.FormData) {
	attemptID := uuid.NewString()
	attemptCtx, stop := context.WithCancel(ctxmeta.WithAttemptID(c.lifetime, attemptID))
	// отмена контекста вызывающего тоже прерывает попытку
	unlink := context.AfterFunc(ctx, stop)

	query := data.Encode()

	c.mu.Lock()
	if c.closed {
		c.state = StateIdle
		c.mu.Unlock()
		unlink()
		stop()
		return
	}
	c.state = StateRequesting
	c.wg.Add(1)
	c.mu.Unlock()

	c.view.Trigger().Disable()
	c.log.Infof(attemptCtx, "submission started")

	go func() {
		defer c.wg.Done()
		defer stop()
		defer unlink()
		c.pollLoop(attemptCtx, query)
	}()
}

// pollLoop - опрашивает бэкенд до терминального статуса, сбоя или отмены.
func (c *FormController) pollLoop(ctx context.Context, query string) {
	out := c.view.Output()

	for polls := 1; ; polls++ {
		endpoint := c.pickEndpoint()
		metrics.SubmissionPolls.WithLabelValues(endpoint).Inc()

		st, err := c.poller.Poll(ctx, endpoint, query)
		if err != nil {
			if ctx.Err() != nil {
				c.abandon(ctx, "cancelled")
				return
			}
			c.log.Errorf(ctx, "status poll failed endpoint=%s err=%v", endpoint, err)
			c.abandon(ctx, "transport failure")
			return
		}

		switch st.Kind {
		case domain.StatusSuccess:
			out.RemoveClass(ports.ClassProgress)
			c.view.Trigger().Enable()
			out.SetText(SuccessText)
			out.AddClass(ports.ClassSuccess)
			c.finish(ctx, StateDoneSuccess, "success")
			return

		case domain.StatusError:
			c.fail(ctx, st.Reason)
			return

		case domain.StatusProgress:
			out.AddClass(ports.ClassProgress)
			if c.maxPolls > 0 && polls >= c.maxPolls {
				c.log.Warnf(ctx, "poll limit reached polls=%d", polls)
				c.fail(ctx, ReasonPollLimit)
				return
			}
			if !sleepCtx(ctx, st.Timeout) {
				c.abandon(ctx, "cancelled")
				return
			}

		default:
			c.log.Errorf(ctx, "unknown status %q endpoint=%s", st.Kind, endpoint)
			c.abandon(ctx, "unknown status")
			return
		}
	}
}

func (c *FormController) fail(ctx context.Context, reason string) {
	out := c.view.Output()
	out.RemoveClass(ports.ClassProgress)
	c.view.Trigger().Enable()
	out.SetText(reason)
	out.AddClass(ports.ClassError)
	c.finish(ctx, StateDoneError, "error")
}

// abandon - попытка брошена: кнопка остаётся выключенной, как и индикатор прогресса.
func (c *FormController) abandon(ctx context.Context, why string) {
	c.log.Warnf(ctx, "submission abandoned: %s", why)
	c.finish(ctx, StateAbandoned, "abandoned")
}

func (c *FormController) finish(ctx context.Context, s State, outcome string) {
	c.setState(s)
	metrics.SubmissionsFinished.WithLabelValues(outcome).Inc()
	c.log.Infof(ctx, "submission finished state=%s", s)
}

func (c *FormController) pickEndpoint() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.endpoints[c.rnd.Intn(len(c.endpoints))]
}

// sleepCtx - ждёт d или отмены контекста; false при отмене.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
