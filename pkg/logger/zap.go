package logger

import (
	"context"

	"github.com/Gunvolt24/myform/internal/ports"
	"github.com/Gunvolt24/myform/pkg/ctxmeta"
	"go.uber.org/zap"
)

var _ ports.Logger = (*ZapLogger)(nil)

// ZapLogger - реализация ports.Logger поверх zap.SugaredLogger.
// Метаданные из контекста (request_id, attempt_id, trace_id) добавляются полями записи.
type ZapLogger struct {
	base  *zap.Logger
	sugar *zap.SugaredLogger
}

// NewZapLogger - production (JSON) или development (консоль) конфигурация.
// Возвращает функцию cleanup, которая сбрасывает буферы.
func NewZapLogger(isProd bool) (*ZapLogger, func() error, error) {
	var (
		logger *zap.Logger
		err    error
	)

	if isProd {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		return nil, nil, err
	}

	z := FromZap(logger)
	cleanup := func() error { return z.base.Sync() }
	return z, cleanup, nil
}

// NewZapFileLogger - как NewZapLogger, но пишет в файл (терминал занят интерфейсом).
func NewZapFileLogger(isProd bool, path string) (*ZapLogger, func() error, error) {
	cfg := zap.NewDevelopmentConfig()
	if isProd {
		cfg = zap.NewProductionConfig()
	}
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}

	logger, err := cfg.Build()
	if err != nil {
		return nil, nil, err
	}

	z := FromZap(logger)
	return z, func() error { return z.base.Sync() }, nil
}

// FromZap - обёртка над готовым *zap.Logger (например, zap.NewNop() в тестах).
func FromZap(logger *zap.Logger) *ZapLogger {
	return &ZapLogger{base: logger, sugar: logger.Sugar()}
}

func (z *ZapLogger) Infof(ctx context.Context, format string, args ...any) {
	z.with(ctx).Infof(format, args...)
}

func (z *ZapLogger) Warnf(ctx context.Context, format string, args ...any) {
	z.with(ctx).Warnf(format, args...)
}

func (z *ZapLogger) Errorf(ctx context.Context, format string, args ...any) {
	z.with(ctx).Errorf(format, args...)
}

// with - логгер с полями из контекста; без метаданных возвращается базовый.
func (z *ZapLogger) with(ctx context.Context) *zap.SugaredLogger {
	if kv := ctxmeta.LogFields(ctx); len(kv) > 0 {
		return z.sugar.With(kv...)
	}
	return z.sugar
}

func (z *ZapLogger) Base() *zap.Logger           { return z.base }
func (z *ZapLogger) Sugared() *zap.SugaredLogger { return z.sugar }
