package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix - префикс переменных окружения.
const EnvPrefix = "MYFORM"

type HTTP struct {
	Addr              string        `default:":8080" envconfig:"ADDR"`
	GinMode           string        `default:"debug" envconfig:"GIN_MODE"`
	ReadTimeout       time.Duration `default:"10s" envconfig:"READ_TIMEOUT"`
	WriteTimeout      time.Duration `default:"10s" envconfig:"WRITE_TIMEOUT"`
	ReadHeaderTimeout time.Duration `default:"5s" envconfig:"READ_HEADER_TIMEOUT"`
	IdleTimeout       time.Duration `default:"60s" envconfig:"IDLE_TIMEOUT"`
	HandlerTimeout    time.Duration `default:"3s" envconfig:"HANDLER_TIMEOUT"`
	GracefulTimeout   time.Duration `default:"5s" envconfig:"GRACEFUL_TIMEOUT"`
}

type Tracing struct {
	Enabled     bool    `default:"false" envconfig:"OTEL_ENABLED"`
	ServiceName string  `default:"myform" envconfig:"OTEL_SERVICE_NAME"`
	Endpoint    string  `default:"jaeger:4318" envconfig:"OTEL_ENDPOINT"`
	SampleRatio float64 `default:"1" envconfig:"OTEL_SAMPLE_RATIO"`
}

type Logger struct {
	IsProd bool `default:"false" envconfig:"IS_PROD"`
}

// Fixtures - статические ответы бэкенда. Пустой Dir - встроенные фикстуры.
type Fixtures struct {
	Dir           string        `envconfig:"DIR"`
	CacheCapacity int           `default:"16" envconfig:"CACHE_CAPACITY"`
	CacheTTL      time.Duration `default:"1m" envconfig:"CACHE_TTL"`
}

// Backend - куда контроллер формы ходит за статусом.
type Backend struct {
	BaseURL        string        `default:"http://localhost:8080" envconfig:"BASE_URL"`
	Endpoints      []string      `default:"/json/error.json,/json/progress.json,/json/success.json" envconfig:"ENDPOINTS"`
	RequestTimeout time.Duration `default:"5s" envconfig:"REQUEST_TIMEOUT"`
}

// Poll - параметры опроса. MaxPolls = 0 - без ограничения, Seed = 0 - от текущего времени.
type Poll struct {
	MaxPolls int   `default:"0" envconfig:"MAX_POLLS"`
	Seed     int64 `default:"0" envconfig:"SEED"`
}

type Config struct {
	HTTP     HTTP
	Tracing  Tracing
	Logger   Logger
	Fixtures Fixtures
	Backend  Backend
	Poll     Poll
}

// Load - конфигурация из окружения с префиксом MYFORM.
func Load() (Config, error) {
	return LoadWithPrefix(EnvPrefix)
}

// LoadWithPrefix - то же с произвольным префиксом (удобно в тестах).
func LoadWithPrefix(prefix string) (Config, error) {
	var c Config

	if err := envconfig.Process(prefix, &c); err != nil {
		return Config{}, err
	}

	return c, nil
}
