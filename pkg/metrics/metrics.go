package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	FormValidations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "form_validations_total",
			Help: "Number of form validations",
		},
		[]string{"result"}, // valid|invalid
	)
	FormFieldErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "form_field_errors_total",
			Help: "Number of failed field checks",
		},
		[]string{"field"},
	)
)

var (
	SubmissionPolls = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "form_submission_polls_total",
			Help: "Number of status polls sent to the backend",
		},
		[]string{"endpoint"},
	)
	SubmissionsFinished = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "form_submissions_finished_total",
			Help: "Number of finished submission attempts",
		},
		[]string{"outcome"}, // success|error|abandoned
	)
)

var (
	FixtureRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fixture_requests_total",
			Help: "Number of fixture requests served by the backend simulator",
		},
		[]string{"fixture", "code"},
	)
	CacheOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_operations_total",
			Help: "Cache operations",
		},
		[]string{"op"}, // hit|miss|evicted|expired
	)
	CacheSize = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_size",
			Help: "Number of items currently in cache",
		},
	)
)

// MustRegister - регистрирует метрики в глобальном реестре; повторный вызов безопасен.
func MustRegister() {
	for _, c := range []prometheus.Collector{
		FormValidations, FormFieldErrors,
		SubmissionPolls, SubmissionsFinished,
		FixtureRequests, CacheOps, CacheSize,
	} {
		if err := prometheus.Register(c); err != nil {
			var are prometheus.AlreadyRegisteredError
			if errors.As(err, &are) {
				continue
			}
			panic(err)
		}
	}
}
