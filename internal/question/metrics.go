package question

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Failure reasons recorded when a provider call is absorbed into fallback.
const (
	failureRequest   = "request_error"
	failureMalformed = "malformed_output"
)

var (
	packsServed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "quizmint_question_packs_total",
		Help: "Question packs served, labeled by source (ai or fallback).",
	}, []string{"source"})

	providerFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "quizmint_provider_failures_total",
		Help: "Provider calls absorbed into fallback, labeled by reason.",
	}, []string{"reason"})
)
