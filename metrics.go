package client

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	apierrors "github.com/kaenova/prompty/client/internal/errors"
)

const (
	opGetPrompt        = "get_prompt"
	opGetPromptDetails = "get_prompt_details"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "prompty_client",
			Name:      "requests_total",
			Help:      "Prompt requests by operation and outcome.",
		},
		[]string{"operation", "outcome"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "prompty_client",
			Name:      "request_duration_seconds",
			Help:      "Prompt request latency, including reading the body.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"operation"},
	)
)

func observeRequest(op string, err error, elapsed time.Duration) {
	requestsTotal.WithLabelValues(op, outcomeLabel(err)).Inc()
	requestDuration.WithLabelValues(op).Observe(elapsed.Seconds())
}

func outcomeLabel(err error) string {
	if err == nil {
		return "ok"
	}
	switch apierrors.KindOf(err) {
	case apierrors.KindAuthentication:
		return "authentication"
	case apierrors.KindNotFound:
		return "not_found"
	case apierrors.KindServer:
		return "server"
	case apierrors.KindUnexpected:
		return "unexpected"
	case apierrors.KindNetwork:
		return "network"
	default:
		return "unknown"
	}
}
