package identity

import (
	"context"
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "auctionhub"

var authAttempts = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "identity",
		Name:      "auth_attempts_total",
		Help:      "Login and signup attempts by outcome",
	},
	[]string{"operation", "outcome"},
)

func recordAttempt(operation, outcome string) {
	authAttempts.WithLabelValues(operation, outcome).Inc()
}

func outcomeFor(err error) string {
	switch {
	case errors.Is(err, ErrValidation):
		return "invalid"
	case errors.Is(err, ErrAuthenticationRejected):
		return "rejected"
	case errors.Is(err, ErrSessionActive):
		return "session_active"
	case errors.Is(err, ErrNotReady):
		return "not_ready"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "cancelled"
	}
	return "error"
}
