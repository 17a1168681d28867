// Package metrics defines and registers all custom Prometheus metrics for
// the Manara platform API. It is the single source of truth for metric
// names, labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "platform"

// ContactInquiriesTotal counts contact form submissions.
// Label:
//   - result: "forwarded", "rejected" (validation), or "failed" (delivery)
var ContactInquiriesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "contact_inquiries_total",
		Help:      "Total number of contact inquiries, labelled by outcome.",
	},
	[]string{"result"},
)

// MailDeliveryDuration measures the round trip to the delivery provider.
var MailDeliveryDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "mail_delivery_duration_seconds",
		Help:      "Duration of email delivery provider calls.",
		Buckets:   prometheus.DefBuckets,
	},
)

// RecoveryRequestsTotal counts password-recovery submissions.
// Labels:
//   - step: "request" or "confirm"
//   - result: "succeeded", "failed", or "invalid" (local validation)
var RecoveryRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "recovery_requests_total",
		Help:      "Total number of password recovery submissions, by step and outcome.",
	},
	[]string{"step", "result"},
)

// SessionTransitionsTotal counts session store status transitions across all
// visitors (hydrating, authenticated, unauthenticated, error).
// Label:
//   - status: the status entered by the transition
var SessionTransitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_transitions_total",
		Help:      "Total number of session status transitions, by resulting status.",
	},
	[]string{"status"},
)

// RateLimitedTotal counts requests rejected by the rate limiter.
// Label:
//   - route: the throttled route ("contact", "forgot")
var RateLimitedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rate_limited_total",
		Help:      "Total number of requests rejected by the rate limiter, by route.",
	},
	[]string{"route"},
)
