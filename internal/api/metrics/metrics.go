// Package metrics defines and registers all custom Prometheus metrics for the
// enrollment API. It is the single source of truth for metric names, labels,
// and help strings. Metrics register with the default registry at import time
// via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "enrollment"

// UsersCreatedTotal counts user-create requests.
// Label:
//   - result: "created" (new document) or "exists" (idempotent hit)
var UsersCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_created_total",
		Help:      "Total number of user create requests, by result.",
	},
	[]string{"result"},
)

// ClassesCreatedTotal counts classes created by instructors.
var ClassesCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "classes_created_total",
		Help:      "Total number of classes created.",
	},
)

// SelectionsTotal counts enrollment create attempts.
// Label:
//   - result: "created" or "conflict" (duplicate student/class pair)
var SelectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "selections_total",
		Help:      "Total number of class selections, by result.",
	},
	[]string{"result"},
)

// PaymentIntentsTotal counts payment-intent requests to the provider.
// Label:
//   - result: "ok" or "error"
var PaymentIntentsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "payment_intents_total",
		Help:      "Total number of payment intents requested from the provider, by result.",
	},
	[]string{"result"},
)

// PaymentsRecordedTotal counts payment records appended to history.
var PaymentsRecordedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "payments_recorded_total",
		Help:      "Total number of payment records stored.",
	},
)
