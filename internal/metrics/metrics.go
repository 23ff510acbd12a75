package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "salon_booker"

const outcomeOK = "ok"

var (
	once sync.Once

	reservationCreate = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reservation_create_total",
			Help:      "Reservation attempts by outcome code.",
		},
		[]string{"outcome"},
	)

	reservationCreateDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "reservation_create_duration_seconds",
			Help:      "Time spent creating a reservation, retries included.",
			Buckets:   []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
	)

	deadlockRetries = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "deadlock_retries_total",
			Help:      "Transactions re-run after a deadlock.",
		},
	)

	statusTransition = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "status_transition_total",
			Help:      "Status transitions by target status and outcome code.",
		},
		[]string{"to", "outcome"},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(reservationCreate, reservationCreateDuration, deadlockRetries, statusTransition)
	})
}

// ObserveReservationCreate takes the error code of the attempt, empty on success.
func ObserveReservationCreate(code string, d time.Duration) {
	reservationCreate.WithLabelValues(outcome(code)).Inc()
	reservationCreateDuration.Observe(d.Seconds())
}

func IncDeadlockRetry() {
	deadlockRetries.Inc()
}

func IncStatusTransition(to, code string) {
	statusTransition.WithLabelValues(to, outcome(code)).Inc()
}

func outcome(code string) string {
	if code == "" {
		return outcomeOK
	}
	return code
}
