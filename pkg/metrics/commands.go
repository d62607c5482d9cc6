package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	commandsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "revision",
		Name:      "commands_total",
		Help:      "Commands processed, by action and response status.",
	}, []string{"action", "status"})

	commandDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "revision",
		Name:      "command_duration_seconds",
		Help:      "Command processing duration in seconds, by action.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"action"})
)

func RecordCommand(action, status string, seconds float64) {
	commandsTotal.WithLabelValues(action, status).Inc()
	commandDuration.WithLabelValues(action).Observe(seconds)
}
