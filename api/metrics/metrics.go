package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

var (
	registerOnce sync.Once

	dispatchTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "webtoapp",
			Name:      "dispatch_total",
			Help:      "Workflow dispatches by platform and outcome.",
		},
		[]string{"platform", "outcome"},
	)
	runDeletionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "webtoapp",
			Name:      "run_deletions_total",
			Help:      "Workflow run deletions issued by history cleanups, by outcome.",
		},
		[]string{"outcome"},
	)
	upstreamErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "webtoapp",
			Name:      "upstream_errors_total",
			Help:      "Non success answers from the build platform, by operation.",
		},
		[]string{"operation"},
	)
)

// Register adds the collectors to the default registry. Safe to call more than once.
func Register() {
	registerOnce.Do(func() {
		prometheus.MustRegister(dispatchTotal, runDeletionsTotal, upstreamErrorsTotal)
	})
}

func ObserveDispatch(platform string, success bool) {
	dispatchTotal.WithLabelValues(platform, outcome(success)).Inc()
}

func ObserveRunDeletion(success bool) {
	runDeletionsTotal.WithLabelValues(outcome(success)).Inc()
}

func ObserveUpstreamError(operation string) {
	upstreamErrorsTotal.WithLabelValues(operation).Inc()
}

func outcome(success bool) string {
	if success {
		return OutcomeSuccess
	}
	return OutcomeFailure
}
