package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Lookup outcomes.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// Recorder holds the Prometheus collectors for reconciliation runs.
// A nil *Recorder is valid and records nothing.
type Recorder struct {
	Lookups       *prometheus.CounterVec
	Runs          *prometheus.CounterVec
	Discrepancies *prometheus.CounterVec
	Alerts        *prometheus.CounterVec
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Recorder {
	factory := promauto.With(reg)
	return &Recorder{
		Lookups: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "mnp_lookups_total",
			Help: "HLR lookups by outcome",
		}, []string{"outcome"}),
		Runs: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "mnp_runs_total",
			Help: "Reconciliation runs by result (matched or drift)",
		}, []string{"result"}),
		Discrepancies: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "mnp_discrepancies_total",
			Help: "Field discrepancies found per group",
		}, []string{"group"}),
		Alerts: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "mnp_alerts_total",
			Help: "Alert deliveries by outcome",
		}, []string{"outcome"}),
	}
}

// ObserveLookup counts one lookup.
func (r *Recorder) ObserveLookup(err error) {
	if r == nil {
		return
	}
	r.Lookups.WithLabelValues(outcome(err)).Inc()
}

// ObserveRun counts one finished run.
func (r *Recorder) ObserveRun(matched bool) {
	if r == nil {
		return
	}
	result := "drift"
	if matched {
		result = "matched"
	}
	r.Runs.WithLabelValues(result).Inc()
}

// ObserveDiscrepancies adds n discrepancies for group.
func (r *Recorder) ObserveDiscrepancies(group string, n int) {
	if r == nil || n == 0 {
		return
	}
	r.Discrepancies.WithLabelValues(group).Add(float64(n))
}

// ObserveAlert counts one alert delivery attempt.
func (r *Recorder) ObserveAlert(err error) {
	if r == nil {
		return
	}
	r.Alerts.WithLabelValues(outcome(err)).Inc()
}

func outcome(err error) string {
	if err != nil {
		return OutcomeFailure
	}
	return OutcomeSuccess
}
