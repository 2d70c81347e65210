package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	OutcomeOK          = "ok"
	OutcomeClientError = "client_error"
	OutcomeNotFound    = "not_found"
	OutcomeError       = "error"
)

// Recorder counts report requests by report and outcome.
type Recorder struct {
	registry       *prometheus.Registry
	reportRequests *prometheus.CounterVec
}

func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "quotations",
		Name:      "report_requests_total",
		Help:      "Report requests served, by report and outcome.",
	}, []string{"report", "outcome"})
	reg.MustRegister(requests)

	return &Recorder{registry: reg, reportRequests: requests}
}

// ObserveReport is safe to call on a nil Recorder so callers do not need to
// branch on METRICS_ENABLED.
func (r *Recorder) ObserveReport(report, outcome string) {
	if r == nil {
		return
	}
	r.reportRequests.WithLabelValues(report, outcome).Inc()
}

func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
