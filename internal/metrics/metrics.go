// Package metrics counts payload checks by outcome on a private Prometheus
// registry. A CLI run can dump the registry to a node_exporter textfile.
package metrics

import (
	"time"

	"github.com/dmitrijs2005/loginwidget/internal/filex"
	"github.com/dmitrijs2005/loginwidget/internal/loginwidget"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "widget"

// Recorder holds the check metrics.
type Recorder struct {
	reg      *prometheus.Registry
	checks   *prometheus.CounterVec
	duration prometheus.Histogram
}

// NewRecorder registers the metrics on a fresh registry. Every outcome label
// is pre-created so it is exported as zero before the first check.
func NewRecorder() *Recorder {
	r := &Recorder{
		reg: prometheus.NewRegistry(),
		checks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "checks_total",
			Help:      "Login widget payload checks by outcome.",
		}, []string{"outcome"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "check_duration_seconds",
			Help:      "Time spent checking a payload.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 8),
		}),
	}
	r.reg.MustRegister(r.checks, r.duration)

	for _, a := range []loginwidget.Authorization{
		loginwidget.InvalidHash,
		loginwidget.MissingFields,
		loginwidget.InvalidAuthDateFormat,
		loginwidget.TooOld,
		loginwidget.Valid,
	} {
		r.checks.WithLabelValues(a.String())
	}
	return r
}

// Observe records one finished check.
func (r *Recorder) Observe(outcome loginwidget.Authorization, took time.Duration) {
	r.checks.WithLabelValues(outcome.String()).Inc()
	r.duration.Observe(took.Seconds())
}

// Registry exposes the underlying registry, e.g. for promhttp.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.reg
}

// WriteTextfile writes all metrics to path in the text exposition format,
// creating the parent directory if needed. The file is replaced atomically.
func (r *Recorder) WriteTextfile(path string) error {
	if err := filex.EnsureParentDir(path); err != nil {
		return err
	}
	return prometheus.WriteToTextfile(path, r.reg)
}
