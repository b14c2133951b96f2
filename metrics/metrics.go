// Package metrics records solver activity as Prometheus metrics.
//
// A Recorder is fed from two places: Progress, which matches the
// search.WithProgress hook signature, and Observe, called once per finished
// search. Batch runs share one Recorder across goroutines; the Prometheus
// collectors are safe for concurrent use.
//
// WriteTextfile dumps a Gatherer in the node-exporter textfile format so a
// one-shot CLI run can still be scraped.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/watersort/search"
)

const namespace = "watersort"

// Recorder holds the solver collectors.
type Recorder struct {
	// SearchesTotal counts finished searches.
	// Labels: strategy (breadth-first, depth-first), status (solved, exhausted, timed_out)
	SearchesTotal *prometheus.CounterVec

	// StatesVisited observes the Visited count of each finished search.
	StatesVisited *prometheus.HistogramVec

	// DurationSeconds observes the wall-clock time of each finished search.
	DurationSeconds *prometheus.HistogramVec

	// FrontierSize is the frontier length at the last progress report.
	FrontierSize *prometheus.GaugeVec

	// Iterations is the expansion count at the last progress report.
	Iterations *prometheus.GaugeVec
}

// NewRecorder creates the collectors and registers them with reg.
// A nil reg creates unregistered collectors.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	factory := promauto.With(reg)

	return &Recorder{
		SearchesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "searches_total",
				Help:      "Finished searches by strategy and terminal status",
			},
			[]string{"strategy", "status"},
		),
		StatesVisited: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "states_visited",
				Help:      "Distinct configurations recorded per search",
				Buckets:   prometheus.ExponentialBuckets(1, 4, 12),
			},
			[]string{"strategy"},
		),
		DurationSeconds: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "search_duration_seconds",
				Help:      "Wall-clock duration of each search",
				Buckets:   prometheus.ExponentialBuckets(0.001, 4, 10),
			},
			[]string{"strategy"},
		),
		FrontierSize: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "frontier_size",
				Help:      "Frontier length at the most recent progress report",
			},
			[]string{"strategy"},
		),
		Iterations: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "iterations",
				Help:      "Expansion count at the most recent progress report",
			},
			[]string{"strategy"},
		),
	}
}

// Progress records an in-flight snapshot. It can be passed directly to
// search.WithProgress.
func (r *Recorder) Progress(p search.Progress) {
	s := p.Strategy.String()
	r.FrontierSize.WithLabelValues(s).Set(float64(p.Frontier))
	r.Iterations.WithLabelValues(s).Set(float64(p.Iterations))
}

// Observe records the outcome of one finished search.
func (r *Recorder) Observe(res *search.Result) {
	if res == nil {
		return
	}
	s := res.Strategy.String()
	r.SearchesTotal.WithLabelValues(s, res.Status.String()).Inc()
	r.StatesVisited.WithLabelValues(s).Observe(float64(res.Visited))
	r.DurationSeconds.WithLabelValues(s).Observe(res.Elapsed.Seconds())
}

// WriteTextfile writes every metric in g to path in the text exposition format.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	if err := prometheus.WriteToTextfile(path, g); err != nil {
		return fmt.Errorf("metrics: write %s: %w", path, err)
	}

	return nil
}
