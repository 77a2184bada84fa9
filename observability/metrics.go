package observability

import (
	dto "github.com/prometheus/client_model/go"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ProjectLoadsTotal counts project loads by detected schema and outcome
	ProjectLoadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vcproj_project_loads_total",
			Help: "Total number of project file loads by schema and status",
		},
		[]string{"schema", "status"}, // status: success, failure
	)

	// ProjectLoadDuration tracks how long a load takes, from read to finished model
	ProjectLoadDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "vcproj_project_load_duration_seconds",
			Help:    "Project load duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.0005, 2, 14), // 0.5ms to 4s
		},
		[]string{"schema"},
	)

	// ProjectFilesTotal observes the number of files in each loaded project
	ProjectFilesTotal = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "vcproj_project_files",
			Help:    "Number of files listed by a loaded project",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8),
		},
		[]string{"schema"},
	)

	// UnresolvedTokensTotal counts $(Name) tokens left after substitution and environment lookup
	UnresolvedTokensTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vcproj_unresolved_tokens_total",
			Help: "Total number of macro tokens that could not be resolved",
		},
		[]string{"token"},
	)

	// ModelReloadsTotal counts model swaps performed by a Holder
	ModelReloadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vcproj_model_reloads_total",
			Help: "Total number of project model reloads by status",
		},
		[]string{"status"},
	)
)

// Status label values.
const (
	StatusSuccess = "success"
	StatusFailure = "failure"
)

// GetCounterValue retrieves the current value of a counter metric with the given labels
// This is primarily intended for testing
func GetCounterValue(counter *prometheus.CounterVec, labels ...string) (float64, error) {
	metric, err := counter.GetMetricWithLabelValues(labels...)
	if err != nil {
		return 0, err
	}

	var pb dto.Metric
	if err := metric.Write(&pb); err != nil {
		return 0, err
	}

	if pb.Counter != nil {
		return pb.Counter.GetValue(), nil
	}

	return 0, nil
}

// GetHistogramCount retrieves the number of observations recorded by a histogram with
// the given labels.
func GetHistogramCount(histogram *prometheus.HistogramVec, labels ...string) (uint64, error) {
	observer, err := histogram.GetMetricWithLabelValues(labels...)
	if err != nil {
		return 0, err
	}

	metric, ok := observer.(prometheus.Metric)
	if !ok {
		return 0, nil
	}

	var pb dto.Metric
	if err := metric.Write(&pb); err != nil {
		return 0, err
	}

	if pb.Histogram != nil {
		return pb.Histogram.GetSampleCount(), nil
	}

	return 0, nil
}
