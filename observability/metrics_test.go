package observability

import (
	"testing"
)

func TestGetCounterValue(t *testing.T) {
	before, err := GetCounterValue(ProjectLoadsTotal, "VS2005", StatusSuccess)
	if err != nil {
		t.Fatalf("GetCounterValue() failed: %v", err)
	}

	ProjectLoadsTotal.WithLabelValues("VS2005", StatusSuccess).Inc()
	ProjectLoadsTotal.WithLabelValues("VS2005", StatusSuccess).Inc()

	after, err := GetCounterValue(ProjectLoadsTotal, "VS2005", StatusSuccess)
	if err != nil {
		t.Fatalf("GetCounterValue() failed: %v", err)
	}
	if after-before != 2 {
		t.Errorf("counter delta = %v, want 2", after-before)
	}
}

func TestGetCounterValue_WrongLabelCount(t *testing.T) {
	if _, err := GetCounterValue(ProjectLoadsTotal, "VS2005"); err == nil {
		t.Error("expected an error for a missing label value")
	}
}

func TestGetHistogramCount(t *testing.T) {
	before, err := GetHistogramCount(ProjectLoadDuration, "VS2013")
	if err != nil {
		t.Fatalf("GetHistogramCount() failed: %v", err)
	}

	ProjectLoadDuration.WithLabelValues("VS2013").Observe(0.002)

	after, err := GetHistogramCount(ProjectLoadDuration, "VS2013")
	if err != nil {
		t.Fatalf("GetHistogramCount() failed: %v", err)
	}
	if after-before != 1 {
		t.Errorf("histogram count delta = %d, want 1", after-before)
	}
}

func TestMetricDefinitions(t *testing.T) {
	tests := []struct {
		name string
		fn   func()
	}{
		{
			name: "ProjectLoadsTotal",
			fn: func() {
				ProjectLoadsTotal.WithLabelValues("VS2010", StatusFailure).Inc()
			},
		},
		{
			name: "ProjectLoadDuration",
			fn: func() {
				ProjectLoadDuration.WithLabelValues("VS2010").Observe(0.01)
			},
		},
		{
			name: "ProjectFilesTotal",
			fn: func() {
				ProjectFilesTotal.WithLabelValues("VS2010").Observe(120)
			},
		},
		{
			name: "UnresolvedTokensTotal",
			fn: func() {
				UnresolvedTokensTotal.WithLabelValues("BoostRoot").Inc()
			},
		},
		{
			name: "ModelReloadsTotal",
			fn: func() {
				ModelReloadsTotal.WithLabelValues(StatusSuccess).Inc()
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.fn()
		})
	}
}
