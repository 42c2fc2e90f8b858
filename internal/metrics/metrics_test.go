package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Counters(t *testing.T) {
	t.Parallel()

	m := New(prometheus.NewRegistry())

	m.IncrementCapRejection("active_goals")
	m.IncrementCapRejection("active_goals")
	m.IncrementDuplicateRejection("life_area")
	m.IncrementWeeklyMinimumBreach()
	m.IncrementStorageErrorMapped("unique")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.CapRejections.WithLabelValues("active_goals")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.DuplicateRejections.WithLabelValues("life_area")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.WeeklyMinimumBreaches))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.StorageErrorsMapped.WithLabelValues("unique")))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	t.Parallel()

	var m *Metrics
	assert.NotPanics(t, func() {
		m.IncrementCapRejection("weekly_tasks")
		m.IncrementDuplicateRejection("weekly_task")
		m.IncrementWeeklyMinimumBreach()
		m.IncrementStorageErrorMapped("check")
	})
}
