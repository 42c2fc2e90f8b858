// Package metrics exposes Prometheus counters for the invariant checks.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics tracks rejected writes and advisory breaches.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	CapRejections         *prometheus.CounterVec
	DuplicateRejections   *prometheus.CounterVec
	WeeklyMinimumBreaches prometheus.Counter
	StorageErrorsMapped   *prometheus.CounterVec
}

// New registers the northstar metrics with reg. A nil reg uses the default
// registerer.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		CapRejections: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "northstar_soft_cap_rejections_total",
			Help: "Writes rejected because a soft cap was reached",
		}, []string{"cap"}),
		DuplicateRejections: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "northstar_duplicate_rejections_total",
			Help: "Writes rejected by a case-insensitive duplicate check",
		}, []string{"entity"}),
		WeeklyMinimumBreaches: factory.NewCounter(prometheus.CounterOpts{
			Name: "northstar_weekly_task_minimum_breaches_total",
			Help: "Weeks left below the advisory task minimum",
		}),
		StorageErrorsMapped: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "northstar_storage_errors_mapped_total",
			Help: "Storage errors translated to user copy, by violation kind",
		}, []string{"kind"}),
	}
}

// IncrementCapRejection records a soft-cap rejection for the named cap.
func (m *Metrics) IncrementCapRejection(name string) {
	if m == nil {
		return
	}
	m.CapRejections.WithLabelValues(name).Inc()
}

// IncrementDuplicateRejection records a duplicate rejection for an entity.
func (m *Metrics) IncrementDuplicateRejection(entity string) {
	if m == nil {
		return
	}
	m.DuplicateRejections.WithLabelValues(entity).Inc()
}

// IncrementWeeklyMinimumBreach records a week left below the minimum.
func (m *Metrics) IncrementWeeklyMinimumBreach() {
	if m == nil {
		return
	}
	m.WeeklyMinimumBreaches.Inc()
}

// IncrementStorageErrorMapped records a mapped storage error.
func (m *Metrics) IncrementStorageErrorMapped(kind string) {
	if m == nil {
		return
	}
	m.StorageErrorsMapped.WithLabelValues(kind).Inc()
}
