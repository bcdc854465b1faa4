package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/filari/revenue-service/internal/domain"
)

// RevenueMetrics holds the prometheus instruments for the revenue engine.
type RevenueMetrics struct {
	BreakdownsComputedTotal prometheus.CounterVec
	BreakdownsFailedTotal   prometheus.CounterVec

	PlatformRevenueTotal prometheus.CounterVec
	ProviderRevenueTotal prometheus.CounterVec
	CommissionsPaidTotal prometheus.CounterVec

	PartialChainsTotal prometheus.Counter
	ChainDepth         prometheus.Histogram

	BreakdownDuration prometheus.Histogram
}

func NewRevenueMetrics() *RevenueMetrics {
	return &RevenueMetrics{
		BreakdownsComputedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "revenue_breakdowns_computed_total",
				Help: "Number of revenue breakdowns computed and persisted",
			},
			[]string{"provider_id"},
		),

		BreakdownsFailedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "revenue_breakdowns_failed_total",
				Help: "Number of breakdown computations that failed",
			},
			[]string{"provider_id", "error_type"},
		),

		PlatformRevenueTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "revenue_platform_total",
				Help: "Total platform revenue recorded, in major units",
			},
			[]string{"provider_id"},
		),

		ProviderRevenueTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "revenue_provider_total",
				Help: "Total provider revenue recorded, in major units",
			},
			[]string{"provider_id"},
		),

		CommissionsPaidTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "revenue_commissions_paid_total",
				Help: "Total referral commissions recorded, in major units",
			},
			[]string{"provider_id"},
		),

		PartialChainsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "revenue_partial_chains_total",
				Help: "Number of breakdowns persisted with a partially resolved referral chain",
			},
		),

		ChainDepth: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "revenue_chain_depth",
				Help:    "Resolved referral chain depth per breakdown",
				Buckets: []float64{0, 1, 2, 3},
			},
		),

		BreakdownDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "revenue_breakdown_duration_seconds",
				Help:    "Time to compute and persist a breakdown in seconds",
				Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
			},
		),
	}
}

// RecordBreakdownComputed records a persisted breakdown.
func (m *RevenueMetrics) RecordBreakdownComputed(providerID string, breakdown *domain.RevenueBreakdown, chainDepth int, durationSeconds float64) {
	m.BreakdownsComputedTotal.WithLabelValues(providerID).Inc()
	m.PlatformRevenueTotal.WithLabelValues(providerID).Add(breakdown.PlatformRevenue.Dollars())
	m.ProviderRevenueTotal.WithLabelValues(providerID).Add(breakdown.ProviderRevenue.Dollars())
	m.CommissionsPaidTotal.WithLabelValues(providerID).Add(breakdown.TotalCommissions.Dollars())
	m.ChainDepth.Observe(float64(chainDepth))
	m.BreakdownDuration.Observe(durationSeconds)
	if breakdown.ChainPartial {
		m.PartialChainsTotal.Inc()
	}
}

// RecordBreakdownFailed records a failed computation.
func (m *RevenueMetrics) RecordBreakdownFailed(providerID, errorType string) {
	m.BreakdownsFailedTotal.WithLabelValues(providerID, errorType).Inc()
}
