package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Business Metrics
var (
	OpeningsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameOpeningsTotal,
			Help: HelpTextOpeningsTotal,
		},
		[]string{LabelContainer},
	)

	DropsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameDropsTotal,
			Help: HelpTextDropsTotal,
		},
		[]string{LabelTier},
	)

	QuotaRejectionsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameQuotaRejectionsTotal,
			Help: HelpTextQuotaRejectionsTotal,
		},
	)

	CatalogSyncsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCatalogSyncsTotal,
			Help: HelpTextCatalogSyncsTotal,
		},
		[]string{LabelResult},
	)

	CatalogContainers = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameCatalogContainers,
			Help: HelpTextCatalogContainers,
		},
	)
)
