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

// Badge Metrics
var (
	BadgesRendered = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameBadgesRendered,
			Help: HelpTextBadgesRendered,
		},
		[]string{LabelStyle},
	)

	BadgeRenderDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameBadgeRenderSeconds,
			Help:    HelpTextBadgeRenderSeconds,
			Buckets: RenderLatencyBuckets,
		},
	)

	ConfigLoadFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameConfigLoadFailures,
			Help: HelpTextConfigLoadFailures,
		},
	)

	SettingsSaved = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSettingsSaved,
			Help: HelpTextSettingsSaved,
		},
		[]string{LabelSource},
	)

	NonceRejected = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameNonceRejected,
			Help: HelpTextNonceRejected,
		},
	)
)

// CacheStatsFunc reports cumulative hits, misses and the current entry count
type CacheStatsFunc func() (hits, misses int64, entries int)

// RegisterCacheStats exposes option cache statistics on reg. Pass
// prometheus.DefaultRegisterer outside of tests.
func RegisterCacheStats(reg prometheus.Registerer, stats CacheStatsFunc) error {
	collectors := []prometheus.Collector{
		prometheus.NewCounterFunc(prometheus.CounterOpts{
			Name: MetricNameCacheHits,
			Help: HelpTextCacheHits,
		}, func() float64 {
			hits, _, _ := stats()
			return float64(hits)
		}),
		prometheus.NewCounterFunc(prometheus.CounterOpts{
			Name: MetricNameCacheMisses,
			Help: HelpTextCacheMisses,
		}, func() float64 {
			_, misses, _ := stats()
			return float64(misses)
		}),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name: MetricNameCacheEntries,
			Help: HelpTextCacheEntries,
		}, func() float64 {
			_, _, entries := stats()
			return float64(entries)
		}),
	}

	for _, c := range collectors {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}
