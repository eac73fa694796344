package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Badge metric names
const (
	MetricNameBadgesRendered     = "sale_badges_rendered_total"
	MetricNameBadgeRenderSeconds = "sale_badge_render_duration_seconds"
	MetricNameConfigLoadFailures = "sale_badge_config_load_failures_total"
	MetricNameSettingsSaved      = "sale_badge_settings_saved_total"
	MetricNameNonceRejected      = "sale_badge_nonce_rejected_total"
)

// Option cache metric names
const (
	MetricNameCacheHits    = "option_cache_hits_total"
	MetricNameCacheMisses  = "option_cache_misses_total"
	MetricNameCacheEntries = "option_cache_entries"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Badge metric help text
const (
	HelpTextBadgesRendered     = "Total number of sale badges rendered, by style"
	HelpTextBadgeRenderSeconds = "Time spent loading settings and rendering one badge"
	HelpTextConfigLoadFailures = "Total number of renders that fell back to default settings"
	HelpTextSettingsSaved      = "Total number of settings saves, by source"
	HelpTextNonceRejected      = "Total number of settings submissions rejected for a bad nonce"
)

// Option cache metric help text
const (
	HelpTextCacheHits    = "Total number of option reads served from cache"
	HelpTextCacheMisses  = "Total number of option reads that went to the store"
	HelpTextCacheEntries = "Current number of cached option values"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelStyle  = "style"
	LabelSource = "source"
)

// Settings save sources
const (
	SourceForm = "form"
	SourceAPI  = "api"
)

// PathUnmatched labels requests that matched no route
const PathUnmatched = "unmatched"

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// RenderLatencyBuckets covers a cached render (microseconds) up to a slow
// store round trip.
var RenderLatencyBuckets = []float64{.00005, .0001, .00025, .0005, .001, .005, .01, .05, .1, .5}
