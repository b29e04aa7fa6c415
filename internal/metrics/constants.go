package metrics

// Metric names
const (
	MetricNameHTTPRequestsTotal    = "casebot_http_requests_total"
	MetricNameHTTPRequestDuration  = "casebot_http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "casebot_http_requests_in_flight"

	MetricNameOpeningsTotal        = "casebot_openings_total"
	MetricNameDropsTotal           = "casebot_drops_total"
	MetricNameQuotaRejectionsTotal = "casebot_quota_rejections_total"
	MetricNameCatalogSyncsTotal    = "casebot_catalog_syncs_total"
	MetricNameCatalogContainers    = "casebot_catalog_containers"
)

// Help texts
const (
	HelpTextHTTPRequestsTotal    = "Total HTTP requests processed"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "HTTP requests currently being served"

	HelpTextOpeningsTotal        = "Total container openings granted"
	HelpTextDropsTotal           = "Total drops resolved, by tier"
	HelpTextQuotaRejectionsTotal = "Requests that arrived with no daily allowance left"
	HelpTextCatalogSyncsTotal    = "Catalog sync attempts, by result"
	HelpTextCatalogContainers    = "Containers in the live catalog snapshot"
)

// Label names
const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelTier      = "tier"
	LabelContainer = "container_type"
	LabelResult    = "result"
)

// Label values for catalog sync results
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
)

// HTTPLatencyBuckets covers fast lookups through multi-second sync calls.
var HTTPLatencyBuckets = []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
