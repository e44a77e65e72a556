package config

import "time"

const (
	envPort          = "PORT"
	envProvider      = "PROVIDER"
	envRosterRefresh = "ROSTER_REFRESH_INTERVAL"
	envAdminToken    = "ADMIN_TOKEN"

	envNameThreshold   = "NAME_MATCH_THRESHOLD"
	envMetricThreshold = "METRIC_MATCH_THRESHOLD"
	envLexiconPath     = "LEXICON_PATH"

	envBdlBaseURL  = "BDL_BASE_URL"
	envBdlAPIKey   = "BDL_API_KEY"
	envBdlMaxPages = "BDL_MAX_PAGES"
	envBdlSeason   = "BDL_SEASON"

	envMetricsPort  = "METRICS_PORT"
	envMetricsOn    = "METRICS_ENABLED"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultPort     = "4000"
	defaultProvider = "fixture"
	// Conservative refresh cadence; the roster churns slowly and upstream
	// quotas are tight (balldontlie: 5 req/min).
	defaultRosterRefresh = 1 * Duration(time.Hour)

	// Similarity acceptance floors for fuzzy resolution. Raising them trades
	// misspelling coverage for precision; observed behavior depends on these.
	defaultNameThreshold   = 0.78
	defaultMetricThreshold = 0.75

	defaultMetricsPort = "9090"
)
