package config

// Config holds runtime configuration for the server.
type Config struct {
	Port                  string
	Provider              string
	RosterRefreshInterval Duration
	AdminToken            string
	Resolver              ResolverConfig
	Balldontlie           BalldontlieConfig
	Metrics               MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:                  envOrDefault(envPort, defaultPort),
		Provider:              envOrDefault(envProvider, defaultProvider),
		RosterRefreshInterval: durationEnvOrDefault(envRosterRefresh, defaultRosterRefresh),
		AdminToken:            envOrDefault(envAdminToken, ""),
		Resolver:              loadResolver(),
		Balldontlie:           loadBalldontlie(),
		Metrics:               loadMetrics(),
	}
}
