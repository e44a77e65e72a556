package config

// ResolverConfig tunes fuzzy entity resolution.
type ResolverConfig struct {
	// NameThreshold is the minimum Jaro-Winkler score for a fuzzy player
	// name match to be accepted.
	NameThreshold float64
	// MetricThreshold is the equivalent floor for metric phrase matches.
	MetricThreshold float64
	// LexiconPath optionally points at a YAML overlay with extra aliases
	// and metric phrases merged over the built-in defaults.
	LexiconPath string
}

func loadResolver() ResolverConfig {
	return ResolverConfig{
		NameThreshold:   floatEnvOrDefault(envNameThreshold, defaultNameThreshold),
		MetricThreshold: floatEnvOrDefault(envMetricThreshold, defaultMetricThreshold),
		LexiconPath:     envOrDefault(envLexiconPath, ""),
	}
}
