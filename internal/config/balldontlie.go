package config

// BalldontlieConfig controls the balldontlie stat provider.
type BalldontlieConfig struct {
	BaseURL  string
	APIKey   string
	MaxPages int
	// Season is the season start year to query; 0 means "current season".
	Season int
}

func loadBalldontlie() BalldontlieConfig {
	return BalldontlieConfig{
		BaseURL:  envOrDefault(envBdlBaseURL, ""),
		APIKey:   envOrDefault(envBdlAPIKey, ""),
		MaxPages: intEnvOrDefault(envBdlMaxPages, 0),
		Season:   intEnvOrDefault(envBdlSeason, 0),
	}
}
