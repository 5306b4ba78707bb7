package config

import "os"

// ApplyDefaults sets default values for any zero values in cfg.
func ApplyDefaults(cfg *Config) {
	if cfg.Server.Host == "" {
		cfg.Server.Host = "localhost"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Storage.DatabasePath == "" {
		cfg.Storage.DatabasePath = "/usr/local/var/murshid/data/sessions.db"
	}
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		cfg.Enricher.APIKey = key
	}
	if cfg.Enricher.Model == "" {
		cfg.Enricher.Model = "gemini-2.0-flash"
	}
	if cfg.Enricher.Temperature == 0 {
		cfg.Enricher.Temperature = 0.3
	}
	if cfg.Enricher.TimeoutSeconds == 0 {
		cfg.Enricher.TimeoutSeconds = 10
	}
	if cfg.Search.FuzzyThreshold == 0 {
		cfg.Search.FuzzyThreshold = 0.6
	}
	if cfg.Search.SuggestionLimit == 0 {
		cfg.Search.SuggestionLimit = 5
	}
}
