package config

import "time"

// Config holds runtime settings for the tourplanner CLI.
type Config struct {
	APIBaseURL      string
	DefaultImageURL string
	DatabaseDSN     string
	HistoryFile     string

	RequestTimeout    time.Duration
	RequestsPerSecond float64
	Burst             int

	// RefreshToken, when set, logs the CLI in at start.
	RefreshToken string
	LogLevel     string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:8080/api"
	c.DefaultImageURL = "https://static.tourplanner.ma/img/default.jpg"
	c.DatabaseDSN = "tours.db"
	c.HistoryFile = ".tours_history"
	c.RequestTimeout = 15 * time.Second
	c.RequestsPerSecond = 10
	c.Burst = 5
	c.LogLevel = "info"
}

// LoadConfig builds a Config from defaults, the environment (and an optional
// dotenv file), an optional JSON file and command-line flags. Later sources
// take precedence.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	if err := parseJson(cfg); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
