package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/tourplanner/internal/flagx"
	"github.com/dmitrijs2005/tourplanner/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Durations may
// be strings like "15s" or integer nanoseconds. Absent fields leave the
// current value alone.
type JsonConfig struct {
	APIBaseURL        string          `json:"api_base_url"`
	DefaultImageURL   string          `json:"default_image_url"`
	DatabaseDSN       string          `json:"database_dsn"`
	HistoryFile       string          `json:"history_file"`
	RequestTimeout    *timex.Duration `json:"request_timeout"`
	RequestsPerSecond *float64        `json:"requests_per_second"`
	Burst             *int            `json:"burst"`
	LogLevel          string          `json:"log_level"`
}

// parseJson overlays cfg with the JSON file given via -c or -config.
func parseJson(cfg *Config) error {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return nil
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", jsonConfigFile, err)
	}

	for dst, v := range map[*string]string{
		&cfg.APIBaseURL:      jc.APIBaseURL,
		&cfg.DefaultImageURL: jc.DefaultImageURL,
		&cfg.DatabaseDSN:     jc.DatabaseDSN,
		&cfg.HistoryFile:     jc.HistoryFile,
		&cfg.LogLevel:        jc.LogLevel,
	} {
		if v != "" {
			*dst = v
		}
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.RequestsPerSecond != nil {
		cfg.RequestsPerSecond = *jc.RequestsPerSecond
	}
	if jc.Burst != nil {
		cfg.Burst = *jc.Burst
	}
	return nil
}
