package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/dmitrijs2005/tourplanner/internal/flagx"
)

const defaultEnvFile = ".env"

// parseEnv overlays cfg with TOURS_* variables. Values come from the process
// environment first and then from the dotenv file named by -env (".env" when
// the flag is absent). A missing default file is not an error.
func parseEnv(cfg *Config) error {
	file := flagx.EnvFileFlags()
	explicit := file != ""
	if !explicit {
		file = defaultEnvFile
	}

	fileVars, err := godotenv.Read(file)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			fileVars = map[string]string{}
		} else {
			return fmt.Errorf("read env file %s: %w", file, err)
		}
	}

	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := fileVars[key]
		return v, ok
	}

	str := map[string]*string{
		"TOURS_API_URL":       &cfg.APIBaseURL,
		"TOURS_DEFAULT_IMAGE": &cfg.DefaultImageURL,
		"TOURS_DB":            &cfg.DatabaseDSN,
		"TOURS_HISTORY":       &cfg.HistoryFile,
		"TOURS_REFRESH_TOKEN": &cfg.RefreshToken,
		"TOURS_LOG_LEVEL":     &cfg.LogLevel,
	}
	for key, dst := range str {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}

	if v, ok := lookup("TOURS_TIMEOUT"); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("TOURS_TIMEOUT: %w", err)
		}
		cfg.RequestTimeout = d
	}
	if v, ok := lookup("TOURS_RPS"); ok && v != "" {
		rps, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("TOURS_RPS: %w", err)
		}
		cfg.RequestsPerSecond = rps
	}
	return nil
}
