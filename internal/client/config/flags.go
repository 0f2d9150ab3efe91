package config

import (
	"flag"
	"io"
	"os"
	"time"

	"github.com/dmitrijs2005/tourplanner/internal/flagx"
)

// parseFlags overlays cfg with command-line flags. Only the flags listed here
// are considered; everything else in os.Args is left to other components.
func parseFlags(cfg *Config) error {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-m", "-d", "-y", "-t", "-r", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the tours API")
	fs.StringVar(&cfg.DefaultImageURL, "m", cfg.DefaultImageURL, "image used when an item has none")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "local cache database")
	fs.StringVar(&cfg.HistoryFile, "y", cfg.HistoryFile, "REPL history file")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.Float64Var(&cfg.RequestsPerSecond, "r", cfg.RequestsPerSecond, "max API requests per second (0 disables)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level: debug, info, warn, error")

	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
	return nil
}
