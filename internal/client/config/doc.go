// Package config loads runtime configuration for the tourplanner CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. TOURS_* environment variables, then the dotenv file given with -env
//     (".env" when present). The process environment wins over the file.
//  3. Optional JSON file selected with -c or -config.
//  4. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the tours API
//	-m string   default image URL
//	-d string   local cache database (SQLite DSN)
//	-y string   REPL history file
//	-t int      request timeout (seconds)
//	-r float    max API requests per second
//	-l string   log level
//
// # JSON schema
//
//	{
//	  "api_base_url": "https://api.tourplanner.ma",
//	  "default_image_url": "https://static.tourplanner.ma/img/default.jpg",
//	  "database_dsn": "tours.db",
//	  "history_file": ".tours_history",
//	  "request_timeout": "15s",
//	  "requests_per_second": 10,
//	  "burst": 5,
//	  "log_level": "info"
//	}
package config
