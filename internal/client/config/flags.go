package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/nutrio/internal/flagx"
)

// parseFlags overlays cfg with command-line flags:
//
//	-d string   PostgreSQL DSN of the backend
//	-f string   path of the local SQLite file
//	-i int      online check interval in seconds
//	-v string   log level (debug, info, warn, error)
//
// Other arguments are filtered out with flagx.FilterArgs.
func parseFlags(cfg *Config) error {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-f", "-i", "-v"})

	fs := flag.NewFlagSet("nutrio", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "backend database DSN")
	fs.StringVar(&cfg.LocalDBPath, "f", cfg.LocalDBPath, "local state file")
	fs.StringVar(&cfg.LogLevel, "v", cfg.LogLevel, "log level")
	onlineCheckInterval := fs.Int("i", int(cfg.OnlineCheckInterval.Seconds()), "online check interval (in seconds)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg.OnlineCheckInterval = time.Duration(*onlineCheckInterval) * time.Second
	return nil
}
