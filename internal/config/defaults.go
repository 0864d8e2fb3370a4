package config

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	defaultExtension = "png"
	defaultLogFormat = "console"
	defaultLogLevel  = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Scan: Scan{
			Extension: defaultExtension,
		},
		Journal: Journal{
			Enabled: true,
			Path:    defaultJournalPath(),
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}

func defaultJournalPath() string {
	if base, ok := os.LookupEnv("XDG_DATA_HOME"); ok && strings.TrimSpace(base) != "" {
		return filepath.Join(base, "reframe", "journal.db")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "~/.local/share/reframe/journal.db"
	}
	return filepath.Join(home, ".local", "share", "reframe", "journal.db")
}
