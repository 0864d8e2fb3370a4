package testsupport

import (
	"path/filepath"
	"testing"

	"reframe/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with a unique temp journal per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Journal.Path = filepath.Join(base, "journal.db")

	for _, opt := range opts {
		opt(&cfg)
	}

	return &cfg
}

// WithExtraFamilies sets additional family words on the test config.
func WithExtraFamilies(families ...string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Naming.ExtraFamilies = families
	}
}

// WithJournalDisabled turns off journaling on the test config.
func WithJournalDisabled() ConfigOption {
	return func(cfg *config.Config) {
		cfg.Journal.Enabled = false
	}
}
