package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	c.normalizeScan()
	c.normalizeNaming()
	if err := c.normalizeJournal(); err != nil {
		return err
	}
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizeScan() {
	ext := strings.ToLower(strings.TrimSpace(c.Scan.Extension))
	ext = strings.TrimPrefix(ext, ".")
	if ext == "" {
		ext = defaultExtension
	}
	c.Scan.Extension = ext
}

func (c *Config) normalizeNaming() {
	if len(c.Naming.ExtraFamilies) == 0 {
		return
	}
	families := make([]string, 0, len(c.Naming.ExtraFamilies))
	seen := make(map[string]struct{}, len(c.Naming.ExtraFamilies))
	for _, family := range c.Naming.ExtraFamilies {
		normalized := strings.ToLower(strings.TrimSpace(family))
		if normalized == "" {
			continue
		}
		if _, exists := seen[normalized]; exists {
			continue
		}
		seen[normalized] = struct{}{}
		families = append(families, normalized)
	}
	c.Naming.ExtraFamilies = families
}

func (c *Config) normalizeJournal() error {
	var err error
	if strings.TrimSpace(c.Journal.Path) == "" {
		c.Journal.Path = defaultJournalPath()
	}
	if c.Journal.Path, err = expandPath(c.Journal.Path); err != nil {
		return fmt.Errorf("journal.path: %w", err)
	}
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
