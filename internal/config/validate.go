package config

import (
	"errors"
	"fmt"
	"regexp"
)

// Token shape shared by the scan extension and family words. Anything
// outside it would leak regex or path metacharacters into the naming
// scheme.
var reToken = regexp.MustCompile(`^[a-z0-9]+$`)

// Validate ensures the configuration is usable. Behavioral settings fail
// hard; cosmetic ones (logging) are already coerced during normalization.
func (c *Config) Validate() error {
	if err := c.validateScan(); err != nil {
		return err
	}
	if err := c.validateNaming(); err != nil {
		return err
	}
	if err := c.validateJournal(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateScan() error {
	if !reToken.MatchString(c.Scan.Extension) {
		return fmt.Errorf("scan.extension %q must be lowercase letters and digits", c.Scan.Extension)
	}
	return nil
}

func (c *Config) validateNaming() error {
	for _, family := range c.Naming.ExtraFamilies {
		if !reToken.MatchString(family) {
			return fmt.Errorf("naming.extra_families entry %q must be lowercase letters and digits", family)
		}
	}
	return nil
}

func (c *Config) validateJournal() error {
	if c.Journal.Enabled && c.Journal.Path == "" {
		return errors.New("journal.path must be set when journal.enabled is true")
	}
	return nil
}
