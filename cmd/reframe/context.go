package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"reframe/internal/config"
	"reframe/internal/frame"
	"reframe/internal/logging"
)

// commandContext resolves configuration once and shares it across the
// command tree.
type commandContext struct {
	configFlag *string

	configOnce   sync.Once
	config       *config.Config
	configPath   string
	configExists bool
	configErr    error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, resolvedPath, exists, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
		c.configPath = resolvedPath
		c.configExists = exists
	})
	return c.config, c.configErr
}

// configSource reports the resolved configuration path and whether a file
// existed there.
func (c *commandContext) configSource() (string, bool) {
	_, _ = c.ensureConfig()
	return c.configPath, c.configExists
}

// scheme builds the naming convention from configuration.
func (c *commandContext) scheme() (frame.Scheme, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return frame.Scheme{}, err
	}
	return frame.New(cfg.Scan.Extension, cfg.Naming.ExtraFamilies)
}

// logger builds a logger writing to the command's stderr stream, keeping
// stdout free for tables and JSON.
func (c *commandContext) logger(cmd *cobra.Command) *slog.Logger {
	opts := logging.Options{Output: cmd.ErrOrStderr()}
	if cfg, err := c.ensureConfig(); err == nil && cfg != nil {
		opts.Level = cfg.Logging.Level
		opts.Format = cfg.Logging.Format
	}
	logger, err := logging.New(opts)
	if err != nil {
		return logging.NewNop()
	}
	return logger
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

// resolveDir turns the optional positional argument of plan and apply
// into an absolute directory path, defaulting to the working directory.
func resolveDir(args []string) (string, error) {
	dir := "."
	if len(args) > 0 && strings.TrimSpace(args[0]) != "" {
		dir = args[0]
	}
	expanded, err := config.ExpandPath(dir)
	if err != nil {
		return "", err
	}
	info, err := os.Stat(expanded)
	if err != nil {
		return "", fmt.Errorf("inspect directory: %w", err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%s is not a directory", expanded)
	}
	return expanded, nil
}
