package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfigInitAndValidate(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"config", "validate"}, env.configPath)
	if err != nil {
		t.Fatalf("config validate: %v", err)
	}
	requireContains(t, out, "Config path: "+env.configPath)
	requireContains(t, out, "Configuration valid")

	tmp := t.TempDir()
	target := filepath.Join(tmp, "config.toml")
	out, _, err = runCLI(t, []string{"config", "init", "--path", target}, env.configPath)
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, out, "Wrote sample configuration")

	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected config file at %s: %v", target, err)
	}

	// A second init refuses to clobber the file unless told to.
	_, _, err = runCLI(t, []string{"config", "init", "--path", target}, env.configPath)
	if err == nil {
		t.Fatal("expected init to refuse overwriting")
	}
	requireContains(t, err.Error(), "already exists")

	if _, _, err := runCLI(t, []string{"config", "init", "--path", target, "--overwrite"}, env.configPath); err != nil {
		t.Fatalf("config init --overwrite: %v", err)
	}
}

func TestConfigValidateWithoutFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	out, _, err := runCLI(t, []string{"config", "validate"}, "")
	if err != nil {
		t.Fatalf("config validate: %v", err)
	}
	requireContains(t, out, "Config file did not exist; defaults were used")
	requireContains(t, out, "Configuration valid")
}

func TestConfigShowPrintsEffectiveConfig(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"config", "show"}, env.configPath)
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	requireContains(t, out, "# "+env.configPath)
	requireContains(t, out, "[scan]")
	requireContains(t, out, "extension")
	requireContains(t, out, "[journal]")
}

func TestConfigValidateRejectsBadConfig(t *testing.T) {
	env := setupCLITestEnv(t)
	if err := os.WriteFile(env.configPath, []byte("[scan]\nextension = \"tar.gz\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	_, _, err := runCLI(t, []string{"config", "validate"}, env.configPath)
	if err == nil {
		t.Fatal("expected invalid extension to fail validation")
	}
	requireContains(t, err.Error(), "extension")
}
