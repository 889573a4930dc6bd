package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.APIURL != defaultAPIURL {
		t.Fatalf("APIURL = %q, want %q", cfg.APIURL, defaultAPIURL)
	}
	if cfg.RequestTimeoutSeconds != defaultTimeoutSeconds {
		t.Fatalf("RequestTimeoutSeconds = %d, want %d", cfg.RequestTimeoutSeconds, defaultTimeoutSeconds)
	}
	if cfg.PollSeconds != 0 {
		t.Fatalf("PollSeconds = %d, want 0 (auto-refresh off)", cfg.PollSeconds)
	}
	if !strings.HasPrefix(cfg.LogFile, home) {
		t.Fatalf("LogFile = %q, want it expanded under HOME %q", cfg.LogFile, home)
	}
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
api_url = "  https://fsa-puppy-bowl.herokuapp.com/api/2310-fsa-et-web-ft  "
request_timeout_seconds = 9
poll_seconds = 30
log_file = "  ~/kennel-debug.log  "
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.APIURL != "https://fsa-puppy-bowl.herokuapp.com/api/2310-fsa-et-web-ft" {
		t.Fatalf("APIURL = %q, want trimmed file value", cfg.APIURL)
	}
	if cfg.RequestTimeoutSeconds != 9 {
		t.Fatalf("RequestTimeoutSeconds = %d, want 9", cfg.RequestTimeoutSeconds)
	}
	if cfg.PollSeconds != 30 {
		t.Fatalf("PollSeconds = %d, want 30", cfg.PollSeconds)
	}
	if cfg.LogFile != filepath.Join(home, "kennel-debug.log") {
		t.Fatalf("LogFile = %q, want it expanded under HOME", cfg.LogFile)
	}
}

func TestLoad_EmptyValuesUseDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
api_url = "   "
log_file = ""
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.APIURL != defaultAPIURL {
		t.Fatalf("APIURL = %q, want %q", cfg.APIURL, defaultAPIURL)
	}
	if cfg.RequestTimeoutSeconds != defaultTimeoutSeconds {
		t.Fatalf("RequestTimeoutSeconds = %d, want default", cfg.RequestTimeoutSeconds)
	}
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
api_url = "https://file.example.com/api/cohort"
poll_seconds = 10
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	t.Setenv("KENNEL_API_URL", "https://env.example.com/api/cohort")
	t.Setenv("KENNEL_POLL_SECONDS", "45")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.APIURL != "https://env.example.com/api/cohort" {
		t.Fatalf("APIURL = %q, want environment value", cfg.APIURL)
	}
	if cfg.PollSeconds != 45 {
		t.Fatalf("PollSeconds = %d, want environment value 45", cfg.PollSeconds)
	}
}

func TestLoad_InvalidTOMLFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`api_url = [`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	_, err := Load(path)
	if err == nil {
		t.Fatalf("Load returned nil error, want parse error")
	}
	if !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("Load error = %q, want it to mention parse config", err.Error())
	}
}

func TestDurationHelpers(t *testing.T) {
	cfg := Config{RequestTimeoutSeconds: 7, PollSeconds: 15}
	if cfg.Timeout() != 7*time.Second {
		t.Fatalf("Timeout() = %v, want 7s", cfg.Timeout())
	}
	if cfg.PollInterval() != 15*time.Second {
		t.Fatalf("PollInterval() = %v, want 15s", cfg.PollInterval())
	}

	cfg.PollSeconds = 0
	if cfg.PollInterval() != 0 {
		t.Fatalf("PollInterval() = %v, want 0 when disabled", cfg.PollInterval())
	}
}

func TestExpandPath_ExpandsTildeAndReturnsAbs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := expandPath("~/a/b")
	if err != nil {
		t.Fatalf("expandPath returned error: %v", err)
	}
	want := filepath.Join(home, "a/b")
	if got != want {
		t.Fatalf("expandPath = %q, want %q", got, want)
	}
}

func TestExpandPath_EmptyErrors(t *testing.T) {
	if _, err := expandPath("   "); err == nil {
		t.Fatalf("expandPath returned nil error, want error")
	}
}
