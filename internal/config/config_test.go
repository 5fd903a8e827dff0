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
	if cfg != Default() {
		t.Fatalf("Load = %+v, want defaults %+v", cfg, Default())
	}
	if cfg.PollEvery != 5*time.Second {
		t.Fatalf("PollEvery = %v, want 5s", cfg.PollEvery)
	}
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
target = "  192.168.1.20:8080  "
app_name = " Mailer "
icon_file = "  ~/icons/bell.png  "
log_level = "DEBUG"
poll_seconds = 12
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Target != "192.168.1.20:8080" {
		t.Fatalf("Target = %q, want %q", cfg.Target, "192.168.1.20:8080")
	}
	if cfg.AppName != "Mailer" || cfg.LogLevel != "debug" {
		t.Fatalf("AppName = %q LogLevel = %q, want Mailer debug", cfg.AppName, cfg.LogLevel)
	}
	if cfg.PollEvery != 12*time.Second {
		t.Fatalf("PollEvery = %v, want 12s", cfg.PollEvery)
	}
	if !strings.HasPrefix(cfg.IconFile, home) {
		t.Fatalf("IconFile = %q, want it under HOME %q", cfg.IconFile, home)
	}
}

func TestLoad_EmptyValuesUseDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
target = "   "
app_name = ""
poll_seconds = -3
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("Load = %+v, want defaults %+v", cfg, Default())
	}
}

func TestLoad_InvalidTOMLFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`target = [`), 0o600); err != nil {
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

func TestIconData(t *testing.T) {
	var cfg Config
	if data, err := cfg.IconData(); err != nil || data != "" {
		t.Fatalf("IconData = (%q, %v), want empty", data, err)
	}

	path := filepath.Join(t.TempDir(), "icon.bin")
	if err := os.WriteFile(path, []byte("icon"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	cfg.IconFile = path
	data, err := cfg.IconData()
	if err != nil {
		t.Fatalf("IconData returned error: %v", err)
	}
	if data != "aWNvbg==" {
		t.Fatalf("IconData = %q, want aWNvbg==", data)
	}

	cfg.IconFile = filepath.Join(t.TempDir(), "missing.png")
	if _, err := cfg.IconData(); err == nil || !strings.Contains(err.Error(), "read icon") {
		t.Fatalf("IconData error = %v, want read icon error", err)
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
