package config

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures herald's settings.
type Config struct {
	Target    string
	AppName   string
	IconFile  string
	LogLevel  string
	PollEvery time.Duration
}

const (
	defaultConfigPath  = "~/.config/herald/config.toml"
	defaultAppName     = "herald"
	defaultLogLevel    = "info"
	defaultPollSeconds = 5
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		AppName:   defaultAppName,
		LogLevel:  defaultLogLevel,
		PollEvery: defaultPollSeconds * time.Second,
	}
}

// Load locates and parses the config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		Target      string `toml:"target"`
		AppName     string `toml:"app_name"`
		IconFile    string `toml:"icon_file"`
		LogLevel    string `toml:"log_level"`
		PollSeconds int    `toml:"poll_seconds"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg.Target = strings.TrimSpace(raw.Target)
	if name := strings.TrimSpace(raw.AppName); name != "" {
		cfg.AppName = name
	}
	if level := strings.TrimSpace(raw.LogLevel); level != "" {
		cfg.LogLevel = strings.ToLower(level)
	}
	if raw.PollSeconds > 0 {
		cfg.PollEvery = time.Duration(raw.PollSeconds) * time.Second
	}
	if icon := strings.TrimSpace(raw.IconFile); icon != "" {
		cfg.IconFile = mustExpand(icon)
	}

	return cfg, nil
}

// IconData returns the icon file base64 encoded, or "" when none is set.
func (c Config) IconData() (string, error) {
	if strings.TrimSpace(c.IconFile) == "" {
		return "", nil
	}
	data, err := os.ReadFile(c.IconFile)
	if err != nil {
		return "", fmt.Errorf("read icon: %w", err)
	}
	return base64.StdEncoding.EncodeToString(data), nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
