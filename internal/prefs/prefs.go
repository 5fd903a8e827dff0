// Package prefs remembers the device herald talks to between invocations.
//
// The remembered host lives in ~/.config/herald/prefs.toml under the
// "target" key. "herald target HOST" writes it, "herald forget" removes the
// file, and every command reads it when --target is not given.
package prefs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Prefs is the on-disk preference record.
type Prefs struct {
	// Target is the remembered device host (host[:port] or a full URL).
	Target string `toml:"target"`
}

const defaultPrefsPath = "~/.config/herald/prefs.toml"

// Load returns the stored preferences. A missing, unreadable or malformed
// file counts as nothing remembered; the error is reported but the returned
// Prefs is always usable.
func Load(path string) (Prefs, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Prefs{}, err
	}
	data, err := os.ReadFile(resolved)
	if errors.Is(err, os.ErrNotExist) {
		return Prefs{}, nil
	}
	if err != nil {
		return Prefs{}, fmt.Errorf("read prefs: %w", err)
	}

	var p Prefs
	if err := toml.Unmarshal(data, &p); err != nil {
		return Prefs{}, fmt.Errorf("parse prefs: %w", err)
	}
	p.Target = strings.TrimSpace(p.Target)
	return p, nil
}

// Remember stores host as the default target.
func Remember(path, host string) error {
	host = strings.TrimSpace(host)
	if host == "" {
		return fmt.Errorf("target host is empty")
	}
	return save(path, Prefs{Target: host})
}

// Forget drops the remembered target. Forgetting when nothing is stored is
// not an error.
func Forget(path string) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return err
	}
	if err := os.Remove(resolved); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove prefs: %w", err)
	}
	return nil
}

func save(path string, p Prefs) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}
	data, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode prefs: %w", err)
	}
	if err := os.WriteFile(resolved, data, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	return nil
}

func resolvePath(path string) (string, error) {
	p := strings.TrimSpace(path)
	if p == "" {
		p = defaultPrefsPath
	}
	if rest, ok := strings.CutPrefix(p, "~"); ok {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		p = filepath.Join(home, rest)
	}
	return filepath.Abs(p)
}
