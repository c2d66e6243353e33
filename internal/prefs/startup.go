package prefs

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const startupFile = "startup.toml"

var ErrInvalidAlias = errors.New("invalid alias")

// Startup holds commands run silently when the timer starts, and the
// user's command aliases.
type Startup struct {
	Commands []string          `toml:"commands"`
	Aliases  map[string]string `toml:"aliases"`
}

// StartupPath is the startup file inside dir.
func StartupPath(dir string) string {
	return filepath.Join(dir, startupFile)
}

// LoadStartup reads the startup file; a missing file is an empty Startup.
func LoadStartup(path string) (Startup, error) {
	var s Startup
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Startup{Aliases: map[string]string{}}, nil
		}
		return Startup{}, err
	}
	if _, err := toml.Decode(string(data), &s); err != nil {
		return Startup{}, fmt.Errorf("parse %s: %w", path, err)
	}
	if s.Aliases == nil {
		s.Aliases = map[string]string{}
	}
	return s, nil
}

// SaveStartup writes the startup file atomically.
func SaveStartup(path string, s Startup) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(s); err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// AddAlias records name as shorthand for expansion and saves the file.
func AddAlias(path, name, expansion string) error {
	if name == "" || expansion == "" {
		return fmt.Errorf("%w: name and expansion are required", ErrInvalidAlias)
	}
	s, err := LoadStartup(path)
	if err != nil {
		return err
	}
	s.Aliases[name] = expansion
	return SaveStartup(path, s)
}
