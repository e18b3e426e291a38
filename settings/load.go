package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned for preset files that are neither YAML
// nor TOML.
var ErrUnsupportedFormat = errors.New("settings: unsupported preset format")

// Load reads a preset file on top of Defaults. Fields missing from the
// file keep their default value. The format is chosen by extension:
// .yaml/.yml or .toml.
func Load(path string) (Settings, error) {
	s := Defaults()
	if path == "" {
		return s, nil
	}

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return s, fmt.Errorf("reading preset: %w", err)
	}
	if err := Decode(data, filepath.Ext(path), &s); err != nil {
		return s, err
	}
	return s, nil
}

// Decode unmarshals data in the format named by ext into s. Only fields
// present in data are overwritten.
func Decode(data []byte, ext string, s *Settings) error {
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, s); err != nil {
			return fmt.Errorf("parsing YAML preset: %w", err)
		}
	case "toml":
		if _, err := toml.Decode(string(data), s); err != nil {
			return fmt.Errorf("parsing TOML preset: %w", err)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	return nil
}

// Save writes s to path in the format chosen by its extension.
func Save(path string, s Settings) error {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml", ".toml":
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}

	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("creating preset: %w", err)
	}

	if ext == ".toml" {
		err = toml.NewEncoder(f).Encode(s)
	} else {
		enc := yaml.NewEncoder(f)
		err = enc.Encode(s)
		if cerr := enc.Close(); err == nil {
			err = cerr
		}
	}

	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}
