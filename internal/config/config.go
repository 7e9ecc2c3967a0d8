// Package config resolves gitjot settings from flags, environment, and the
// optional .gitjot.yaml file, in that priority order.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the per-project configuration file gitjot looks for in the
// working directory and then in the user config directory.
const FileName = ".gitjot.yaml"

// File is what .gitjot.yaml may carry. Every field is optional; pointers
// distinguish "unset" from a zero value.
type File struct {
	Format        string `yaml:"format,omitempty"`
	Theme         string `yaml:"theme,omitempty"`
	Raw           *bool  `yaml:"raw,omitempty"`
	Quiet         *bool  `yaml:"quiet,omitempty"`
	Warnings      *bool  `yaml:"warnings,omitempty"`
	MaxLineLength int    `yaml:"max_line_length,omitempty"`
}

// Load reads and parses a config file. A missing file is not an error: it
// returns the zero File so resolution falls through to defaults.
func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return File{}, nil
		}
		return File{}, fmt.Errorf("reading config: %w", err)
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return File{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	return f, nil
}

// FindAndLoad loads the first config file found: working directory first,
// then the user config directory. No file at all yields the zero File.
func FindAndLoad() (File, error) {
	if f, err := Load(FileName); err != nil || f != (File{}) {
		return f, err
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return File{}, nil
	}
	return Load(filepath.Join(dir, "gitjot", FileName))
}
