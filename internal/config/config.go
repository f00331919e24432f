package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/vvka-141/codesnap/internal/files/filesystem"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// ProjectConfig mirrors codesnap.yaml (or codesnap.toml). Empty fields mean "not set".
type ProjectConfig struct {
	Root        string   `yaml:"root,omitempty" toml:"root,omitempty"`
	Output      string   `yaml:"output,omitempty" toml:"output,omitempty"`
	Extensions  []string `yaml:"extensions,omitempty" toml:"extensions,omitempty"`
	Decode      string   `yaml:"decode,omitempty" toml:"decode,omitempty"`
	OnWalkError string   `yaml:"on_walk_error,omitempty" toml:"on_walk_error,omitempty"`
}

const (
	ConfigFileName     = "codesnap.yaml"
	TOMLConfigFileName = "codesnap.toml"
)

// Load reads the project config from dir on the OS filesystem.
// ConfigFileName wins when both it and TOMLConfigFileName exist.
func Load(dir string) (*ProjectConfig, error) {
	return LoadFS(filesystem.NewOSFileSystem(), dir)
}

// LoadFS is Load over an arbitrary filesystem provider.
func LoadFS(fsProvider filesystem.FileSystemProvider, dir string) (*ProjectConfig, error) {
	cfg, err := LoadFileFS(fsProvider, filepath.Join(dir, ConfigFileName))
	if !errors.Is(err, ErrConfigNotFound) {
		return cfg, err
	}
	return LoadFileFS(fsProvider, filepath.Join(dir, TOMLConfigFileName))
}

// LoadFile reads a project config from an explicit path on the OS filesystem.
// Files ending in .toml are parsed as TOML, everything else as YAML.
func LoadFile(path string) (*ProjectConfig, error) {
	return LoadFileFS(filesystem.NewOSFileSystem(), path)
}

// LoadFileFS is LoadFile over an arbitrary filesystem provider.
func LoadFileFS(fsProvider filesystem.FileSystemProvider, path string) (*ProjectConfig, error) {
	data, err := fsProvider.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg ProjectConfig
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		decoder := toml.NewDecoder(bytes.NewReader(data))
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		return &cfg, nil
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &cfg, nil
}
