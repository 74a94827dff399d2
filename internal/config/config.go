// Package config loads the settings of the interactive shell. Settings live
// in a TOML or YAML file inside the user's configuration directory; the
// lexer and parser themselves have no configuration surface.
package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	APP_NAME    = "tern"
	CONFIG_FILE = "config.toml"
)

type Config struct {
	Prompt string `toml:"prompt" yaml:"prompt"`
	Mode   Mode   `toml:"mode" yaml:"mode"`
	Color  bool   `toml:"color" yaml:"color"`

	// Path of the file the configuration was read from, empty for defaults.
	Path string `toml:"-" yaml:"-"`
}

func Default() *Config {
	return &Config{
		Prompt: "->",
		Mode:   MODE_TOKENS,
		Color:  true,
	}
}

type Format int

const (
	FORMAT_TOML Format = iota
	FORMAT_YAML
)

func (f Format) String() string {
	switch f {
	case FORMAT_TOML:
		return "toml"
	case FORMAT_YAML:
		return "yaml"
	}
	return "unknown"
}

// DetectFormat picks the decoder from the file extension. Anything that is
// not YAML is read as TOML.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FORMAT_YAML
	default:
		return FORMAT_TOML
	}
}

// Load reads the file at path on top of the default configuration, so keys
// missing from the file keep their default value.
func Load(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading config %s", path)
	}

	cfg := Default()
	switch DetectFormat(path) {
	case FORMAT_YAML:
		if err := yaml.Unmarshal(content, cfg); err != nil {
			return nil, errors.Wrapf(err, "YAML parse error in %s", path)
		}
	case FORMAT_TOML:
		if _, err := toml.Decode(string(content), cfg); err != nil {
			return nil, errors.Wrapf(err, "TOML parse error in %s", path)
		}
	}
	cfg.Path = path

	if cfg.Prompt == "" {
		cfg.Prompt = Default().Prompt
	}
	return cfg, nil
}

// LoadDefault reads config.toml from the configuration directory, writing
// the default configuration there first if the file does not exist yet.
func LoadDefault() (*Config, error) {
	dir, err := Dir(APP_NAME)
	if err != nil {
		return nil, err
	}

	path := filepath.Join(dir, CONFIG_FILE)
	_, err = os.Stat(path)
	if os.IsNotExist(err) {
		if err := Write(path, Default()); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, errors.Wrapf(err, "stat %s", path)
	}

	return Load(path)
}

func Write(path string, cfg *Config) error {
	var buf bytes.Buffer
	switch DetectFormat(path) {
	case FORMAT_YAML:
		enc := yaml.NewEncoder(&buf)
		if err := enc.Encode(cfg); err != nil {
			return errors.Wrap(err, "encoding YAML config")
		}
		if err := enc.Close(); err != nil {
			return errors.Wrap(err, "encoding YAML config")
		}
	case FORMAT_TOML:
		if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
			return errors.Wrap(err, "encoding TOML config")
		}
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return errors.Wrapf(err, "writing config %s", path)
	}
	return nil
}
