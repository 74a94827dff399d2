package config

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// Dir returns the configuration directory of appName, creating it when
// needed. XDG_CONFIG_HOME wins over the platform default.
func Dir(appName string) (string, error) {
	var configDir string

	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		configDir = filepath.Join(configHome, appName)
	} else if homeDir, err := os.UserHomeDir(); err == nil {
		if os.Getenv("OS") == "Windows_NT" {
			configDir = filepath.Join(os.Getenv("APPDATA"), appName)
		} else {
			configDir = filepath.Join(homeDir, ".config", appName)
		}
	} else {
		return "", errors.New("could not determine home directory")
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return "", errors.Wrapf(err, "creating %s", configDir)
	}

	return configDir, nil
}
