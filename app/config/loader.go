package config

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// Loader handles loading and validation of the appcast profile
type Loader struct {
	path string
}

// NewLoader creates a new profile loader
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// Load reads the YAML profile, applies defaults and validates it
func (l *Loader) Load() (*AppcastConfig, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile: %w", err)
	}

	var config AppcastConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	l.setDefaults(&config)

	if err := l.validate(&config); err != nil {
		return nil, fmt.Errorf("invalid profile %s: %w", l.path, err)
	}

	slog.Debug("Loaded appcast profile", "path", l.path, "app", config.App.Name)

	return &config, nil
}

// setDefaults applies default values derived from the app identity
func (l *Loader) setDefaults(config *AppcastConfig) {
	if config.Channel.Title == "" {
		config.Channel.Title = fmt.Sprintf("%s Updates", config.App.Name)
	}
	if config.Channel.Description == "" {
		config.Channel.Description = fmt.Sprintf("Updates for %s", config.App.Name)
	}
	if config.Channel.Link == "" {
		config.Channel.Link = config.App.RepoURL + "/releases/latest/download/appcast.xml"
	}
	if config.Channel.Language == "" {
		config.Channel.Language = "en"
	}
	if config.Settings.MinimumSystemVersion == "" {
		config.Settings.MinimumSystemVersion = "15.2"
	}
	if config.Settings.EnclosureType == "" {
		config.Settings.EnclosureType = "application/octet-stream"
	}
	if config.Settings.RetentionLimit == 0 {
		config.Settings.RetentionLimit = 15
	}
}

// validate validates the profile
func (l *Loader) validate(config *AppcastConfig) error {
	if config.App.Name == "" {
		return fmt.Errorf("app name is required")
	}
	if config.App.RepoURL == "" {
		return fmt.Errorf("app repo_url is required")
	}
	if config.Settings.RetentionLimit < 0 {
		return fmt.Errorf("retention limit must be non-negative")
	}
	return nil
}
