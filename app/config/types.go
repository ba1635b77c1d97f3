package config

// AppcastConfig represents a complete appcast profile
type AppcastConfig struct {
	App      AppInfo         `yaml:"app"`
	Channel  ChannelInfo     `yaml:"channel"`
	Settings AppcastSettings `yaml:"settings"`
}

// AppInfo identifies the application the appcast announces
type AppInfo struct {
	Name    string `yaml:"name"`
	RepoURL string `yaml:"repo_url"`
}

// ChannelInfo contains the channel-level feed metadata
type ChannelInfo struct {
	Title       string `yaml:"title"`
	Link        string `yaml:"link"`
	Description string `yaml:"description"`
	Language    string `yaml:"language"`
}

// AppcastSettings contains item generation settings
type AppcastSettings struct {
	MinimumSystemVersion string `yaml:"minimum_system_version"`
	EnclosureType        string `yaml:"enclosure_type"`
	RetentionLimit       int    `yaml:"retention_limit"`
}
