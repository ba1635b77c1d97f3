package config

import (
	"fmt"
)

// ReleaseTagURL returns the canonical release page for a version label
func (c *AppcastConfig) ReleaseTagURL(version string) string {
	return fmt.Sprintf("%s/releases/tag/v%s", c.App.RepoURL, version)
}
