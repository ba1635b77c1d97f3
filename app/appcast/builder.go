package appcast

import (
	"encoding/xml"
	"fmt"
	"strings"
	"time"

	"github.com/lysyi3m/appcast-comb/app/config"
)

type Builder struct {
	appcastConfig *config.AppcastConfig
}

func NewBuilder(appcastConfig *config.AppcastConfig) *Builder {
	return &Builder{appcastConfig: appcastConfig}
}

// Run assembles one appcast item from the release metadata and the signature
// attributes, stamping it with the given publication time.
func (b *Builder) Run(release Release, signatureAttrs []xml.Attr, now time.Time) Item {
	item := Item{
		Title:                fmt.Sprintf("Version %s", release.Version),
		PubDate:              now.Format(PubDateFormat),
		Version:              release.BuildNumber,
		ShortVersionString:   release.Version,
		MinimumSystemVersion: b.appcastConfig.Settings.MinimumSystemVersion,
		FullReleaseNotesLink: release.ReleaseURL,
		Description:          b.buildDescription(release, now),
		Enclosure: &Enclosure{
			URL:   release.DownloadURL,
			Type:  b.appcastConfig.Settings.EnclosureType,
			Attrs: signatureAttrs,
		},
	}

	return item
}

func (b *Builder) buildDescription(release Release, now time.Time) string {
	heading := fmt.Sprintf("<h2>%s v%s</h2>", b.appcastConfig.App.Name, release.Version)

	if strings.TrimSpace(release.Notes) != "" {
		return fmt.Sprintf("\n%s\n%s\n", heading, RenderMarkdown(release.Notes))
	}

	return fmt.Sprintf("\n%s\n<p>This release was published on %s.</p>\n<p>\nView the full release notes on\n<a href=\"%s\">GitHub</a>.\n</p>\n",
		heading,
		now.Format("2006-01-02"),
		b.appcastConfig.ReleaseTagURL(release.Version))
}
