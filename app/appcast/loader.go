package appcast

import (
	"encoding/xml"
	"log/slog"

	"github.com/lysyi3m/appcast-comb/app/config"
)

type Loader struct {
	appcastConfig *config.AppcastConfig
}

func NewLoader(appcastConfig *config.AppcastConfig) *Loader {
	return &Loader{appcastConfig: appcastConfig}
}

// Run parses an existing appcast document. A missing document, an XML parse
// failure or a document without a channel is never fatal: the loader logs a
// warning and returns a fresh skeleton instead.
func (l *Loader) Run(data []byte) *Document {
	if len(data) == 0 {
		slog.Warn("No existing appcast found, creating fresh one")
		return l.skeleton()
	}

	var doc Document
	if err := xml.Unmarshal(data, &doc); err != nil {
		slog.Warn("Could not parse existing appcast, creating fresh one", "error", err)
		return l.skeleton()
	}

	if doc.Channel == nil {
		slog.Warn("Existing appcast has no channel element, creating fresh one")
		return l.skeleton()
	}

	if doc.Version == "" {
		doc.Version = "2.0"
	}

	return &doc
}

func (l *Loader) skeleton() *Document {
	return &Document{
		Version: "2.0",
		Channel: &Channel{
			Title:       l.appcastConfig.Channel.Title,
			Link:        l.appcastConfig.Channel.Link,
			Description: l.appcastConfig.Channel.Description,
			Language:    l.appcastConfig.Channel.Language,
		},
	}
}
