package appcast

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/lysyi3m/appcast-comb/app/config"
	"github.com/lysyi3m/appcast-comb/app/parser"
)

// Processor runs the whole update as one synchronous pipeline:
// load -> merge -> build -> generate -> verify.
type Processor struct {
	appcastConfig *config.AppcastConfig
	loader        *Loader
	merger        *Merger
	builder       *Builder
	generator     *Generator
	parser        *parser.Parser
}

func NewProcessor(appcastConfig *config.AppcastConfig) *Processor {
	return &Processor{
		appcastConfig: appcastConfig,
		loader:        NewLoader(appcastConfig),
		merger:        NewMerger(appcastConfig.Settings.RetentionLimit),
		builder:       NewBuilder(appcastConfig),
		generator:     NewGenerator(),
		parser:        parser.NewParser(),
	}
}

// Run produces the updated appcast document for one release. existing may be
// nil or malformed; signatureLine is the raw output of the signing tool; now
// stamps the new item's publication date.
func (p *Processor) Run(existing []byte, signatureLine string, release Release, now time.Time) (string, error) {
	signatureAttrs := ParseSignatureAttrs(signatureLine)

	doc := p.loader.Run(existing)

	p.merger.Run(doc.Channel, release.Version)

	item := p.builder.Run(release, signatureAttrs, now)
	doc.Channel.Items = append(doc.Channel.Items, item)

	output, err := p.generator.Run(doc)
	if err != nil {
		return "", fmt.Errorf("failed to generate appcast: %w", err)
	}

	if _, items, err := p.parser.Run([]byte(output)); err != nil {
		return "", fmt.Errorf("generated appcast failed verification: %w", err)
	} else if len(items) != len(doc.Channel.Items) {
		return "", fmt.Errorf("generated appcast failed verification: expected %d items, parsed %d",
			len(doc.Channel.Items), len(items))
	}

	slog.Info("Generated appcast",
		"version", release.Version,
		"items", len(doc.Channel.Items))

	return output, nil
}
