// Package parser re-parses generated appcast documents through gofeed. It is
// used as a post-generation sanity check: output that a feed reader cannot
// parse must never be written.
package parser

import (
	"bytes"
	"fmt"

	"github.com/mmcdole/gofeed"
)

type Parser struct {
	gofeedParser *gofeed.Parser
}

func NewParser() *Parser {
	return &Parser{
		gofeedParser: gofeed.NewParser(),
	}
}

// Run parses appcast data and returns its metadata and items
func (p *Parser) Run(data []byte) (*FeedMetadata, []FeedItem, error) {
	feed, err := p.gofeedParser.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse feed: %w", err)
	}

	metadata := &FeedMetadata{
		Title:       feed.Title,
		Link:        feed.Link,
		Description: feed.Description,
		Language:    feed.Language,
	}

	items := make([]FeedItem, 0, len(feed.Items))
	for _, item := range feed.Items {
		parsed := FeedItem{
			Title:       item.Title,
			Description: item.Description,
		}
		if item.PublishedParsed != nil {
			parsed.PublishedAt = item.PublishedParsed
		}
		items = append(items, parsed)
	}

	return metadata, items, nil
}
