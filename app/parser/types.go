package parser

import "time"

// FeedMetadata contains metadata about the parsed appcast
type FeedMetadata struct {
	Title       string
	Link        string
	Description string
	Language    string
}

// FeedItem represents one parsed appcast item
type FeedItem struct {
	Title       string
	Description string
	PublishedAt *time.Time
}
