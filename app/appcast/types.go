package appcast

import (
	"encoding/xml"
	"time"
)

// Namespace URIs used throughout the appcast. Qualified names are carried as
// xml.Name (namespace URI + local name) pairs; textual prefixes exist only in
// the generator's prefix table.
const (
	SparkleNS    = "http://www.andymatuschak.org/xml-namespaces/sparkle"
	DublinCoreNS = "http://purl.org/dc/elements/1.1/"
)

// PubDateFormat is the RSS publication date layout, always carrying an
// explicit timezone offset.
const PubDateFormat = time.RFC1123Z

type Document struct {
	XMLName xml.Name `xml:"rss"`
	Version string   `xml:"version,attr"`
	Channel *Channel `xml:"channel"`
}

type Channel struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	Description string `xml:"description"`
	Language    string `xml:"language"`
	Items       []Item `xml:"item"`
}

type Item struct {
	Title                string     `xml:"title"`
	PubDate              string     `xml:"pubDate"`
	Version              string     `xml:"http://www.andymatuschak.org/xml-namespaces/sparkle version"`
	ShortVersionString   string     `xml:"http://www.andymatuschak.org/xml-namespaces/sparkle shortVersionString"`
	MinimumSystemVersion string     `xml:"http://www.andymatuschak.org/xml-namespaces/sparkle minimumSystemVersion"`
	FullReleaseNotesLink string     `xml:"http://www.andymatuschak.org/xml-namespaces/sparkle fullReleaseNotesLink"`
	Description          string     `xml:"description"`
	Enclosure            *Enclosure `xml:"enclosure"`
}

type Enclosure struct {
	URL  string `xml:"url,attr"`
	Type string `xml:"type,attr"`
	// Attrs collects the remaining enclosure attributes, typically the
	// signature attributes produced by the signing step (sparkle:edSignature,
	// length). Order is preserved from the source document.
	Attrs []xml.Attr `xml:",any,attr"`
}

// PubDateParsed returns the item's publication date, or ok=false when the
// pubDate element is absent or does not parse. Items in that state are
// considered malformed and never survive a merge.
func (i *Item) PubDateParsed() (time.Time, bool) {
	if i.PubDate == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(PubDateFormat, i.PubDate)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Release holds the metadata of the release being published.
type Release struct {
	Version     string // human-readable version label, e.g. "1.2.0"
	BuildNumber string // compared by update clients against the installed build
	DownloadURL string
	Notes       string // markdown release notes, may be empty
	ReleaseURL  string // full release page URL, may be empty
}
