package appcast

import (
	"bytes"
	"encoding/xml"
	"html"
	"strings"
)

// nsPrefixes is the generator's fixed prefix registration. Namespace URIs map
// to the same textual prefix on every run, so qualified names created anywhere
// in the document round-trip to identical bytes.
var nsPrefixes = []struct {
	Prefix string
	URI    string
}{
	{"sparkle", SparkleNS},
	{"dc", DublinCoreNS},
}

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

func (g *Generator) Run(doc *Document) (string, error) {
	var buf bytes.Buffer

	buf.WriteString(`<?xml version="1.0" encoding="UTF-8"?>`)
	buf.WriteString("\n")
	buf.WriteString(`<rss version="2.0"`)
	for _, ns := range nsPrefixes {
		buf.WriteString(` xmlns:` + ns.Prefix + `="` + ns.URI + `"`)
	}
	buf.WriteString(">\n  <channel>\n")

	channel := doc.Channel
	g.writeElement(&buf, "title", channel.Title, 4)
	g.writeElement(&buf, "link", channel.Link, 4)
	g.writeElement(&buf, "description", channel.Description, 4)
	g.writeElement(&buf, "language", channel.Language, 4)

	for _, item := range channel.Items {
		g.writeItem(&buf, item)
	}

	buf.WriteString("  </channel>\n</rss>")

	return buf.String(), nil
}

func (g *Generator) writeItem(buf *bytes.Buffer, item Item) {
	buf.WriteString("    <item>\n")

	g.writeElement(buf, "title", item.Title, 6)
	g.writeElement(buf, "pubDate", item.PubDate, 6)
	g.writeElement(buf, g.qualifiedTag(xml.Name{Space: SparkleNS, Local: "version"}), item.Version, 6)
	g.writeElement(buf, g.qualifiedTag(xml.Name{Space: SparkleNS, Local: "shortVersionString"}), item.ShortVersionString, 6)
	g.writeElement(buf, g.qualifiedTag(xml.Name{Space: SparkleNS, Local: "minimumSystemVersion"}), item.MinimumSystemVersion, 6)
	g.writeElement(buf, g.qualifiedTag(xml.Name{Space: SparkleNS, Local: "fullReleaseNotesLink"}), item.FullReleaseNotesLink, 6)
	g.writeElement(buf, "description", item.Description, 6)

	if item.Enclosure != nil && item.Enclosure.URL != "" {
		buf.WriteString(`      <enclosure url="` + html.EscapeString(item.Enclosure.URL) + `"`)
		if item.Enclosure.Type != "" {
			buf.WriteString(` type="` + html.EscapeString(item.Enclosure.Type) + `"`)
		}
		for _, attr := range item.Enclosure.Attrs {
			// xmlns declarations captured on load are re-emitted on the root
			if attr.Name.Space == "xmlns" || attr.Name.Local == "xmlns" {
				continue
			}
			buf.WriteString(" " + g.qualifiedTag(attr.Name) + `="` + html.EscapeString(attr.Value) + `"`)
		}
		buf.WriteString(" />\n")
	}

	buf.WriteString("    </item>\n")
}

func (g *Generator) writeElement(buf *bytes.Buffer, tag, content string, indent int) {
	if content == "" {
		return
	}

	buf.WriteString(strings.Repeat(" ", indent))
	buf.WriteString("<")
	buf.WriteString(tag)
	buf.WriteString(">")
	xml.EscapeText(buf, []byte(content))
	buf.WriteString("</")
	buf.WriteString(tag)
	buf.WriteString(">\n")
}

// qualifiedTag renders a qualified name using the fixed prefix table. Names
// without a namespace, or in a namespace the table does not know, render as
// their local name.
func (g *Generator) qualifiedTag(name xml.Name) string {
	if name.Space == "" {
		return name.Local
	}
	for _, ns := range nsPrefixes {
		if ns.URI == name.Space {
			return ns.Prefix + ":" + name.Local
		}
	}
	return name.Local
}
