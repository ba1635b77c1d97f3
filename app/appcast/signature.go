package appcast

import (
	"encoding/xml"
	"strings"
)

// namespacePrefixes maps the prefixes a signing tool may emit to their
// namespace URIs. Keys with any other prefix pass through unchanged.
var namespacePrefixes = map[string]string{
	"sparkle": SparkleNS,
	"dc":      DublinCoreNS,
}

// ParseSignatureAttrs parses one line of whitespace-separated key="value"
// tokens, as produced by Sparkle's sign_update tool, e.g.
//
//	sparkle:edSignature="bG9yZW0=" length="12345"
//
// Tokens without an "=" are ignored. Recognized namespace prefixes are
// resolved to their URIs so consumers never match on textual prefixes.
// Attribute order follows token order; a repeated key keeps its first
// position and takes the last value.
func ParseSignatureAttrs(line string) []xml.Attr {
	attrs := make([]xml.Attr, 0, 4)

	for _, token := range strings.Fields(strings.TrimSpace(line)) {
		key, value, found := strings.Cut(token, "=")
		if !found {
			continue
		}
		value = strings.Trim(strings.TrimSpace(value), `"`)

		name := resolveQualifiedKey(key)

		if idx := indexOfAttr(attrs, name); idx >= 0 {
			attrs[idx].Value = value
			continue
		}
		attrs = append(attrs, xml.Attr{Name: name, Value: value})
	}

	return attrs
}

func resolveQualifiedKey(key string) xml.Name {
	prefix, local, found := strings.Cut(key, ":")
	if !found {
		return xml.Name{Local: key}
	}
	if uri, ok := namespacePrefixes[prefix]; ok {
		return xml.Name{Space: uri, Local: local}
	}
	return xml.Name{Local: key}
}

func indexOfAttr(attrs []xml.Attr, name xml.Name) int {
	for i, attr := range attrs {
		if attr.Name == name {
			return i
		}
	}
	return -1
}
