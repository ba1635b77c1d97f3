package appcast

import (
	"regexp"
	"strings"
)

// Inline substitutions run in this order over a single pass; earlier rewrites
// are never re-matched by later patterns.
var (
	linkPattern   = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)
	strongPattern = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	codePattern   = regexp.MustCompile("`([^`]+)`")
)

// RenderMarkdown converts the small markdown subset used in release notes
// into an HTML fragment: headings (# ## ###), unordered lists (- or *),
// paragraphs, and inline links, bold and code spans. Anything fancier is
// passed through as plain paragraph text. Callers are expected to skip
// rendering entirely for empty notes.
func RenderMarkdown(md string) string {
	lines := strings.Split(strings.TrimSpace(md), "\n")
	htmlLines := make([]string, 0, len(lines))
	inList := false

	closeList := func() {
		if inList {
			htmlLines = append(htmlLines, "</ul>")
			inList = false
		}
	}

	for _, line := range lines {
		stripped := strings.TrimSpace(line)

		switch {
		case stripped == "":
			closeList()
			htmlLines = append(htmlLines, "")

		// Three hashes checked before two, before one.
		case strings.HasPrefix(stripped, "### "):
			closeList()
			htmlLines = append(htmlLines, "<h4>"+stripped[4:]+"</h4>")
		case strings.HasPrefix(stripped, "## "):
			closeList()
			htmlLines = append(htmlLines, "<h3>"+stripped[3:]+"</h3>")
		case strings.HasPrefix(stripped, "# "):
			closeList()
			htmlLines = append(htmlLines, "<h2>"+stripped[2:]+"</h2>")

		case strings.HasPrefix(stripped, "- ") || strings.HasPrefix(stripped, "* "):
			if !inList {
				htmlLines = append(htmlLines, "<ul>")
				inList = true
			}
			htmlLines = append(htmlLines, "  <li>"+substituteInline(stripped[2:])+"</li>")

		default:
			closeList()
			htmlLines = append(htmlLines, "<p>"+substituteInline(stripped)+"</p>")
		}
	}

	closeList()

	return strings.Join(htmlLines, "\n")
}

func substituteInline(text string) string {
	text = linkPattern.ReplaceAllString(text, `<a href="$2">$1</a>`)
	text = strongPattern.ReplaceAllString(text, "<strong>$1</strong>")
	text = codePattern.ReplaceAllString(text, "<code>$1</code>")
	return text
}
