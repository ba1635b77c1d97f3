package appcast

import (
	"strings"
	"testing"
)

func TestRenderMarkdown_HeadingAndList(t *testing.T) {
	md := "# Title\n- **a**\n- b [x](http://e)\n"

	html := RenderMarkdown(md)

	expected := "<h2>Title</h2>\n<ul>\n  <li><strong>a</strong></li>\n  <li>b <a href=\"http://e\">x</a></li>\n</ul>"
	if html != expected {
		t.Errorf("Expected:\n%s\nGot:\n%s", expected, html)
	}

	// No dangling open-list state at end of input
	if strings.Count(html, "<ul>") != strings.Count(html, "</ul>") {
		t.Error("Every opened list should be closed")
	}
}

func TestRenderMarkdown_HeadingLevels(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"# One", "<h2>One</h2>"},
		{"## Two", "<h3>Two</h3>"},
		{"### Three", "<h4>Three</h4>"},
	}

	for _, test := range tests {
		if result := RenderMarkdown(test.input); result != test.expected {
			t.Errorf("For input '%s', expected '%s', got '%s'", test.input, test.expected, result)
		}
	}
}

func TestRenderMarkdown_BlankLineClosesList(t *testing.T) {
	md := "- one\n\n- two"

	html := RenderMarkdown(md)

	expected := "<ul>\n  <li>one</li>\n</ul>\n\n<ul>\n  <li>two</li>\n</ul>"
	if html != expected {
		t.Errorf("Expected:\n%s\nGot:\n%s", expected, html)
	}
}

func TestRenderMarkdown_ParagraphClosesList(t *testing.T) {
	md := "- item\nplain text"

	html := RenderMarkdown(md)

	expected := "<ul>\n  <li>item</li>\n</ul>\n<p>plain text</p>"
	if html != expected {
		t.Errorf("Expected:\n%s\nGot:\n%s", expected, html)
	}
}

func TestRenderMarkdown_StarListMarker(t *testing.T) {
	html := RenderMarkdown("* starred")

	if !strings.Contains(html, "  <li>starred</li>") {
		t.Errorf("'*' should open a list item, got:\n%s", html)
	}
}

func TestRenderMarkdown_InlineSubstitution(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"see [docs](https://example.com)", `<p>see <a href="https://example.com">docs</a></p>`},
		{"a **bold** word", "<p>a <strong>bold</strong> word</p>"},
		{"run `make`", "<p>run <code>make</code></p>"},
		{"[a](http://x) and **b** and `c`", `<p><a href="http://x">a</a> and <strong>b</strong> and <code>c</code></p>`},
	}

	for _, test := range tests {
		if result := RenderMarkdown(test.input); result != test.expected {
			t.Errorf("For input '%s', expected '%s', got '%s'", test.input, test.expected, result)
		}
	}
}

func TestRenderMarkdown_SubstitutionIsSinglePass(t *testing.T) {
	// The link rewrite must not be re-matched by the bold or code patterns
	html := RenderMarkdown("[**x**](http://e)")

	if !strings.Contains(html, `<a href="http://e">`) {
		t.Errorf("Link should be rewritten first, got: %s", html)
	}
}

func TestRenderMarkdown_Deterministic(t *testing.T) {
	md := "# Release\n\n- **fix** [issue](http://e/1)\n- `cli` cleanup\n\ncloser paragraph"

	first := RenderMarkdown(md)
	for i := 0; i < 5; i++ {
		if RenderMarkdown(md) != first {
			t.Fatal("Identical input should always yield identical output")
		}
	}
}

func TestRenderMarkdown_TrailingListClosed(t *testing.T) {
	html := RenderMarkdown("- last item")

	if !strings.HasSuffix(html, "</ul>") {
		t.Errorf("List open at end of input should be closed, got:\n%s", html)
	}
}
