package content

import (
	"regexp"
	"strings"
)

var (
	h3Re   = regexp.MustCompile(`(?m)^### (.+)$`)
	h2Re   = regexp.MustCompile(`(?m)^## (.+)$`)
	h1Re   = regexp.MustCompile(`(?m)^# (.+)$`)
	boldRe = regexp.MustCompile(`\*\*(.+?)\*\*`)
)

// MarkdownToHTML converts the small markdown subset used by post bodies.
// Headings and bold markers are substituted first, then blank-line
// separated blocks become paragraphs. Blocks already starting with a
// tag are passed through unchanged, which keeps the conversion
// idempotent on its own output.
func MarkdownToHTML(markdown string) string {
	html := h3Re.ReplaceAllString(markdown, "<h3>$1</h3>")
	html = h2Re.ReplaceAllString(html, "<h2>$1</h2>")
	html = h1Re.ReplaceAllString(html, "<h1>$1</h1>")
	html = boldRe.ReplaceAllString(html, "<strong>$1</strong>")

	blocks := strings.Split(html, "\n\n")
	out := make([]string, 0, len(blocks))
	for _, block := range blocks {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}
		if strings.HasPrefix(block, "<") {
			out = append(out, block)
			continue
		}
		out = append(out, "<p>"+block+"</p>")
	}
	return strings.Join(out, "\n")
}
