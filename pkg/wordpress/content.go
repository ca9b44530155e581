package wordpress

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
)

type Format string

const (
	FormatHTML     Format = "html"
	FormatMarkdown Format = "markdown"
)

var (
	firstH1        = regexp.MustCompile(`(?i)<h1>.*?</h1>`)
	paragraphBreak = regexp.MustCompile(`\n\n+`)
	emptyParagraph = regexp.MustCompile(`<p>\s*</p>`)
)

// PrepareContent turns a rewrite into a post body. The post title carries the
// headline, so the first h1 is dropped. Plain text is split into paragraphs
// on blank lines, or rendered with goldmark when format is markdown. A
// non-empty personaName appends a style attribution.
func PrepareContent(content string, format Format, personaName string) (string, error) {
	body := removeFirst(firstH1, content)

	if !strings.Contains(body, "<p>") {
		if format == FormatMarkdown {
			var buf bytes.Buffer
			if err := goldmark.Convert([]byte(body), &buf); err != nil {
				return "", fmt.Errorf("render markdown: %w", err)
			}
			body = buf.String()
		} else {
			var b strings.Builder
			for _, p := range paragraphBreak.Split(body, -1) {
				if strings.TrimSpace(p) != "" {
					b.WriteString("<p>" + p + "</p>")
				}
			}
			body = b.String()
		}
	}

	body = emptyParagraph.ReplaceAllString(body, "")

	if personaName != "" {
		body += fmt.Sprintf("<p><em>This article was written in the style of %s.</em></p>", personaName)
	}
	return body, nil
}

func removeFirst(re *regexp.Regexp, s string) string {
	loc := re.FindStringIndex(s)
	if loc == nil {
		return s
	}
	return s[:loc[0]] + s[loc[1]:]
}
