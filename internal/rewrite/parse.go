package rewrite

import (
	"regexp"
	"strings"

	"github.com/Click-Movement/ContentSoftware/internal/persona"
)

const FailedContent = "<p>Content generation failed. Please try again.</p>"

var (
	// The terminator is captured so the trailing "Content"/"<p>" can be kept.
	titleLine    = regexp.MustCompile(`(?i)Title:?\s*\n?(.*?)(\n\n|\nContent|\n<p>)`)
	contentLabel = regexp.MustCompile(`(?i)^Content:?\s*`)
	blankLines   = regexp.MustCompile(`\n{2,}`)
)

// PlaceholderTitle is used when the backend gives no usable title.
func PlaceholderTitle(id persona.ID) string {
	return strings.Replace(string(id), "_", " ", 1) + " Style Title"
}

// ParseResponse splits a "Title: ... / Content: ..." completion into a title
// and HTML paragraphs.
func ParseResponse(text string, id persona.ID) persona.Result {
	title := PlaceholderTitle(id)
	body := text

	if m := titleLine.FindStringSubmatchIndex(text); m != nil {
		if t := strings.TrimSpace(text[m[2]:m[3]]); t != "" {
			title = t
		}
		end := m[5]
		if text[m[4]:m[5]] != "\n\n" {
			end = m[4] + 1
		}
		body = text[:m[0]] + text[end:]
	}

	body = contentLabel.ReplaceAllString(strings.TrimSpace(body), "")
	return persona.Result{Title: title, Content: EnsureHTML(body)}
}

// EnsureHTML wraps blank-line separated text in <p> tags unless it already
// contains paragraphs.
func EnsureHTML(content string) string {
	if content == "" {
		return FailedContent
	}
	if strings.Contains(content, "<p>") {
		return strings.TrimSpace(content)
	}

	var b strings.Builder
	for _, p := range blankLines.Split(content, -1) {
		if p = strings.TrimSpace(p); p != "" {
			b.WriteString("<p>" + p + "</p>")
		}
	}
	if b.Len() == 0 {
		return FailedContent
	}
	return b.String()
}
