package rewrite

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Click-Movement/ContentSoftware/internal/persona"
)

var whitespace = regexp.MustCompile(`\s+`)

// WordCount counts the pieces left after splitting on whitespace runs, so
// leading or trailing whitespace counts as an extra empty word and "" is one.
func WordCount(content string) int {
	return len(whitespace.Split(content, -1))
}

func lengthGuidance(content string) string {
	return fmt.Sprintf(`CONTENT LENGTH:
- Write in a natural length that fits the persona's style
- The original content is approximately %d words
- Avoid making the content significantly longer than the original
- Short original content should get concise outputs
- Focus on quality and authenticity rather than length
`, WordCount(content))
}

// BuildPrompt renders the single user message sent to either backend.
func BuildPrompt(s *persona.Style, title, content string) string {
	g := s.Prompt
	var b strings.Builder

	fmt.Fprintf(&b, "\nTASK: Rewrite the following article in %s's exact style and voice.\n\n", s.Persona.Name)
	b.WriteString(lengthGuidance(content))

	b.WriteString("\n\nTITLE STYLE:\n")
	bullets(&b, g.TitleStyle)
	b.WriteString("- Always end titles with exclamation marks!\n\n")

	b.WriteString("OPENING PARAGRAPH STYLE:\n- Always start with one of these exact opening phrases:\n")
	for _, p := range s.Opening.Phrases {
		fmt.Fprintf(&b, "  * %s\n", quote(p))
	}
	b.WriteString("- For the main topic, use phrases like:\n")
	for _, p := range s.Opening.TopicIntros {
		fmt.Fprintf(&b, "  * %s\n", quote(strings.ReplaceAll(p, "%s", "[TOPIC]")))
	}

	b.WriteString("\nPARAGRAPH TRANSITIONS:\n")
	bullets(&b, quoteAll(s.Body.Transitions))

	if len(g.Markers) > 0 {
		b.WriteString("\nEMOTIONAL INTENSITY MARKERS:\n")
		for _, m := range g.Markers {
			b.WriteString("- \"" + m + "\"\n")
		}
	} else {
		b.WriteString("\nREGULAR USE OF RHETORICAL QUESTIONS LIKE:\n")
		bullets(&b, quoteAll(s.Body.Questions))
	}

	b.WriteString("\nSIGNATURE PHRASES TO INCLUDE:\n")
	bullets(&b, signatures(s))

	b.WriteString("\nLANGUAGE PATTERNS:\n")
	bullets(&b, g.LanguagePatterns)

	if len(g.References) > 0 {
		b.WriteString("\nFREQUENT REFERENCES TO:\n")
		bullets(&b, g.References)
	}

	b.WriteString("\nCLOSING STYLE:\n")
	bullets(&b, g.Closing)

	b.WriteString("\nSPECIAL SECTIONS:\n")
	bullets(&b, g.SpecialSections)

	format := fmt.Sprintf("completely rewrites in %s's distinctive style", g.Short)
	titleHint := fmt.Sprintf("Your %s-style title", g.Short)
	contentHint := fmt.Sprintf("Complete %s-style content with HTML paragraph tags", g.Short)
	if g.Emphasis {
		format += " with strategic CAPITALIZATION"
		titleHint += " with CAPITALIZATION"
		contentHint += " and strategic CAPITALIZATION"
	}

	fmt.Fprintf(&b, `
FORMAT: 
- Structure with HTML paragraph tags (<p>...</p>)
- Write an engaging title and content that maintains key facts but %s

ORIGINAL TITLE:
%s

ORIGINAL CONTENT:
%s

OUTPUT FORMAT:
Title: [%s]

Content:
[%s]
`, format, title, content, titleHint, contentHint)

	return b.String()
}

func signatures(s *persona.Style) []string {
	if len(s.Prompt.Signatures) > 0 {
		return s.Prompt.Signatures
	}
	if r, ok := s.Reword.(persona.PhraseReworder); ok {
		return quoteAll(r.Signatures)
	}
	return nil
}

func bullets(b *strings.Builder, lines []string) {
	for _, l := range lines {
		b.WriteString("- ")
		b.WriteString(l)
		b.WriteByte('\n')
	}
}

func quote(s string) string {
	return `"` + strings.TrimSpace(s) + `"`
}

func quoteAll(list []string) []string {
	out := make([]string, len(list))
	for i, s := range list {
		out[i] = quote(s)
	}
	return out
}
