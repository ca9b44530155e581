package persona

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	paragraphBreak = regexp.MustCompile(`\n\n+`)
	sentenceBreak  = regexp.MustCompile(`[.!?]+`)
	sentenceMark   = regexp.MustCompile(`[.!?]`)
)

// Rule is a case-insensitive find/replace. Patterns match substrings, so
// "may" also rewrites the start of "mayor".
type Rule struct {
	Pattern *regexp.Regexp
	Replace string
	Func    func(match string) string
}

func sub(pattern, replace string) Rule {
	return Rule{
		Pattern: regexp.MustCompile("(?i)" + pattern),
		Replace: replace,
	}
}

func subFunc(pattern string, fn func(match string) string) Rule {
	return Rule{
		Pattern: regexp.MustCompile("(?i)" + pattern),
		Func:    fn,
	}
}

func (r Rule) Apply(s string) string {
	if r.Func != nil {
		return r.Pattern.ReplaceAllStringFunc(s, r.Func)
	}
	return r.Pattern.ReplaceAllLiteralString(s, r.Replace)
}

func applyRules(s string, rules []Rule) string {
	for _, r := range rules {
		s = r.Apply(s)
	}
	return s
}

func normalizeNewlines(s string) string {
	return strings.ReplaceAll(s, "\r\n", "\n")
}

// Paragraphs splits content on blank lines and drops blank pieces. Pieces
// are returned untrimmed.
func Paragraphs(content string) []string {
	return nonBlank(paragraphBreak.Split(normalizeNewlines(content), -1))
}

// Sentences splits text on runs of '.', '!' and '?' and drops blank pieces.
func Sentences(text string) []string {
	return nonBlank(sentenceBreak.Split(text, -1))
}

func nonBlank(pieces []string) []string {
	out := make([]string, 0, len(pieces))
	for _, p := range pieces {
		if strings.TrimSpace(p) != "" {
			out = append(out, p)
		}
	}
	return out
}

var minorWords = map[string]bool{
	"a": true, "an": true, "the": true, "and": true, "but": true, "or": true, "for": true,
	"nor": true, "on": true, "at": true, "to": true, "from": true, "by": true, "with": true,
}

// Capitalize lowercases s and title-cases every space-separated word except
// minor words. The first word is always capitalized.
func Capitalize(s string) string {
	words := strings.Split(strings.ToLower(s), " ")
	for i, w := range words {
		if w == "" || (i > 0 && minorWords[w]) {
			continue
		}
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}

func charCount(s string) int {
	return utf8.RuneCountInString(s)
}
