package persona

import (
	"fmt"
	"regexp"
	"strings"
)

// Style is the full configuration of one persona: phrase banks, substitution
// tables, scheduling and the fixed text blocks. The engine holds no
// persona-specific logic of its own.
type Style struct {
	Persona Persona
	Title   TitleRules
	// Themes selects the persona-specific sentence bucket. Nil for none.
	Themes *regexp.Regexp
	Reword Reworder

	Opening Opening
	Body    Body
	Closing Closing

	// Archetypes are the filler paragraphs, chosen by body index modulo 5.
	Archetypes []string
	Sections   []Section
	Cosmetics  []Cosmetic

	Prompt PromptGuide
}

type TitleTier struct {
	Keywords []string
	Prefixes []string
}

type TitleRules struct {
	Tiers   []TitleTier
	Default []string
}

type Opening struct {
	Phrases []string
	// TopicIntros are format strings taking the leading topic.
	TopicIntros []string
	Generics    []string
	Rules       []Rule
}

// Evidence appends an item from a feature bucket to even body paragraphs.
type Evidence struct {
	Items    func(f *Features) []string
	Template string
	Reword   bool
}

type Body struct {
	Transitions []string
	Generics    []string
	Questions   []string
	// Hook runs after the question prefix and before evidence.
	Hook     func(paragraph string, rnd Source) string
	Evidence *Evidence
	Themed   []string
	Rules    []Rule
}

type Closing struct {
	Phrases []string
	// FromLastParagraph rewords a random sentence of the final input
	// paragraph instead of the last main idea.
	FromLastParagraph bool
	Generics          []string
	CallsToAction     []string
	Finals            []string
}

type Placement int

const (
	AtMiddle Placement = iota
	AtThreeQuarters
	AtIndex2
	BeforeLast
)

// Section is a fixed block inserted after assembly. MinLen is exclusive:
// the section is placed only when the current paragraph count exceeds it.
type Section struct {
	At     Placement
	MinLen int
	When   func(f *Features) bool
	Text   func(f *Features, reword func(string) string) string
}

// Cosmetic edits paragraphs whose index i satisfies i%Every == Offset.
type Cosmetic struct {
	Every  int
	Offset int
	Rule   *Rule
	Append string
}

func (s Section) index(n int) int {
	switch s.At {
	case AtMiddle:
		return n / 2
	case AtThreeQuarters:
		return int(float64(n) * 0.75)
	case AtIndex2:
		return 2
	default:
		return n - 1
	}
}

func fixed(text string) func(*Features, func(string) string) string {
	return func(*Features, func(string) string) string { return text }
}

func statistics(f *Features) []string { return f.Statistics }
func themes(f *Features) []string     { return f.Themes }

func hasKeyword(s string, keywords []string) bool {
	lower := strings.ToLower(s)
	for _, k := range keywords {
		if strings.Contains(lower, k) {
			return true
		}
	}
	return false
}

func render(format, topic string) string {
	return fmt.Sprintf(format, topic)
}

// PromptGuide carries the persona text used only by the AI path. Openings,
// topic intros, transitions and questions come from the rule-based banks.
type PromptGuide struct {
	Short      string
	TitleStyle []string
	// Markers replaces the rhetorical question list when set.
	Markers          []string
	Signatures       []string
	LanguagePatterns []string
	References       []string
	Closing          []string
	SpecialSections  []string
	// Emphasis asks for strategic capitalization in the output placeholders.
	Emphasis bool
}
