package persona

import (
	"regexp"
	"strings"
)

var strongLanguage = regexp.MustCompile(`(?i)outrage|scandal|disaster|crisis|shocking|breaking`)

// RewriteTitle prefixes the title-cased title with a tier prefix picked by
// keyword. Titles that already carry strong language are only title-cased
// and given a trailing exclamation mark.
func RewriteTitle(title string, rules TitleRules, rnd Source) string {
	if strongLanguage.MatchString(title) {
		out := Capitalize(title)
		if !strings.HasSuffix(title, "!") {
			out += "!"
		}
		return out
	}

	prefixes := rules.Default
	for _, tier := range rules.Tiers {
		if hasKeyword(title, tier.Keywords) {
			prefixes = tier.Prefixes
			break
		}
	}
	return pick(rnd, prefixes) + Capitalize(title)
}
