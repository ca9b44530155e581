package persona

import (
	"regexp"
	"sort"
	"strings"
)

// Features is the bag of elements pulled out of an article body. Every
// field is empty, never nil-dependent, when nothing matches.
type Features struct {
	Quotes     []string
	Statistics []string
	People     []string
	Facts      []string
	Topics     []string
	MainIdeas  []string
	// Themes holds the persona-specific sentence bucket: historical
	// references, controversies or patriotic themes.
	Themes []string
}

const maxTopics = 5

var (
	quotePattern  = regexp.MustCompile(`"([^"]*)"`)
	statPattern   = regexp.MustCompile(`(\d+(\.\d+)?%|\$\d+(\.\d+)?(( |\t)*(million|billion|trillion))?)`)
	peoplePattern = regexp.MustCompile(`(President|Senator|Congressman|Representative|Secretary|Dr\.|Mr\.|Mrs\.|Ms\.) ([A-Z][a-z]+ [A-Z][a-z]+)`)
	factPattern   = regexp.MustCompile(`(?i)according to|reported|study|research|found|discovered|revealed`)
	wordPattern   = regexp.MustCompile(`\b[A-Za-z]{4,}\b`)
)

var stopwords = map[string]bool{}

func init() {
	for _, w := range strings.Fields(`about after again also another because been before being between
		both could does doing during each either every from have having here itself just like more
		most much must never only other over same should some such than that their them then there
		these they this those through under very what when where which while with would your`) {
		stopwords[w] = true
	}
}

// Extract scans content for quotes, statistics, titled people, fact
// sentences, topics and main ideas. themes, when non-nil, selects the
// sentences that go into Features.Themes.
func Extract(content string, themes *regexp.Regexp) Features {
	content = normalizeNewlines(content)

	f := Features{
		Quotes:     []string{},
		Statistics: statPattern.FindAllString(content, -1),
		People:     peoplePattern.FindAllString(content, -1),
		Facts:      []string{},
		MainIdeas:  []string{},
		Themes:     []string{},
	}
	if f.Statistics == nil {
		f.Statistics = []string{}
	}
	if f.People == nil {
		f.People = []string{}
	}

	for _, m := range quotePattern.FindAllStringSubmatch(content, -1) {
		f.Quotes = append(f.Quotes, m[1])
	}

	for _, s := range Sentences(content) {
		if factPattern.MatchString(s) {
			f.Facts = append(f.Facts, strings.TrimSpace(s))
		}
		if themes != nil && themes.MatchString(s) {
			f.Themes = append(f.Themes, strings.TrimSpace(s))
		}
	}

	f.Topics = topics(content)

	for _, p := range Paragraphs(content) {
		pieces := nonBlank(sentenceMark.Split(p, -1))
		if len(pieces) == 0 {
			continue
		}
		if first := pieces[0]; charCount(first) > 20 {
			f.MainIdeas = append(f.MainIdeas, strings.TrimSpace(first))
		}
	}

	return f
}

// topics ranks non-stopword words by frequency. Ties keep first-seen order.
func topics(content string) []string {
	counts := map[string]int{}
	var order []string
	for _, w := range wordPattern.FindAllString(content, -1) {
		w = strings.ToLower(w)
		if stopwords[w] {
			continue
		}
		if counts[w] == 0 {
			order = append(order, w)
		}
		counts[w]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if len(order) > maxTopics {
		order = order[:maxTopics]
	}
	if order == nil {
		return []string{}
	}
	return order
}
