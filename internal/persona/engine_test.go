package persona

import (
	"errors"
	"strings"
	"testing"

	"github.com/go-playground/assert/v2"
)

// zeroSource always picks the first candidate.
type zeroSource struct{}

func (zeroSource) IntN(int) int     { return 0 }
func (zeroSource) Float64() float64 { return 0 }

const plainArticle = `City council members met on Tuesday to discuss the new parking plan for downtown.

Residents packed the hall and many spoke against the plan during the open comment period.

Business owners worry that fewer spaces will keep shoppers away from local stores.

Supporters argue the plan will make the streets safer for cyclists and walkers.

The council will vote on the plan next month after a second public hearing.`

func paragraphCount(html string) int {
	return strings.Count(html, "<p>")
}

func TestEngine_SingleParagraphExact(t *testing.T) {
	e := NewEngine(&kirk, zeroSource{})
	got := e.Rewrite("Plain title", "Some plain words about nothing much at all here today.")

	assert.Equal(t, "FACT: Plain Title", got.Title)
	want := "<p>Let me be clear about something. " +
		"What's happening with plain is exactly what we've been warning about at Turning Point USA. " +
		"Some plain words about nothing much at all here today</p>"
	assert.Equal(t, want, got.Content)
}

func TestEngine_WrapsEveryParagraph(t *testing.T) {
	in := len(Paragraphs(plainArticle))
	for _, p := range All() {
		t.Run(string(p.ID), func(t *testing.T) {
			res, used := Rewrite(string(p.ID), "Parking plan draws crowd", plainArticle, NewSeededSource(42))
			assert.Equal(t, p.ID, used)
			assert.Equal(t, strings.Count(res.Content, "<p>"), strings.Count(res.Content, "</p>"))
			assert.Equal(t, true, paragraphCount(res.Content) >= in)
			assert.Equal(t, true, strings.HasPrefix(res.Content, "<p>"))
			assert.Equal(t, true, strings.HasSuffix(res.Content, "</p>"))
		})
	}
}

func TestEngine_SeededIsReproducible(t *testing.T) {
	a, _ := Rewrite("glenn_beck", "A title", plainArticle, NewSeededSource(9))
	b, _ := Rewrite("glenn_beck", "A title", plainArticle, NewSeededSource(9))
	assert.Equal(t, a, b)
}

func TestEngine_KirkArchetypeAfterSecondBody(t *testing.T) {
	res := NewEngine(&kirk, NewSeededSource(3)).RewriteContent(plainArticle)
	assert.Equal(t, 6, paragraphCount(res))
	assert.Equal(t, true, strings.Contains(res, "<p>"+kirk.Archetypes[2]+"</p>"))
}

func TestEngine_ElderSections(t *testing.T) {
	res := NewEngine(&elder, NewSeededSource(5)).RewriteContent(plainArticle)
	assert.Equal(t, 8, paragraphCount(res))
	assert.Equal(t, true, strings.Contains(res, "<p>DEAR FATHER: My father taught me"))
	assert.Equal(t, true, strings.Contains(res, "<p>THE FACTS: Let's look at what the data"))
}

func TestEngine_LimbaughDitto(t *testing.T) {
	content := "The mayor opened the new bridge this morning with a short speech.\n\nTraffic is expected to ease over the coming weeks."
	res := NewEngine(&limbaugh, NewSeededSource(11)).RewriteContent(content)

	assert.Equal(t, 3, paragraphCount(res))
	assert.Equal(t, true, strings.Contains(res, "Well, ditto, my friends. Ditto.</p>"))
}

func TestEngine_LimbaughNumbersAndMockery(t *testing.T) {
	content := "Senator John Smith wants a 40% raise for staff.\n\nHe defended the plan on Monday.\n\nCritics were not impressed."
	res := NewEngine(&limbaugh, NewSeededSource(2)).RewriteContent(content)

	assert.Equal(t, true, strings.Contains(res, "And let's talk about Senator John Smith for a moment."))
	assert.Equal(t, true, strings.Contains(res, "That's right, 40%!"))
}

func TestEngine_EmptyContent(t *testing.T) {
	res := NewEngine(&lahren, zeroSource{}).RewriteContent("")
	assert.Equal(t, 1, paragraphCount(res))
	assert.Equal(t, true, strings.HasPrefix(res, "<p>Let me give you my final thoughts on this. "))
}

func TestTalkRadioHook_Mockery(t *testing.T) {
	got := talkRadioHook("The Democrats and liberals agree.", zeroSource{})
	assert.Equal(t, `The the so-called "Democrats" and libs agree.`, got)
}

func TestStyleFor_Unknown(t *testing.T) {
	_, err := StyleFor("nobody")
	assert.Equal(t, true, errors.Is(err, ErrUnknownPersona))
}

func TestRewrite_FallsBackToDefault(t *testing.T) {
	_, used := Rewrite("nobody", "t", "c", zeroSource{})
	assert.Equal(t, Default, used)

	_, used = Rewrite("", "t", "c", zeroSource{})
	assert.Equal(t, Default, used)
}

func TestResolveOr(t *testing.T) {
	assert.Equal(t, GlennBeck, ResolveOr("glenn_beck", CharlieKirk))
	assert.Equal(t, CharlieKirk, ResolveOr("", CharlieKirk))
	assert.Equal(t, CharlieKirk, ResolveOr("bogus", CharlieKirk))
	assert.Equal(t, Default, ResolveOr("bogus", "nobody"))
	assert.Equal(t, Default, Resolve("bogus"))
}

func TestRewrite_KirkCampusArticle(t *testing.T) {
	content := "Students at the university staged another walkout on Monday over the new speech policy.\n\nCollege officials said the policy will stay in place through the spring term."
	for seed := uint64(0); seed < 4; seed++ {
		res, used := Rewrite("charlie_kirk", "Campus protests grow", content, NewSeededSource(seed))

		assert.Equal(t, CharlieKirk, used)
		assert.Equal(t, len(Paragraphs(content)), paragraphCount(res.Content))
		assert.Equal(t, paragraphCount(res.Content), strings.Count(res.Content, "</p>"))
		assert.Equal(t, true, hasAnyPrefix(res.Title, kirk.Title.Tiers[0].Prefixes))
		assert.Equal(t, true, strings.HasSuffix(res.Title, "Campus Protests Grow"))
	}
}

func TestLookupAndDisplayName(t *testing.T) {
	p, err := Lookup("tomi_lahren")
	assert.Equal(t, nil, err)
	assert.Equal(t, "Tomi Lahren", p.Name)
	assert.Equal(t, "Rush Limbaugh", DisplayName("unknown"))
	assert.Equal(t, 6, len(All()))
}
