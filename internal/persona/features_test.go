package persona

import (
	"strings"
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestExtract_Statistics(t *testing.T) {
	f := Extract("Revenue grew 12.5% and cost $3 million", nil)
	assert.Equal(t, []string{"12.5%", "$3 million"}, f.Statistics)
}

func TestExtract_People(t *testing.T) {
	f := Extract("Senator John Smith spoke today", nil)
	assert.Equal(t, []string{"Senator John Smith"}, f.People)
}

func TestExtract_Quotes(t *testing.T) {
	f := Extract(`He said "we will win" and later "never again".`, nil)
	assert.Equal(t, []string{"we will win", "never again"}, f.Quotes)
}

func TestExtract_Facts(t *testing.T) {
	f := Extract("According to the study, taxes rose. Nothing else happened here!", nil)
	assert.Equal(t, []string{"According to the study, taxes rose"}, f.Facts)
}

func TestExtract_TopicsStableOrder(t *testing.T) {
	f := Extract("apple banana apple cherry banana apple this that grape", nil)
	assert.Equal(t, []string{"apple", "banana", "cherry", "grape"}, f.Topics)
}

func TestExtract_TopicsCapped(t *testing.T) {
	var b strings.Builder
	for _, w := range []string{"alpha", "bravo", "charlie", "delta", "echoes", "foxtrot", "golfing", "hotel"} {
		b.WriteString(w + " ")
	}
	f := Extract(b.String(), nil)
	assert.Equal(t, maxTopics, len(f.Topics))
}

func TestExtract_MainIdeas(t *testing.T) {
	content := "Short one. Then more.\n\nThis is a much longer first sentence here. Second part.\r\n\r\nTiny"
	f := Extract(content, nil)
	assert.Equal(t, []string{"This is a much longer first sentence here"}, f.MainIdeas)
}

func TestExtract_Themes(t *testing.T) {
	f := Extract("The Constitution was signed in 1787. Lunch was served.", beck.Themes)
	assert.Equal(t, []string{"The Constitution was signed in 1787"}, f.Themes)
}

func TestExtract_Empty(t *testing.T) {
	f := Extract("", nil)
	assert.Equal(t, 0, len(f.Quotes))
	assert.Equal(t, 0, len(f.Statistics))
	assert.Equal(t, 0, len(f.People))
	assert.Equal(t, 0, len(f.Facts))
	assert.Equal(t, 0, len(f.Topics))
	assert.Equal(t, 0, len(f.MainIdeas))
	assert.Equal(t, 0, len(f.Themes))
}

func TestParagraphsAndSentences(t *testing.T) {
	ps := Paragraphs("one\n\n\n two \n\n   \n\nthree")
	assert.Equal(t, []string{"one", " two ", "three"}, ps)

	ss := Sentences("First. Second!? Third")
	assert.Equal(t, []string{"First", " Second", " Third"}, ss)
}
