package persona

import (
	"strings"
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestCapitalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"the quick brown fox and the hound", "The Quick Brown Fox and the Hound"},
		{"WAR ON the border", "War on the Border"},
		{"a", "A"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := Capitalize(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, Capitalize(got))
		})
	}
}

func TestRewriteTitle_StrongLanguage(t *testing.T) {
	rnd := NewSeededSource(1)
	assert.Equal(t, "Breaking News on Taxes!", RewriteTitle("breaking news on taxes", kirk.Title, rnd))
	assert.Equal(t, "Shocking Vote!", RewriteTitle("shocking vote!", kirk.Title, rnd))
}

func TestRewriteTitle_CampusTier(t *testing.T) {
	for seed := uint64(0); seed < 8; seed++ {
		got := RewriteTitle("Campus protests grow", kirk.Title, NewSeededSource(seed))
		assert.Equal(t, true, hasAnyPrefix(got, kirk.Title.Tiers[0].Prefixes))
		assert.Equal(t, true, strings.HasSuffix(got, "Campus Protests Grow"))
	}
}

func TestRewriteTitle_NeverUntouched(t *testing.T) {
	for _, p := range All() {
		style, err := StyleFor(string(p.ID))
		assert.Equal(t, nil, err)

		for _, title := range []string{"budget vote today", "a crisis at the port", "trump signs the bill"} {
			got := RewriteTitle(title, style.Title, NewSeededSource(7))
			assert.NotEqual(t, title, got)
		}
	}
}

func TestRewriteTitle_DefaultTier(t *testing.T) {
	got := RewriteTitle("Plain title", kirk.Title, zeroSource{})
	assert.Equal(t, "FACT: Plain Title", got)
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}
