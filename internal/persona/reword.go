package persona

import "strings"

const signatureThreshold = 100

// Reworder restates one sentence in a persona's voice.
type Reworder interface {
	Reword(text string, rnd Source) string
}

// PhraseReworder swaps neutral phrases for persona phrases and appends a
// signature phrase to longer results.
type PhraseReworder struct {
	Rules      []Rule
	Signatures []string
}

func (r PhraseReworder) Reword(text string, rnd Source) string {
	out := applyRules(text, r.Rules)
	if charCount(out) > signatureThreshold {
		out += pick(rnd, r.Signatures)
	}
	return out
}

// TalkRadioReworder rebuilds the sentence around a subject and an action
// pulled from it, falling back to the opening words and a stock action.
type TalkRadioReworder struct {
	Subjects       []string
	Actions        []string
	DefaultActions []string
	SubjectForms   []string
	ActionForms    []string
}

func (r TalkRadioReworder) Reword(text string, rnd Source) string {
	subject := r.subject(text)
	action := r.action(text, rnd)

	form := pick(rnd, r.SubjectForms)
	subjectPhrase := Capitalize(subject)
	if form != "%s" {
		subjectPhrase = strings.ReplaceAll(form, "%s", subject)
	}
	actionPhrase := strings.ReplaceAll(pick(rnd, r.ActionForms), "%s", action)

	return subjectPhrase + " " + actionPhrase + ". "
}

func (r TalkRadioReworder) subject(text string) string {
	lower := strings.ToLower(text)
	for _, s := range r.Subjects {
		if strings.Contains(lower, strings.ToLower(s)) {
			return s
		}
	}
	words := strings.Split(text, " ")
	if len(words) > 2 {
		return strings.Join(words[:2], " ")
	}
	return "the people involved"
}

func (r TalkRadioReworder) action(text string, rnd Source) string {
	lower := strings.ToLower(text)
	for _, a := range r.Actions {
		if strings.Contains(lower, a) {
			return a
		}
	}
	return pick(rnd, r.DefaultActions)
}
