package persona

import "strings"

// Result is a rewritten article. Content is a run of <p> blocks.
type Result struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Engine runs the rule-based rewrite for a single persona style. It is safe
// for concurrent use when its Source is.
type Engine struct {
	style *Style
	rnd   Source
}

func NewEngine(style *Style, rnd Source) *Engine {
	if rnd == nil {
		rnd = DefaultSource()
	}
	return &Engine{style: style, rnd: rnd}
}

func (e *Engine) Rewrite(title, content string) Result {
	return Result{
		Title:   RewriteTitle(title, e.style.Title, e.rnd),
		Content: e.RewriteContent(content),
	}
}

func (e *Engine) RewriteContent(content string) string {
	f := Extract(content, e.style.Themes)
	paragraphs := Paragraphs(content)
	n := len(paragraphs)

	out := make([]string, 0, n+len(e.style.Sections)+n/2+1)
	out = append(out, e.opening(&f))

	for i := 1; i < n-1; i++ {
		out = append(out, e.body(paragraphs[i], i, &f))
		if i%2 == 0 && i < n-2 && len(e.style.Archetypes) > 0 {
			out = append(out, e.style.Archetypes[i%len(e.style.Archetypes)])
		}
	}

	if n > 1 {
		out = append(out, e.closing(paragraphs[n-1], &f))
	}

	out = e.insertSections(out, &f)
	e.applyCosmetics(out)

	var b strings.Builder
	for _, p := range out {
		b.WriteString("<p>")
		b.WriteString(p)
		b.WriteString("</p>")
	}
	return b.String()
}

func (e *Engine) reword(text string) string {
	return e.style.Reword.Reword(text, e.rnd)
}

func (e *Engine) opening(f *Features) string {
	o := e.style.Opening
	s := pick(e.rnd, o.Phrases)
	if len(f.Topics) > 0 {
		s += render(pick(e.rnd, o.TopicIntros), f.Topics[0])
	}
	if len(f.MainIdeas) > 0 {
		s += e.reword(f.MainIdeas[0])
	} else {
		s += pick(e.rnd, o.Generics)
	}
	return applyRules(s, o.Rules)
}

// randomSentence returns a trimmed random sentence of p, or "".
func (e *Engine) randomSentence(p string) string {
	sentences := Sentences(p)
	if len(sentences) == 0 {
		return ""
	}
	return strings.TrimSpace(sentences[e.rnd.IntN(len(sentences))])
}

func (e *Engine) body(p string, i int, f *Features) string {
	b := e.style.Body
	s := pick(e.rnd, b.Transitions)
	if point := e.randomSentence(p); point != "" {
		s += e.reword(point)
	} else {
		s += pick(e.rnd, b.Generics)
	}

	if i%3 == 1 {
		s = pick(e.rnd, b.Questions) + s
	}
	if b.Hook != nil {
		s = b.Hook(s, e.rnd)
	}
	if ev := b.Evidence; ev != nil && i%2 == 0 {
		if items := ev.Items(f); len(items) > 0 {
			item := items[i%len(items)]
			if ev.Reword {
				item = e.reword(item)
			}
			s += render(ev.Template, item)
		}
	}
	if i%4 == 0 {
		s += pick(e.rnd, b.Themed)
	}
	return applyRules(s, b.Rules)
}

func (e *Engine) closing(p string, f *Features) string {
	c := e.style.Closing
	s := pick(e.rnd, c.Phrases)
	if c.FromLastParagraph {
		if point := e.randomSentence(p); point != "" {
			s += e.reword(point)
		} else {
			s += pick(e.rnd, c.Generics)
		}
	} else if len(f.MainIdeas) > 0 {
		s += e.reword(f.MainIdeas[len(f.MainIdeas)-1])
	}
	s += pick(e.rnd, c.CallsToAction)
	if len(c.Finals) > 0 {
		s += " " + pick(e.rnd, c.Finals)
	}
	return s
}

func (e *Engine) insertSections(paragraphs []string, f *Features) []string {
	for _, sec := range e.style.Sections {
		if len(paragraphs) <= sec.MinLen {
			continue
		}
		if sec.When != nil && !sec.When(f) {
			continue
		}
		at := sec.index(len(paragraphs))
		if at < 0 {
			at = 0
		}
		if at > len(paragraphs) {
			at = len(paragraphs)
		}
		text := sec.Text(f, e.reword)
		paragraphs = append(paragraphs[:at], append([]string{text}, paragraphs[at:]...)...)
	}
	return paragraphs
}

func (e *Engine) applyCosmetics(paragraphs []string) {
	for i := range paragraphs {
		for _, c := range e.style.Cosmetics {
			if i%c.Every != c.Offset {
				continue
			}
			if c.Rule != nil {
				paragraphs[i] = c.Rule.Apply(paragraphs[i])
			}
			paragraphs[i] += c.Append
		}
	}
}
