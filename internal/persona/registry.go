package persona

var styles = map[ID]*Style{
	RushLimbaugh: &limbaugh,
	CharlieKirk:  &kirk,
	LarryElder:   &elder,
	GlennBeck:    &beck,
	LauraLoomer:  &loomer,
	TomiLahren:   &lahren,
}

func init() {
	for _, p := range catalog {
		styles[p.ID].Persona = p
	}
}

// StyleFor returns the style table for id, or ErrUnknownPersona.
func StyleFor(id string) (*Style, error) {
	p, err := Lookup(id)
	if err != nil {
		return nil, err
	}
	return styles[p.ID], nil
}

// Rewrite runs the rule-based rewrite for id. Unknown or empty ids fall back
// to the default persona; the id actually used is returned.
func Rewrite(id, title, content string, rnd Source) (Result, ID) {
	resolved := Resolve(id)
	return NewEngine(styles[resolved], rnd).Rewrite(title, content), resolved
}
