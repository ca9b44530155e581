package persona

import (
	"errors"
	"fmt"
)

type ID string

const (
	RushLimbaugh ID = "rush_limbaugh"
	CharlieKirk  ID = "charlie_kirk"
	LarryElder   ID = "larry_elder"
	GlennBeck    ID = "glenn_beck"
	LauraLoomer  ID = "laura_loomer"
	TomiLahren   ID = "tomi_lahren"

	Default = RushLimbaugh
)

var ErrUnknownPersona = errors.New("unknown persona")

type Persona struct {
	ID          ID     `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
}

var catalog = []Persona{
	{
		ID:          RushLimbaugh,
		Name:        "Rush Limbaugh",
		Description: "Provocative and passionate radio host known for his bold conservative commentary",
	},
	{
		ID:          CharlieKirk,
		Name:        "Charlie Kirk",
		Description: "Young conservative activist and founder of Turning Point USA",
	},
	{
		ID:          LarryElder,
		Name:        "Larry Elder",
		Description: `Radio host and political commentator known as "The Sage from South Central"`,
	},
	{
		ID:          GlennBeck,
		Name:        "Glenn Beck",
		Description: "Radio host and media entrepreneur with a focus on constitutional principles",
	},
	{
		ID:          LauraLoomer,
		Name:        "Laura Loomer",
		Description: "Controversial activist and political commentator known for provocative statements",
	},
	{
		ID:          TomiLahren,
		Name:        "Tomi Lahren",
		Description: `Outspoken young conservative commentator known for her "Final Thoughts" segments`,
	},
}

// All returns the catalog in display order.
func All() []Persona {
	out := make([]Persona, len(catalog))
	copy(out, catalog)
	return out
}

func Lookup(id string) (Persona, error) {
	for _, p := range catalog {
		if string(p.ID) == id {
			return p, nil
		}
	}
	return Persona{}, fmt.Errorf("%w: %q", ErrUnknownPersona, id)
}

// Resolve maps empty or unknown ids to Default.
func Resolve(id string) ID {
	return ResolveOr(id, Default)
}

// ResolveOr maps empty or unknown ids to def, and to Default when def is
// itself unknown.
func ResolveOr(id string, def ID) ID {
	if p, err := Lookup(id); err == nil {
		return p.ID
	}
	if p, err := Lookup(string(def)); err == nil {
		return p.ID
	}
	return Default
}

// DisplayName returns the persona's name, or the default persona's name for
// unknown ids.
func DisplayName(id string) string {
	p, _ := Lookup(string(Resolve(id)))
	return p.Name
}
