package teams

import "strings"

// aliases maps upstream abbreviations that diverge from the official
// tricodes. ESPN in particular uses shortened forms for a handful of teams.
var aliases = map[string]string{
	"GS":   "GSW",
	"NY":   "NYK",
	"SA":   "SAS",
	"NO":   "NOP",
	"UTAH": "UTA",
	"PHO":  "PHX",
	"WSH":  "WAS",
}

// Directory is an immutable lookup of teams by code, built once at startup
// and injected into consumers.
type Directory struct {
	byCode   map[string]Team
	byESPNID map[int]Team
}

// NewDirectory builds the directory from the static franchise table.
func NewDirectory() *Directory {
	d := &Directory{
		byCode:   make(map[string]Team, len(franchises)),
		byESPNID: make(map[int]Team, len(franchises)),
	}
	for _, t := range franchises {
		d.byCode[t.Code] = t
		d.byESPNID[t.ESPNID] = t
	}
	return d
}

// Normalize maps an upstream abbreviation to the authoritative tricode.
// Unknown codes pass through unchanged.
func (d *Directory) Normalize(abbr string) string {
	code := strings.ToUpper(strings.TrimSpace(abbr))
	if canonical, ok := aliases[code]; ok {
		return canonical
	}
	return code
}

// Lookup returns the team for an upstream abbreviation, normalizing first.
func (d *Directory) Lookup(abbr string) (Team, bool) {
	t, ok := d.byCode[d.Normalize(abbr)]
	return t, ok
}

// LookupESPNID returns the team carrying the given ESPN numeric id.
func (d *Directory) LookupESPNID(id int) (Team, bool) {
	t, ok := d.byESPNID[id]
	return t, ok
}

// All returns a copy of every team in the directory.
func (d *Directory) All() []Team {
	result := make([]Team, len(franchises))
	copy(result, franchises)
	return result
}
