package teams

// Conference names the two NBA conferences.
type Conference string

const (
	ConferenceEastern Conference = "Eastern"
	ConferenceWestern Conference = "Western"
)

// Team holds the display metadata for one franchise. Instances are
// immutable leaf data; the directory hands out copies, never pointers.
type Team struct {
	Code           string     `json:"code"`
	ESPNID         int        `json:"espnId"`
	Name           string     `json:"name"`
	City           string     `json:"city"`
	Logo           string     `json:"logo"`
	PrimaryColor   string     `json:"primaryColor"`
	SecondaryColor string     `json:"secondaryColor"`
	Conference     Conference `json:"conference"`
	Division       string     `json:"division"`
}

// FullName joins city and nickname, e.g. "Boston Celtics".
func (t Team) FullName() string {
	if t.City == "" {
		return t.Name
	}
	return t.City + " " + t.Name
}
