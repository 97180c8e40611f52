package teams

// franchises is the authoritative static table of the 30 NBA teams.
// Codes follow the official tricodes; upstream variants are handled
// by the alias table in directory.go.
var franchises = []Team{
	{Code: "ATL", ESPNID: 1, Name: "Hawks", City: "Atlanta", Logo: "https://cdn.nba.com/logos/nba/1610612737/global/L/logo.svg", PrimaryColor: "#E03A3E", SecondaryColor: "#C1D32F", Conference: ConferenceEastern, Division: "Southeast"},
	{Code: "BKN", ESPNID: 17, Name: "Nets", City: "Brooklyn", Logo: "https://cdn.nba.com/logos/nba/1610612751/global/L/logo.svg", PrimaryColor: "#000000", SecondaryColor: "#FFFFFF", Conference: ConferenceEastern, Division: "Atlantic"},
	{Code: "BOS", ESPNID: 2, Name: "Celtics", City: "Boston", Logo: "https://cdn.nba.com/logos/nba/1610612738/global/L/logo.svg", PrimaryColor: "#007A33", SecondaryColor: "#BA9653", Conference: ConferenceEastern, Division: "Atlantic"},
	{Code: "CHA", ESPNID: 30, Name: "Hornets", City: "Charlotte", Logo: "https://cdn.nba.com/logos/nba/1610612766/global/L/logo.svg", PrimaryColor: "#1D1160", SecondaryColor: "#00788C", Conference: ConferenceEastern, Division: "Southeast"},
	{Code: "CHI", ESPNID: 4, Name: "Bulls", City: "Chicago", Logo: "https://cdn.nba.com/logos/nba/1610612741/global/L/logo.svg", PrimaryColor: "#CE1141", SecondaryColor: "#000000", Conference: ConferenceEastern, Division: "Central"},
	{Code: "CLE", ESPNID: 5, Name: "Cavaliers", City: "Cleveland", Logo: "https://cdn.nba.com/logos/nba/1610612739/global/L/logo.svg", PrimaryColor: "#860038", SecondaryColor: "#041E42", Conference: ConferenceEastern, Division: "Central"},
	{Code: "DAL", ESPNID: 6, Name: "Mavericks", City: "Dallas", Logo: "https://cdn.nba.com/logos/nba/1610612742/global/L/logo.svg", PrimaryColor: "#00538C", SecondaryColor: "#002B5E", Conference: ConferenceWestern, Division: "Southwest"},
	{Code: "DEN", ESPNID: 7, Name: "Nuggets", City: "Denver", Logo: "https://cdn.nba.com/logos/nba/1610612743/global/L/logo.svg", PrimaryColor: "#0E2240", SecondaryColor: "#FEC524", Conference: ConferenceWestern, Division: "Northwest"},
	{Code: "DET", ESPNID: 8, Name: "Pistons", City: "Detroit", Logo: "https://cdn.nba.com/logos/nba/1610612765/global/L/logo.svg", PrimaryColor: "#C8102E", SecondaryColor: "#1D42BA", Conference: ConferenceEastern, Division: "Central"},
	{Code: "GSW", ESPNID: 9, Name: "Warriors", City: "Golden State", Logo: "https://cdn.nba.com/logos/nba/1610612744/global/L/logo.svg", PrimaryColor: "#1D428A", SecondaryColor: "#FFC72C", Conference: ConferenceWestern, Division: "Pacific"},
	{Code: "HOU", ESPNID: 10, Name: "Rockets", City: "Houston", Logo: "https://cdn.nba.com/logos/nba/1610612745/global/L/logo.svg", PrimaryColor: "#CE1141", SecondaryColor: "#000000", Conference: ConferenceWestern, Division: "Southwest"},
	{Code: "IND", ESPNID: 11, Name: "Pacers", City: "Indiana", Logo: "https://cdn.nba.com/logos/nba/1610612754/global/L/logo.svg", PrimaryColor: "#002D62", SecondaryColor: "#FDBB30", Conference: ConferenceEastern, Division: "Central"},
	{Code: "LAC", ESPNID: 12, Name: "Clippers", City: "Los Angeles", Logo: "https://cdn.nba.com/logos/nba/1610612746/global/L/logo.svg", PrimaryColor: "#C8102E", SecondaryColor: "#1D428A", Conference: ConferenceWestern, Division: "Pacific"},
	{Code: "LAL", ESPNID: 13, Name: "Lakers", City: "Los Angeles", Logo: "https://cdn.nba.com/logos/nba/1610612747/global/L/logo.svg", PrimaryColor: "#552583", SecondaryColor: "#FDB927", Conference: ConferenceWestern, Division: "Pacific"},
	{Code: "MEM", ESPNID: 29, Name: "Grizzlies", City: "Memphis", Logo: "https://cdn.nba.com/logos/nba/1610612763/global/L/logo.svg", PrimaryColor: "#5D76A9", SecondaryColor: "#12173F", Conference: ConferenceWestern, Division: "Southwest"},
	{Code: "MIA", ESPNID: 14, Name: "Heat", City: "Miami", Logo: "https://cdn.nba.com/logos/nba/1610612748/global/L/logo.svg", PrimaryColor: "#98002E", SecondaryColor: "#F9A01B", Conference: ConferenceEastern, Division: "Southeast"},
	{Code: "MIL", ESPNID: 15, Name: "Bucks", City: "Milwaukee", Logo: "https://cdn.nba.com/logos/nba/1610612749/global/L/logo.svg", PrimaryColor: "#00471B", SecondaryColor: "#EEE1C6", Conference: ConferenceEastern, Division: "Central"},
	{Code: "MIN", ESPNID: 16, Name: "Timberwolves", City: "Minnesota", Logo: "https://cdn.nba.com/logos/nba/1610612750/global/L/logo.svg", PrimaryColor: "#0C2340", SecondaryColor: "#236192", Conference: ConferenceWestern, Division: "Northwest"},
	{Code: "NOP", ESPNID: 3, Name: "Pelicans", City: "New Orleans", Logo: "https://cdn.nba.com/logos/nba/1610612740/global/L/logo.svg", PrimaryColor: "#0C2340", SecondaryColor: "#C8102E", Conference: ConferenceWestern, Division: "Southwest"},
	{Code: "NYK", ESPNID: 18, Name: "Knicks", City: "New York", Logo: "https://cdn.nba.com/logos/nba/1610612752/global/L/logo.svg", PrimaryColor: "#006BB6", SecondaryColor: "#F58426", Conference: ConferenceEastern, Division: "Atlantic"},
	{Code: "OKC", ESPNID: 25, Name: "Thunder", City: "Oklahoma City", Logo: "https://cdn.nba.com/logos/nba/1610612760/global/L/logo.svg", PrimaryColor: "#007AC1", SecondaryColor: "#EF3B24", Conference: ConferenceWestern, Division: "Northwest"},
	{Code: "ORL", ESPNID: 19, Name: "Magic", City: "Orlando", Logo: "https://cdn.nba.com/logos/nba/1610612753/global/L/logo.svg", PrimaryColor: "#0077C0", SecondaryColor: "#C4CED4", Conference: ConferenceEastern, Division: "Southeast"},
	{Code: "PHI", ESPNID: 20, Name: "76ers", City: "Philadelphia", Logo: "https://cdn.nba.com/logos/nba/1610612755/global/L/logo.svg", PrimaryColor: "#006BB6", SecondaryColor: "#ED174C", Conference: ConferenceEastern, Division: "Atlantic"},
	{Code: "PHX", ESPNID: 21, Name: "Suns", City: "Phoenix", Logo: "https://cdn.nba.com/logos/nba/1610612756/global/L/logo.svg", PrimaryColor: "#1D1160", SecondaryColor: "#E56020", Conference: ConferenceWestern, Division: "Pacific"},
	{Code: "POR", ESPNID: 22, Name: "Trail Blazers", City: "Portland", Logo: "https://cdn.nba.com/logos/nba/1610612757/global/L/logo.svg", PrimaryColor: "#E03A3E", SecondaryColor: "#000000", Conference: ConferenceWestern, Division: "Northwest"},
	{Code: "SAC", ESPNID: 23, Name: "Kings", City: "Sacramento", Logo: "https://cdn.nba.com/logos/nba/1610612758/global/L/logo.svg", PrimaryColor: "#5A2D81", SecondaryColor: "#63727A", Conference: ConferenceWestern, Division: "Pacific"},
	{Code: "SAS", ESPNID: 24, Name: "Spurs", City: "San Antonio", Logo: "https://cdn.nba.com/logos/nba/1610612759/global/L/logo.svg", PrimaryColor: "#C4CED4", SecondaryColor: "#000000", Conference: ConferenceWestern, Division: "Southwest"},
	{Code: "TOR", ESPNID: 28, Name: "Raptors", City: "Toronto", Logo: "https://cdn.nba.com/logos/nba/1610612761/global/L/logo.svg", PrimaryColor: "#CE1141", SecondaryColor: "#000000", Conference: ConferenceEastern, Division: "Atlantic"},
	{Code: "UTA", ESPNID: 26, Name: "Jazz", City: "Utah", Logo: "https://cdn.nba.com/logos/nba/1610612762/global/L/logo.svg", PrimaryColor: "#002B5C", SecondaryColor: "#00471B", Conference: ConferenceWestern, Division: "Northwest"},
	{Code: "WAS", ESPNID: 27, Name: "Wizards", City: "Washington", Logo: "https://cdn.nba.com/logos/nba/1610612764/global/L/logo.svg", PrimaryColor: "#002B5C", SecondaryColor: "#E31837", Conference: ConferenceEastern, Division: "Southeast"},
}
