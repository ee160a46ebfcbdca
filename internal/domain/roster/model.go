package roster

// Skater is one player currently on the ice, as rendered to the client.
type Skater struct {
	FullName string `json:"fullName"`
	Number   string `json:"number"`
}

// Side is one bench of a boxscore.
type Side struct {
	Name  string   `json:"name"`
	OnIce []Skater `json:"onIce"`
}

// BoxscoreView is the response payload for a resolved game. It is built
// fresh per request and never cached.
type BoxscoreView struct {
	Home Side `json:"home"`
	Away Side `json:"away"`
}
