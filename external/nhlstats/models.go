package nhlstats

// Wire shapes for the two stats API reads. Fields are consumed by fixed key
// path; anything missing where a value is required is a provider error.

type teamsEnvelope struct {
	Teams []teamEntry `json:"teams"`
}

type teamEntry struct {
	ID                   int            `json:"id"`
	Name                 string         `json:"name"`
	NextGameSchedule     *scheduleBlock `json:"nextGameSchedule"`
	PreviousGameSchedule *scheduleBlock `json:"previousGameSchedule"`
}

type scheduleBlock struct {
	TotalItems int            `json:"totalItems"`
	Dates      []scheduleDate `json:"dates"`
}

type scheduleDate struct {
	Date  string          `json:"date"`
	Games []scheduledGame `json:"games"`
}

type scheduledGame struct {
	GamePk int64      `json:"gamePk"`
	Status gameStatus `json:"status"`
}

type gameStatus struct {
	AbstractGameState string `json:"abstractGameState"`
	DetailedState     string `json:"detailedState"`
}

type boxscoreEnvelope struct {
	Teams *boxscoreTeams `json:"teams"`
}

type boxscoreTeams struct {
	Home boxscoreSide `json:"home"`
	Away boxscoreSide `json:"away"`
}

type boxscoreSide struct {
	Team    boxscoreTeamInfo          `json:"team"`
	Players map[string]boxscorePlayer `json:"players"`
	OnIce   []int64                   `json:"onIce"`
}

type boxscoreTeamInfo struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type boxscorePlayer struct {
	Person       boxscorePerson `json:"person"`
	JerseyNumber string         `json:"jerseyNumber"`
}

type boxscorePerson struct {
	ID       int64  `json:"id"`
	FullName string `json:"fullName"`
}
