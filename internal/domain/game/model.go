package game

// ID is the stats API gamePk.
type ID int64

// AbstractStateLive is the schedule status marking a game in progress.
const AbstractStateLive = "Live"

// Scheduled is one entry from a team's expanded schedule.
type Scheduled struct {
	ID            ID
	AbstractState string
}

func (s Scheduled) Live() bool {
	return s.AbstractState == AbstractStateLive
}

// Schedule holds a team's next and previous scheduled games as returned by
// the stats API. Either side may be absent.
type Schedule struct {
	Next     *Scheduled
	Previous *Scheduled
}

// Current picks the game the pipeline should report on: the next game when it
// is live, otherwise the previous (most recently completed) game. An upcoming
// but not yet live next game is deliberately skipped in favour of the
// previous game. The second return is false when neither branch yields a
// game.
func (s Schedule) Current() (ID, bool) {
	if s.Next != nil && s.Next.Live() {
		return s.Next.ID, true
	}
	if s.Previous != nil {
		return s.Previous.ID, true
	}

	return 0, false
}
