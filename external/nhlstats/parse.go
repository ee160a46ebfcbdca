package nhlstats

import (
	"strconv"

	crerr "github.com/cockroachdb/errors"

	"github.com/pquint/onice/internal/domain/game"
	"github.com/pquint/onice/internal/domain/roster"
)

var errMalformedPayload = crerr.New("nhlstats malformed payload")

func parseSchedule(env teamsEnvelope) (game.Schedule, error) {
	if len(env.Teams) == 0 {
		return game.Schedule{}, crerr.Wrap(errMalformedPayload, "teams list is empty")
	}

	entry := env.Teams[0]

	return game.Schedule{
		Next:     firstScheduled(entry.NextGameSchedule),
		Previous: firstScheduled(entry.PreviousGameSchedule),
	}, nil
}

// firstScheduled flattens an expanded schedule block down to its single game.
// A missing or empty block means the team has no game on that side.
func firstScheduled(block *scheduleBlock) *game.Scheduled {
	if block == nil || len(block.Dates) == 0 || len(block.Dates[0].Games) == 0 {
		return nil
	}

	item := block.Dates[0].Games[0]

	return &game.Scheduled{
		ID:            game.ID(item.GamePk),
		AbstractState: item.Status.AbstractGameState,
	}
}

func parseBoxscore(env boxscoreEnvelope) (roster.BoxscoreView, error) {
	if env.Teams == nil {
		return roster.BoxscoreView{}, crerr.Wrap(errMalformedPayload, "boxscore teams block is missing")
	}

	home, err := mapSide(env.Teams.Home)
	if err != nil {
		return roster.BoxscoreView{}, crerr.Wrap(err, "home side")
	}
	away, err := mapSide(env.Teams.Away)
	if err != nil {
		return roster.BoxscoreView{}, crerr.Wrap(err, "away side")
	}

	return roster.BoxscoreView{Home: home, Away: away}, nil
}

// mapSide cross-references each on-ice player id against the per-side roster,
// which is keyed by the string-prefixed form "ID<playerId>".
func mapSide(side boxscoreSide) (roster.Side, error) {
	if side.Team.Name == "" {
		return roster.Side{}, crerr.Wrap(errMalformedPayload, "team name is missing")
	}

	onIce := make([]roster.Skater, 0, len(side.OnIce))
	for _, playerID := range side.OnIce {
		key := "ID" + strconv.FormatInt(playerID, 10)
		player, ok := side.Players[key]
		if !ok {
			return roster.Side{}, crerr.Wrapf(errMalformedPayload, "on-ice player %s not in roster", key)
		}
		onIce = append(onIce, roster.Skater{
			FullName: player.Person.FullName,
			Number:   player.JerseyNumber,
		})
	}

	return roster.Side{Name: side.Team.Name, OnIce: onIce}, nil
}
