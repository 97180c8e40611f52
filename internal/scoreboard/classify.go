package scoreboard

import (
	"time"

	domaingames "courtside/internal/domain/games"
	"courtside/internal/timeutil"
)

const (
	stateInProgress = "in"
	stateFinal      = "post"
)

// Classify assigns a game exactly one display type for this fetch cycle.
// An explicit in-progress state always wins; an explicit final state, or
// a start time on an earlier calendar day, marks the game past; anything
// else is upcoming. A game earlier today without a final state stays
// upcoming so late status updates do not hide it prematurely.
func Classify(state string, start, now time.Time) domaingames.GameType {
	if state == stateInProgress {
		return domaingames.TypeLive
	}
	if state == stateFinal {
		return domaingames.TypePast
	}
	if start.Before(now) && !timeutil.SameDay(start, now, time.UTC) {
		return domaingames.TypePast
	}
	return domaingames.TypeUpcoming
}
