package domain

import (
	"time"

	"github.com/google/uuid"
)

// Team is one side of a match, built once by the balancer and never
// mutated afterwards.
type Team struct {
	Players []RatedPlayer
}

func (t Team) TotalRating() int {
	total := 0
	for _, p := range t.Players {
		total += p.Rating.Value()
	}
	return total
}

func (t Team) AverageRating() float64 {
	if len(t.Players) == 0 {
		return 0
	}
	return float64(t.TotalRating()) / float64(len(t.Players))
}

type Outcome int

const (
	OutcomeUnknown Outcome = iota
	OutcomeTeamAWins
	OutcomeTeamBWins
	OutcomeDraw
)

func (o Outcome) String() string {
	switch o {
	case OutcomeTeamAWins:
		return "team A wins"
	case OutcomeTeamBWins:
		return "team B wins"
	case OutcomeDraw:
		return "draw"
	default:
		return "unknown"
	}
}

type Match struct {
	ID          uuid.UUID
	SquadID     uuid.UUID
	TeamSize    int
	TeamA       Team
	TeamB       Team
	Outcome     Outcome
	CreatedAt   time.Time
	CompletedAt *time.Time
}

func (m Match) Completed() bool {
	return m.CompletedAt != nil
}
