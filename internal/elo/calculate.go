package elo

import (
	"errors"
	"fmt"
	"math"

	"matchday/internal/domain"

	"github.com/google/uuid"
)

var (
	ErrEmptyTeam      = errors.New("team must not be empty")
	ErrKFactor        = errors.New("K-factor must be positive")
	ErrUnknownOutcome = errors.New("unknown match outcome")
)

type points float64

const (
	win  points = 1
	draw points = 0.5
	lose points = 0
)

// CalculateRatingChanges computes the per-player rating delta for a finished
// match. Expected score for team A is 1/(1+10^((avgB-avgA)/400)); the raw
// team delta is K*(S-E) rounded half away from zero (math.Round).
//
// Every member of a team gets the same delta. Any residual left by
// independent rounding is absorbed by the larger team (team A when sizes
// are equal) so the deltas sum to zero — exactly so for equal-size teams.
func CalculateRatingChanges(teamA, teamB domain.Team, outcome domain.Outcome, kFactor int) (map[uuid.UUID]int, error) {
	if len(teamA.Players) == 0 || len(teamB.Players) == 0 {
		return nil, ErrEmptyTeam
	}
	if kFactor <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrKFactor, kFactor)
	}
	sa, sb, err := scores(outcome)
	if err != nil {
		return nil, err
	}

	avgA := teamA.AverageRating()
	avgB := teamB.AverageRating()
	ea := 1.0 / (1.0 + math.Pow(10, (avgB-avgA)/400.0))
	eb := 1.0 - ea
	k := float64(kFactor)

	deltaA := int(math.Round(k * (float64(sa) - ea)))
	deltaB := int(math.Round(k * (float64(sb) - eb)))

	lenA := len(teamA.Players)
	lenB := len(teamB.Players)
	if residual := deltaA*lenA + deltaB*lenB; residual != 0 {
		if lenA >= lenB {
			deltaA -= residual / lenA
		} else {
			deltaB -= residual / lenB
		}
	}

	changes := make(map[uuid.UUID]int, lenA+lenB)
	for _, p := range teamA.Players {
		changes[p.PlayerID] = deltaA
	}
	for _, p := range teamB.Players {
		changes[p.PlayerID] = deltaB
	}
	return changes, nil
}

func scores(outcome domain.Outcome) (points, points, error) {
	switch outcome {
	case domain.OutcomeTeamAWins:
		return win, lose, nil
	case domain.OutcomeTeamBWins:
		return lose, win, nil
	case domain.OutcomeDraw:
		return draw, draw, nil
	default:
		return 0, 0, fmt.Errorf("%w: %d", ErrUnknownOutcome, int(outcome))
	}
}
