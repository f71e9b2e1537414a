package balance

import (
	"errors"
	"fmt"
	"sort"

	"matchday/internal/domain"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/google/uuid"
)

var (
	ErrTooFewPlayers   = errors.New("at least 2 players are required")
	ErrOddPlayerCount  = errors.New("an even number of players is required")
	ErrTeamSize        = errors.New("team size must be positive")
	ErrRosterMismatch  = errors.New("roster size must equal twice the team size")
	ErrDuplicatePlayer = errors.New("duplicate player in roster")
)

// GenerateBalancedTeams splits a roster into two teams of teamSize players
// each, minimizing the total-rating gap with a single greedy pass: players
// sorted by snapshot rating descending go to whichever team has the lower
// running total, until a team is full.
//
// Equal ratings are ordered by player id, so a shuffled input always
// produces the same partition. The final gap is bounded by the highest
// individual rating in the roster; this is a fast approximation, not the
// optimal partition.
func GenerateBalancedTeams(players []domain.RatedPlayer, teamSize int) (domain.Team, domain.Team, error) {
	if len(players) < 2 {
		return domain.Team{}, domain.Team{}, fmt.Errorf("%w: got %d", ErrTooFewPlayers, len(players))
	}
	if len(players)%2 != 0 {
		return domain.Team{}, domain.Team{}, fmt.Errorf("%w: got %d", ErrOddPlayerCount, len(players))
	}
	if teamSize <= 0 {
		return domain.Team{}, domain.Team{}, fmt.Errorf("%w: got %d", ErrTeamSize, teamSize)
	}
	if len(players) != teamSize*2 {
		return domain.Team{}, domain.Team{}, fmt.Errorf("%w: %d players for team size %d", ErrRosterMismatch, len(players), teamSize)
	}
	ids := mapset.NewSetWithSize[uuid.UUID](len(players))
	for _, p := range players {
		if !ids.Add(p.PlayerID) {
			return domain.Team{}, domain.Team{}, fmt.Errorf("%w: %s", ErrDuplicatePlayer, p.PlayerID)
		}
	}

	roster := make([]domain.RatedPlayer, len(players))
	copy(roster, players)
	sort.Slice(roster, func(i, j int) bool {
		if roster[i].Rating.Value() != roster[j].Rating.Value() {
			return roster[i].Rating.Value() > roster[j].Rating.Value()
		}
		return roster[i].PlayerID.String() < roster[j].PlayerID.String()
	})

	teamA := make([]domain.RatedPlayer, 0, teamSize)
	teamB := make([]domain.RatedPlayer, 0, teamSize)
	totalA, totalB := 0, 0
	for _, p := range roster {
		switch {
		case len(teamA) == teamSize:
			teamB = append(teamB, p)
			totalB += p.Rating.Value()
		case len(teamB) == teamSize:
			teamA = append(teamA, p)
			totalA += p.Rating.Value()
		case totalA <= totalB:
			teamA = append(teamA, p)
			totalA += p.Rating.Value()
		default:
			teamB = append(teamB, p)
			totalB += p.Rating.Value()
		}
	}
	return domain.Team{Players: teamA}, domain.Team{Players: teamB}, nil
}
