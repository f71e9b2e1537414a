package balance

import (
	"math/rand"
	"testing"

	"matchday/internal/domain"
	"matchday/internal/rating"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rated(t *testing.T, value int) domain.RatedPlayer {
	t.Helper()
	r, err := rating.New(value)
	require.NoError(t, err)
	return domain.RatedPlayer{PlayerID: uuid.New(), Rating: r}
}

func teamIDs(team domain.Team) mapset.Set[uuid.UUID] {
	ids := mapset.NewSet[uuid.UUID]()
	for _, p := range team.Players {
		ids.Add(p.PlayerID)
	}
	return ids
}

func TestGenerateBalancedTeams(t *testing.T) {
	players := []domain.RatedPlayer{
		rated(t, 1400),
		rated(t, 1200),
		rated(t, 1100),
		rated(t, 900),
	}

	teamA, teamB, err := GenerateBalancedTeams(players, 2)
	require.NoError(t, err)

	// Greedy pass: 1400->A, 1200->B, 1100->B, 900->A.
	assert.Equal(t, 2300, teamA.TotalRating())
	assert.Equal(t, 2300, teamB.TotalRating())
	assert.True(t, teamIDs(teamA).Contains(players[0].PlayerID))
	assert.True(t, teamIDs(teamA).Contains(players[3].PlayerID))
	assert.True(t, teamIDs(teamB).Contains(players[1].PlayerID))
	assert.True(t, teamIDs(teamB).Contains(players[2].PlayerID))
}

func TestGenerateBalancedTeamsValidation(t *testing.T) {
	tests := []struct {
		name     string
		players  []domain.RatedPlayer
		teamSize int
		wantErr  error
	}{
		{
			name:     "nil roster",
			players:  nil,
			teamSize: 1,
			wantErr:  ErrTooFewPlayers,
		},
		{
			name:     "single player",
			players:  []domain.RatedPlayer{rated(t, 1000)},
			teamSize: 1,
			wantErr:  ErrTooFewPlayers,
		},
		{
			name:     "odd roster",
			players:  []domain.RatedPlayer{rated(t, 1000), rated(t, 1000), rated(t, 1000)},
			teamSize: 1,
			wantErr:  ErrOddPlayerCount,
		},
		{
			name:     "zero team size",
			players:  []domain.RatedPlayer{rated(t, 1000), rated(t, 1000)},
			teamSize: 0,
			wantErr:  ErrTeamSize,
		},
		{
			name:     "negative team size",
			players:  []domain.RatedPlayer{rated(t, 1000), rated(t, 1000)},
			teamSize: -3,
			wantErr:  ErrTeamSize,
		},
		{
			name:     "roster does not match team size",
			players:  []domain.RatedPlayer{rated(t, 1000), rated(t, 1000), rated(t, 1000), rated(t, 1000)},
			teamSize: 1,
			wantErr:  ErrRosterMismatch,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := GenerateBalancedTeams(tt.players, tt.teamSize)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestGenerateBalancedTeamsOddCountMessage(t *testing.T) {
	players := []domain.RatedPlayer{rated(t, 1000), rated(t, 1100), rated(t, 1200)}
	_, _, err := GenerateBalancedTeams(players, 1)
	assert.ErrorContains(t, err, "even number")
}

func TestGenerateBalancedTeamsDuplicatePlayer(t *testing.T) {
	p := rated(t, 1000)
	_, _, err := GenerateBalancedTeams([]domain.RatedPlayer{p, p}, 1)
	assert.ErrorIs(t, err, ErrDuplicatePlayer)
}

func TestGenerateBalancedTeamsDeterministic(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	players := make([]domain.RatedPlayer, 10)
	for i := range players {
		players[i] = rated(t, 400+rng.Intn(2001))
	}

	wantA, wantB, err := GenerateBalancedTeams(players, 5)
	require.NoError(t, err)

	for i := 0; i < 50; i++ {
		shuffled := make([]domain.RatedPlayer, len(players))
		copy(shuffled, players)
		rng.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})
		gotA, gotB, err := GenerateBalancedTeams(shuffled, 5)
		require.NoError(t, err)
		assert.True(t, teamIDs(wantA).Equal(teamIDs(gotA)), "team A differs on shuffled input")
		assert.True(t, teamIDs(wantB).Equal(teamIDs(gotB)), "team B differs on shuffled input")
	}
}

func TestGenerateBalancedTeamsEqualRatingsTieBreak(t *testing.T) {
	players := make([]domain.RatedPlayer, 6)
	for i := range players {
		players[i] = rated(t, 1000)
	}
	reversed := make([]domain.RatedPlayer, len(players))
	for i := range players {
		reversed[len(players)-1-i] = players[i]
	}

	a1, b1, err := GenerateBalancedTeams(players, 3)
	require.NoError(t, err)
	a2, b2, err := GenerateBalancedTeams(reversed, 3)
	require.NoError(t, err)

	assert.True(t, teamIDs(a1).Equal(teamIDs(a2)))
	assert.True(t, teamIDs(b1).Equal(teamIDs(b2)))
}

func TestGenerateBalancedTeamsProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		teamSize := 1 + rng.Intn(10)
		players := make([]domain.RatedPlayer, teamSize*2)
		maxRating := 0
		for j := range players {
			players[j] = rated(t, 400+rng.Intn(2001))
			if v := players[j].Rating.Value(); v > maxRating {
				maxRating = v
			}
		}

		teamA, teamB, err := GenerateBalancedTeams(players, teamSize)
		require.NoError(t, err)

		// Exact split.
		require.Len(t, teamA.Players, teamSize)
		require.Len(t, teamB.Players, teamSize)

		// Exact partition of the input.
		union := teamIDs(teamA).Union(teamIDs(teamB))
		assert.Equal(t, len(players), union.Cardinality())
		assert.Equal(t, 0, teamIDs(teamA).Intersect(teamIDs(teamB)).Cardinality())

		// Gap bounded by the highest individual rating.
		gap := teamA.TotalRating() - teamB.TotalRating()
		if gap < 0 {
			gap = -gap
		}
		assert.LessOrEqual(t, gap, maxRating)
	}
}

func TestGenerateBalancedTeamsDoesNotMutateInput(t *testing.T) {
	players := []domain.RatedPlayer{
		rated(t, 900),
		rated(t, 1400),
		rated(t, 1100),
		rated(t, 1200),
	}
	original := make([]domain.RatedPlayer, len(players))
	copy(original, players)

	_, _, err := GenerateBalancedTeams(players, 2)
	require.NoError(t, err)

	assert.Equal(t, original, players)
}
