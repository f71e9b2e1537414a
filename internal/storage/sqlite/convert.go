package sqlite

import (
	"database/sql"
	"time"

	"matchday/internal/domain"
	"matchday/internal/rating"

	"github.com/google/uuid"
)

type playerRow struct {
	ID        string
	Name      string
	CreatedAt time.Time
}

type squadRow struct {
	ID        string
	Name      string
	CreatedAt time.Time
}

type memberRow struct {
	SquadID      string
	PlayerID     string
	Name         string
	RegisteredAt time.Time
	Rating       int
	GamesPlayed  int
	JoinedAt     time.Time
}

type matchRow struct {
	ID          string
	SquadID     string
	TeamSize    int
	Outcome     sql.NullInt64
	CreatedAt   time.Time
	CompletedAt sql.NullTime
}

type matchPlayerRow struct {
	PlayerID string
	Team     int
	Rating   int
}

func convertPlayer(row playerRow) (domain.Player, error) {
	id, err := uuid.Parse(row.ID)
	if err != nil {
		return domain.Player{}, err
	}
	return domain.Player{
		ID:           id,
		Name:         row.Name,
		RegisteredAt: row.CreatedAt,
	}, nil
}

func convertSquad(row squadRow) (domain.Squad, error) {
	id, err := uuid.Parse(row.ID)
	if err != nil {
		return domain.Squad{}, err
	}
	return domain.Squad{
		ID:        id,
		Name:      row.Name,
		CreatedAt: row.CreatedAt,
	}, nil
}

func convertMember(row memberRow) (domain.Membership, error) {
	squadID, err := uuid.Parse(row.SquadID)
	if err != nil {
		return domain.Membership{}, err
	}
	playerID, err := uuid.Parse(row.PlayerID)
	if err != nil {
		return domain.Membership{}, err
	}
	r, err := rating.New(row.Rating)
	if err != nil {
		return domain.Membership{}, err
	}
	return domain.Membership{
		SquadID: squadID,
		Player: domain.Player{
			ID:           playerID,
			Name:         row.Name,
			RegisteredAt: row.RegisteredAt,
		},
		Rating:      r,
		GamesPlayed: row.GamesPlayed,
		JoinedAt:    row.JoinedAt,
	}, nil
}

func convertMatch(row matchRow) (domain.Match, error) {
	id, err := uuid.Parse(row.ID)
	if err != nil {
		return domain.Match{}, err
	}
	squadID, err := uuid.Parse(row.SquadID)
	if err != nil {
		return domain.Match{}, err
	}
	outcome := domain.OutcomeUnknown
	if row.Outcome.Valid {
		outcome = domain.Outcome(row.Outcome.Int64)
	}
	var completedAt *time.Time
	if row.CompletedAt.Valid {
		t := row.CompletedAt.Time
		completedAt = &t
	}
	return domain.Match{
		ID:          id,
		SquadID:     squadID,
		TeamSize:    row.TeamSize,
		Outcome:     outcome,
		CreatedAt:   row.CreatedAt,
		CompletedAt: completedAt,
	}, nil
}

func convertMatchPlayer(row matchPlayerRow) (domain.RatedPlayer, error) {
	id, err := uuid.Parse(row.PlayerID)
	if err != nil {
		return domain.RatedPlayer{}, err
	}
	r, err := rating.New(row.Rating)
	if err != nil {
		return domain.RatedPlayer{}, err
	}
	return domain.RatedPlayer{PlayerID: id, Rating: r}, nil
}
