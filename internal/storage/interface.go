package storage

import (
	"errors"
	"time"

	"matchday/internal/domain"

	"github.com/google/uuid"
)

var (
	ErrNotFound       = errors.New("not found")
	ErrMatchCompleted = errors.New("match result already recorded")
)

type PlayerStorage interface {
	ListPlayers() ([]domain.Player, error)
	Get(uuid.UUID) (domain.Player, error)
	Add(domain.Player) (domain.Player, error)
}

type SquadStorage interface {
	AddSquad(domain.Squad) (domain.Squad, error)
	GetSquad(uuid.UUID) (domain.Squad, error)
	ListSquads() ([]domain.Squad, error)

	AddMember(domain.Membership) error
	GetMember(squadID, playerID uuid.UUID) (domain.Membership, error)
	ListMembers(squadID uuid.UUID) ([]domain.Membership, error)
	UpdateMember(domain.Membership) error
}

type MatchStorage interface {
	CreateMatch(domain.Match) (domain.Match, error)
	GetMatch(uuid.UUID) (domain.Match, error)
	ListMatches(squadID uuid.UUID) ([]domain.Match, error)

	// CompleteMatch records the outcome at most once; a second call
	// returns ErrMatchCompleted.
	CompleteMatch(id uuid.UUID, outcome domain.Outcome, completedAt time.Time) error
}
