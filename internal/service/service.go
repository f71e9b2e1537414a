package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"matchday/internal/balance"
	"matchday/internal/cache/mem"
	"matchday/internal/config"
	"matchday/internal/domain"
	"matchday/internal/elo"
	"matchday/internal/rating"
	"matchday/internal/storage"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var ErrEmptyName = errors.New("name must not be empty")

// MatchService drives the match lifecycle: squads form rosters, rosters
// are split into balanced teams, and recorded outcomes feed the rating
// update. The balancing and ELO math lives in the pure balance and elo
// packages; this layer owns storage and at-most-once result recording.
type MatchService struct {
	players storage.PlayerStorage
	squads  storage.SquadStorage
	matches storage.MatchStorage
	cache   *mem.Cache
	cfg     config.Rating
	log     *logrus.Logger
}

func New(players storage.PlayerStorage, squads storage.SquadStorage, matches storage.MatchStorage, cfg config.Rating, log *logrus.Logger) *MatchService {
	return &MatchService{
		players: players,
		squads:  squads,
		matches: matches,
		cache:   mem.New(),
		cfg:     cfg,
		log:     log,
	}
}

func (s *MatchService) CreatePlayer(name string) (domain.Player, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Player{}, ErrEmptyName
	}
	player, err := s.players.Add(domain.Player{
		ID:           uuid.New(),
		Name:         name,
		RegisteredAt: time.Now(),
	})
	if err != nil {
		return domain.Player{}, err
	}
	s.cache.Add(player)
	return player, nil
}

func (s *MatchService) GetPlayer(id uuid.UUID) (domain.Player, error) {
	return s.players.Get(id)
}

func (s *MatchService) GetPlayerByName(name string) (domain.Player, error) {
	if player, ok := s.cache.GetPlayerByName(name); ok {
		return player, nil
	}
	players, err := s.players.ListPlayers()
	if err != nil {
		return domain.Player{}, err
	}
	s.cache.Update(players)
	player, ok := s.cache.GetPlayerByName(name)
	if !ok {
		return domain.Player{}, fmt.Errorf("player %q: %w", name, storage.ErrNotFound)
	}
	return player, nil
}

func (s *MatchService) CreateSquad(name string) (domain.Squad, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Squad{}, ErrEmptyName
	}
	return s.squads.AddSquad(domain.Squad{
		ID:        uuid.New(),
		Name:      name,
		CreatedAt: time.Now(),
	})
}

func (s *MatchService) ListSquads() ([]domain.Squad, error) {
	return s.squads.ListSquads()
}

// Join adds a player to a squad with the configured starting rating.
func (s *MatchService) Join(squadID, playerID uuid.UUID) (domain.Membership, error) {
	squad, err := s.squads.GetSquad(squadID)
	if err != nil {
		return domain.Membership{}, err
	}
	player, err := s.players.Get(playerID)
	if err != nil {
		return domain.Membership{}, err
	}
	r, err := rating.New(s.cfg.DefaultRating)
	if err != nil {
		return domain.Membership{}, err
	}
	member := domain.Membership{
		SquadID:  squad.ID,
		Player:   player,
		Rating:   r,
		JoinedAt: time.Now(),
	}
	if err := s.squads.AddMember(member); err != nil {
		return domain.Membership{}, err
	}
	return member, nil
}

func (s *MatchService) SquadRatings(squadID uuid.UUID) ([]domain.Membership, error) {
	members, err := s.squads.ListMembers(squadID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(members, func(i, j int) bool {
		return members[i].Rating.Value() > members[j].Rating.Value()
	})
	return members, nil
}

// CreateMatch snapshots the given members' current ratings and splits them
// into two balanced teams. The snapshots are stored with the match, so a
// later result is computed from the ratings the teams were built with,
// not from whatever the live ratings are by then.
func (s *MatchService) CreateMatch(squadID uuid.UUID, playerIDs []uuid.UUID, teamSize int) (domain.Match, error) {
	roster := make([]domain.RatedPlayer, 0, len(playerIDs))
	for _, playerID := range playerIDs {
		member, err := s.squads.GetMember(squadID, playerID)
		if err != nil {
			return domain.Match{}, err
		}
		roster = append(roster, domain.RatedPlayer{
			PlayerID: member.Player.ID,
			Rating:   member.Rating,
		})
	}
	teamA, teamB, err := balance.GenerateBalancedTeams(roster, teamSize)
	if err != nil {
		return domain.Match{}, err
	}
	match, err := s.matches.CreateMatch(domain.Match{
		ID:        uuid.New(),
		SquadID:   squadID,
		TeamSize:  teamSize,
		TeamA:     teamA,
		TeamB:     teamB,
		CreatedAt: time.Now(),
	})
	if err != nil {
		return domain.Match{}, err
	}
	s.log.WithFields(logrus.Fields{
		"match":   match.ID,
		"squad":   squadID,
		"total_a": teamA.TotalRating(),
		"total_b": teamB.TotalRating(),
	}).Info("match created")
	return match, nil
}

// RecordResult applies the rating update for a finished match and returns
// the per-player deltas. A match accepts exactly one result; replays fail
// with storage.ErrMatchCompleted before any rating is touched.
func (s *MatchService) RecordResult(matchID uuid.UUID, outcome domain.Outcome) (map[uuid.UUID]int, error) {
	match, err := s.matches.GetMatch(matchID)
	if err != nil {
		return nil, err
	}
	changes, err := elo.CalculateRatingChanges(match.TeamA, match.TeamB, outcome, s.cfg.KFactor)
	if err != nil {
		return nil, err
	}
	if err := s.matches.CompleteMatch(matchID, outcome, time.Now()); err != nil {
		return nil, err
	}
	for playerID, delta := range changes {
		member, err := s.squads.GetMember(match.SquadID, playerID)
		if err != nil {
			return nil, err
		}
		member.Rating = member.Rating.Add(delta)
		member.GamesPlayed++
		if err := s.squads.UpdateMember(member); err != nil {
			return nil, err
		}
	}
	s.log.WithFields(logrus.Fields{
		"match":   matchID,
		"outcome": outcome.String(),
	}).Info("match result recorded")
	return changes, nil
}

func (s *MatchService) MatchHistory(squadID uuid.UUID) ([]domain.Match, error) {
	return s.matches.ListMatches(squadID)
}
