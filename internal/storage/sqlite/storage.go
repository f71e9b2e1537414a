package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"matchday/internal/domain"
	"matchday/internal/storage"

	"github.com/google/uuid"
)

type Storage struct {
	db *sql.DB
}

var _ storage.PlayerStorage = (*Storage)(nil)
var _ storage.SquadStorage = (*Storage)(nil)
var _ storage.MatchStorage = (*Storage)(nil)

func New(db *sql.DB) *Storage {
	return &Storage{db: db}
}

func (s *Storage) ListPlayers() ([]domain.Player, error) {
	rows, err := s.db.Query(`SELECT id, name, created_at FROM players ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var players []domain.Player
	for rows.Next() {
		var row playerRow
		if err := rows.Scan(&row.ID, &row.Name, &row.CreatedAt); err != nil {
			return nil, err
		}
		player, err := convertPlayer(row)
		if err != nil {
			return nil, err
		}
		players = append(players, player)
	}
	return players, rows.Err()
}

func (s *Storage) Get(id uuid.UUID) (domain.Player, error) {
	var row playerRow
	err := s.db.QueryRow(`SELECT id, name, created_at FROM players WHERE id = ?`, id.String()).
		Scan(&row.ID, &row.Name, &row.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Player{}, fmt.Errorf("player %s: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return domain.Player{}, err
	}
	return convertPlayer(row)
}

func (s *Storage) Add(player domain.Player) (domain.Player, error) {
	_, err := s.db.Exec(`INSERT INTO players (id, name, created_at) VALUES (?, ?, ?)`,
		player.ID.String(), player.Name, player.RegisteredAt)
	if err != nil {
		return domain.Player{}, err
	}
	return player, nil
}

func (s *Storage) AddSquad(squad domain.Squad) (domain.Squad, error) {
	_, err := s.db.Exec(`INSERT INTO squads (id, name, created_at) VALUES (?, ?, ?)`,
		squad.ID.String(), squad.Name, squad.CreatedAt)
	if err != nil {
		return domain.Squad{}, err
	}
	return squad, nil
}

func (s *Storage) GetSquad(id uuid.UUID) (domain.Squad, error) {
	var row squadRow
	err := s.db.QueryRow(`SELECT id, name, created_at FROM squads WHERE id = ?`, id.String()).
		Scan(&row.ID, &row.Name, &row.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Squad{}, fmt.Errorf("squad %s: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return domain.Squad{}, err
	}
	return convertSquad(row)
}

func (s *Storage) ListSquads() ([]domain.Squad, error) {
	rows, err := s.db.Query(`SELECT id, name, created_at FROM squads ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var squads []domain.Squad
	for rows.Next() {
		var row squadRow
		if err := rows.Scan(&row.ID, &row.Name, &row.CreatedAt); err != nil {
			return nil, err
		}
		squad, err := convertSquad(row)
		if err != nil {
			return nil, err
		}
		squads = append(squads, squad)
	}
	return squads, rows.Err()
}

const memberQuery = `
SELECT m.squad_id, m.player_id, p.name, p.created_at, m.rating, m.games_played, m.joined_at
FROM squad_members m
JOIN players p ON p.id = m.player_id`

func (s *Storage) AddMember(m domain.Membership) error {
	_, err := s.db.Exec(`INSERT INTO squad_members (squad_id, player_id, rating, games_played, joined_at) VALUES (?, ?, ?, ?, ?)`,
		m.SquadID.String(), m.Player.ID.String(), m.Rating.Value(), m.GamesPlayed, m.JoinedAt)
	return err
}

func (s *Storage) GetMember(squadID, playerID uuid.UUID) (domain.Membership, error) {
	var row memberRow
	err := s.db.QueryRow(memberQuery+` WHERE m.squad_id = ? AND m.player_id = ?`,
		squadID.String(), playerID.String()).
		Scan(&row.SquadID, &row.PlayerID, &row.Name, &row.RegisteredAt, &row.Rating, &row.GamesPlayed, &row.JoinedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Membership{}, fmt.Errorf("member %s of squad %s: %w", playerID, squadID, storage.ErrNotFound)
	}
	if err != nil {
		return domain.Membership{}, err
	}
	return convertMember(row)
}

func (s *Storage) ListMembers(squadID uuid.UUID) ([]domain.Membership, error) {
	rows, err := s.db.Query(memberQuery+` WHERE m.squad_id = ? ORDER BY m.rating DESC, p.name`, squadID.String())
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var members []domain.Membership
	for rows.Next() {
		var row memberRow
		if err := rows.Scan(&row.SquadID, &row.PlayerID, &row.Name, &row.RegisteredAt, &row.Rating, &row.GamesPlayed, &row.JoinedAt); err != nil {
			return nil, err
		}
		member, err := convertMember(row)
		if err != nil {
			return nil, err
		}
		members = append(members, member)
	}
	return members, rows.Err()
}

func (s *Storage) UpdateMember(m domain.Membership) error {
	res, err := s.db.Exec(`UPDATE squad_members SET rating = ?, games_played = ? WHERE squad_id = ? AND player_id = ?`,
		m.Rating.Value(), m.GamesPlayed, m.SquadID.String(), m.Player.ID.String())
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("member %s of squad %s: %w", m.Player.ID, m.SquadID, storage.ErrNotFound)
	}
	return nil
}

const (
	teamA = 1
	teamB = 2
)

func (s *Storage) CreateMatch(match domain.Match) (domain.Match, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return domain.Match{}, err
	}
	defer func() {
		_ = tx.Rollback()
	}()
	_, err = tx.Exec(`INSERT INTO matches (id, squad_id, team_size, outcome, created_at, completed_at) VALUES (?, ?, ?, NULL, ?, NULL)`,
		match.ID.String(), match.SquadID.String(), match.TeamSize, match.CreatedAt)
	if err != nil {
		return domain.Match{}, err
	}
	if err := insertTeam(tx, match.ID, teamA, match.TeamA); err != nil {
		return domain.Match{}, err
	}
	if err := insertTeam(tx, match.ID, teamB, match.TeamB); err != nil {
		return domain.Match{}, err
	}
	if err := tx.Commit(); err != nil {
		return domain.Match{}, err
	}
	return match, nil
}

func insertTeam(tx *sql.Tx, matchID uuid.UUID, team int, t domain.Team) error {
	for _, p := range t.Players {
		_, err := tx.Exec(`INSERT INTO match_players (match_id, player_id, team, rating) VALUES (?, ?, ?, ?)`,
			matchID.String(), p.PlayerID.String(), team, p.Rating.Value())
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *Storage) GetMatch(id uuid.UUID) (domain.Match, error) {
	var row matchRow
	err := s.db.QueryRow(`SELECT id, squad_id, team_size, outcome, created_at, completed_at FROM matches WHERE id = ?`, id.String()).
		Scan(&row.ID, &row.SquadID, &row.TeamSize, &row.Outcome, &row.CreatedAt, &row.CompletedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Match{}, fmt.Errorf("match %s: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return domain.Match{}, err
	}
	match, err := convertMatch(row)
	if err != nil {
		return domain.Match{}, err
	}
	match.TeamA, match.TeamB, err = s.matchTeams(id)
	if err != nil {
		return domain.Match{}, err
	}
	return match, nil
}

func (s *Storage) ListMatches(squadID uuid.UUID) ([]domain.Match, error) {
	rows, err := s.db.Query(`SELECT id, squad_id, team_size, outcome, created_at, completed_at FROM matches WHERE squad_id = ? ORDER BY created_at`,
		squadID.String())
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var matches []domain.Match
	for rows.Next() {
		var row matchRow
		if err := rows.Scan(&row.ID, &row.SquadID, &row.TeamSize, &row.Outcome, &row.CreatedAt, &row.CompletedAt); err != nil {
			return nil, err
		}
		match, err := convertMatch(row)
		if err != nil {
			return nil, err
		}
		matches = append(matches, match)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for i := range matches {
		matches[i].TeamA, matches[i].TeamB, err = s.matchTeams(matches[i].ID)
		if err != nil {
			return nil, err
		}
	}
	return matches, nil
}

func (s *Storage) matchTeams(matchID uuid.UUID) (domain.Team, domain.Team, error) {
	rows, err := s.db.Query(`SELECT player_id, team, rating FROM match_players WHERE match_id = ? ORDER BY player_id`,
		matchID.String())
	if err != nil {
		return domain.Team{}, domain.Team{}, err
	}
	defer rows.Close()
	var a, b domain.Team
	for rows.Next() {
		var row matchPlayerRow
		if err := rows.Scan(&row.PlayerID, &row.Team, &row.Rating); err != nil {
			return domain.Team{}, domain.Team{}, err
		}
		player, err := convertMatchPlayer(row)
		if err != nil {
			return domain.Team{}, domain.Team{}, err
		}
		if row.Team == teamA {
			a.Players = append(a.Players, player)
		} else {
			b.Players = append(b.Players, player)
		}
	}
	return a, b, rows.Err()
}

func (s *Storage) CompleteMatch(id uuid.UUID, outcome domain.Outcome, completedAt time.Time) error {
	res, err := s.db.Exec(`UPDATE matches SET outcome = ?, completed_at = ? WHERE id = ? AND completed_at IS NULL`,
		int(outcome), completedAt, id.String())
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n != 0 {
		return nil
	}
	var count int
	if err := s.db.QueryRow(`SELECT count(*) FROM matches WHERE id = ?`, id.String()).Scan(&count); err != nil {
		return err
	}
	if count == 0 {
		return fmt.Errorf("match %s: %w", id, storage.ErrNotFound)
	}
	return storage.ErrMatchCompleted
}
