package domain

import (
	"time"

	"matchday/internal/rating"

	"github.com/google/uuid"
)

type Player struct {
	ID           uuid.UUID
	Name         string
	RegisteredAt time.Time
}

type Squad struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
}

// Membership is a player's standing inside one squad. The rating here is
// the live, current value; match algorithms never read it directly, they
// work on snapshots taken at match creation.
type Membership struct {
	SquadID     uuid.UUID
	Player      Player
	Rating      rating.Rating
	GamesPlayed int
	JoinedAt    time.Time
}

// RatedPlayer is a player id paired with the rating it had when a match
// was formed. Snapshots are immutable so a stored match replays to the
// same teams and the same deltas.
type RatedPlayer struct {
	PlayerID uuid.UUID
	Rating   rating.Rating
}
