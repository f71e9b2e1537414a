package rating

import (
	"errors"
	"fmt"
)

const (
	Min = 400
	Max = 2400

	defaultValue = 1000
)

var ErrInvalidRating = errors.New("invalid rating")

// Rating is an immutable skill score, always within [Min, Max].
type Rating struct {
	value int
}

func New(value int) (Rating, error) {
	if value < Min || value > Max {
		return Rating{}, fmt.Errorf("%w: %d is outside [%d, %d]", ErrInvalidRating, value, Min, Max)
	}
	return Rating{value: value}, nil
}

// Default is the rating assigned to a player on first joining a squad.
func Default() Rating {
	return Rating{value: defaultValue}
}

// Add returns a new Rating. Deltas that would leave the valid range
// are truncated at the boundary.
func (r Rating) Add(delta int) Rating {
	v := r.value + delta
	if v < Min {
		v = Min
	}
	if v > Max {
		v = Max
	}
	return Rating{value: v}
}

func (r Rating) Subtract(delta int) Rating {
	return r.Add(-delta)
}

func (r Rating) Value() int {
	return r.value
}
