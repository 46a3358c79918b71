package entity

import (
	"time"

	"github.com/google/uuid"
)

// Match is the symmetric relation created from two reciprocal likes.
// UserA always sorts before UserB.
type Match struct {
	ID        uuid.UUID `json:"id"`
	UserA     uuid.UUID `json:"user_a"`
	UserB     uuid.UUID `json:"user_b"`
	MatchedAt time.Time `json:"matched_at"`
}

// NewMatch builds a Match for the unordered pair {x, y}.
func NewMatch(x, y uuid.UUID, now time.Time) *Match {
	a, b := OrderedPair(x, y)

	return &Match{
		ID:        uuid.Must(uuid.NewV7()),
		UserA:     a,
		UserB:     b,
		MatchedAt: now,
	}
}

// OrderedPair returns x and y ordered by their canonical string form.
func OrderedPair(x, y uuid.UUID) (uuid.UUID, uuid.UUID) {
	if x.String() < y.String() {
		return x, y
	}

	return y, x
}

// Other returns the counterpart of userID in the match.
func (m *Match) Other(userID uuid.UUID) uuid.UUID {
	if m.UserA == userID {
		return m.UserB
	}

	return m.UserA
}

// Involves reports whether userID is one side of the match.
func (m *Match) Involves(userID uuid.UUID) bool {
	return m.UserA == userID || m.UserB == userID
}
