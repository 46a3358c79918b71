package entity

import "github.com/google/uuid"

// RelationState is the like/match state of an unordered pair of profiles.
type RelationState string

const (
	RelationNone     RelationState = "none"
	RelationOneSided RelationState = "one_sided"
	RelationMutual   RelationState = "mutual" // both likes exist but no match row was created
	RelationMatched  RelationState = "matched"
)

// Relation describes the pair (Subject, Other) from Subject's point of view.
type Relation struct {
	Subject uuid.UUID     `json:"subject"`
	Other   uuid.UUID     `json:"other"`
	State   RelationState `json:"state"`
	Liked   bool          `json:"liked"`    // Subject likes Other.
	LikedBy bool          `json:"liked_by"` // Other likes Subject.
	Match   *Match        `json:"match,omitempty"`
}

// DeriveRelation computes the state for a pair from its rows.
func DeriveRelation(subject, other uuid.UUID, liked, likedBy bool, match *Match) *Relation {
	r := &Relation{
		Subject: subject,
		Other:   other,
		Liked:   liked,
		LikedBy: likedBy,
		Match:   match,
	}

	switch {
	case match != nil:
		r.State = RelationMatched
	case liked && likedBy:
		r.State = RelationMutual
	case liked || likedBy:
		r.State = RelationOneSided
	default:
		r.State = RelationNone
	}

	return r
}
