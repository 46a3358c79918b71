// Package search ranks and deduplicates contact-graph discovery candidates.
package search

// Tier is the connection distance between the caller and a result.
// Lower values take precedence.
type Tier int

const (
	TierDirect Tier = iota
	TierSecondDegree
	TierFreeText
	TierUnregistered
)

func (t Tier) String() string {
	switch t {
	case TierDirect:
		return "direct"
	case TierSecondDegree:
		return "second_degree"
	case TierFreeText:
		return "free_text"
	case TierUnregistered:
		return "unregistered"
	default:
		return "unknown"
	}
}

// Outranks reports whether t takes precedence over other.
func (t Tier) Outranks(other Tier) bool {
	return t < other
}
