package search

import (
	"testing"

	"mutuals/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProfile(name string) *entity.Profile {
	return &entity.Profile{ID: uuid.New(), Username: name, Name: name}
}

func newUnlinkedContact(name, phone string) *entity.Contact {
	return &entity.Contact{ID: uuid.New(), DisplayName: name, PhoneNumber: phone}
}

func names(results []Result) []string {
	out := make([]string, 0, len(results))
	for _, r := range results {
		out = append(out, r.DisplayName())
	}

	return out
}

func TestRank_DirectOutranksFreeText(t *testing.T) {
	bob := newProfile("Bob")

	ranked := Rank([]Result{
		NewRegistered(bob, TierFreeText),
		NewRegistered(bob, TierDirect),
	})

	require.Len(t, ranked, 1)
	assert.Equal(t, TierDirect, ranked[0].Tier())
}

func TestRank_PrecedenceIndependentOfInputOrder(t *testing.T) {
	p := newProfile("Pat")

	tests := []struct {
		name  string
		tiers []Tier
		want  Tier
	}{
		{name: "second degree before free text", tiers: []Tier{TierSecondDegree, TierFreeText}, want: TierSecondDegree},
		{name: "free text before second degree", tiers: []Tier{TierFreeText, TierSecondDegree}, want: TierSecondDegree},
		{name: "all registered tiers", tiers: []Tier{TierFreeText, TierSecondDegree, TierDirect}, want: TierDirect},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			candidates := make([]Result, 0, len(tt.tiers))
			for _, tier := range tt.tiers {
				candidates = append(candidates, NewRegistered(p, tier))
			}

			ranked := Rank(candidates)

			require.Len(t, ranked, 1)
			assert.Equal(t, tt.want, ranked[0].Tier())
		})
	}
}

func TestRank_OrdersByTierThenNameThenID(t *testing.T) {
	john := newProfile("John")
	joanna := newProfile("Joanna")
	amy := newProfile("amy")
	joseph := newUnlinkedContact("Joseph", "+15550100")

	ranked := Rank([]Result{
		NewUnregistered(joseph),
		NewRegistered(joanna, TierSecondDegree),
		NewRegistered(john, TierDirect),
		NewRegistered(amy, TierSecondDegree),
	})

	assert.Equal(t, []string{"John", "amy", "Joanna", "Joseph"}, names(ranked))
	assert.Equal(t, []Tier{TierDirect, TierSecondDegree, TierSecondDegree, TierUnregistered},
		[]Tier{ranked[0].Tier(), ranked[1].Tier(), ranked[2].Tier(), ranked[3].Tier()})
}

func TestRank_SameNameBrokenByID(t *testing.T) {
	first := &entity.Profile{ID: uuid.MustParse("00000000-0000-0000-0000-000000000001"), Name: "Sam"}
	second := &entity.Profile{ID: uuid.MustParse("00000000-0000-0000-0000-000000000002"), Name: "Sam"}

	ranked := Rank([]Result{
		NewRegistered(second, TierFreeText),
		NewRegistered(first, TierFreeText),
	})

	require.Len(t, ranked, 2)
	assert.Equal(t, first.ID, ranked[0].(*Registered).Profile.ID)
	assert.Equal(t, second.ID, ranked[1].(*Registered).Profile.ID)
}

func TestRank_UnregisteredDedupByPhone(t *testing.T) {
	ranked := Rank([]Result{
		NewUnregistered(newUnlinkedContact("Mom", "+15550111")),
		NewUnregistered(newUnlinkedContact("Mother", "+15550111")),
	})

	assert.Len(t, ranked, 1)
}

func TestRank_Empty(t *testing.T) {
	assert.Empty(t, Rank(nil))
}
