package identity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestResolve_Deterministic(t *testing.T) {
	first := Resolve("firebase-uid-123")
	second := Resolve("firebase-uid-123")

	assert.Equal(t, first, second)
	assert.Equal(t, uuid.Version(5), first.Version())
	assert.Equal(t, uuid.RFC4122, first.Variant())
}

func TestResolve_DistinctInputs(t *testing.T) {
	inputs := []string{"", "a", "A", "firebase-uid-123", "firebase-uid-124", "firebase-uid-123 "}
	seen := make(map[uuid.UUID]string, len(inputs))

	for _, in := range inputs {
		id := Resolve(in)
		if prev, dup := seen[id]; dup {
			t.Fatalf("Resolve(%q) collided with Resolve(%q)", in, prev)
		}
		seen[id] = in
	}
}

func TestResolve_MatchesNameBasedDefinition(t *testing.T) {
	assert.Equal(t, uuid.NewSHA1(Namespace, []byte("user-42")), Resolve("user-42"))
}
