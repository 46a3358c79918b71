// Package identity maps identity provider user ids to stable internal UUIDs.
package identity

import "github.com/google/uuid"

// Namespace is the fixed name-based UUID namespace for external identities.
// Changing it re-keys every profile.
var Namespace = uuid.MustParse("8f2c4d1e-6b7a-5c3d-9e0f-a1b2c3d4e5f6")

// Resolve returns the name-based (SHA-1, version 5) UUID for externalID.
// It is pure: the same input always yields the same UUID.
func Resolve(externalID string) uuid.UUID {
	return uuid.NewSHA1(Namespace, []byte(externalID))
}
