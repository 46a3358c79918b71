package constants

// Pub/Sub providers for the SMS gateway
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Pagination bounds shared by list endpoints
const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)
