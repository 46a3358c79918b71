package impl

import (
	"io"
	"log/slog"
	"time"

	"mutuals/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Identity: &config.IdentityConfig{
			NegativeCacheTTL: 5 * time.Minute,
		},
		Discovery: &config.DiscoveryConfig{
			DirectMatchLimit:   50,
			MaxDirectContacts:  100,
			SecondDegreeFanout: 10,
			FreeTextLimit:      20,
			UnregisteredLimit:  20,
			Concurrency:        4,
			DefaultCountryCode: "1",
		},
		Matching: &config.MatchingConfig{
			UnlikePolicy: config.UnlikePolicyRetain,
		},
		SMS: &config.SMSConfig{
			InviteTemplate: "{{.InviterName}} liked you: {{.InviteURL}}",
			InviteURL:      "https://mutuals.test/invite",
		},
	}
}
