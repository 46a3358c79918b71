package usecase

import (
	"context"

	"mutuals/internal/domain/search"

	"github.com/google/uuid"
)

// DiscoveryUsecase resolves the caller's contact graph into search results.
type DiscoveryUsecase interface {
	// Search returns deduplicated results ordered by tier, display name and id.
	// An empty term returns no results without touching the store.
	Search(ctx context.Context, callerID uuid.UUID, term string) ([]search.Result, error)
}
