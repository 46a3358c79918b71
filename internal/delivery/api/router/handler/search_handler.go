package handler

import (
	"log/slog"
	"net/http"

	"mutuals/internal/delivery/api/middleware"
	"mutuals/internal/delivery/api/response"
	"mutuals/internal/domain/search"
	"mutuals/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	resultTypeRegistered   = "registered"
	resultTypeUnregistered = "unregistered"
)

// SearchHandlerParams holds dependencies for SearchHandler, injected by Fx.
type SearchHandlerParams struct {
	fx.In

	DiscoveryUC usecase.DiscoveryUsecase
	Logger      *slog.Logger
}

// SearchHandler serves contact graph search.
type SearchHandler struct {
	discoveryUC usecase.DiscoveryUsecase
	logger      *slog.Logger
}

// NewSearchHandler is the constructor for SearchHandler
func NewSearchHandler(params SearchHandlerParams) *SearchHandler {
	return &SearchHandler{
		discoveryUC: params.DiscoveryUC,
		logger:      params.Logger,
	}
}

// SearchResultResponse is one ranked hit. Type tells which of Profile or Contact is set.
type SearchResultResponse struct {
	Type        string              `json:"type"`
	Tier        string              `json:"tier"`
	DisplayName string              `json:"display_name"`
	Profile     *ProfileSummary     `json:"profile,omitempty"`
	Contact     *search.ContactStub `json:"contact,omitempty"`
}

// Search handles search-as-you-type over the caller's contact graph
func (h *SearchHandler) Search(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	results, err := h.discoveryUC.Search(c.Request().Context(), userID, c.QueryParam("q"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newSearchResultResponses(results))
}

func newSearchResultResponses(results []search.Result) []SearchResultResponse {
	out := make([]SearchResultResponse, 0, len(results))
	for _, result := range results {
		item := SearchResultResponse{
			Tier:        result.Tier().String(),
			DisplayName: result.DisplayName(),
		}

		switch r := result.(type) {
		case *search.Registered:
			item.Type = resultTypeRegistered
			item.Profile = newProfileSummary(r.Profile)
		case *search.Unregistered:
			item.Type = resultTypeUnregistered
			stub := r.Contact
			item.Contact = &stub
		}

		out = append(out, item)
	}

	return out
}
