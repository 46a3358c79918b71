package handler

import (
	"log/slog"
	"net/http"

	"mutuals/internal/delivery/api/middleware"
	"mutuals/internal/delivery/api/response"
	"mutuals/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// LikeHandlerParams holds dependencies for LikeHandler, injected by Fx.
type LikeHandlerParams struct {
	fx.In

	LikeUC usecase.LikeUsecase
	Logger *slog.Logger
}

// LikeHandler holds dependencies for like and match handlers
type LikeHandler struct {
	likeUC usecase.LikeUsecase
	logger *slog.Logger
}

// NewLikeHandler is the constructor for LikeHandler
func NewLikeHandler(params LikeHandlerParams) *LikeHandler {
	return &LikeHandler{
		likeUC: params.LikeUC,
		logger: params.Logger,
	}
}

// ToggleUnregisteredLikeRequest represents the request body for liking a phone number
type ToggleUnregisteredLikeRequest struct {
	Phone string `json:"phone" validate:"required,max=32"`
}

// ToggleLike likes or unlikes a registered profile
func (h *LikeHandler) ToggleLike(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	likedID, err := uuid.Parse(c.Param("profileId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid profile ID")
	}

	result, err := h.likeUC.ToggleLike(c.Request().Context(), userID, likedID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

// ToggleUnregisteredLike likes or unlikes a phone number without a profile
func (h *LikeHandler) ToggleUnregisteredLike(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req ToggleUnregisteredLikeRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid phone input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	result, err := h.likeUC.ToggleUnregisteredLike(c.Request().Context(), userID, req.Phone)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

// RelationState reports the like/match state with another profile
func (h *LikeHandler) RelationState(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	otherID, err := uuid.Parse(c.Param("profileId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid profile ID")
	}

	relation, err := h.likeUC.RelationState(c.Request().Context(), userID, otherID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, relation)
}

// ListMatches returns the caller's matches, newest first
func (h *LikeHandler) ListMatches(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	limit, offset := pageParams(c)

	matches, err := h.likeUC.ListMatches(c.Request().Context(), userID, limit, offset)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.List(c, matches, limit, offset)
}
