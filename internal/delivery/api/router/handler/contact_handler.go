package handler

import (
	"log/slog"
	"net/http"

	"mutuals/internal/delivery/api/middleware"
	"mutuals/internal/delivery/api/response"
	"mutuals/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ContactHandlerParams holds dependencies for ContactHandler, injected by Fx.
type ContactHandlerParams struct {
	fx.In

	ContactUC usecase.ContactUsecase
	Logger    *slog.Logger
}

// ContactHandler holds dependencies for address-book handlers
type ContactHandler struct {
	contactUC usecase.ContactUsecase
	logger    *slog.Logger
}

// NewContactHandler is the constructor for ContactHandler
func NewContactHandler(params ContactHandlerParams) *ContactHandler {
	return &ContactHandler{
		contactUC: params.ContactUC,
		logger:    params.Logger,
	}
}

// ImportContactsRequest represents the request body for an address-book upload
type ImportContactsRequest struct {
	Contacts []usecase.ContactEntry `json:"contacts" validate:"required,min=1,max=5000,dive"`
}

// ImportContacts upserts the caller's address book
func (h *ContactHandler) ImportContacts(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req ImportContactsRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid contacts input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	summary, err := h.contactUC.ImportContacts(c.Request().Context(), userID, req.Contacts)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, summary)
}

// ListContacts pages through the caller's address book
func (h *ContactHandler) ListContacts(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	limit, offset := pageParams(c)

	contacts, err := h.contactUC.ListContacts(c.Request().Context(), userID, limit, offset)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.List(c, contacts, limit, offset)
}
