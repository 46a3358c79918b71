package handler

import (
	"mutuals/internal/delivery/api/middleware"
	"mutuals/internal/delivery/api/response"
	"mutuals/internal/usecase"

	"github.com/labstack/echo/v4"
)

// NotificationHandler serves the notification feed
type NotificationHandler struct {
	notificationUC usecase.NotificationUsecase
}

// NewNotificationHandler is the constructor for NotificationHandler
func NewNotificationHandler(notificationUC usecase.NotificationUsecase) *NotificationHandler {
	return &NotificationHandler{notificationUC: notificationUC}
}

// ListNotifications returns the caller's notifications, newest first
func (h *NotificationHandler) ListNotifications(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	limit, offset := pageParams(c)

	notifications, err := h.notificationUC.ListNotifications(c.Request().Context(), userID, limit, offset)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.List(c, notifications, limit, offset)
}
