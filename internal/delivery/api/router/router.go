// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"mutuals/internal/delivery/api/middleware"
	"mutuals/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SearchHandler       *handler.SearchHandler
	LikeHandler         *handler.LikeHandler
	ContactHandler      *handler.ContactHandler
	ProfileHandler      *handler.ProfileHandler
	NotificationHandler *handler.NotificationHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	searchHandler       *handler.SearchHandler
	likeHandler         *handler.LikeHandler
	contactHandler      *handler.ContactHandler
	profileHandler      *handler.ProfileHandler
	notificationHandler *handler.NotificationHandler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		searchHandler:       params.SearchHandler,
		likeHandler:         params.LikeHandler,
		contactHandler:      params.ContactHandler,
		profileHandler:      params.ProfileHandler,
		notificationHandler: params.NotificationHandler,
		authMiddleware:      params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// API v1 routes
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate) // All API v1 routes require a session

	apiV1.GET("/search", r.searchHandler.Search)
	apiV1.DELETE("/session", r.profileHandler.EndSession)

	likesGroup := apiV1.Group("/likes")
	{
		// Static segment is matched before the :profileId param.
		likesGroup.POST("/phone", r.likeHandler.ToggleUnregisteredLike)
		likesGroup.POST("/:profileId", r.likeHandler.ToggleLike)
	}

	apiV1.GET("/relations/:profileId", r.likeHandler.RelationState)
	apiV1.GET("/matches", r.likeHandler.ListMatches)
	apiV1.GET("/notifications", r.notificationHandler.ListNotifications)

	contactsGroup := apiV1.Group("/contacts")
	{
		contactsGroup.POST("/import", r.contactHandler.ImportContacts)
		contactsGroup.GET("", r.contactHandler.ListContacts)
	}

	profilesGroup := apiV1.Group("/profiles")
	{
		profilesGroup.GET("/me", r.profileHandler.GetProfile)
		profilesGroup.GET("/me/qr", r.profileHandler.GenerateProfileQR)
		profilesGroup.POST("/qr", r.profileHandler.ResolveProfileQR)
	}
}
