// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"mentorhub/internal/delivery/http/middleware"
	"mentorhub/internal/delivery/http/router/handler"
	"mentorhub/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	MentorHandler   *handler.MentorHandler
	MatchingHandler *handler.MatchingHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler     *handler.AuthHandler
	mentorHandler   *handler.MentorHandler
	matchingHandler *handler.MatchingHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:     params.AuthHandler,
		mentorHandler:   params.MentorHandler,
		matchingHandler: params.MatchingHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api/auth")
	{
		// Public routes
		api.POST("/signup", r.authHandler.Signup)
		api.POST("/login", r.authHandler.Login)

		// Profile routes require authentication
		profileGroup := api.Group("/profile")
		profileGroup.Use(r.authMiddleware.Authenticate)
		{
			profileGroup.GET("/:userId", r.authHandler.GetProfile)
			profileGroup.PUT("/:userId", r.authHandler.UpdateProfile)
		}

		// Mentor directory requires authentication
		mentorsGroup := api.Group("/mentors")
		mentorsGroup.Use(r.authMiddleware.Authenticate)
		{
			mentorsGroup.GET("", r.mentorHandler.SearchMentors)
		}

		// Matching request routes, role-gated per operation
		matchGroup := api.Group("/match-requests")
		matchGroup.Use(r.authMiddleware.Authenticate)
		{
			matchGroup.POST("", r.matchingHandler.CreateRequest,
				r.authMiddleware.RequireRole(entity.RoleMentee))
			matchGroup.GET("/outgoing", r.matchingHandler.ListOutgoing,
				r.authMiddleware.RequireRole(entity.RoleMentee))
			matchGroup.GET("/incoming", r.matchingHandler.ListIncoming,
				r.authMiddleware.RequireRole(entity.RoleMentor))
			matchGroup.PATCH("/:id", r.matchingHandler.Resolve,
				r.authMiddleware.RequireRole(entity.RoleMentor))
			matchGroup.DELETE("/:id", r.matchingHandler.Cancel,
				r.authMiddleware.RequireRole(entity.RoleMentee))
		}
	}
}
