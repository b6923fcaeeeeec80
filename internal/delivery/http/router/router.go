// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"placelog/internal/delivery/http/middleware"
	"placelog/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler         *handler.UserHandler
	PlaceHandler        *handler.PlaceHandler
	CheckInHandler      *handler.CheckInHandler
	ReviewHandler       *handler.ReviewHandler
	AuthMiddleware      *middleware.AuthMiddleware
	RequestIDMiddleware *middleware.RequestIDMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler         *handler.UserHandler
	placeHandler        *handler.PlaceHandler
	checkInHandler      *handler.CheckInHandler
	reviewHandler       *handler.ReviewHandler
	authMiddleware      *middleware.AuthMiddleware
	requestIDMiddleware *middleware.RequestIDMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:         params.UserHandler,
		placeHandler:        params.PlaceHandler,
		checkInHandler:      params.CheckInHandler,
		reviewHandler:       params.ReviewHandler,
		authMiddleware:      params.AuthMiddleware,
		requestIDMiddleware: params.RequestIDMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.requestIDMiddleware.Process)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Account routes, open
	userGroup := e.Group("/user")
	{
		userGroup.POST("/signup", r.userHandler.SignUp)
		userGroup.POST("/signin", r.userHandler.SignIn)
	}

	// Place registry, open per the API contract
	placeGroup := e.Group("/place")
	{
		placeGroup.POST("/", r.placeHandler.Register)
		placeGroup.GET("/", r.placeHandler.List)
		placeGroup.GET("/:id", r.placeHandler.Get)
		placeGroup.PATCH("/:id", r.placeHandler.Update)
		placeGroup.DELETE("/:id", r.placeHandler.Delete)
	}

	// Archive routes: check-ins are fully authenticated; review listing is
	// open while review mutation requires the owner.
	archiveGroup := e.Group("/archive")
	{
		checkInGroup := archiveGroup.Group("/checkin")
		checkInGroup.Use(r.authMiddleware.Authenticate)
		{
			checkInGroup.POST("/place/:id", r.checkInHandler.Create)
			checkInGroup.GET("/place/:id", r.checkInHandler.List)
			checkInGroup.DELETE("/:id", r.checkInHandler.Cancel)
		}

		archiveGroup.GET("/review/place/:id", r.reviewHandler.List)

		reviewGroup := archiveGroup.Group("/review")
		reviewGroup.Use(r.authMiddleware.Authenticate)
		{
			reviewGroup.POST("/place/:id", r.reviewHandler.Create)
			reviewGroup.PATCH("/:id", r.reviewHandler.Update)
			reviewGroup.DELETE("/:id", r.reviewHandler.Delete)
		}
	}
}
