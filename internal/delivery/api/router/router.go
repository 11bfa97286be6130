// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"envelope/config"
	"envelope/internal/delivery/api/middleware"
	"envelope/internal/delivery/api/router/handler"
	"envelope/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	HealthHandler  *handler.HealthHandler
	CodeHandler    *handler.CodeHandler
	NoteHandler    *handler.NoteHandler
	TestHandler    *handler.TestHandler
	AuthMiddleware *middleware.AuthMiddleware
	Config         *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	healthHandler  *handler.HealthHandler
	codeHandler    *handler.CodeHandler
	noteHandler    *handler.NoteHandler
	testHandler    *handler.TestHandler
	authMiddleware *middleware.AuthMiddleware
	config         *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		healthHandler:  params.HealthHandler,
		codeHandler:    params.CodeHandler,
		noteHandler:    params.NoteHandler,
		testHandler:    params.TestHandler,
		authMiddleware: params.AuthMiddleware,
		config:         params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", r.healthHandler.Live)
	e.GET("/health/ready", r.healthHandler.Ready)

	apiV1 := e.Group("/api/v1")

	// Public code table
	codesGroup := apiV1.Group("/codes")
	{
		codesGroup.GET("", r.codeHandler.ListCodes)
		codesGroup.GET("/:name", r.codeHandler.GetCode)
	}

	notesGroup := apiV1.Group("/notes")
	notesGroup.Use(r.authMiddleware.Authenticate)
	{
		notesGroup.POST("", r.noteHandler.CreateNote)
		notesGroup.GET("", r.noteHandler.ListNotes)
		notesGroup.GET("/:id", r.noteHandler.GetNote)
		notesGroup.PUT("/:id", r.noteHandler.UpdateNote)
		notesGroup.DELETE("/:id", r.noteHandler.DeleteNote)
		notesGroup.POST("/:id/publish", r.noteHandler.PublishNote)
	}

	adminGroup := apiV1.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)                  // First, check if logged in
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin)) // Then, check for the role
	{
		adminGroup.GET("/notes/stats", r.noteHandler.Stats)
	}
}

func (r *router) RegisterTestRoutes(e *echo.Echo) {
	// Test routes - only enabled when configured
	if r.config.TestRoutes == nil || !r.config.TestRoutes.Enabled {
		return
	}

	testGroup := e.Group("/test")
	testGroup.POST("/token", r.testHandler.IssueToken)
	testGroup.GET("/panic", r.testHandler.Panic)
	testGroup.GET("/auth", r.testHandler.WhoAmI, r.authMiddleware.Authenticate)
}
