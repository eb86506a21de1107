// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"fangate/internal/delivery/http/middleware"
	"fangate/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	VerificationHandler *handler.VerificationHandler
	QuizHandler         *handler.QuizHandler
	CredentialHandler   *handler.CredentialHandler
	AdminHandler        *handler.AdminHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	verificationHandler *handler.VerificationHandler
	quizHandler         *handler.QuizHandler
	credentialHandler   *handler.CredentialHandler
	adminHandler        *handler.AdminHandler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		verificationHandler: params.VerificationHandler,
		quizHandler:         params.QuizHandler,
		credentialHandler:   params.CredentialHandler,
		adminHandler:        params.AdminHandler,
		authMiddleware:      params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// All API routes require an authenticated session
	api := e.Group("/api")
	api.Use(r.authMiddleware.Authenticate)

	// Listening verification
	api.POST("/verify", r.verificationHandler.Verify)

	// Quiz issue and grading
	quizGroup := api.Group("/quiz")
	{
		quizGroup.GET("", r.quizHandler.GetQuiz)
		quizGroup.POST("/submit", r.quizHandler.SubmitQuiz)
	}

	// Credential issuance
	credentialGroup := api.Group("/credential")
	{
		credentialGroup.POST("", r.credentialHandler.IssueCredential)
		credentialGroup.GET("/:id/qr", r.credentialHandler.RenderCredentialQR)
	}

	// Operator surface; access is checked against the configured admin email
	adminGroup := api.Group("/admin")
	{
		adminGroup.GET("/users", r.adminHandler.ListUsers)
	}
}
