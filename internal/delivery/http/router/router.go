// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"classteacher/internal/delivery/http/middleware"
	"classteacher/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds everything the router wires into echo, injected by Fx.
type RouterParams struct {
	fx.In

	UserHandler      *handler.UserHandler
	ClassHandler     *handler.ClassHandler
	StudentHandler   *handler.StudentHandler
	SubjectHandler   *handler.SubjectHandler
	AuthMiddleware   *middleware.AuthMiddleware
	LoggerMiddleware *middleware.LoggerMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
//
// Authenticate runs on every route; it attaches an identity when a
// well-formed bearer token checks out and otherwise lets the request pass
// unauthenticated. The per-group guards then decide what is allowed.
func (r *router) RegisterRoutes(e *echo.Echo) {
	auth := r.params.AuthMiddleware

	e.Use(r.params.LoggerMiddleware.Handle)
	e.Use(auth.Authenticate)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes, open to anonymous callers.
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.params.UserHandler.Register)
		authGroup.POST("/login", r.params.UserHandler.Login)
	}

	// Everything below needs an authenticated, active user.
	userGroup := e.Group("/users", auth.RequireAuth)
	{
		userGroup.GET("/me", r.params.UserHandler.Me)
		userGroup.PATCH("/me", r.params.UserHandler.UpdateMe)
		userGroup.GET("", r.params.UserHandler.List)
		userGroup.GET("/:id", r.params.UserHandler.Get)
	}

	// Administrative user management is staff only.
	staffUserGroup := e.Group("/users", auth.RequireStaff)
	{
		staffUserGroup.POST("/staff", r.params.UserHandler.CreateStaff)
		staffUserGroup.POST("/superusers", r.params.UserHandler.CreateSuperuser)
		staffUserGroup.DELETE("/:id", r.params.UserHandler.Delete)
		staffUserGroup.DELETE("/:id/purge", r.params.UserHandler.Purge)
	}

	classGroup := e.Group("/classes", auth.RequireAuth)
	{
		classGroup.POST("", r.params.ClassHandler.Create)
		classGroup.GET("", r.params.ClassHandler.List)
		classGroup.GET("/:id", r.params.ClassHandler.Get)
		classGroup.GET("/:id/students", r.params.ClassHandler.Students)
		classGroup.PATCH("/:id", r.params.ClassHandler.Update)
		classGroup.DELETE("/:id", r.params.ClassHandler.Delete)
		classGroup.DELETE("/:id/purge", r.params.ClassHandler.Purge, auth.RequireStaff)
	}

	studentGroup := e.Group("/students", auth.RequireAuth)
	{
		studentGroup.POST("", r.params.StudentHandler.Create)
		studentGroup.GET("", r.params.StudentHandler.List)
		studentGroup.GET("/:id", r.params.StudentHandler.Get)
		studentGroup.PATCH("/:id", r.params.StudentHandler.Update)
		studentGroup.DELETE("/:id", r.params.StudentHandler.Delete)
		studentGroup.DELETE("/:id/purge", r.params.StudentHandler.Purge, auth.RequireStaff)
	}

	subjectGroup := e.Group("/subjects", auth.RequireAuth)
	{
		subjectGroup.POST("", r.params.SubjectHandler.Create)
		subjectGroup.GET("", r.params.SubjectHandler.List)
		subjectGroup.GET("/:id", r.params.SubjectHandler.Get)
		subjectGroup.PATCH("/:id", r.params.SubjectHandler.Update)
		subjectGroup.DELETE("/:id", r.params.SubjectHandler.Delete)
		subjectGroup.DELETE("/:id/purge", r.params.SubjectHandler.Purge, auth.RequireStaff)
	}
}
