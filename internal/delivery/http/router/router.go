// Package router wires the HTTP routes to their handlers and guard chains.
package router

import (
	"blog/internal/delivery/http/middleware"
	"blog/internal/delivery/http/router/handler"
	"blog/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	UserHandler    *handler.UserHandler
	PostHandler    *handler.PostHandler
	CommentHandler *handler.CommentHandler
	AuthMiddleware *middleware.AuthMiddleware
	RoleMiddleware *middleware.RoleMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	userHandler    *handler.UserHandler
	postHandler    *handler.PostHandler
	commentHandler *handler.CommentHandler
	authMW         *middleware.AuthMiddleware
	roleMW         *middleware.RoleMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		userHandler:    params.UserHandler,
		postHandler:    params.PostHandler,
		commentHandler: params.CommentHandler,
		authMW:         params.AuthMiddleware,
		roleMW:         params.RoleMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// Group middleware order is the guard order: the first failing guard
// short-circuits the chain.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/refresh", r.authHandler.Refresh)

		profileGroup := authGroup.Group("/profile", r.authMW.Required()...)
		profileGroup.GET("", r.authHandler.GetProfile)
		profileGroup.PUT("", r.authHandler.UpdateProfile)
	}

	// Post routes: reads are public (with optional identity), writes are
	// guarded by role and ownership.
	postGroup := e.Group("/posts")
	{
		postGroup.GET("", r.postHandler.List, r.authMW.OptionalAuth)
		postGroup.GET("/slug/:slug", r.postHandler.GetBySlug, r.authMW.OptionalAuth)
		postGroup.GET("/:id", r.postHandler.GetByID, r.authMW.OptionalAuth)
		postGroup.GET("/:id/tags", r.postHandler.Tags)
		postGroup.GET("/:id/comments", r.commentHandler.ListByPost)

		postGroup.POST("", r.postHandler.Create,
			append(r.authMW.Required(), r.roleMW.RequireBlogger)...)
		postGroup.POST("/:id/tags", r.postHandler.AttachTag,
			append(r.authMW.Required(), r.roleMW.RequireOwnershipOrAdmin("post"))...)
		postGroup.PUT("/:id", r.postHandler.Update,
			append(r.authMW.Required(), r.roleMW.RequireOwnershipOrAdmin("post"))...)
		postGroup.DELETE("/:id", r.postHandler.Delete,
			append(r.authMW.Required(), r.roleMW.RequireOwnershipOrAdmin("post"))...)

		postGroup.POST("/:id/comments", r.commentHandler.Create, r.authMW.Required()...)
	}

	// Comment edit/delete: owner or admin.
	commentGroup := e.Group("/comments", r.authMW.Required()...)
	{
		commentGroup.PUT("/:id", r.commentHandler.Update, r.roleMW.RequireOwnershipOrAdmin("comment"))
		commentGroup.DELETE("/:id", r.commentHandler.Delete, r.roleMW.RequireOwnershipOrAdmin("comment"))
	}

	// User administration: both routes require the manage_users capability
	// or the admin role outright.
	userGroup := e.Group("/users", r.authMW.Required()...)
	{
		userGroup.GET("", r.userHandler.ListByRole, r.roleMW.RequireCapability(entity.CapManageUsers))
		userGroup.PUT("/:id/role", r.userHandler.Promote, r.roleMW.RequireAdmin)
	}
}
