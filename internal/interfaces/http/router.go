// Package http wires the gin engine, middleware, and handlers.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"corpsbank/internal/interfaces/http/handlers"
	"corpsbank/internal/interfaces/http/middleware"
	"corpsbank/internal/shared/logger"
	"corpsbank/internal/shared/utils"
)

type Router struct {
	engine            *gin.Engine
	submissionHandler *handlers.SubmissionHandler
	authHandler       *handlers.AuthHandler
	adminHandler      *handlers.AdminHandler
	backupHandler     *handlers.BackupHandler
	authMiddleware    *middleware.AdminAuthMiddleware
	logger            logger.Interface
}

func NewRouter(
	submissionHandler *handlers.SubmissionHandler,
	authHandler *handlers.AuthHandler,
	adminHandler *handlers.AdminHandler,
	backupHandler *handlers.BackupHandler,
	authMiddleware *middleware.AdminAuthMiddleware,
	log logger.Interface,
) *Router {
	return &Router{
		engine:            gin.New(),
		submissionHandler: submissionHandler,
		authHandler:       authHandler,
		adminHandler:      adminHandler,
		backupHandler:     backupHandler,
		authMiddleware:    authMiddleware,
		logger:            log,
	}
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.RequestLogger(r.logger))
	r.engine.Use(middleware.Recovery())

	r.engine.GET("/health", func(c *gin.Context) {
		utils.SuccessResponse(c, http.StatusOK, "ok", nil)
	})

	r.setupPublicRoutes()
	r.setupAdminRoutes()
}

// setupPublicRoutes configures the registration form endpoints
func (r *Router) setupPublicRoutes() {
	r.engine.GET("/form", r.submissionHandler.ShowForm)
	r.engine.POST("/preview", r.submissionHandler.Preview)
	r.engine.POST("/submit", r.submissionHandler.Submit)
}

// setupAdminRoutes configures the authenticated administrative endpoints
func (r *Router) setupAdminRoutes() {
	admin := r.engine.Group("/admin")
	{
		admin.POST("/login", r.authHandler.Login)
		admin.POST("/logout", r.authMiddleware.RequireAdmin(), r.authHandler.Logout)

		authed := admin.Group("", r.authMiddleware.RequireAdmin())
		{
			authed.GET("/dashboard", r.adminHandler.Dashboard)
			authed.POST("/search", r.adminHandler.Search)

			authed.GET("/records/:id", r.adminHandler.GetRecord)
			authed.POST("/records/:id", r.adminHandler.UpdateRecord)
			authed.DELETE("/records/:id", r.adminHandler.DeleteRecord)
			authed.GET("/records/:id/download", r.adminHandler.DownloadRecord)
			authed.POST("/records/:id/forward", r.adminHandler.ForwardRecord)

			authed.GET("/export", r.adminHandler.Export)

			authed.POST("/backups", r.backupHandler.CreateBackup)
			authed.GET("/backups", r.backupHandler.ListBackups)
			authed.GET("/backups/:name", r.backupHandler.ViewBackup)
			authed.GET("/backups/:name/records/:id/download", r.backupHandler.DownloadBackupRecord)
		}
	}
}

// Engine exposes the underlying gin engine for the HTTP server
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
