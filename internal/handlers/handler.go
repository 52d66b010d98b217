package handlers

import (
	"matchboard/internal/logger"
	"matchboard/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
}

// Options controls cross-cutting HTTP behavior.
type Options struct {
	CORSAllowOrigins []string
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	return &Handler{services: services, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes(opts Options) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(h.requestIDMiddleware)
	router.Use(newCORSMiddleware(opts.CORSAllowOrigins))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	h.registerAuthRoutes(router)
	h.registerProjectRoutes(router)
	h.registerUserRoutes(router)
	h.registerActivityRoutes(router)

	// Live activity feed, served over an HTTP upgrade on the same port.
	router.GET("/ws", h.wsFeed)

	return router
}

func newCORSMiddleware(origins []string) gin.HandlerFunc {
	cfg := cors.DefaultConfig()
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization")
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cors.New(cfg)
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	auth := r.Group("/api/auth")
	{
		auth.POST("/login", h.login)
		auth.GET("/me", h.identityMiddleware, h.me)
	}
}

func (h *Handler) registerProjectRoutes(r *gin.Engine) {
	projects := r.Group("/api/projects")
	{
		// Browsing is public; everything mutating requires a token.
		projects.GET("", h.listProjects)
		projects.GET("/:id", h.getProject)

		projects.POST("", h.identityMiddleware, h.createProject)
		projects.PUT("/:id", h.identityMiddleware, h.updateProject)
		projects.DELETE("/:id", h.identityMiddleware, h.deleteProject)

		projects.POST("/:id/help", h.identityMiddleware, h.applyHelp)
		projects.GET("/:id/helps", h.identityMiddleware, h.listProjectHelps)
		projects.PUT("/:id/helps/:helpId", h.identityMiddleware, h.setHelpStatus)
	}
}

func (h *Handler) registerUserRoutes(r *gin.Engine) {
	me := r.Group("/api/users/me", h.identityMiddleware)
	{
		me.GET("/projects", h.myProjects)
		me.GET("/helps", h.myHelps)
		me.GET("/matches", h.myMatches)
	}
}

func (h *Handler) registerActivityRoutes(r *gin.Engine) {
	r.GET("/api/activity", h.identityMiddleware, h.getActivity)
}
