package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/bgnclinic/blog-automation/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg              *config.Config
	interviewHandler *Interview
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, interviewHandler *Interview) *Router {
	return &Router{
		cfg:              cfg,
		interviewHandler: interviewHandler,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", rt.healthCheck)

	// API v1 group
	v1 := e.Group("/v1")

	rt.setupInterviewRoutes(v1)
}

// setupInterviewRoutes configures the interview pipeline routes
func (rt *Router) setupInterviewRoutes(g *echo.Group) {
	interviewGroup := g.Group("/interviews")

	if rt.interviewHandler != nil {
		interviewGroup.POST("/analyze", rt.interviewHandler.Analyze)
		interviewGroup.POST("/compose", rt.interviewHandler.Compose)
		interviewGroup.POST("/illustrate", rt.interviewHandler.Illustrate)
		interviewGroup.POST("/publish", rt.interviewHandler.Publish)
		interviewGroup.POST("/run", rt.interviewHandler.Run)
		interviewGroup.GET("/facts", rt.interviewHandler.ListFacts)
		interviewGroup.GET("/facts/:id", rt.interviewHandler.GetFact)
		interviewGroup.GET("/contents/:id", rt.interviewHandler.GetContent)
	} else {
		interviewGroup.POST("/analyze", rt.notImplemented)
		interviewGroup.POST("/compose", rt.notImplemented)
		interviewGroup.POST("/illustrate", rt.notImplemented)
		interviewGroup.POST("/publish", rt.notImplemented)
		interviewGroup.POST("/run", rt.notImplemented)
		interviewGroup.GET("/facts", rt.notImplemented)
		interviewGroup.GET("/facts/:id", rt.notImplemented)
		interviewGroup.GET("/contents/:id", rt.notImplemented)
	}
}

// notImplemented returns 501 Not Implemented response
func (rt *Router) notImplemented(c echo.Context) error {
	return c.JSON(http.StatusNotImplemented, map[string]interface{}{
		"error":   "This endpoint is not yet implemented",
		"path":    c.Request().URL.Path,
		"method":  c.Request().Method,
		"message": "Please initialize the required handler in main.go",
	})
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"time":        time.Now().Format(time.RFC3339),
		"environment": rt.cfg.Server.Environment,
	})
}
