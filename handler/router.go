package handler

import (
	"github.com/gin-gonic/gin"
)

// Handlers groups the HTTP handlers mounted under /api/v1.
type Handlers struct {
	Document *DocumentHandler
	Session  *SessionHandler
	Scheme   *SchemeHandler
	Profile  *ProfileHandler
}

// SetupRouter registers every route on a fresh engine.
func SetupRouter(h Handlers, serviceName string) *gin.Engine {
	router := gin.Default()

	// Configure max multipart memory (32 MB)
	router.MaxMultipartMemory = 32 << 20

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": serviceName,
		})
	})

	api := router.Group("/api/v1")
	{
		schemes := api.Group("/schemes")
		{
			schemes.GET("", h.Scheme.List)
			schemes.GET("/regions", h.Scheme.Regions)
			schemes.GET("/:id", h.Scheme.Get)
			schemes.POST("/match", h.Scheme.Match)
		}

		api.POST("/extract/text", h.Document.ExtractText)

		sessions := api.Group("/sessions")
		{
			sessions.POST("", h.Session.Create)
			sessions.GET("/:id", h.Session.Get)
			sessions.POST("/:id/scan", h.Session.Scan)
			sessions.PUT("/:id/draft", h.Session.UpdateDraft)
			sessions.POST("/:id/draft/apply", h.Session.ApplyDraft)
			sessions.POST("/:id/commit", h.Session.Commit)
		}

		profiles := api.Group("/profiles")
		{
			profiles.GET("/:id", h.Profile.Get)
			profiles.PUT("/:id", h.Profile.Put)
			profiles.GET("/:id/schemes", h.Profile.Schemes)
		}
	}

	return router
}
