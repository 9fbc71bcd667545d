package routes

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/localserve/internal/container"
	"github.com/joshua-takyi/localserve/internal/handlers"
	"github.com/joshua-takyi/localserve/internal/middleware"
)

// SetupRoutes configures all routes with the dependency container
func SetupRoutes(c *container.Container, staticDir string) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	// Add middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(c.Logger))
	r.Use(middleware.ErrorHandler(c.Logger))
	r.Use(gin.Recovery())

	api := r.Group("/api")
	{
		api.GET("/health", func(ctx *gin.Context) {
			ctx.JSON(200, gin.H{
				"status":  "OK",
				"service": "localserve-api",
			})
		})

		api.POST("/signup", handlers.Signup(c.UserService))
		api.POST("/login", handlers.Login(c.UserService))
		api.GET("/providers", handlers.ListProviders(c.ProviderService))
	}

	// Serve the prebuilt front-end bundle for everything outside /api.
	if staticDir != "" {
		registerStatic(r, staticDir)
	}

	return r
}

func registerStatic(r *gin.Engine, staticDir string) {
	fileServer := http.FileServer(http.Dir(staticDir))
	r.NoRoute(func(ctx *gin.Context) {
		if strings.HasPrefix(ctx.Request.URL.Path, "/api/") {
			ctx.JSON(404, gin.H{"error": "not found"})
			return
		}

		// Fall back to index.html for client-side routes.
		requested := filepath.Join(staticDir, filepath.Clean(ctx.Request.URL.Path))
		if _, err := os.Stat(requested); os.IsNotExist(err) {
			ctx.File(filepath.Join(staticDir, "index.html"))
			return
		}

		fileServer.ServeHTTP(ctx.Writer, ctx.Request)
	})
}
