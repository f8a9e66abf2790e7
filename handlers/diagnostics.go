package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/flamesdigital/flames-api/internal/config"
	"github.com/flamesdigital/flames-api/internal/database"
)

// RegisterDiagnostics registers the root banner, hello probe, health check and
// the /test store diagnostics used by the admin tooling.
func RegisterDiagnostics(r *gin.Engine, cfg *config.Config, store *database.Store) {
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Flames API running"})
	})

	r.GET("/api/hello", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Hello from the backend API!"})
	})

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "healthy")
	})

	r.GET("/test", func(c *gin.Context) {
		resp := gin.H{
			"backend":            "running",
			"database_available": false,
			"database_url_set":   cfg.Database.URL != "",
			"database_name":      "",
			"connection_status":  "not_connected",
			"collections":        []string{},
		}
		if store.Available() {
			resp["database_available"] = true
			resp["database_name"] = store.Name()
			resp["connection_status"] = "connected"
			if names, err := store.CollectionNames(c.Request.Context()); err != nil {
				resp["connection_status"] = "connected_with_error"
			} else {
				if len(names) > 20 {
					names = names[:20]
				}
				resp["collections"] = names
			}
		}
		c.JSON(http.StatusOK, resp)
	})
}
