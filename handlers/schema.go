package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/flamesdigital/flames-api/internal/schema"
)

// RegisterSchemaRoutes exposes the static model schemas for the admin viewer.
func RegisterSchemaRoutes(r *gin.Engine) {
	r.GET("/schema", func(c *gin.Context) {
		c.JSON(http.StatusOK, schema.Catalog())
	})
}
