package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/flamesdigital/flames-api/internal/content/service"
	"github.com/flamesdigital/flames-api/pkg/metrics"
)

// RegisterContentRoutes registers the read-only content collection endpoints.
// Slug lookups exist only for services and blogposts; the other collections
// are list-only.
func RegisterContentRoutes(r *gin.Engine, svc *service.Service) {
	r.GET("/services", func(c *gin.Context) {
		respondList(c, "service", func() (interface{}, error) { return svc.Services(c.Request.Context()) })
	})
	r.GET("/services/:slug", func(c *gin.Context) {
		respondOne(c, "service", func() (interface{}, error) {
			return svc.ServiceBySlug(c.Request.Context(), c.Param("slug"))
		})
	})
	r.GET("/projects", func(c *gin.Context) {
		respondList(c, "project", func() (interface{}, error) { return svc.Projects(c.Request.Context()) })
	})
	r.GET("/testimonials", func(c *gin.Context) {
		respondList(c, "testimonial", func() (interface{}, error) { return svc.Testimonials(c.Request.Context()) })
	})
	r.GET("/blogposts", func(c *gin.Context) {
		respondList(c, "blogpost", func() (interface{}, error) { return svc.Blogposts(c.Request.Context()) })
	})
	r.GET("/blogposts/:slug", func(c *gin.Context) {
		respondOne(c, "blogpost", func() (interface{}, error) {
			return svc.BlogpostBySlug(c.Request.Context(), c.Param("slug"))
		})
	})
	r.GET("/openings", func(c *gin.Context) {
		respondList(c, "opening", func() (interface{}, error) { return svc.Openings(c.Request.Context()) })
	})
}

func respondList(c *gin.Context, collection string, load func() (interface{}, error)) {
	out, err := load()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	metrics.ContentReads.WithLabelValues(collection).Inc()
	c.JSON(http.StatusOK, out)
}

func respondOne(c *gin.Context, collection string, load func() (interface{}, error)) {
	out, err := load()
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": collection + " not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	metrics.ContentReads.WithLabelValues(collection).Inc()
	c.JSON(http.StatusOK, out)
}
