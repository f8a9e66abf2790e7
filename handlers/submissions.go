package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/flamesdigital/flames-api/internal/submissions"
	"github.com/flamesdigital/flames-api/pkg/metrics"
)

// RegisterSubmissionRoutes registers the lead-capture endpoints. Payloads are
// validated at bind time; a payload that binds cleanly is always handed to the
// submission service.
func RegisterSubmissionRoutes(r *gin.Engine, svc *submissions.Service) {
	r.POST("/inquiries", func(c *gin.Context) {
		var in submissions.Inquiry
		if err := c.ShouldBindJSON(&in); err != nil {
			metrics.Submissions.WithLabelValues("inquiry", "rejected").Inc()
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		id, err := svc.SubmitInquiry(c.Request.Context(), &in)
		if err != nil {
			metrics.Submissions.WithLabelValues("inquiry", "error").Inc()
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		metrics.Submissions.WithLabelValues("inquiry", "accepted").Inc()
		c.JSON(http.StatusOK, gin.H{"status": "ok", "id": id})
	})

	r.POST("/jobapplications", func(c *gin.Context) {
		var app submissions.Jobapplication
		if err := c.ShouldBindJSON(&app); err != nil {
			metrics.Submissions.WithLabelValues("jobapplication", "rejected").Inc()
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		id, err := svc.SubmitJobapplication(c.Request.Context(), &app)
		if err != nil {
			metrics.Submissions.WithLabelValues("jobapplication", "error").Inc()
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		metrics.Submissions.WithLabelValues("jobapplication", "accepted").Inc()
		c.JSON(http.StatusOK, gin.H{"status": "ok", "id": id})
	})
}
