package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"gympulse/internal/api"
)

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200 {object} api.HealthResponse
// @Router       /health [get]
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, api.HealthResponse{Status: "ok"})
}

// Mailer is the part of the email service the test endpoint needs.
type Mailer interface {
	Send(ctx context.Context, to, name, subject, body string) error
}

// @Summary      Queue a test email
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        email query string true "Recipient email"
// @Success      200 {object} api.MessageResponse
// @Failure      400 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /admin/test-email [get]
func TestEmail(mailer Mailer) gin.HandlerFunc {
	return func(c *gin.Context) {
		to := c.Query("email")
		if to == "" {
			api.Fail(c, http.StatusBadRequest, "email parameter required")
			return
		}

		if err := mailer.Send(c.Request.Context(), to, "Test User", "Test Email from GymPulse", "Email is working!"); err != nil {
			api.Respond(c, err)
			return
		}

		c.JSON(http.StatusOK, api.MessageResponse{Success: true, Message: "Email queued successfully"})
	}
}

// @Summary      Prometheus metrics
// @Description  Exposes Prometheus metrics in text format
// @Tags         system
// @Produce      text/plain
// @Success      200 {string} string
// @Router       /metrics [get]
func Metrics() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
