package stats

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gympulse/internal/api"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

type Response struct {
	Success bool    `json:"success"`
	Stats   *Report `json:"stats"`
}

// Get godoc
// @Summary      Data counts
// @Description  Row counts for every table, admin only
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  Response
// @Failure      401  {object}  api.ErrorResponse
// @Failure      403  {object}  api.ErrorResponse
// @Router       /admin/stats [get]
func (h *Handler) Get(c *gin.Context) {
	report, err := h.service.Report(c.Request.Context())
	if err != nil {
		api.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, Response{Success: true, Stats: report})
}
