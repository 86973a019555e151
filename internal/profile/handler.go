package profile

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gympulse/internal/account"
	"gympulse/internal/api"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

type Response struct {
	Success bool  `json:"success"`
	Profile *View `json:"profile"`
}

// Create godoc
// @Summary      Create subscription profile
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        request  body      CreateProfileRequest  true  "Profile data"
// @Success      201      {object}  Response
// @Failure      400      {object}  api.ValidationErrorResponse
// @Failure      404      {object}  api.ErrorResponse
// @Failure      409      {object}  api.ErrorResponse
// @Router       /api/profile [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateProfileRequest
	if !api.BindAndValidate(c, &req) {
		return
	}

	v, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		api.Respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, Response{Success: true, Profile: v})
}

// Get godoc
// @Summary      Get subscription profile
// @Tags         profile
// @Produce      json
// @Param        userID  path      int  true  "Account ID"
// @Success      200     {object}  Response
// @Failure      404     {object}  api.ErrorResponse
// @Router       /api/profile/{userID} [get]
func (h *Handler) Get(c *gin.Context) {
	id, ok := api.ParamID(c, "userID")
	if !ok {
		api.Respond(c, account.ErrUserNotFound)
		return
	}

	v, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		api.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, Response{Success: true, Profile: v})
}
