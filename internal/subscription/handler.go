package subscription

import (
	"net/http"
	"time"

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

type StatusResponse struct {
	Success      bool    `json:"success"`
	Subscription *Status `json:"subscription"`
}

type RenewResponse struct {
	Success       bool      `json:"success"`
	Message       string    `json:"message"`
	RenewalAmount int64     `json:"renewal_amount"`
	NewEndDate    time.Time `json:"new_end_date"`
	RenewalDays   int       `json:"renewal_days"`
}

type HistoryResponse struct {
	Success  bool      `json:"success"`
	Renewals []Renewal `json:"renewals"`
	Total    int       `json:"total"`
}

// GetStatus godoc
// @Summary      Subscription status
// @Description  Active/expired flags, remaining days and renewal eligibility.
// @Tags         subscription
// @Produce      json
// @Param        userID  path      int  true  "Account ID"
// @Success      200     {object}  StatusResponse
// @Failure      404     {object}  api.ErrorResponse
// @Failure      405     {object}  api.ErrorResponse
// @Failure      500     {object}  api.ErrorResponse
// @Router       /api/subscription/status/{userID} [get]
func (h *Handler) GetStatus(c *gin.Context) {
	userID, ok := api.ParamID(c, "userID")
	if !ok {
		api.Respond(c, account.ErrUserNotFound)
		return
	}

	st, err := h.service.GetStatus(c.Request.Context(), userID)
	if err != nil {
		api.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, StatusResponse{Success: true, Subscription: st})
}

// Renew godoc
// @Summary      Renew subscription
// @Description  Extends an active subscription from its end date, or restarts an expired one from now.
// @Tags         subscription
// @Accept       json
// @Produce      json
// @Param        request  body      RenewRequest  true  "Renewal"
// @Success      200      {object}  RenewResponse
// @Failure      400      {object}  api.ErrorResponse
// @Failure      404      {object}  api.ErrorResponse
// @Failure      405      {object}  api.ErrorResponse
// @Failure      500      {object}  api.ErrorResponse
// @Router       /api/subscription/renew [post]
func (h *Handler) Renew(c *gin.Context) {
	var req RenewRequest
	if !api.BindAndValidate(c, &req) {
		return
	}

	res, err := h.service.Renew(c.Request.Context(), req)
	if err != nil {
		api.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, RenewResponse{
		Success:       true,
		Message:       "Subscription renewed successfully",
		RenewalAmount: res.Amount,
		NewEndDate:    res.NewEndDate,
		RenewalDays:   res.RenewalDays,
	})
}

// History godoc
// @Summary      Renewal history
// @Tags         subscription
// @Produce      json
// @Param        userID  path      int  true  "Account ID"
// @Success      200     {object}  HistoryResponse
// @Failure      404     {object}  api.ErrorResponse
// @Router       /api/subscription/history/{userID} [get]
func (h *Handler) History(c *gin.Context) {
	userID, ok := api.ParamID(c, "userID")
	if !ok {
		api.Respond(c, account.ErrUserNotFound)
		return
	}

	renewals, err := h.service.History(c.Request.Context(), userID)
	if err != nil {
		api.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, HistoryResponse{Success: true, Renewals: renewals, Total: len(renewals)})
}
