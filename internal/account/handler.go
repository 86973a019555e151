package account

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gympulse/internal/api"
	"gympulse/internal/auth"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

type RefreshResponse struct {
	Success     bool     `json:"success"`
	AccessToken string   `json:"access_token"`
	User        *Account `json:"user"`
}

type TrainerResponse struct {
	Success bool     `json:"success"`
	Trainer *Trainer `json:"trainer"`
}

// Register godoc
// @Summary      Register new user
// @Description  Creates an account with role user and returns access & refresh tokens.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      RegisterRequest  true  "Registration data"
// @Success      201      {object}  LoginResponse
// @Failure      400      {object}  api.ValidationErrorResponse
// @Failure      409      {object}  api.ErrorResponse
// @Failure      500      {object}  api.ErrorResponse
// @Router       /auth/register [post]
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if !api.BindAndValidate(c, &req) {
		return
	}

	a, tokens, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		api.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, LoginResponse{
		Success:      true,
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		User:         a,
	})
}

// Login godoc
// @Summary      Login
// @Description  Authenticates by email and password.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      LoginRequest  true  "Credentials"
// @Success      200      {object}  LoginResponse
// @Failure      400      {object}  api.ValidationErrorResponse
// @Failure      401      {object}  api.ErrorResponse
// @Router       /auth/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if !api.BindAndValidate(c, &req) {
		return
	}

	a, tokens, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		api.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		Success:      true,
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		User:         a,
	})
}

// Refresh godoc
// @Summary      Refresh access token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      RefreshRequest  true  "Refresh token"
// @Success      200      {object}  RefreshResponse
// @Failure      400      {object}  api.ValidationErrorResponse
// @Failure      401      {object}  api.ErrorResponse
// @Failure      404      {object}  api.ErrorResponse
// @Router       /auth/refresh [post]
func (h *Handler) Refresh(c *gin.Context) {
	var req RefreshRequest
	if !api.BindAndValidate(c, &req) {
		return
	}

	access, a, err := h.service.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		api.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, RefreshResponse{Success: true, AccessToken: access, User: a})
}

// Me godoc
// @Summary      Current account
// @Tags         auth
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  Account
// @Failure      401  {object}  api.ErrorResponse
// @Failure      404  {object}  api.ErrorResponse
// @Router       /me [get]
func (h *Handler) Me(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		api.Fail(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	a, err := h.service.GetByID(c.Request.Context(), userID)
	if err != nil {
		api.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

// RegisterTrainer godoc
// @Summary      Register trainer
// @Description  Creates a trainer account and its trainer profile in one transaction.
// @Tags         trainers
// @Accept       json
// @Produce      json
// @Param        request  body      RegisterTrainerRequest  true  "Trainer data"
// @Success      201      {object}  TrainerResponse
// @Failure      400      {object}  api.ValidationErrorResponse
// @Failure      409      {object}  api.ErrorResponse
// @Router       /api/trainers [post]
func (h *Handler) RegisterTrainer(c *gin.Context) {
	var req RegisterTrainerRequest
	if !api.BindAndValidate(c, &req) {
		return
	}

	tr, err := h.service.RegisterTrainer(c.Request.Context(), req)
	if err != nil {
		api.Respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, TrainerResponse{Success: true, Trainer: tr})
}

// GetTrainer godoc
// @Summary      Get trainer
// @Tags         trainers
// @Produce      json
// @Param        userID  path      int  true  "Account ID"
// @Success      200     {object}  TrainerResponse
// @Failure      404     {object}  api.ErrorResponse
// @Router       /api/trainers/{userID} [get]
func (h *Handler) GetTrainer(c *gin.Context) {
	id, ok := api.ParamID(c, "userID")
	if !ok {
		api.Respond(c, ErrTrainerNotFound)
		return
	}

	tr, err := h.service.GetTrainer(c.Request.Context(), id)
	if err != nil {
		api.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, TrainerResponse{Success: true, Trainer: tr})
}

// Deactivate godoc
// @Summary      Deactivate account
// @Description  Clears is_active. Accounts are never deleted.
// @Tags         admin
// @Security     BearerAuth
// @Produce      json
// @Param        userID  path      int  true  "Account ID"
// @Success      200     {object}  api.MessageResponse
// @Failure      401     {object}  api.ErrorResponse
// @Failure      403     {object}  api.ErrorResponse
// @Failure      404     {object}  api.ErrorResponse
// @Router       /admin/accounts/{userID}/deactivate [post]
func (h *Handler) Deactivate(c *gin.Context) {
	id, ok := api.ParamID(c, "userID")
	if !ok {
		api.Respond(c, ErrUserNotFound)
		return
	}

	if err := h.service.Deactivate(c.Request.Context(), id); err != nil {
		api.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Success: true, Message: "Account deactivated"})
}
