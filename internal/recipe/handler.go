package recipe

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

type AddResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Recipe  *Created `json:"recipe"`
}

type UserRecipesResponse struct {
	Success  bool    `json:"success"`
	UserDiet *string `json:"user_diet"`
	Recipes  []Item  `json:"recipes"`
	Total    int     `json:"total"`
}

type ListResponse struct {
	Success bool   `json:"success"`
	Recipes []Item `json:"recipes"`
	Total   int    `json:"total"`
}

type UpdateResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Recipe  *Item  `json:"recipe"`
}

type CountResponse struct {
	Success bool   `json:"success"`
	Counts  Counts `json:"counts"`
	Total   int    `json:"total"`
}

// Add godoc
// @Summary      Add recipe
// @Description  Creates a recipe. admin_id links a creator when it resolves to an account.
// @Tags         recipes
// @Accept       json
// @Produce      json
// @Param        request  body      AddRecipeRequest  true  "Recipe"
// @Success      201      {object}  AddResponse
// @Failure      400      {object}  api.ErrorResponse
// @Failure      405      {object}  api.ErrorResponse
// @Failure      500      {object}  api.ErrorResponse
// @Router       /api/recipes/add [post]
func (h *Handler) Add(c *gin.Context) {
	var req AddRecipeRequest
	if !api.BindAndValidate(c, &req) {
		return
	}

	created, err := h.service.Add(c.Request.Context(), req)
	if err != nil {
		api.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, AddResponse{
		Success: true,
		Message: "Recipe added successfully",
		Recipe:  created,
	})
}

// ListForUser godoc
// @Summary      Recipes for a user's diet
// @Description  Filters by the user's diet preference. Unknown preferences list everything.
// @Tags         recipes
// @Produce      json
// @Param        userID  path      int  true  "Account ID"
// @Success      200     {object}  UserRecipesResponse
// @Failure      404     {object}  api.ErrorResponse
// @Failure      500     {object}  api.ErrorResponse
// @Router       /api/recipes/user/{userID} [get]
func (h *Handler) ListForUser(c *gin.Context) {
	userID, ok := api.ParamID(c, "userID")
	if !ok {
		api.Respond(c, account.ErrUserNotFound)
		return
	}

	res, err := h.service.ListForUser(c.Request.Context(), userID)
	if err != nil {
		api.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, UserRecipesResponse{
		Success:  true,
		UserDiet: res.UserDiet,
		Recipes:  res.Recipes,
		Total:    len(res.Recipes),
	})
}

// ListAll godoc
// @Summary      List recipes
// @Tags         recipes
// @Produce      json
// @Param        food_type  query     string  false  "veg, non_veg, vegan or other"
// @Success      200        {object}  ListResponse
// @Failure      500        {object}  api.ErrorResponse
// @Router       /api/recipes [get]
func (h *Handler) ListAll(c *gin.Context) {
	items, err := h.service.ListAll(c.Request.Context(), c.Query("food_type"))
	if err != nil {
		api.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, ListResponse{Success: true, Recipes: items, Total: len(items)})
}

// Update godoc
// @Summary      Update recipe
// @Description  Only fields present in the body are changed.
// @Tags         recipes
// @Accept       json
// @Produce      json
// @Param        recipeID  path      int                  true  "Recipe ID"
// @Param        request   body      UpdateRecipeRequest  true  "Fields to change"
// @Success      200       {object}  UpdateResponse
// @Failure      400       {object}  api.ErrorResponse
// @Failure      404       {object}  api.ErrorResponse
// @Router       /api/recipes/update/{recipeID} [put]
func (h *Handler) Update(c *gin.Context) {
	id, ok := api.ParamID(c, "recipeID")
	if !ok {
		api.Respond(c, ErrRecipeNotFound)
		return
	}

	var req UpdateRecipeRequest
	if !api.BindAndValidate(c, &req) {
		return
	}

	it, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		api.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, UpdateResponse{
		Success: true,
		Message: "Recipe updated successfully",
		Recipe:  it,
	})
}

// Delete godoc
// @Summary      Delete recipe
// @Tags         recipes
// @Produce      json
// @Param        recipeID  path      int  true  "Recipe ID"
// @Success      200       {object}  api.MessageResponse
// @Failure      404       {object}  api.ErrorResponse
// @Router       /api/recipes/delete/{recipeID} [delete]
func (h *Handler) Delete(c *gin.Context) {
	id, ok := api.ParamID(c, "recipeID")
	if !ok {
		api.Respond(c, ErrRecipeNotFound)
		return
	}

	name, err := h.service.Delete(c.Request.Context(), id)
	if err != nil {
		api.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{
		Success: true,
		Message: `Recipe "` + name + `" deleted successfully`,
	})
}

// Count godoc
// @Summary      Recipe counts by food type
// @Tags         recipes
// @Produce      json
// @Success      200  {object}  CountResponse
// @Failure      500  {object}  api.ErrorResponse
// @Router       /api/recipes/count [get]
func (h *Handler) Count(c *gin.Context) {
	counts, err := h.service.CountByType(c.Request.Context())
	if err != nil {
		api.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, CountResponse{Success: true, Counts: counts, Total: counts.Total()})
}
