package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tailorlink_backend/internal/middleware"
	"tailorlink_backend/internal/models"
	"tailorlink_backend/internal/services"
	"tailorlink_backend/internal/services/dto"
)

type UserHandler struct {
	*BaseHandler
	userService services.UserService
}

func NewUserHandler(base *BaseHandler, userService services.UserService) *UserHandler {
	return &UserHandler{
		BaseHandler: base,
		userService: userService,
	}
}

func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup) {
	users := rg.Group("/users")
	users.Use(middleware.AuthMiddleware())
	{
		users.GET("/me", h.GetCurrentUser)
		users.PUT("/me", h.UpdateCurrentUser)
	}

	admin := rg.Group("/admin/users")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleAdmin))
	{
		admin.GET("", h.ListUsers)
		admin.DELETE("/:id", h.DeactivateUser)
	}
}

func (h *UserHandler) GetCurrentUser(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	user, err := h.userService.GetByID(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) UpdateCurrentUser(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateUserRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	user, err := h.userService.UpdateProfile(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) ListUsers(c *gin.Context) {
	var query dto.UserListQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	users, err := h.userService.List(&query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) DeactivateUser(c *gin.Context) {
	if err := h.userService.Deactivate(c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deactivated"})
}
