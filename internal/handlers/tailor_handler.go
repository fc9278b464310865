package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tailorlink_backend/internal/middleware"
	"tailorlink_backend/internal/models"
	"tailorlink_backend/internal/services"
	"tailorlink_backend/internal/services/dto"
)

type TailorHandler struct {
	*BaseHandler
	tailorService services.TailorService
}

func NewTailorHandler(base *BaseHandler, tailorService services.TailorService) *TailorHandler {
	return &TailorHandler{
		BaseHandler:   base,
		tailorService: tailorService,
	}
}

func (h *TailorHandler) RegisterRoutes(rg *gin.RouterGroup) {
	tailors := rg.Group("/tailors")
	{
		tailors.GET("/:id", h.GetTailor)
		tailors.GET("/:id/portfolio", h.GetPortfolio)
	}

	me := rg.Group("/tailors")
	me.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleTailor))
	{
		me.GET("/me/profile", h.GetOwnProfile)
		me.PUT("/me/profile", h.UpdateOwnProfile)
	}
}

func (h *TailorHandler) GetTailor(c *gin.Context) {
	profile, err := h.tailorService.GetByID(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *TailorHandler) GetPortfolio(c *gin.Context) {
	portfolio, err := h.tailorService.GetPortfolio(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, portfolio)
}

func (h *TailorHandler) GetOwnProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	profile, err := h.tailorService.GetByUserID(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *TailorHandler) UpdateOwnProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateTailorProfileRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	profile, err := h.tailorService.UpdateProfile(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}
