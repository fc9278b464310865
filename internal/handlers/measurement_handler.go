package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tailorlink_backend/internal/middleware"
	"tailorlink_backend/internal/models"
	"tailorlink_backend/internal/services"
	"tailorlink_backend/internal/services/dto"
)

type MeasurementHandler struct {
	*BaseHandler
	measurementService services.MeasurementService
}

func NewMeasurementHandler(base *BaseHandler, measurementService services.MeasurementService) *MeasurementHandler {
	return &MeasurementHandler{
		BaseHandler:        base,
		measurementService: measurementService,
	}
}

func (h *MeasurementHandler) RegisterRoutes(rg *gin.RouterGroup) {
	// Templates are readable by any authenticated user, managed by admins.
	templates := rg.Group("/measurement-templates")
	templates.Use(middleware.AuthMiddleware())
	{
		templates.GET("", h.ListTemplates)
		templates.GET("/:id", h.GetTemplate)
	}

	adminTemplates := rg.Group("/measurement-templates")
	adminTemplates.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleAdmin))
	{
		adminTemplates.POST("", h.CreateTemplate)
		adminTemplates.PUT("/:id", h.UpdateTemplate)
		adminTemplates.DELETE("/:id", h.DeleteTemplate)
	}

	measurements := rg.Group("/measurements")
	measurements.Use(middleware.AuthMiddleware())
	{
		measurements.POST("", h.CreateMeasurement)
		measurements.GET("", h.ListMeasurements)
		measurements.GET("/:id", h.GetMeasurement)
		measurements.PUT("/:id", h.UpdateMeasurement)
		measurements.DELETE("/:id", h.DeleteMeasurement)
	}
}

func (h *MeasurementHandler) ListTemplates(c *gin.Context) {
	templates, err := h.measurementService.ListTemplates()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"templates": templates})
}

func (h *MeasurementHandler) GetTemplate(c *gin.Context) {
	template, err := h.measurementService.GetTemplate(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, template)
}

func (h *MeasurementHandler) CreateTemplate(c *gin.Context) {
	var req dto.CreateTemplateRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	template, err := h.measurementService.CreateTemplate(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, template)
}

func (h *MeasurementHandler) UpdateTemplate(c *gin.Context) {
	var req dto.UpdateTemplateRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	template, err := h.measurementService.UpdateTemplate(c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, template)
}

func (h *MeasurementHandler) DeleteTemplate(c *gin.Context) {
	if err := h.measurementService.DeleteTemplate(c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Template deleted"})
}

func (h *MeasurementHandler) CreateMeasurement(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateMeasurementRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	record, err := h.measurementService.CreateRecord(userID, middleware.GetUserRole(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, record)
}

func (h *MeasurementHandler) ListMeasurements(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	records, err := h.measurementService.ListRecords(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"measurements": records})
}

func (h *MeasurementHandler) GetMeasurement(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	record, err := h.measurementService.GetRecord(c.Param("id"), userID, middleware.GetUserRole(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

func (h *MeasurementHandler) UpdateMeasurement(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateMeasurementRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	record, err := h.measurementService.UpdateRecord(c.Param("id"), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

func (h *MeasurementHandler) DeleteMeasurement(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.measurementService.DeleteRecord(c.Param("id"), userID); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Measurement deleted"})
}
