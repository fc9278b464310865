package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tailorlink_backend/internal/middleware"
	"tailorlink_backend/internal/models"
	"tailorlink_backend/internal/services"
	"tailorlink_backend/internal/services/dto"
)

type OrderHandler struct {
	*BaseHandler
	orderService services.OrderService
}

func NewOrderHandler(base *BaseHandler, orderService services.OrderService) *OrderHandler {
	return &OrderHandler{
		BaseHandler:  base,
		orderService: orderService,
	}
}

func (h *OrderHandler) RegisterRoutes(rg *gin.RouterGroup) {
	orders := rg.Group("/orders")
	orders.Use(middleware.AuthMiddleware())
	{
		orders.POST("", h.CreateOrder)
		orders.GET("", h.ListOrders)
		orders.GET("/:id", h.GetOrder)
		orders.PATCH("/:id/status", h.UpdateStatus)
		orders.POST("/:id/cancel", h.CancelOrder)
	}
}

func (h *OrderHandler) CreateOrder(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateOrderRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	order, err := h.orderService.Create(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, order)
}

func (h *OrderHandler) ListOrders(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	page, pageSize := ParsePagination(c)
	orders, err := h.orderService.List(userID, middleware.GetUserRole(c), page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	order, err := h.orderService.GetByID(c.Param("id"), userID, middleware.GetUserRole(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateOrderStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	order, err := h.orderService.UpdateStatus(
		c.Param("id"),
		userID,
		middleware.GetUserRole(c),
		models.OrderStatus(req.Status),
	)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) CancelOrder(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	order, err := h.orderService.Cancel(c.Param("id"), userID, middleware.GetUserRole(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, order)
}
