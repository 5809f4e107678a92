// internal/handlers/order.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/curioshop/curios-backend/internal/middleware"
	"github.com/curioshop/curios-backend/internal/services"
	"github.com/curioshop/curios-backend/internal/utils"
)

type OrderHandler struct {
	orderService *services.OrderService
}

func NewOrderHandler(orderService *services.OrderService) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

// POST /orders/create
func (h *OrderHandler) Create(c *gin.Context) {
	var req services.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body.")
		return
	}

	order, err := h.orderService.Create(middleware.GetIdentity(c), &req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	utils.CreatedResponse(c, order)
}

// GET /orders/list
func (h *OrderHandler) List(c *gin.Context) {
	params := utils.GetPageParams(c)

	orders, total, err := h.orderService.List(middleware.GetIdentity(c), params)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	utils.PaginatedResponse(c, utils.NewPageEnvelope(c, total, params, orders))
}

// GET /orders/detail/:id
func (h *OrderHandler) Detail(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	order, err := h.orderService.Get(middleware.GetIdentity(c), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	utils.OKResponse(c, order)
}

// PUT/PATCH /orders/update/:id
func (h *OrderHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req services.UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body.")
		return
	}

	order, err := h.orderService.Update(middleware.GetIdentity(c), id, &req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	utils.OKResponse(c, order)
}

// DELETE /orders/delete/:id
func (h *OrderHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.orderService.Delete(middleware.GetIdentity(c), id); err != nil {
		writeServiceError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
