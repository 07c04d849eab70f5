package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/karibugroceries/karibu-api/internal/application/service"
	"github.com/karibugroceries/karibu-api/internal/domain/enum"
	"github.com/karibugroceries/karibu-api/internal/presentation/http/dto/request"
	"github.com/karibugroceries/karibu-api/internal/presentation/http/dto/response"
	"github.com/karibugroceries/karibu-api/internal/presentation/http/middleware"
)

// InventoryHandler handles inventory and procurement HTTP requests
type InventoryHandler struct {
	inventoryService *service.InventoryService
}

// NewInventoryHandler creates a new inventory handler
func NewInventoryHandler(inventoryService *service.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventoryService: inventoryService}
}

// ListProduce returns produce lots with search, branch and low-stock filters
func (h *InventoryHandler) ListProduce(c *gin.Context) {
	user := middleware.SessionUser(c)
	if user == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.InventoryFilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters: "+err.Error())
		return
	}

	result, err := h.inventoryService.ListProduce(c.Request.Context(), user, &service.ListProduceInput{
		Search:   req.Search,
		Branch:   req.Branch,
		LowStock: req.LowStock,
		Page:     req.Page,
		PerPage:  req.PerPage,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, http.StatusOK, "Produce retrieved successfully", result)
}

// LowStockProduce returns every lot below the restock threshold
func (h *InventoryHandler) LowStockProduce(c *gin.Context) {
	user := middleware.SessionUser(c)
	if user == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	items, err := h.inventoryService.LowStockProduce(c.Request.Context(), user)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Low stock produce retrieved successfully", items)
}

// RecordProcurement validates a procurement submission
func (h *InventoryHandler) RecordProcurement(c *gin.Context) {
	var req request.RecordProcurementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	produce, err := h.inventoryService.RecordProcurement(c.Request.Context(), &service.RecordProcurementInput{
		ProduceName:   req.ProduceName,
		ProduceType:   enum.ProduceType(req.ProduceType),
		TonnageKg:     req.TonnageKg,
		CostUgx:       req.CostUgx,
		PriceUgx:      req.PriceUgx,
		DealerName:    req.DealerName,
		DealerContact: req.DealerContact,
		Branch:        enum.Branch(req.Branch),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Procurement recorded successfully", produce)
}
