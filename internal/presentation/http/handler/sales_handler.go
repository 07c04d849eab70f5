package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/karibugroceries/karibu-api/internal/application/service"
	"github.com/karibugroceries/karibu-api/internal/presentation/http/dto/request"
	"github.com/karibugroceries/karibu-api/internal/presentation/http/dto/response"
	"github.com/karibugroceries/karibu-api/internal/presentation/http/middleware"
)

// SalesHandler handles sales HTTP requests
type SalesHandler struct {
	salesService *service.SalesService
}

// NewSalesHandler creates a new sales handler
func NewSalesHandler(salesService *service.SalesService) *SalesHandler {
	return &SalesHandler{salesService: salesService}
}

// ListSales returns sales newest first, optionally filtered by branch
func (h *SalesHandler) ListSales(c *gin.Context) {
	user := middleware.SessionUser(c)
	if user == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.SaleFilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters: "+err.Error())
		return
	}

	result, err := h.salesService.ListSales(c.Request.Context(), user, &service.ListSalesInput{
		Branch:  req.Branch,
		Page:    req.Page,
		PerPage: req.PerPage,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, http.StatusOK, "Sales retrieved successfully", result)
}

// RecordSale validates a sale submission against current stock
func (h *SalesHandler) RecordSale(c *gin.Context) {
	user := middleware.SessionUser(c)
	if user == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.RecordSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	sale, err := h.salesService.RecordSale(c.Request.Context(), user, &service.RecordSaleInput{
		ProduceID:     req.ProduceID,
		TonnageKg:     req.TonnageKg,
		AmountPaidUgx: req.AmountPaidUgx,
		BuyerName:     req.BuyerName,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Sale recorded successfully", sale)
}
