package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/karibugroceries/karibu-api/internal/application/service"
	"github.com/karibugroceries/karibu-api/internal/domain/enum"
	"github.com/karibugroceries/karibu-api/internal/presentation/http/dto/request"
	"github.com/karibugroceries/karibu-api/internal/presentation/http/dto/response"
	"github.com/karibugroceries/karibu-api/internal/presentation/http/middleware"
)

// CreditHandler handles credit sale HTTP requests
type CreditHandler struct {
	creditService *service.CreditService
}

// NewCreditHandler creates a new credit handler
func NewCreditHandler(creditService *service.CreditService) *CreditHandler {
	return &CreditHandler{creditService: creditService}
}

// ListCreditSales returns credit sales with their repayment status and the
// outstanding summary block
func (h *CreditHandler) ListCreditSales(c *gin.Context) {
	user := middleware.SessionUser(c)
	if user == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CreditSaleFilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters: "+err.Error())
		return
	}

	result, err := h.creditService.ListCreditSales(c.Request.Context(), user, &service.ListCreditSalesInput{
		Branch:  req.Branch,
		Page:    req.Page,
		PerPage: req.PerPage,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Credit sales retrieved successfully", result)
}

// RecordCreditSale validates a credit sale submission
func (h *CreditHandler) RecordCreditSale(c *gin.Context) {
	user := middleware.SessionUser(c)
	if user == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.RecordCreditSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	credit, err := h.creditService.RecordCreditSale(c.Request.Context(), user, &service.RecordCreditSaleInput{
		BuyerName:    req.BuyerName,
		NationalID:   req.NationalID,
		Location:     req.Location,
		Contact:      req.Contact,
		AmountDueUgx: req.AmountDueUgx,
		ProduceName:  req.ProduceName,
		ProduceType:  enum.ProduceType(req.ProduceType),
		TonnageKg:    req.TonnageKg,
		DispatchDate: req.DispatchDate,
		DueDate:      req.DueDate,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Credit sale recorded successfully", credit)
}
