package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/karibugroceries/karibu-api/internal/domain/entity"
	"github.com/karibugroceries/karibu-api/internal/domain/repository"
	"github.com/karibugroceries/karibu-api/pkg/apperror"
	"github.com/karibugroceries/karibu-api/pkg/currency"
	"github.com/karibugroceries/karibu-api/pkg/pagination"
)

// SalesService lists completed sales and validates new sale submissions
type SalesService struct {
	saleRepo    repository.SaleRepository
	produceRepo repository.ProduceRepository
}

// NewSalesService creates a new sales service
func NewSalesService(saleRepo repository.SaleRepository, produceRepo repository.ProduceRepository) *SalesService {
	return &SalesService{saleRepo: saleRepo, produceRepo: produceRepo}
}

// ListSalesInput holds sales listing filters
type ListSalesInput struct {
	Branch  string
	Page    int
	PerPage int
}

// ListSales returns sales visible to the user, newest first. Sales agents
// are scoped to their own branch.
func (s *SalesService) ListSales(ctx context.Context, user *entity.User, input *ListSalesInput) (*pagination.PaginatedResult[entity.Sale], error) {
	params := &repository.SaleFilterParams{
		Pagination: &pagination.PaginationParams{Page: input.Page, PerPage: input.PerPage},
	}

	branch, err := resolveBranchFilter(user, input.Branch)
	if err != nil {
		return nil, err
	}
	params.Branch = branch
	params.Pagination.Validate()

	sales, total, err := s.saleRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	return pagination.NewPaginatedResult(sales,
		pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)), nil
}

// RecordSaleInput holds a sale submission
type RecordSaleInput struct {
	ProduceID     string
	TonnageKg     float64
	AmountPaidUgx int64
	BuyerName     string
}

// RecordSale validates a sale against current stock and returns the
// transaction that would be recorded. The produce lot is never mutated and
// nothing is persisted; the caller only gets an acknowledgement.
func (s *SalesService) RecordSale(ctx context.Context, user *entity.User, input *RecordSaleInput) (*entity.Sale, error) {
	produce, err := s.produceRepo.GetByID(ctx, input.ProduceID)
	if err != nil {
		return nil, err
	}
	if !user.CanAccessBranch(produce.Branch) {
		return nil, apperror.NewNotFoundError("Produce")
	}

	if input.TonnageKg > produce.TonnageKg {
		return nil, apperror.NewFieldError("tonnage_kg",
			fmt.Sprintf("Insufficient stock: only %s kg available", currency.FormatKg(produce.TonnageKg)))
	}

	return &entity.Sale{
		ID:             uuid.New().String(),
		ProduceID:      produce.ID,
		ProduceName:    produce.Name,
		TonnageKg:      input.TonnageKg,
		AmountPaidUgx:  input.AmountPaidUgx,
		BuyerName:      input.BuyerName,
		SalesAgentName: user.Name,
		Date:           time.Now(),
		Branch:         produce.Branch,
	}, nil
}
