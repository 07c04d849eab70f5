package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/karibugroceries/karibu-api/internal/domain/entity"
	"github.com/karibugroceries/karibu-api/internal/domain/enum"
	"github.com/karibugroceries/karibu-api/internal/domain/repository"
	"github.com/karibugroceries/karibu-api/pkg/apperror"
	"github.com/karibugroceries/karibu-api/pkg/pagination"
)

// InventoryService provides views over the produce stock and validates
// procurement submissions.
type InventoryService struct {
	produceRepo         repository.ProduceRepository
	lowStockThresholdKg float64
}

// NewInventoryService creates a new inventory service
func NewInventoryService(produceRepo repository.ProduceRepository, lowStockThresholdKg float64) *InventoryService {
	return &InventoryService{
		produceRepo:         produceRepo,
		lowStockThresholdKg: lowStockThresholdKg,
	}
}

// InventoryItem is a produce lot enriched with the derived figures the
// inventory view renders.
type InventoryItem struct {
	entity.Produce
	PricePerKg float64 `json:"price_per_kg"`
	LowStock   bool    `json:"low_stock"`
}

// ListProduceInput holds inventory listing filters
type ListProduceInput struct {
	Search   string
	Branch   string
	LowStock bool
	Page     int
	PerPage  int
}

// ListProduce returns produce lots visible to the user. Sales agents are
// scoped to their own branch regardless of the requested filter.
func (s *InventoryService) ListProduce(ctx context.Context, user *entity.User, input *ListProduceInput) (*pagination.PaginatedResult[InventoryItem], error) {
	params := &repository.ProduceFilterParams{
		Pagination: &pagination.PaginationParams{Page: input.Page, PerPage: input.PerPage},
		Search:     input.Search,
		LowStock:   input.LowStock,
	}

	branch, err := resolveBranchFilter(user, input.Branch)
	if err != nil {
		return nil, err
	}
	params.Branch = branch
	params.Pagination.Validate()

	produce, total, err := s.produceRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	items := make([]InventoryItem, 0, len(produce))
	for _, p := range produce {
		items = append(items, s.toItem(p))
	}

	return pagination.NewPaginatedResult(items,
		pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)), nil
}

// LowStockProduce returns every lot strictly below the low-stock threshold,
// unpaginated, branch-scoped for sales agents.
func (s *InventoryService) LowStockProduce(ctx context.Context, user *entity.User) ([]InventoryItem, error) {
	produce, err := s.produceRepo.All(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]InventoryItem, 0)
	for _, p := range produce {
		if user.Role == enum.RoleSalesAgent && p.Branch != user.Branch {
			continue
		}
		if !p.IsLowStock(s.lowStockThresholdKg) {
			continue
		}
		items = append(items, s.toItem(p))
	}
	return items, nil
}

// RecordProcurementInput holds a validated procurement submission
type RecordProcurementInput struct {
	ProduceName   string
	ProduceType   enum.ProduceType
	TonnageKg     float64
	CostUgx       int64
	PriceUgx      int64
	DealerName    string
	DealerContact string
	Branch        enum.Branch
}

// RecordProcurement validates a procurement submission and returns the lot
// that would be added. The seed dataset is fixed: nothing is persisted, the
// caller only gets an acknowledgement. A selling price below cost is allowed.
func (s *InventoryService) RecordProcurement(ctx context.Context, input *RecordProcurementInput) (*entity.Produce, error) {
	if !input.ProduceType.IsValid() {
		return nil, apperror.NewFieldError("produce_type", "Please select a produce type")
	}
	if !input.Branch.IsValid() {
		return nil, apperror.NewFieldError("branch", "Unknown branch")
	}

	return &entity.Produce{
		ID:            uuid.New().String(),
		Name:          input.ProduceName,
		Type:          input.ProduceType,
		DateAdded:     time.Now(),
		TonnageKg:     input.TonnageKg,
		CostUgx:       input.CostUgx,
		PriceUgx:      input.PriceUgx,
		DealerName:    input.DealerName,
		DealerContact: input.DealerContact,
		Branch:        input.Branch,
	}, nil
}

func (s *InventoryService) toItem(p entity.Produce) InventoryItem {
	return InventoryItem{
		Produce:    p,
		PricePerKg: p.PricePerKg(),
		LowStock:   p.IsLowStock(s.lowStockThresholdKg),
	}
}

// resolveBranchFilter turns the requested branch filter into repository
// params, enforcing branch scoping for sales agents. An empty value or "all"
// means no filter.
func resolveBranchFilter(user *entity.User, requested string) (*enum.Branch, error) {
	if user.Role == enum.RoleSalesAgent {
		b := user.Branch
		return &b, nil
	}
	if requested == "" || requested == "all" {
		return nil, nil
	}
	b := enum.Branch(requested)
	if !b.IsValid() {
		return nil, apperror.NewBadRequestError("Unknown branch: " + requested)
	}
	return &b, nil
}
