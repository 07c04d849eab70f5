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

// CreditService lists deferred-payment sales and validates new submissions
type CreditService struct {
	creditSaleRepo repository.CreditSaleRepository
	now            func() time.Time
}

// NewCreditService creates a new credit sales service
func NewCreditService(creditSaleRepo repository.CreditSaleRepository) *CreditService {
	return &CreditService{creditSaleRepo: creditSaleRepo, now: time.Now}
}

// CreditSaleView is a credit sale enriched with its derived due status
type CreditSaleView struct {
	entity.CreditSale
	Status       enum.CreditStatus `json:"status"`
	DaysUntilDue int               `json:"days_until_due"`
}

// CreditSummary holds the figures shown above the credit sales list
type CreditSummary struct {
	TotalOutstandingUgx int64 `json:"total_outstanding_ugx"`
	ActiveCredits       int   `json:"active_credits"`
	OverdueCount        int   `json:"overdue_count"`
}

// CreditListResult is the credit sales page payload
type CreditListResult struct {
	Items   *pagination.PaginatedResult[CreditSaleView] `json:"items"`
	Summary CreditSummary                               `json:"summary"`
}

// ListCreditSalesInput holds credit sale listing filters
type ListCreditSalesInput struct {
	Branch  string
	Page    int
	PerPage int
}

// ListCreditSales returns credit sales visible to the user along with the
// summary block. The summary covers everything visible to the user, not just
// the requested page.
func (s *CreditService) ListCreditSales(ctx context.Context, user *entity.User, input *ListCreditSalesInput) (*CreditListResult, error) {
	branch, err := resolveBranchFilter(user, input.Branch)
	if err != nil {
		return nil, err
	}

	params := &repository.CreditSaleFilterParams{
		Pagination: &pagination.PaginationParams{Page: input.Page, PerPage: input.PerPage},
		Branch:     branch,
	}
	params.Pagination.Validate()

	credits, total, err := s.creditSaleRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	now := s.now()
	views := make([]CreditSaleView, 0, len(credits))
	for _, c := range credits {
		views = append(views, s.toView(c, now))
	}

	// summary over the full visible set, not the current page
	all, err := s.creditSaleRepo.All(ctx)
	if err != nil {
		return nil, err
	}

	var summary CreditSummary
	for _, c := range all {
		if branch != nil && c.Branch != *branch {
			continue
		}
		summary.ActiveCredits++
		summary.TotalOutstandingUgx += c.AmountDueUgx
		if c.Status(now) == enum.CreditStatusOverdue {
			summary.OverdueCount++
		}
	}

	return &CreditListResult{
		Items: pagination.NewPaginatedResult(views,
			pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)),
		Summary: summary,
	}, nil
}

// RecordCreditSaleInput holds a credit sale submission
type RecordCreditSaleInput struct {
	BuyerName    string
	NationalID   string
	Location     string
	Contact      string
	AmountDueUgx int64
	ProduceName  string
	ProduceType  enum.ProduceType
	TonnageKg    float64
	DispatchDate time.Time
	DueDate      time.Time
}

// RecordCreditSale validates a credit sale submission and returns the record
// that would be created. Nothing is persisted; the caller only gets an
// acknowledgement.
func (s *CreditService) RecordCreditSale(ctx context.Context, user *entity.User, input *RecordCreditSaleInput) (*CreditSaleView, error) {
	if !input.ProduceType.IsValid() {
		return nil, apperror.NewFieldError("produce_type", "Please select a produce type")
	}
	if !input.DueDate.After(input.DispatchDate) {
		return nil, apperror.NewFieldError("due_date", "Due date must be after the dispatch date")
	}

	credit := entity.CreditSale{
		ID:             uuid.New().String(),
		BuyerName:      input.BuyerName,
		NationalID:     input.NationalID,
		Location:       input.Location,
		Contact:        input.Contact,
		AmountDueUgx:   input.AmountDueUgx,
		SalesAgentName: user.Name,
		DueDate:        input.DueDate,
		ProduceName:    input.ProduceName,
		ProduceType:    input.ProduceType,
		TonnageKg:      input.TonnageKg,
		DispatchDate:   input.DispatchDate,
		Branch:         user.Branch,
	}

	view := s.toView(credit, s.now())
	return &view, nil
}

func (s *CreditService) toView(c entity.CreditSale, now time.Time) CreditSaleView {
	return CreditSaleView{
		CreditSale:   c,
		Status:       c.Status(now),
		DaysUntilDue: enum.DaysUntil(c.DueDate, now),
	}
}
