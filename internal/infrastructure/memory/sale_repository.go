package memory

import (
	"context"
	"sort"

	"github.com/karibugroceries/karibu-api/internal/domain/entity"
	"github.com/karibugroceries/karibu-api/internal/domain/repository"
	"github.com/karibugroceries/karibu-api/pkg/pagination"
)

// SaleRepository implements repository.SaleRepository over the store
type SaleRepository struct {
	store *Store
}

// NewSaleRepository creates a new sale repository
func NewSaleRepository(store *Store) *SaleRepository {
	return &SaleRepository{store: store}
}

// List returns sales matching the filters, newest first
func (r *SaleRepository) List(ctx context.Context, params *repository.SaleFilterParams) ([]entity.Sale, int64, error) {
	matched := make([]entity.Sale, 0, len(r.store.sales))
	for _, s := range r.store.sales {
		if params.Branch != nil && s.Branch != *params.Branch {
			continue
		}
		matched = append(matched, s)
	}
	sortSalesByDateDesc(matched)

	pageParams := params.Pagination
	if pageParams == nil {
		pageParams = pagination.DefaultPagination()
	}
	pageParams.Validate()

	items, total := pagination.Slice(matched, pageParams)
	return items, total, nil
}

// Recent returns the latest n sales across all branches, newest first
func (r *SaleRepository) Recent(ctx context.Context, n int) ([]entity.Sale, error) {
	sales := make([]entity.Sale, len(r.store.sales))
	copy(sales, r.store.sales)
	sortSalesByDateDesc(sales)
	if len(sales) > n {
		sales = sales[:n]
	}
	return sales, nil
}

// All returns every sale in the collection
func (r *SaleRepository) All(ctx context.Context) ([]entity.Sale, error) {
	out := make([]entity.Sale, len(r.store.sales))
	copy(out, r.store.sales)
	return out, nil
}

func sortSalesByDateDesc(sales []entity.Sale) {
	sort.SliceStable(sales, func(i, j int) bool {
		return sales[i].Date.After(sales[j].Date)
	})
}

// CreditSaleRepository implements repository.CreditSaleRepository over the store
type CreditSaleRepository struct {
	store *Store
}

// NewCreditSaleRepository creates a new credit sale repository
func NewCreditSaleRepository(store *Store) *CreditSaleRepository {
	return &CreditSaleRepository{store: store}
}

// List returns credit sales matching the filters
func (r *CreditSaleRepository) List(ctx context.Context, params *repository.CreditSaleFilterParams) ([]entity.CreditSale, int64, error) {
	matched := make([]entity.CreditSale, 0, len(r.store.creditSales))
	for _, c := range r.store.creditSales {
		if params.Branch != nil && c.Branch != *params.Branch {
			continue
		}
		matched = append(matched, c)
	}

	pageParams := params.Pagination
	if pageParams == nil {
		pageParams = pagination.DefaultPagination()
	}
	pageParams.Validate()

	items, total := pagination.Slice(matched, pageParams)
	return items, total, nil
}

// All returns every credit sale in the collection
func (r *CreditSaleRepository) All(ctx context.Context) ([]entity.CreditSale, error) {
	out := make([]entity.CreditSale, len(r.store.creditSales))
	copy(out, r.store.creditSales)
	return out, nil
}
