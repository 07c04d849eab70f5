package repository

import (
	"context"

	"github.com/karibugroceries/karibu-api/internal/domain/entity"
	"github.com/karibugroceries/karibu-api/internal/domain/enum"
	"github.com/karibugroceries/karibu-api/pkg/pagination"
)

// SaleFilterParams holds the filters accepted when listing sales
type SaleFilterParams struct {
	Pagination *pagination.PaginationParams
	Branch     *enum.Branch
}

// SaleRepository defines the interface for completed-sale lookups
type SaleRepository interface {
	// List returns sales matching the filters, newest first, along with the
	// total match count before pagination.
	List(ctx context.Context, params *SaleFilterParams) ([]entity.Sale, int64, error)
	// Recent returns the latest n sales across all branches, newest first.
	Recent(ctx context.Context, n int) ([]entity.Sale, error)
	// All returns every sale in the collection.
	All(ctx context.Context) ([]entity.Sale, error)
}

// CreditSaleFilterParams holds the filters accepted when listing credit sales
type CreditSaleFilterParams struct {
	Pagination *pagination.PaginationParams
	Branch     *enum.Branch
}

// CreditSaleRepository defines the interface for credit-sale lookups
type CreditSaleRepository interface {
	// List returns credit sales matching the filters along with the total
	// match count before pagination.
	List(ctx context.Context, params *CreditSaleFilterParams) ([]entity.CreditSale, int64, error)
	// All returns every credit sale in the collection.
	All(ctx context.Context) ([]entity.CreditSale, error)
}
