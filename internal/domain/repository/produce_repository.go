package repository

import (
	"context"

	"github.com/karibugroceries/karibu-api/internal/domain/entity"
	"github.com/karibugroceries/karibu-api/internal/domain/enum"
	"github.com/karibugroceries/karibu-api/pkg/pagination"
)

// ProduceFilterParams holds the filters accepted when listing produce
type ProduceFilterParams struct {
	Pagination *pagination.PaginationParams
	// Search matches name or type, case-insensitively
	Search string
	// Branch restricts the listing to a single branch when non-nil
	Branch *enum.Branch
	// LowStock restricts the listing to lots below the low-stock threshold
	LowStock bool
}

// ProduceRepository defines the interface for produce stock lookups
type ProduceRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Produce, error)
	// List returns produce lots matching the filters along with the total
	// match count before pagination.
	List(ctx context.Context, params *ProduceFilterParams) ([]entity.Produce, int64, error)
	// All returns every produce lot in the collection.
	All(ctx context.Context) ([]entity.Produce, error)
}
