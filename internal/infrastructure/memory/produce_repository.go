package memory

import (
	"context"
	"strings"

	"github.com/karibugroceries/karibu-api/internal/domain/entity"
	"github.com/karibugroceries/karibu-api/internal/domain/repository"
	"github.com/karibugroceries/karibu-api/pkg/apperror"
	"github.com/karibugroceries/karibu-api/pkg/pagination"
)

// ProduceRepository implements repository.ProduceRepository over the store
type ProduceRepository struct {
	store *Store
	// lots strictly below this tonnage count as low stock
	lowStockThresholdKg float64
}

// NewProduceRepository creates a new produce repository
func NewProduceRepository(store *Store, lowStockThresholdKg float64) *ProduceRepository {
	return &ProduceRepository{store: store, lowStockThresholdKg: lowStockThresholdKg}
}

// GetByID returns the produce lot with the given id
func (r *ProduceRepository) GetByID(ctx context.Context, id string) (*entity.Produce, error) {
	for i := range r.store.produce {
		if r.store.produce[i].ID == id {
			p := r.store.produce[i]
			return &p, nil
		}
	}
	return nil, apperror.NewNotFoundError("Produce")
}

// List returns produce lots matching the filters and the total match count
func (r *ProduceRepository) List(ctx context.Context, params *repository.ProduceFilterParams) ([]entity.Produce, int64, error) {
	matched := make([]entity.Produce, 0, len(r.store.produce))
	search := strings.ToLower(params.Search)

	for _, p := range r.store.produce {
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.Type.String()), search) {
			continue
		}
		if params.Branch != nil && p.Branch != *params.Branch {
			continue
		}
		if params.LowStock && !p.IsLowStock(r.lowStockThresholdKg) {
			continue
		}
		matched = append(matched, p)
	}

	pageParams := params.Pagination
	if pageParams == nil {
		pageParams = pagination.DefaultPagination()
	}
	pageParams.Validate()

	items, total := pagination.Slice(matched, pageParams)
	return items, total, nil
}

// All returns every produce lot in the collection
func (r *ProduceRepository) All(ctx context.Context) ([]entity.Produce, error) {
	out := make([]entity.Produce, len(r.store.produce))
	copy(out, r.store.produce)
	return out, nil
}
