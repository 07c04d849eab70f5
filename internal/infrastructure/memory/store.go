// Package memory implements the domain repositories over the seed dataset.
// The collections are fixed for the lifetime of the process: procurement,
// sale, and credit-sale submissions are validated and acknowledged but never
// written back. Reads therefore need no locking.
package memory

import (
	"github.com/karibugroceries/karibu-api/internal/domain/entity"
)

// Store holds the process-lifetime collections
type Store struct {
	produce     []entity.Produce
	sales       []entity.Sale
	creditSales []entity.CreditSale
}

// NewStore creates a store preloaded with the seed dataset
func NewStore() *Store {
	return &Store{
		produce:     seedProduce(),
		sales:       seedSales(),
		creditSales: seedCreditSales(),
	}
}

// NewStoreWithData creates a store over the given collections
func NewStoreWithData(produce []entity.Produce, sales []entity.Sale, creditSales []entity.CreditSale) *Store {
	return &Store{
		produce:     produce,
		sales:       sales,
		creditSales: creditSales,
	}
}
