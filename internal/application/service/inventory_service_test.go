package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karibugroceries/karibu-api/internal/domain/entity"
	"github.com/karibugroceries/karibu-api/internal/domain/enum"
	"github.com/karibugroceries/karibu-api/internal/infrastructure/memory"
)

func newTestInventoryService() (*InventoryService, *memory.Store) {
	store := memory.NewStore()
	return NewInventoryService(memory.NewProduceRepository(store, testLowStockThresholdKg), testLowStockThresholdKg), store
}

func managerUser() *entity.User {
	return &entity.User{ID: "u1", Name: "David Kato", Role: enum.RoleManager, Branch: enum.BranchMaganjo}
}

func salesAgentUser(branch enum.Branch) *entity.User {
	return &entity.User{ID: "u2", Name: "Mary Nalubega", Role: enum.RoleSalesAgent, Branch: branch}
}

func TestListProduceReturnsAllForManager(t *testing.T) {
	svc, _ := newTestInventoryService()

	result, err := svc.ListProduce(context.Background(), managerUser(), &ListProduceInput{})
	require.NoError(t, err)
	assert.Len(t, result.Items, 6)
	assert.Equal(t, int64(6), result.Pagination.Total)
}

func TestListProduceSearchMatchesNameAndType(t *testing.T) {
	svc, _ := newTestInventoryService()

	result, err := svc.ListProduce(context.Background(), managerUser(), &ListProduceInput{Search: "maize"})
	require.NoError(t, err)
	// White Maize and Yellow Maize match by name, both also by type
	assert.Len(t, result.Items, 2)
}

func TestListProduceBranchFilter(t *testing.T) {
	svc, _ := newTestInventoryService()

	result, err := svc.ListProduce(context.Background(), managerUser(), &ListProduceInput{Branch: "Matugga"})
	require.NoError(t, err)
	require.Len(t, result.Items, 3)
	for _, item := range result.Items {
		assert.Equal(t, enum.BranchMatugga, item.Branch)
	}
}

func TestListProduceRejectsUnknownBranch(t *testing.T) {
	svc, _ := newTestInventoryService()

	_, err := svc.ListProduce(context.Background(), managerUser(), &ListProduceInput{Branch: "Kampala"})
	assert.Error(t, err)
}

func TestListProduceScopesSalesAgentToOwnBranch(t *testing.T) {
	svc, _ := newTestInventoryService()
	agent := salesAgentUser(enum.BranchMaganjo)

	// the requested filter is ignored for agents
	result, err := svc.ListProduce(context.Background(), agent, &ListProduceInput{Branch: "Matugga"})
	require.NoError(t, err)
	require.Len(t, result.Items, 3)
	for _, item := range result.Items {
		assert.Equal(t, enum.BranchMaganjo, item.Branch)
	}
}

func TestListProduceDerivedFields(t *testing.T) {
	svc, _ := newTestInventoryService()

	result, err := svc.ListProduce(context.Background(), managerUser(), &ListProduceInput{Search: "Premium Beans"})
	require.NoError(t, err)
	require.Len(t, result.Items, 1)

	item := result.Items[0]
	assert.Equal(t, 700.0, item.PricePerKg) // 3,500,000 / 5,000
	assert.False(t, item.LowStock)
}

func TestLowStockProduce(t *testing.T) {
	svc, _ := newTestInventoryService()

	items, err := svc.LowStockProduce(context.Background(), managerUser())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Yellow Maize", items[0].Name)
	assert.True(t, items[0].LowStock)
}

func TestLowStockProduceScopedForAgent(t *testing.T) {
	svc, _ := newTestInventoryService()

	// Yellow Maize is in Matugga, so a Maganjo agent sees nothing
	items, err := svc.LowStockProduce(context.Background(), salesAgentUser(enum.BranchMaganjo))
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestLowStockProduceNotWindowed(t *testing.T) {
	produce := make([]entity.Produce, 0, 120)
	for i := 0; i < 120; i++ {
		produce = append(produce, entity.Produce{
			ID:        fmt.Sprintf("p%d", i),
			Name:      fmt.Sprintf("Lot %d", i),
			TonnageKg: 500,
			Branch:    enum.BranchMaganjo,
		})
	}

	store := memory.NewStoreWithData(produce, nil, nil)
	svc := NewInventoryService(memory.NewProduceRepository(store, testLowStockThresholdKg), testLowStockThresholdKg)

	items, err := svc.LowStockProduce(context.Background(), managerUser())
	require.NoError(t, err)
	assert.Len(t, items, 120)
}

func TestRecordProcurementDoesNotMutateStock(t *testing.T) {
	svc, store := newTestInventoryService()
	repo := memory.NewProduceRepository(store, testLowStockThresholdKg)

	produce, err := svc.RecordProcurement(context.Background(), &RecordProcurementInput{
		ProduceName:   "New Season Beans",
		ProduceType:   enum.ProduceTypeBeans,
		TonnageKg:     1500,
		CostUgx:       2000000,
		PriceUgx:      2800000,
		DealerName:    "John Mukasa",
		DealerContact: "+256 701 234 567",
		Branch:        enum.BranchMaganjo,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, produce.ID)
	assert.Equal(t, "New Season Beans", produce.Name)

	all, err := repo.All(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 6)
}

func TestRecordProcurementRejectsUnknownType(t *testing.T) {
	svc, _ := newTestInventoryService()

	_, err := svc.RecordProcurement(context.Background(), &RecordProcurementInput{
		ProduceName: "Cassava",
		ProduceType: enum.ProduceType("Cassava"),
		TonnageKg:   500,
		Branch:      enum.BranchMaganjo,
	})
	assert.Error(t, err)
}
