// stats_test.go

package main

import (
	"context"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStats(t *testing.T) (*StatsService, *CatalogService, *OrderService) {
	t.Helper()
	store := newMemoryStore()
	catalog := NewCatalogService(store)
	orders := NewOrderService(store)
	return NewStatsService(catalog, orders), catalog, orders
}

func TestComputeStatsEmpty(t *testing.T) {
	stats, _, _ := newTestStats(t)

	got, err := stats.Compute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Stats{}, got)
}

func TestComputeStatsCounts(t *testing.T) {
	ctx := context.Background()
	stats, catalog, orders := newTestStats(t)

	for i := 0; i < 3; i++ {
		_, err := catalog.Create(ctx, CreateProductRequest{
			Name: "Bangle", Price: 32000, Image: "https://example.com/b.jpg",
		})
		require.NoError(t, err)
	}

	_, err := orders.Create(ctx, CreateOrderRequest{
		Name: "Priya", Phone: "1", Address: "x", ProductID: "p1",
	})
	require.NoError(t, err)

	completed, err := orders.Create(ctx, CreateOrderRequest{
		Name: "Asha", Phone: "2", Address: "y", ProductID: "p2",
	})
	require.NoError(t, err)
	_, err = orders.Update(ctx, completed.ID, UpdateOrderRequest{Status: lo.ToPtr("completed")})
	require.NoError(t, err)

	got, err := stats.Compute(ctx)
	require.NoError(t, err)
	assert.Equal(t, Stats{
		TotalProducts:   3,
		TotalOrders:     2,
		PendingOrders:   1,
		CompletedOrders: 1,
	}, got)
}

func TestComputeStatsIgnoresCancelled(t *testing.T) {
	ctx := context.Background()
	stats, _, orders := newTestStats(t)

	o, err := orders.Create(ctx, CreateOrderRequest{
		Name: "Priya", Phone: "1", Address: "x", ProductID: "p1",
	})
	require.NoError(t, err)
	_, err = orders.Update(ctx, o.ID, UpdateOrderRequest{Status: lo.ToPtr("cancelled")})
	require.NoError(t, err)

	got, err := stats.Compute(ctx)
	require.NoError(t, err)
	assert.Equal(t, Stats{TotalOrders: 1}, got)
}
