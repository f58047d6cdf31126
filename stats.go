// stats.go

package main

import (
	"context"

	"github.com/samber/lo"
)

type StatsService struct {
	catalog *CatalogService
	orders  *OrderService
}

func NewStatsService(catalog *CatalogService, orders *OrderService) *StatsService {
	return &StatsService{catalog: catalog, orders: orders}
}

// Compute derives the dashboard counts from the current store contents on
// every call; nothing is cached.
func (s *StatsService) Compute(ctx context.Context) (Stats, error) {
	products, err := s.catalog.List(ctx)
	if err != nil {
		return Stats{}, err
	}
	orders, err := s.orders.List(ctx)
	if err != nil {
		return Stats{}, err
	}
	return Stats{
		TotalProducts: len(products),
		TotalOrders:   len(orders),
		PendingOrders: lo.CountBy(orders, func(o Order) bool {
			return o.Status == OrderStatusPending
		}),
		CompletedOrders: lo.CountBy(orders, func(o Order) bool {
			return o.Status == OrderStatusCompleted
		}),
	}, nil
}
