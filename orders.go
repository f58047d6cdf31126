// orders.go

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
)

const orderKeyPrefix = "order:"

func orderKey(id string) string {
	return orderKeyPrefix + id
}

type OrderService struct {
	store Store
}

func NewOrderService(store Store) *OrderService {
	return &OrderService{store: store}
}

// Create stores a new order with a denormalized product snapshot taken from
// the request. The referenced product is not re-resolved, so the order keeps
// its original name and price even if the product changes or disappears.
func (s *OrderService) Create(ctx context.Context, req CreateOrderRequest) (Order, error) {
	if req.Name == "" || req.Phone == "" || req.Address == "" || req.ProductID == "" {
		return Order{}, ErrMissingFields
	}
	o := Order{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Phone:        req.Phone,
		Address:      req.Address,
		ProductID:    req.ProductID,
		ProductName:  req.ProductName,
		ProductPrice: req.ProductPrice,
		Status:       OrderStatusPending,
		CreatedAt:    time.Now().UTC().Format(time.RFC3339),
	}
	if err := s.store.Set(ctx, orderKey(o.ID), o); err != nil {
		return Order{}, fmt.Errorf("create order: %w", err)
	}
	return o, nil
}

// List returns all orders sorted by createdAt descending. Newest-first is a
// contract, not an accident of store iteration.
func (s *OrderService) List(ctx context.Context) ([]Order, error) {
	raws, err := s.store.GetByPrefix(ctx, orderKeyPrefix)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	orders := make([]Order, 0, len(raws))
	for _, raw := range raws {
		var o Order
		if err := json.Unmarshal(raw, &o); err != nil {
			return nil, fmt.Errorf("decode order: %w", err)
		}
		orders = append(orders, o)
	}
	sort.Slice(orders, func(i, j int) bool {
		ti, _ := time.Parse(time.RFC3339, orders[i].CreatedAt)
		tj, _ := time.Parse(time.RFC3339, orders[j].CreatedAt)
		return ti.After(tj)
	})
	return orders, nil
}

func (s *OrderService) Get(ctx context.Context, id string) (Order, error) {
	raw, err := s.store.Get(ctx, orderKey(id))
	if err != nil {
		return Order{}, fmt.Errorf("get order: %w", err)
	}
	if raw == nil {
		return Order{}, ErrOrderNotFound
	}
	var o Order
	if err := json.Unmarshal(raw, &o); err != nil {
		return Order{}, fmt.Errorf("decode order: %w", err)
	}
	return o, nil
}

// Update merges the provided fields and stamps updatedAt. A status value, if
// present, must be one of the known order statuses.
func (s *OrderService) Update(ctx context.Context, id string, req UpdateOrderRequest) (Order, error) {
	o, err := s.Get(ctx, id)
	if err != nil {
		return Order{}, err
	}
	if req.Name != nil {
		o.Name = *req.Name
	}
	if req.Phone != nil {
		o.Phone = *req.Phone
	}
	if req.Address != nil {
		o.Address = *req.Address
	}
	if req.ProductID != nil {
		o.ProductID = *req.ProductID
	}
	if req.ProductName != nil {
		o.ProductName = *req.ProductName
	}
	if req.ProductPrice != nil {
		o.ProductPrice = *req.ProductPrice
	}
	if req.Status != nil {
		status, err := ToOrderStatus(*req.Status)
		if err != nil {
			return Order{}, err
		}
		o.Status = status
	}
	o.ID = id
	o.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
	if err := s.store.Set(ctx, orderKey(id), o); err != nil {
		return Order{}, fmt.Errorf("update order: %w", err)
	}
	return o, nil
}

func (s *OrderService) Delete(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, orderKey(id)); err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	return nil
}
