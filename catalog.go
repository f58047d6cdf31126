// catalog.go

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

const productKeyPrefix = "product:"

func productKey(id string) string {
	return productKeyPrefix + id
}

type CatalogService struct {
	store Store
}

func NewCatalogService(store Store) *CatalogService {
	return &CatalogService{store: store}
}

// List returns every stored product in store-defined order.
func (s *CatalogService) List(ctx context.Context) ([]Product, error) {
	raws, err := s.store.GetByPrefix(ctx, productKeyPrefix)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	products := make([]Product, 0, len(raws))
	for _, raw := range raws {
		var p Product
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, fmt.Errorf("decode product: %w", err)
		}
		products = append(products, p)
	}
	return products, nil
}

func (s *CatalogService) Get(ctx context.Context, id string) (Product, error) {
	raw, err := s.store.Get(ctx, productKey(id))
	if err != nil {
		return Product{}, fmt.Errorf("get product: %w", err)
	}
	if raw == nil {
		return Product{}, ErrProductNotFound
	}
	var p Product
	if err := json.Unmarshal(raw, &p); err != nil {
		return Product{}, fmt.Errorf("decode product: %w", err)
	}
	return p, nil
}

func (s *CatalogService) Create(ctx context.Context, req CreateProductRequest) (Product, error) {
	if req.Name == "" || req.Price == 0 || req.Image == "" {
		return Product{}, ErrMissingFields
	}
	visible := true
	if req.Visible != nil {
		visible = *req.Visible
	}
	p := Product{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Price:       req.Price,
		Image:       req.Image,
		Description: req.Description,
		Visible:     &visible,
		CreatedAt:   time.Now().UTC().Format(time.RFC3339),
	}
	if err := s.store.Set(ctx, productKey(p.ID), p); err != nil {
		return Product{}, fmt.Errorf("create product: %w", err)
	}
	return p, nil
}

// Update merges the provided fields over the existing record. The id never
// changes, even on a full edit.
func (s *CatalogService) Update(ctx context.Context, id string, req UpdateProductRequest) (Product, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return Product{}, err
	}
	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Price != nil {
		p.Price = *req.Price
	}
	if req.Image != nil {
		p.Image = *req.Image
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.Visible != nil {
		p.Visible = req.Visible
	}
	p.ID = id
	p.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
	if err := s.store.Set(ctx, productKey(id), p); err != nil {
		return Product{}, fmt.Errorf("update product: %w", err)
	}
	return p, nil
}

func (s *CatalogService) Delete(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, productKey(id)); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

// FilterVisible keeps the customer-facing subset: only products whose stored
// visible flag is explicitly false are hidden.
func FilterVisible(products []Product) []Product {
	return lo.Filter(products, func(p Product, _ int) bool {
		return p.Visible == nil || *p.Visible
	})
}
