// seed.go

package main

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var sampleProducts = []Product{
	{
		Name:        "Maharani Kundan Necklace",
		Price:       45000,
		Image:       "https://images.unsplash.com/photo-1599643478518-a784e5dc4c8f?w=800",
		Description: "Exquisite handcrafted Kundan necklace with intricate gold work",
	},
	{
		Name:        "Pearl Jadau Earrings",
		Price:       28000,
		Image:       "https://images.unsplash.com/photo-1535632066927-ab7c9ab60908?w=800",
		Description: "Traditional Jadau earrings adorned with lustrous pearls",
	},
	{
		Name:        "Polki Diamond Maang Tikka",
		Price:       52000,
		Image:       "https://images.unsplash.com/photo-1611591437281-460bfbe1220a?w=800",
		Description: "Regal Polki diamond maang tikka with gold detailing",
	},
	{
		Name:        "Meenakari Bangles Set",
		Price:       32000,
		Image:       "https://images.unsplash.com/photo-1605100804763-247f67b3557e?w=800",
		Description: "Colorful Meenakari work on 22k gold bangles",
	},
	{
		Name:        "Temple Jewellery Choker",
		Price:       38000,
		Image:       "https://images.unsplash.com/photo-1617038260897-41a1f14a8ca0?w=800",
		Description: "South Indian temple jewellery choker with antique finish",
	},
	{
		Name:        "Ruby Jhumka Earrings",
		Price:       24000,
		Image:       "https://images.unsplash.com/photo-1630019852942-f89202989a59?w=800",
		Description: "Classic jhumka earrings with precious rubies",
	},
}

type SeedService struct {
	store Store
}

func NewSeedService(store Store) *SeedService {
	return &SeedService{store: store}
}

// Seed inserts the demo catalog once. Idempotence comes from the existence
// check, not natural-key dedup; the check-then-insert sequence is not atomic,
// so two concurrent calls can both pass the check. Accepted for a one-shot
// demo routine.
func (s *SeedService) Seed(ctx context.Context) (int, error) {
	existing, err := s.store.GetByPrefix(ctx, productKeyPrefix)
	if err != nil {
		return 0, fmt.Errorf("seed: %w", err)
	}
	if len(existing) > 0 {
		return 0, ErrAlreadySeeded
	}
	visible := true
	now := time.Now().UTC().Format(time.RFC3339)
	for _, p := range sampleProducts {
		p.ID = uuid.NewString()
		p.Visible = &visible
		p.CreatedAt = now
		if err := s.store.Set(ctx, productKey(p.ID), p); err != nil {
			return 0, fmt.Errorf("seed: %w", err)
		}
	}
	return len(sampleProducts), nil
}
