package service

import (
	"context"
	"fmt"
	"time"

	"rik-restaurant/restaurant-svc/internal/domain"
)

type CartService struct {
	repo CartRepository
}

func NewCartService(repo CartRepository) *CartService {
	return &CartService{repo: repo}
}

func (s *CartService) GetCart(ctx context.Context, identity string) ([]domain.CartLine, error) {
	lines, err := s.repo.GetCart(ctx, domain.IdentityOf(identity))
	if err != nil {
		return nil, err
	}
	if lines == nil {
		lines = []domain.CartLine{}
	}
	return lines, nil
}

func (s *CartService) Summary(ctx context.Context, identity string) (domain.CartSummary, error) {
	identity = domain.IdentityOf(identity)
	lines, err := s.GetCart(ctx, identity)
	if err != nil {
		return domain.CartSummary{}, err
	}
	return Summarize(identity, lines), nil
}

// AddToCart bumps the quantity of an existing line for the item or appends a
// new line with quantity 1.
func (s *CartService) AddToCart(ctx context.Context, identity string, item domain.MenuItem) ([]domain.CartLine, error) {
	identity = domain.IdentityOf(identity)
	lines, err := s.GetCart(ctx, identity)
	if err != nil {
		return nil, err
	}

	found := false
	for i := range lines {
		if lines[i].ID == item.ID {
			lines[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		lines = append(lines, domain.NewCartLine(item, time.Now().UTC()))
	}

	if err := s.repo.SaveCart(ctx, identity, lines); err != nil {
		return nil, fmt.Errorf("save cart: %w", err)
	}
	return lines, nil
}

// SetQuantity rejects quantities below 1 instead of removing the line.
func (s *CartService) SetQuantity(ctx context.Context, identity, itemID string, qty int) error {
	if qty < 1 {
		return invalid("quantity", "must be at least 1")
	}
	identity = domain.IdentityOf(identity)
	lines, err := s.GetCart(ctx, identity)
	if err != nil {
		return err
	}
	changed := false
	for i := range lines {
		if lines[i].ID == itemID {
			lines[i].Quantity = qty
			changed = true
		}
	}
	if !changed {
		return nil
	}
	return s.repo.SaveCart(ctx, identity, lines)
}

func (s *CartService) RemoveLine(ctx context.Context, identity, itemID string) error {
	identity = domain.IdentityOf(identity)
	lines, err := s.GetCart(ctx, identity)
	if err != nil {
		return err
	}
	kept := make([]domain.CartLine, 0, len(lines))
	for _, line := range lines {
		if line.ID != itemID {
			kept = append(kept, line)
		}
	}
	return s.repo.SaveCart(ctx, identity, kept)
}

func (s *CartService) Clear(ctx context.Context, identity string) error {
	return s.repo.DeleteCart(ctx, domain.IdentityOf(identity))
}
