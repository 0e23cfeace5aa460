package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"rik-restaurant/restaurant-svc/internal/domain"
)

const (
	DefaultRating = 4.5
	DefaultImage  = "🍝"
)

type CatalogService struct {
	repo      MenuRepository
	publisher EventPublisher
}

func NewCatalogService(repo MenuRepository, publisher EventPublisher) *CatalogService {
	return &CatalogService{repo: repo, publisher: publisher}
}

func (s *CatalogService) ListItems(ctx context.Context) ([]domain.MenuItem, error) {
	return s.repo.ListMenuItems(ctx)
}

func (s *CatalogService) ListSpecials(ctx context.Context) ([]domain.MenuItem, error) {
	items, err := s.repo.ListMenuItems(ctx)
	if err != nil {
		return nil, err
	}
	specials := []domain.MenuItem{}
	for _, item := range items {
		if item.Category == domain.CategorySpecials {
			specials = append(specials, item)
		}
	}
	return specials, nil
}

func (s *CatalogService) Get(ctx context.Context, id string) (domain.MenuItem, error) {
	items, err := s.repo.ListMenuItems(ctx)
	if err != nil {
		return domain.MenuItem{}, err
	}
	for _, item := range items {
		if item.ID == id {
			return item, nil
		}
	}
	return domain.MenuItem{}, ErrItemNotFound
}

// AddItem appends a new item with a fresh id and the default rating.
func (s *CatalogService) AddItem(ctx context.Context, draft domain.MenuItem) (domain.MenuItem, error) {
	if blank(draft.Name) {
		return domain.MenuItem{}, invalid("name", "is required")
	}
	if blank(draft.Description) {
		return domain.MenuItem{}, invalid("description", "is required")
	}
	if blank(draft.Price) {
		return domain.MenuItem{}, invalid("price", "is required")
	}
	if draft.Category == "" {
		draft.Category = domain.CategoryAppetizers
	}
	if !domain.IsCategory(draft.Category) {
		return domain.MenuItem{}, invalid("category", "must be one of "+strings.Join(domain.Categories, ", "))
	}
	if draft.Image == "" {
		draft.Image = DefaultImage
	}

	items, err := s.repo.ListMenuItems(ctx)
	if err != nil {
		return domain.MenuItem{}, err
	}

	item := draft
	item.ID = newID()
	item.Name = strings.TrimSpace(draft.Name)
	item.Description = strings.TrimSpace(draft.Description)
	item.Price = strings.TrimSpace(draft.Price)
	item.Rating = DefaultRating
	item.CreatedAt = time.Now().UTC()

	if err := s.repo.SaveMenuItems(ctx, append(items, item)); err != nil {
		return domain.MenuItem{}, fmt.Errorf("save menu: %w", err)
	}

	notify(ctx, s.publisher, domain.Event{
		Type:     domain.EventMenuItemAdded,
		EntityID: item.ID,
		Summary:  item.Name,
		Amount:   item.Price,
	})
	return item, nil
}

// RemoveItem drops the item with the given id; an unknown id changes nothing.
func (s *CatalogService) RemoveItem(ctx context.Context, id string) error {
	items, err := s.repo.ListMenuItems(ctx)
	if err != nil {
		return err
	}
	kept := make([]domain.MenuItem, 0, len(items))
	for _, item := range items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	if err := s.repo.SaveMenuItems(ctx, kept); err != nil {
		return fmt.Errorf("save menu: %w", err)
	}
	if len(kept) != len(items) {
		notify(ctx, s.publisher, domain.Event{Type: domain.EventMenuItemRemoved, EntityID: id})
	}
	return nil
}
