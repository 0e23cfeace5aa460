package service

import (
	"context"

	"rik-restaurant/activity-svc/internal/domain"
)

type ActivityService struct {
	feed    FeedStore
	maxSize int64
}

func NewActivityService(feed FeedStore, maxSize int64) *ActivityService {
	return &ActivityService{feed: feed, maxSize: maxSize}
}

func (s *ActivityService) clamp(limit int64) int64 {
	if limit <= 0 || limit > s.maxSize {
		return s.maxSize
	}
	return limit
}

func (s *ActivityService) Recent(ctx context.Context, limit int64) ([]domain.Event, error) {
	return s.feed.Recent(ctx, s.clamp(limit))
}

func (s *ActivityService) ForIdentity(ctx context.Context, identity string, limit int64) ([]domain.Event, error) {
	return s.feed.ForIdentity(ctx, identity, s.clamp(limit))
}

func (s *ActivityService) Counts(ctx context.Context) (domain.Counts, error) {
	return s.feed.Counts(ctx)
}
